package importer

import (
	"context"
	"errors"
	"fmt"

	"nexhr-leave/internal/adapter/snapshot"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/uow"

	"go.uber.org/zap"
)

// Report counts what an import wrote.
type Report struct {
	Leaves    int      `json:"leaves"`
	Employees int      `json:"employees"`
	Users     int      `json:"users"`
	Settings  bool     `json:"settings"`
	Skipped   []string `json:"skipped"`
}

type Usecase struct {
	tx  uow.UnitOfWork
	log *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{tx: tx, log: log}
}

// Import writes a decoded snapshot in one transaction. Records are upserted by id,
// except leave requests already Approved or Rejected here: those are kept and
// reported as skipped, so a re-import never reopens a decision.
func (u *Usecase) Import(ctx context.Context, snap *snapshot.Snapshot) (*Report, error) {
	rep := &Report{Skipped: append([]string{}, snap.Skipped...)}

	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		for i := range snap.Employees {
			if err := r.Employees.Upsert(ctx, &snap.Employees[i]); err != nil {
				return err
			}
			rep.Employees++
		}
		for i := range snap.Users {
			if err := r.Users.Upsert(ctx, &snap.Users[i]); err != nil {
				return err
			}
			rep.Users++
		}
		if snap.Settings != nil {
			if err := r.Settings.Save(ctx, snap.Settings); err != nil {
				return err
			}
			rep.Settings = true
		}
		for i := range snap.Leaves {
			in := &snap.Leaves[i]
			cur, err := r.Leaves.GetByIDForUpdate(ctx, in.ID)
			if err != nil && !errors.Is(err, leave.ErrNotFound) {
				return err
			}
			if cur != nil && cur.Status.Terminal() {
				rep.Skipped = append(rep.Skipped,
					fmt.Sprintf("leaves id=%d: already %s, kept", in.ID, cur.Status))
				continue
			}
			if cur == nil {
				err = r.Leaves.Create(ctx, in)
			} else {
				err = r.Leaves.Save(ctx, in)
			}
			if err != nil {
				return err
			}
			rep.Leaves++
		}
		return nil
	})
	if err != nil {
		u.log.Error("snapshot import failed", zap.Error(err))
		return nil, err
	}

	u.log.Info("snapshot imported",
		zap.Int("leaves", rep.Leaves),
		zap.Int("employees", rep.Employees),
		zap.Int("users", rep.Users),
		zap.Bool("settings", rep.Settings),
		zap.Int("skipped", len(rep.Skipped)))
	return rep, nil
}
