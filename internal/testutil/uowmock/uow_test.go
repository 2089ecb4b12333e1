package uowmock

import (
	"context"
	"errors"
	"testing"

	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/uow"
	"nexhr-leave/internal/testutil/leavemock"
	"nexhr-leave/internal/testutil/usermock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	leaves := &leavemock.Repo{}
	users := &usermock.Repo{}
	repos := uow.Repos{Leaves: leaves, Users: users}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			assert.Equal(t, ctx, gotCtx)
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		assert.Same(t, leaves, r.Leaves)
		assert.Same(t, users, r.Users)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, innerCalled, "inner fn not called")
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error { return sentinel },
	}
	err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil })
	assert.ErrorIs(t, err, sentinel)
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{}
	assert.ErrorIs(t, m.WithinTx(ctx, func(uow.Repos) error { return nil }), errUnimplemented)
	assert.ErrorIs(t, m.WithinLeaveTx(ctx, 1, func(uow.Repos, *leave.Request) error { return nil }), errUnimplemented)
}

func TestOver_LoadsRequestForLeaveTx(t *testing.T) {
	ctx := context.Background()
	want := &leave.Request{ID: 7, Status: leave.StatusPending}
	leaves := &leavemock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, id int64) (*leave.Request, error) {
			if id != 7 {
				return nil, leave.ErrNotFound
			}
			return want, nil
		},
	}
	m := Over(uow.Repos{Leaves: leaves})

	var got *leave.Request
	err := m.WithinLeaveTx(ctx, 7, func(_ uow.Repos, l *leave.Request) error {
		got = l
		return nil
	})
	require.NoError(t, err)
	assert.Same(t, want, got)

	called := false
	err = m.WithinLeaveTx(ctx, 8, func(uow.Repos, *leave.Request) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, leave.ErrNotFound)
	assert.False(t, called, "body must not run for a missing request")
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New()
	assert.Nil(t, m.WithinTxFn)
	assert.Nil(t, m.WithinLeaveTxFn)

	m.WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinLeaveTx(func(context.Context, int64, func(uow.Repos, *leave.Request) error) error { return nil })
	assert.NotNil(t, m.WithinTxFn)
	assert.NotNil(t, m.WithinLeaveTxFn)

	m.Reset()
	assert.Nil(t, m.WithinTxFn)
	assert.Nil(t, m.WithinLeaveTxFn)
}
