package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"nexhr-leave/internal/domain/directory"
	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/settings"
)

const keyPrefix = "nexhr_"

// Snapshot is a browser local-storage export decoded into domain records. Ids are
// canonical int64 from here on.
type Snapshot struct {
	Leaves    []leave.Request
	Employees []directory.Employee
	Users     []identity.User
	Settings  *settings.Settings
	// Human-readable reasons for records that could not be imported
	Skipped []string
}

type leaveRecord struct {
	ID         FlexInt `json:"id"`
	EmployeeID FlexInt `json:"employeeId"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

type employeeRecord struct {
	ID     FlexInt `json:"id"`
	Name   string  `json:"name"`
	Dept   string  `json:"dept"`
	Status string  `json:"status"`
}

type userRecord struct {
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	EmployeeID FlexInt `json:"employeeId"`
}

type settingsRecord struct {
	LeavePolicy        string  `json:"leavePolicy"`
	CompanyRules       string  `json:"companyRules"`
	AnnualLeaveBalance FlexInt `json:"annualLeaveBalance"`
	SickLeaveBalance   FlexInt `json:"sickLeaveBalance"`
	CasualLeaveBalance FlexInt `json:"casualLeaveBalance"`
}

// Decode reads an export object keyed by leaves, settings, employees and users, with
// or without the nexhr_ prefix. Values may be JSON or JSON encoded in a string, the
// way local storage keeps them.
func Decode(r io.Reader) (*Snapshot, error) {
	var top map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&top); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	sections := make(map[string]json.RawMessage, len(top))
	for k, v := range top {
		raw, err := unwrap(v)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		sections[strings.TrimPrefix(k, keyPrefix)] = raw
	}

	out := &Snapshot{}
	if err := decodeLeaves(sections["leaves"], out); err != nil {
		return nil, err
	}
	if err := decodeEmployees(sections["employees"], out); err != nil {
		return nil, err
	}
	if err := decodeUsers(sections["users"], out); err != nil {
		return nil, err
	}
	if err := decodeSettings(sections["settings"], out); err != nil {
		return nil, err
	}
	return out, nil
}

func unwrap(v json.RawMessage) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(v))
	if !strings.HasPrefix(trimmed, `"`) {
		return v, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, err
	}
	return json.RawMessage(s), nil
}

func empty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

func decodeLeaves(raw json.RawMessage, out *Snapshot) error {
	if empty(raw) {
		return nil
	}
	var recs []json.RawMessage
	if err := json.Unmarshal(raw, &recs); err != nil {
		return fmt.Errorf("decode leaves: %w", err)
	}
	for i, item := range recs {
		var rec leaveRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("leaves[%d]: %v", i, err))
			continue
		}
		if !rec.ID.Set {
			out.Skipped = append(out.Skipped, fmt.Sprintf("leaves[%d]: missing id", i))
			continue
		}
		typ, ok := leave.ParseType(rec.Type)
		if !ok {
			out.Skipped = append(out.Skipped, fmt.Sprintf("leaves[%d]: unknown type %q", i, rec.Type))
			continue
		}
		status, ok := leave.ParseStatus(rec.Status)
		if !ok {
			out.Skipped = append(out.Skipped, fmt.Sprintf("leaves[%d]: unknown status %q", i, rec.Status))
			continue
		}
		created, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
		if err != nil {
			// ids are creation timestamps in ms
			created = time.UnixMilli(rec.ID.Value)
		}
		out.Leaves = append(out.Leaves, leave.Request{
			ID:         rec.ID.Value,
			EmployeeID: rec.EmployeeID.Ptr(),
			Name:       rec.Name,
			Type:       typ,
			Start:      strings.TrimSpace(rec.Start),
			End:        strings.TrimSpace(rec.End),
			Reason:     rec.Reason,
			Status:     status,
			CreatedAt:  created.UTC(),
		})
	}
	return nil
}

func decodeEmployees(raw json.RawMessage, out *Snapshot) error {
	if empty(raw) {
		return nil
	}
	var recs []json.RawMessage
	if err := json.Unmarshal(raw, &recs); err != nil {
		return fmt.Errorf("decode employees: %w", err)
	}
	for i, item := range recs {
		var rec employeeRecord
		if err := json.Unmarshal(item, &rec); err != nil || !rec.ID.Set {
			out.Skipped = append(out.Skipped, fmt.Sprintf("employees[%d]: missing or invalid id", i))
			continue
		}
		out.Employees = append(out.Employees, directory.Employee{
			ID: rec.ID.Value, Name: rec.Name, Dept: rec.Dept, Status: rec.Status,
		})
	}
	return nil
}

func decodeUsers(raw json.RawMessage, out *Snapshot) error {
	if empty(raw) {
		return nil
	}
	var recs []json.RawMessage
	if err := json.Unmarshal(raw, &recs); err != nil {
		return fmt.Errorf("decode users: %w", err)
	}
	for i, item := range recs {
		var rec userRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("users[%d]: %v", i, err))
			continue
		}
		if strings.TrimSpace(rec.Username) == "" {
			out.Skipped = append(out.Skipped, fmt.Sprintf("users[%d]: missing username", i))
			continue
		}
		out.Users = append(out.Users, identity.User{
			Username:   strings.TrimSpace(rec.Username),
			Role:       rec.Role,
			EmployeeID: rec.EmployeeID.Ptr(),
		})
	}
	return nil
}

func decodeSettings(raw json.RawMessage, out *Snapshot) error {
	if empty(raw) {
		return nil
	}
	var rec settingsRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	out.Settings = &settings.Settings{
		ID:                 settings.SingletonID,
		LeavePolicy:        rec.LeavePolicy,
		CompanyRules:       rec.CompanyRules,
		AnnualLeaveBalance: int(rec.AnnualLeaveBalance.Value),
		SickLeaveBalance:   int(rec.SickLeaveBalance.Value),
		CasualLeaveBalance: int(rec.CasualLeaveBalance.Value),
	}
	return nil
}
