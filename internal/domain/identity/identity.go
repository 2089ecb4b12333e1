package identity

import (
	"errors"
	"strings"
)

var ErrNoSession = errors.New("no session identity")

const adminName = "admin"

// Identity is the session handed over by the surrounding login flow.
type Identity struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
}

// IsAdmin is true when either the role or the username is "admin", in any case.
func (i Identity) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(i.Role), adminName) ||
		strings.EqualFold(strings.TrimSpace(i.Username), adminName)
}

func (i Identity) Anonymous() bool { return strings.TrimSpace(i.Username) == "" }
