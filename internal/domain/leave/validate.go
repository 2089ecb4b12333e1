package leave

import "strings"

// SubmitFields is the raw user input for a new request.
type SubmitFields struct {
	Type  string
	Start string
	End   string
}

// Validate checks a submission before anything reaches the ledger and returns the
// canonical leave type.
func (f SubmitFields) Validate() (Type, error) {
	if strings.TrimSpace(f.Type) == "" {
		return "", invalid("type", "is required")
	}
	t, ok := ParseType(f.Type)
	if !ok {
		return "", invalid("type", "must be one of Annual, Sick, Casual")
	}
	if f.Start == "" || f.End == "" {
		return "", invalid("start", "and end are required")
	}
	if !ValidDate(f.Start) {
		return "", invalid("start", "must be YYYY-MM-DD")
	}
	if !ValidDate(f.End) {
		return "", invalid("end", "must be YYYY-MM-DD")
	}
	if After(f.Start, f.End) {
		return "", invalid("start", "must be on or before end")
	}
	return t, nil
}
