package leave

// Balance is the derived position of one leave type.
type Balance struct {
	Type        Type `json:"type"`
	Entitlement int  `json:"entitlement"`
	Taken       int  `json:"taken"`
	Remaining   int  `json:"remaining"`
}

type BalanceView struct {
	EmployeeID *int64    `json:"employeeId"`
	Balances   []Balance `json:"balances"`
	// Approved requests whose day count did not come from exact calendar math
	Approximated []int64 `json:"approximated,omitempty"`
}

func (v BalanceView) Remaining(t Type) int {
	for _, b := range v.Balances {
		if b.Type == t {
			return b.Remaining
		}
	}
	return 0
}

func (v BalanceView) Taken(t Type) int {
	for _, b := range v.Balances {
		if b.Type == t {
			return b.Taken
		}
	}
	return 0
}

// Resolve derives the balance of employeeID from the approved requests in reqs.
// A nil employeeID resolves to the full entitlement for every type.
func Resolve(policy Policy, reqs []Request, employeeID *int64) BalanceView {
	taken := make(map[Type]int, len(Types))
	var approx []int64

	if employeeID != nil {
		for i := range reqs {
			r := &reqs[i]
			if r.Status != StatusApproved || !r.BelongsTo(employeeID) {
				continue
			}
			n, prec := CountDays(r.Start, r.End)
			if prec != PrecisionExact {
				approx = append(approx, r.ID)
			}
			taken[r.Type] += n
		}
	}

	view := BalanceView{EmployeeID: employeeID, Approximated: approx}
	for _, t := range Types {
		ent := policy.Entitlement(t)
		view.Balances = append(view.Balances, Balance{
			Type:        t,
			Entitlement: ent,
			Taken:       taken[t],
			Remaining:   max(0, ent-taken[t]),
		})
	}
	return view
}
