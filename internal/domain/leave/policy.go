package leave

import (
	"regexp"
	"strconv"
)

// Policy is the annual day entitlement per leave type.
type Policy map[Type]int

func (p Policy) Entitlement(t Type) int { return max(0, p[t]) }

// Allotments carries the explicit per-type numbers stored next to the policy text.
type Allotments struct {
	Annual int
	Sick   int
	Casual int
}

type policyPatterns struct {
	labelled *regexp.Regexp // "Annual Leave: 20"
	trailing *regexp.Regexp // "20 days of Annual ..."
}

var patterns = func() map[Type]policyPatterns {
	out := make(map[Type]policyPatterns, len(Types))
	for _, t := range Types {
		label := regexp.QuoteMeta(string(t))
		out[t] = policyPatterns{
			labelled: regexp.MustCompile(`(?i)` + label + `\s+Leave[:\-]?\s*(\d+)`),
			trailing: regexp.MustCompile(`(?i)(\d+)\s*days?\s*.*` + label),
		}
	}
	return out
}()

// ParsePolicy extracts entitlements from free-form policy text. When the text yields
// nothing for every type the explicit allotments are used instead.
func ParsePolicy(text string, fallback Allotments) Policy {
	p := Policy{TypeAnnual: 0, TypeSick: 0, TypeCasual: 0}
	if text != "" {
		for _, t := range Types {
			pat := patterns[t]
			m := pat.labelled.FindStringSubmatch(text)
			if m == nil {
				m = pat.trailing.FindStringSubmatch(text)
			}
			if m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					p[t] = n
				}
			}
		}
	}
	if p[TypeAnnual] == 0 && p[TypeSick] == 0 && p[TypeCasual] == 0 {
		p[TypeAnnual] = max(0, fallback.Annual)
		p[TypeSick] = max(0, fallback.Sick)
		p[TypeCasual] = max(0, fallback.Casual)
	}
	return p
}
