package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt accepts an integer encoded as a JSON number or a numeric string. Browser
// storage mixed both for the same field. Null and "" leave it unset.
type FlexInt struct {
	Value int64
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		f.Value, f.Set = n, true
		return nil
	}
	// Date.now() values sometimes come back as 1.7e12
	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(fl) || math.IsInf(fl, 0) || fl != math.Trunc(fl) {
		return fmt.Errorf("not an integer id: %s", raw)
	}
	f.Value, f.Set = int64(fl), true
	return nil
}

// Ptr returns nil when unset.
func (f FlexInt) Ptr() *int64 {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}
