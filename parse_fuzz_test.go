//go:build go1.18
// +build go1.18

package exact_test

import (
	"strings"
	"testing"

	"github.com/exactcalc/exact"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1 + 2*3")
	f.Add("f(a, b) = a^b!")
	f.Add("2(x + 1)")
	f.Add("0xff % 0b101")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := exact.Parse(s)
		if err != nil {
			return
		}
		// A successful parse must reparse from its own formatting. Overflowed
		// float literals format as Inf, which is not re-lexable; skip those.
		out := e.String()
		if strings.Contains(out, "Inf") || strings.Contains(out, "NaN") {
			return
		}
		if _, err := exact.Parse(out); err != nil {
			t.Errorf("reparsing %q (from %q): %v", out, s, err)
		}
	})
}
