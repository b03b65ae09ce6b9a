package convert

import (
	"fmt"
	"strings"

	"github.com/Spyderisk/domain-csv2nq/vocabulary/ssm"
)

// Triplet holds the three population variants of an identifier or label.
// Min and Max are derived from Avg by suffix or marker insertion.
type Triplet struct {
	Min string
	Avg string
	Max string
}

// expandMinMax derives the min and max variants of base by appending the
// population suffixes. An empty base yields an empty triplet.
func expandMinMax(base string) Triplet {
	if base == "" {
		return Triplet{}
	}
	return Triplet{
		Min: base + ssm.MinSuffix,
		Avg: base,
		Max: base + ssm.MaxSuffix,
	}
}

// expandMinMaxAt derives the min and max variants of base by inserting the
// population suffixes directly after the first occurrence of marker. It
// reports whether marker occurs more than once, in which case the first
// occurrence was used and the caller should warn.
func expandMinMaxAt(base, marker string) (Triplet, bool, error) {
	if base == "" {
		return Triplet{}, false, nil
	}
	before, after, found := strings.Cut(base, marker)
	if !found {
		return Triplet{}, false, fmt.Errorf("%q cannot be found in %q", marker, base)
	}
	t := Triplet{
		Min: before + marker + ssm.MinSuffix + after,
		Avg: base,
		Max: before + marker + ssm.MaxSuffix + after,
	}
	return t, strings.Contains(after, marker), nil
}
