// Package testutil provides deterministic fixtures shared by this module's
// test suites: a small, fast safe-prime test group matching the fixed test
// vectors, and decimal-literal constructors for big-integer fixtures.
package testutil

import (
	"math/big"

	"github.com/go-pvss/pvss/pkg/vss"
)

// SmallGroup returns the small safe-prime test group used throughout the
// fixed test vectors: Q = 179426549, SubgroupGenerator = 1301081,
// Generator = 15486487.
func SmallGroup() *vss.Group {
	return vss.NewGroup(
		big.NewInt(179426549),
		big.NewInt(1301081),
		big.NewInt(15486487),
		28,
	)
}

// Int constructs a *big.Int from a decimal literal for table-driven test
// fixtures; it panics on a malformed literal since fixtures are
// compile-time-constant test data, never user input.
func Int(decimal string) *big.Int {
	n, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("testutil: malformed decimal literal " + decimal)
	}
	return n
}

// Ints maps Int over a slice of decimal literals.
func Ints(decimals ...string) []*big.Int {
	out := make([]*big.Int, len(decimals))
	for i, d := range decimals {
		out[i] = Int(d)
	}
	return out
}
