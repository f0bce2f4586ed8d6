package vss

import "errors"

// ErrUninvertibleCoefficient describes a share whose Lagrange coefficient's
// denominator has no inverse modulo (Q-1). Reconstruct does not return it:
// it logs its message as the reason for each skipped share and reports the
// skips through its skipped-share count, since enough skipped shares yield a
// wrong reconstructed secret.
var ErrUninvertibleCoefficient = errors.New("vss: lagrange coefficient denominator is not invertible modulo (Q-1)")
