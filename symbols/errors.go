// SPDX-License-Identifier: MIT
// Package symbols: sentinel error set.
// Parsers MUST wrap these sentinels with the offending token via
// fmt.Errorf("...%q: %w", tok, ErrX); callers match with errors.Is.

package symbols

import "errors"

// ErrUnknownSymbol indicates a token that names no element of the alphabet
// being parsed (e.g. "Q" for Pauli, "Y" for decoherence).
var ErrUnknownSymbol = errors.New("symbols: unknown operator symbol")
