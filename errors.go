package spyce

import (
	"errors"
	"fmt"
)

// Every failure in this package falls into one of three kinds: validation
// (the input itself is malformed or inconsistent), domain (the requested
// quantity does not exist for the orbit shape at hand), and convergence
// (the iterative anomaly solver exhausted its iteration budget). Call sites
// wrap these sentinels with context, so test with errors.Is.
var (
	// ErrValidation reports a malformed or inconsistent input parameter.
	ErrValidation = errors.New("spyce: invalid parameters")
	// ErrDomain reports a quantity which is undefined for the orbit shape.
	ErrDomain = errors.New("spyce: undefined for this orbit shape")
	// ErrConvergence reports that the Kepler solver ran out of iterations.
	ErrConvergence = errors.New("spyce: anomaly solver did not converge")
	// ErrUnknownBody reports a body name absent from a system catalog.
	ErrUnknownBody = errors.New("spyce: unknown body")
	// ErrUnknownSystem reports a system name with neither a config file
	// nor a built-in catalog.
	ErrUnknownSystem = errors.New("spyce: unknown system")
	// ErrMalformedConfig reports unparsable block-format configuration text.
	ErrMalformedConfig = errors.New("spyce: malformed config")

	// ErrZeroVector reports that a direction was required from a
	// zero-length vector. It wraps ErrValidation.
	ErrZeroVector = fmt.Errorf("zero-length vector: %w", ErrValidation)
)
