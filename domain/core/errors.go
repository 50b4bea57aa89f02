package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrLengthMismatch  = fmt.Errorf("%w: samples differ in length", ErrInvalidInput)
	ErrSampleTooShort  = fmt.Errorf("%w: sample too short", ErrInvalidInput)
	ErrNonNumeric      = fmt.Errorf("%w: non-numeric value", ErrInvalidInput)
	ErrAlphaOutOfRange = fmt.Errorf("%w: significance level outside (0,1)", ErrInvalidInput)

	// Numeric errors
	ErrUndefinedCorrelation  = errors.New("correlation undefined for a zero-variance sample")
	ErrCorrelationOutOfRange = errors.New("correlation coefficient outside [-1, 1]")

	// Soft error: recorded on skipped hypothesis tests, never returned by the engine
	ErrInsufficientDegreesOfFreedom = errors.New("insufficient degrees of freedom")
)

// IsInvalidInput reports whether err stems from rejected input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNumericError reports whether err is a numeric failure of the analysis
func IsNumericError(err error) bool {
	return errors.Is(err, ErrUndefinedCorrelation) ||
		errors.Is(err, ErrCorrelationOutOfRange)
}
