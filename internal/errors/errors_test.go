package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = stderrors.New("sentinel")

func TestNewfKeepsCauseReachable(t *testing.T) {
	err := Newf(CodeInvalidInput, errSentinel, "x has %d values, y has %d", 3, 4)

	assert.Equal(t, CodeInvalidInput, err.Code)
	assert.Equal(t, "x has 3 values, y has 4: sentinel", err.Error())
	assert.True(t, stderrors.Is(err, errSentinel))
}

func TestWrapPreservesCode(t *testing.T) {
	inner := InvalidInput("bad sample")
	wrapped := Wrap(inner, "analysis failed")

	assert.Equal(t, CodeInvalidInput, GetCode(wrapped))
	assert.Equal(t, "analysis failed: bad sample", wrapped.Error())
	assert.True(t, IsAppError(wrapped))
	assert.False(t, IsAppError(stderrors.New("plain")))
}

func TestWrapPlainErrorIsInternal(t *testing.T) {
	wrapped := Wrapf(stderrors.New("disk full"), "writing %s", "plot.png")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "writing plot.png: disk full", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("cli: %w", New(CodeUndefinedCorrelation, "zero variance"))
	assert.Equal(t, CodeUndefinedCorrelation, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}
