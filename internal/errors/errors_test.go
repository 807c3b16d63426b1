package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/bilerp/internal/errors"
)

var errSentinel = stderrors.New(`sentinel`)

func TestKind(t *testing.T) {
	err := errors.Kind(errSentinel, `value %d`, 3)
	assert.True(t, stderrors.Is(err, errSentinel))
	assert.Equal(t, `sentinel: value 3`, err.Error())
	assert.NotEmpty(t, err.ErrorStack())
}

func TestWithKind(t *testing.T) {
	cause := stderrors.New(`disk on fire`)
	err := errors.WithKind(errSentinel, cause)
	assert.True(t, errors.Is(err, errSentinel))
	assert.True(t, errors.Is(err, cause))

	// already tagged errors are not tagged twice
	again := errors.WithKind(errSentinel, err)
	assert.Equal(t, 1, strings.Count(again.Error(), `sentinel`))
}

func TestNilParam(t *testing.T) {
	var p *int
	err := errors.NilParam(p)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `TestNilParam`)
	}
	v := 1
	assert.NoError(t, errors.NilParam(&v))
	assert.Error(t, errors.NilReceiver())
}
