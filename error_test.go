package watchapi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/watchapi"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := watchapi.Errorf(watchapi.ENOTFOUND, "Watch '%s' not found", "Swatch")

	assert.Equal(t, watchapi.ENOTFOUND, watchapi.ErrorCode(err))
	assert.Equal(t, "Watch 'Swatch' not found", watchapi.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, watchapi.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, watchapi.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", watchapi.Errorf(watchapi.EINVALID, "bad input"))

	assert.Equal(t, watchapi.EINVALID, watchapi.ErrorCode(err))
	assert.Equal(t, "bad input", watchapi.ErrorMessage(err))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, watchapi.EINTERNAL, watchapi.ErrorCode(err))
	assert.Equal(t, "Internal error.", watchapi.ErrorMessage(err))
}
