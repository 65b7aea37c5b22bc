package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormatting(t *testing.T) {
	err := New(ErrCodeConnectionFailed, "connection refused").
		WithSuggestions("Check your network connection")

	msg := err.Error()
	assert.Contains(t, msg, "SSYN1001")
	assert.Contains(t, msg, "connection refused")
	assert.Contains(t, msg, "Check your network connection")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeStageFailed, "stage failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
	assert.Nil(t, Wrap(nil, ErrCodeStageFailed, "no-op"))
}

func TestWrapMergesContext(t *testing.T) {
	inner := New(ErrCodeConfigInvalid, "bad config").WithContext("path", "shop.yaml")
	outer := Wrap(inner, ErrCodeInternal, "load failed")

	assert.Equal(t, "shop.yaml", outer.Context["path"])
}

func TestConstructorsAcceptNilCause(t *testing.T) {
	require.NotNil(t, AuthError("denied", nil))
	require.NotNil(t, ConnectionError("down", nil))
	assert.True(t, IsCode(AuthError("denied", nil), ErrCodeAuthenticationFailed))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeDuplicateKey, GetErrorCode(DuplicateKeyError("channel", "germany")))
	assert.Equal(t, ErrCodeUnknown, GetErrorCode(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", AuthError("denied", nil))
	assert.True(t, IsCode(wrapped, ErrCodeAuthenticationFailed))
}

func TestResolutionErrorNamesTheMissing(t *testing.T) {
	err := ResolutionError([]string{"Size", "Color"}, "PRODUCT")
	assert.True(t, IsCode(err, ErrCodeAttributeNotFound))
	assert.Contains(t, err.Error(), "Size, Color")
}

func TestStageAggregate(t *testing.T) {
	t.Run("nil when nothing failed", func(t *testing.T) {
		assert.NoError(t, NewStageAggregate("msg", []string{"a", "b"}, nil))
	})

	t.Run("carries both sides", func(t *testing.T) {
		err := NewStageAggregate("channels", []string{"Germany"},
			[]EntityFailure{{Entity: "Spain", Err: errors.New("rejected")}})
		require.Error(t, err)

		agg, ok := AsStageAggregate(err)
		require.True(t, ok)
		assert.Equal(t, 2, agg.Total())
		assert.Contains(t, agg.Error(), "1 succeeded, 1 failed")
		assert.Contains(t, agg.Error(), "Spain: rejected")
	})

	t.Run("extraction through wrapping", func(t *testing.T) {
		inner := NewStageAggregate("msg", nil, []EntityFailure{{Entity: "x", Err: errors.New("e")}})
		wrapped := fmt.Errorf("stage: %w", inner)
		_, ok := AsStageAggregate(wrapped)
		assert.True(t, ok)

		_, ok = AsStageAggregate(errors.New("plain"))
		assert.False(t, ok)
	})
}
