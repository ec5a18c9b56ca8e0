package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindValidation, KindOf(E(KindValidation, "bad input")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("outer: %w", E(KindConflict, "dup"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestHTTPStatus_CanonicalPerKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind Kind
		want int
	}{
		{KindValidation, 400},
		{KindConflict, 409},
		{KindAuthentication, 401},
		{KindUnauthorized, 401},
		{KindNotFound, 404},
		{KindInternal, 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(E(tc.kind, "x")))
	}
}

func TestWrap_Unwraps(t *testing.T) {
	t.Parallel()

	inner := errors.New("driver failure")
	err := Wrap(KindConflict, "email already registered", inner)

	assert.EqualError(t, err, "email already registered")
	assert.ErrorIs(t, err, inner)
}
