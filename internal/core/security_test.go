// AngelaMos | 2026
// security_test.go

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotContains(t, hash, "correct horse")

	valid, err := VerifyPassword("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyPassword("battery staple", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyPasswordTimingSafe_MissingHash(t *testing.T) {
	valid, _, err := VerifyPasswordTimingSafe("anything", nil)
	require.NoError(t, err)
	assert.False(t, valid)

	empty := ""
	valid, _, err = VerifyPasswordTimingSafe("anything", &empty)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFoundError("slot"), 404},
		{"conflict", ConflictError("overlap"), 409},
		{"duplicate", DuplicateError("email"), 409},
		{"invalid input", ValidationError("bad amount"), 400},
		{"forbidden", ForbiddenError("protected"), 403},
		{"unauthorized", UnauthorizedError("bad credentials"), 401},
		{"unknown", errors.New("boom"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusForError(tc.err))
		})
	}
}
