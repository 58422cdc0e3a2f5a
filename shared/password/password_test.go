package password_test

import (
	"flightbook/shared/password"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{name: "valid password", input: "s3cret-pass"},
		{name: "empty password", input: "", expectedErr: password.ErrEmptyPassword},
		{name: "too short", input: "abc", expectedErr: password.ErrTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.input, hash)
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NoError(t, password.Verify("s3cret-pass", hash))
	assert.ErrorIs(t, password.Verify("wrong-pass", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("s3cret-pass", ""), password.ErrInvalidPassword)
	assert.Error(t, password.Verify("s3cret-pass", "not-a-bcrypt-hash"))
}
