package permissions_test

import (
	"flightbook/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		skip      bool
		adminOnly bool
	}{
		{name: "login is public", path: "/api/auth/login", method: "POST", skip: true},
		{name: "flight list is public", path: "/api/flights", method: "GET", skip: true},
		{name: "booking needs a user", path: "/api/book-flight", method: "POST"},
		{name: "migration is admin only", path: "/api/admin/migrate-legacy", method: "POST", adminOnly: true},
		{name: "revert is admin only", path: "/api/admin/revert-legacy/{id}", method: "POST", adminOnly: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.path, permission.Path)
			assert.Equal(t, tt.skip, permission.Skip)
			assert.Equal(t, tt.adminOnly, permission.AdminOnly())
		})
	}
}

func TestFindPermissions_Unknown(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/a","method":"GET","skip":true}]}`))
	require.NoError(t, err)

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/a", "POST"))
	assert.True(t, data.FindPermissions("/a", "GET").Skip)
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte(`{`))

	assert.Error(t, err)
}
