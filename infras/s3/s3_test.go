package s3_test

import (
	"flightbook/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/profiles/u-1.png", s3.PublicURL("https://cdn.example.com/", "profiles/u-1.png"))
}

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		url      string
		expected string
	}{
		{name: "own object", domain: "https://cdn.example.com", url: "https://cdn.example.com/profiles/u-1.png", expected: "profiles/u-1.png"},
		{name: "foreign url", domain: "https://cdn.example.com", url: "https://gravatar.com/avatar/1", expected: ""},
		{name: "no domain configured", domain: "", url: "/profiles/u-1.png", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.ObjectKeyFromURL(tt.domain, tt.url))
		})
	}
}
