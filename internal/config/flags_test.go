package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_SetValid(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:3000"))
	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 3000, a.Port)
	assert.Equal(t, "localhost:3000", a.String())
}

func TestNetAddress_SetIP(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("127.0.0.1:8080"))
	assert.Equal(t, "127.0.0.1:8080", a.String())
}

func TestNetAddress_SetEmptyHost(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set(":3000"))
	assert.Equal(t, ":3000", a.String())
}

func TestNetAddress_SetInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no port", "localhost"},
		{"bad port", "localhost:http"},
		{"zero port", "localhost:0"},
		{"bad host", "not an ip:80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(tt.input))
		})
	}
}

func TestNetAddress_StringZero(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
