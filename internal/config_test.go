package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testHash = "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"

func setRequired(t *testing.T) {
	t.Setenv("AUTH_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("HOST_ID", "desktop")
	t.Setenv("HOST_PASSWORD_HASH", testHash)
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	setRequired(t)

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal(1000, config.BufferSize)
	req.Equal(5*time.Second, config.SearchRadiusTimeout)
	req.Equal("0.0.0.0:8080", config.GrpcAddress())
	req.Equal("0.0.0.0:8081", config.HttpAddress())
	req.False(config.DemoSeed)
}

func TestLoadConfig_Rejects(t *testing.T) {
	for _, tc := range []struct{ name, key, value string }{
		{"short secret", "AUTH_SECRET", "short"},
		{"plain password", "HOST_PASSWORD_HASH", "hunter2"},
		{"same ports", "HTTP_PORT", "8080"},
		{"unknown level", "LOG_LEVEL", "TRACE"},
		{"empty buffer", "BUFFER_SIZE", "0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.value)

			_, err := LoadConfig()

			require.Error(t, err)
		})
	}
}

func TestLoadConfig_Missing_Required(t *testing.T) {
	t.Setenv("HOST_ID", "desktop")
	t.Setenv("HOST_PASSWORD_HASH", testHash)
	t.Setenv("AUTH_SECRET", "")

	_, err := LoadConfig()

	require.Error(t, err)
}
