package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{"jwt_token", "abc.def.ghi", "agreement_id", "a-1", "dangling"})
	require.Equal(t, []interface{}{"jwt_token", "[REDACTED]", "agreement_id", "a-1", "dangling"}, out)
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		l, err := New(mode)
		require.NoError(t, err)
		require.NotNil(t, l.With("component", "test"))
	}
	require.NotNil(t, OrNop(nil).SugaredLogger)
}
