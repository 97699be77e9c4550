package config

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	var cfg Config
	parser, err := kong.New(&cfg)
	require.NoError(t, err)
	_, err = parser.Parse(args)
	return cfg, err
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := parse(t, "--jwt-secret=s3cret")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, StoreDynamoDB, cfg.Store)
	require.Equal(t, "unique_constraints", cfg.DynamoDB.ConstraintsTable)
	require.Equal(t, "Asia/Dhaka", cfg.Location().String())
	require.False(t, cfg.Tracing.Enabled)
}

func TestConfig_Environment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("STORE_TYPE", "sqlite")
	t.Setenv("DATABASE_URL", "file:landlord.db")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := parse(t)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.JWTSecret)
	require.Equal(t, StoreSQLite, cfg.Store)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("secret is required", func(t *testing.T) {
		_, err := parse(t)
		require.Error(t, err)
	})

	t.Run("sql stores need a dsn", func(t *testing.T) {
		_, err := parse(t, "--jwt-secret=x", "--store=postgres")
		require.ErrorContains(t, err, "DSN")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := parse(t, "--jwt-secret=x", "--timezone=Mars/Olympus")
		require.ErrorContains(t, err, "timezone")
	})
}
