package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config is parsed by kong from flags and the environment. Values from a .env
// file are loaded into the environment before parsing.
type Config struct {
	Listen      string   `help:"HTTP server listen address" default:":8080" env:"LISTEN_ADDR"`
	CORSOrigins []string `help:"allowed CORS origins" default:"http://localhost:5173" env:"CORS_ORIGINS"`
	Timezone    string   `help:"IANA timezone used for today and reporting windows" default:"Asia/Dhaka" env:"APP_TIMEZONE"`
	LogMode     string   `help:"log mode (dev or prod)" default:"dev" env:"LOG_MODE" enum:"dev,prod"`

	JWTSecret string `help:"HMAC secret used to verify bearer tokens" env:"JWT_SECRET"`
	JWTIssuer string `help:"expected token issuer (optional)" default:"" env:"JWT_ISSUER"`

	Store    string        `help:"store type (dynamodb, postgres or sqlite)" default:"dynamodb" env:"STORE_TYPE" enum:"dynamodb,postgres,sqlite"`
	DynamoDB DynamoDBFlags `embed:"" prefix:"dynamodb-"`
	SQL      SQLFlags      `embed:"" prefix:"sql-"`
	Tracing  TracingFlags  `embed:"" prefix:"tracing-"`
}

type DynamoDBFlags struct {
	Region          string `help:"AWS region" default:"us-east-1" env:"AWS_REGION"`
	Endpoint        string `help:"DynamoDB endpoint override (for DynamoDB Local)" default:"" env:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `help:"static access key id" default:"local" env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `help:"static secret access key" default:"local" env:"AWS_SECRET_ACCESS_KEY"`

	AgreementsTable  string `help:"rental agreements table" default:"rental_agreements" env:"AGREEMENTS_TABLE"`
	PaymentsTable    string `help:"payments table" default:"payments" env:"PAYMENTS_TABLE"`
	BuildingsTable   string `help:"buildings table" default:"buildings" env:"BUILDINGS_TABLE"`
	UnitsTable       string `help:"units table" default:"units" env:"UNITS_TABLE"`
	TenantsTable     string `help:"tenants table" default:"tenants" env:"TENANTS_TABLE"`
	ConstraintsTable string `help:"uniqueness guard table" default:"unique_constraints" env:"CONSTRAINTS_TABLE"`
}

type SQLFlags struct {
	DSN          string        `help:"database DSN (postgres URL or sqlite file)" default:"" env:"DATABASE_URL"`
	AutoMigrate  bool          `help:"run migrations on startup" default:"false" env:"DATABASE_AUTO_MIGRATE"`
	MaxOpenConns int           `help:"maximum open connections" default:"20" env:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns int           `help:"maximum idle connections" default:"5" env:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLife  time.Duration `help:"maximum connection lifetime" default:"1h" env:"DATABASE_CONN_MAX_LIFETIME"`
}

type TracingFlags struct {
	Enabled     bool    `help:"enable OpenTelemetry tracing" default:"false" env:"OTEL_ENABLED"`
	Endpoint    string  `help:"OTLP HTTP endpoint; stdout exporter when empty" default:"" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool    `help:"disable TLS for the OTLP exporter" default:"false" env:"OTEL_EXPORTER_OTLP_INSECURE"`
	SampleRatio float64 `help:"trace sampling ratio" default:"0.1" env:"OTEL_SAMPLER_RATIO"`
	ServiceName string  `help:"service name reported to the collector" default:"landlord-billing" env:"OTEL_SERVICE_NAME"`
}

// Validate is called by kong after parsing.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT secret is required (--jwt-secret or JWT_SECRET)")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.Store != StoreDynamoDB && c.SQL.DSN == "" {
		return errors.New("database DSN is required for SQL stores (--sql-dsn or DATABASE_URL)")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.New("tracing sample ratio must be between 0 and 1")
	}
	return nil
}

// Location returns the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
