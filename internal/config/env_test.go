package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("KAFKA_BROKERS", "")

	env := LoadEnv()
	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, 15*time.Second, env.RequestTimeout)
	assert.Empty(t, env.KafkaBrokers)
	assert.Equal(t, "travel.orders", env.KafkaTopic)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("REQUEST_TIMEOUT", "12")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SMTP_PORT", "not-a-number")

	env := LoadEnv()
	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, 12*time.Second, env.RequestTimeout)
	assert.Equal(t, 90*time.Second, env.CacheTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, env.KafkaBrokers)
	assert.Equal(t, 587, env.SMTPPort)
}

func TestDSN(t *testing.T) {
	env := Env{DBUser: "app", DBPassword: "pw", DBHost: "db:3306", DBName: "travel"}
	assert.Contains(t, env.DSN(), "app:pw@tcp(db:3306)/travel?parseTime=true")

	env.DBDSN = "custom"
	assert.Equal(t, "custom", env.DSN())
}

func TestDSNForcesFoundRowsOnCustomDSN(t *testing.T) {
	env := Env{DBDSN: "app:pw@tcp(db:3306)/travel?charset=utf8mb4"}

	dsn := env.DSN()
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.True(t, strings.HasPrefix(dsn, "app:pw@tcp(db:3306)/travel?"))
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		env     Env
		wantErr string
	}{
		"missing secret":       {env: Env{}, wantErr: "JWT_SECRET"},
		"short secret":         {env: Env{JWTSecret: "change-me"}, wantErr: "JWT_SECRET"},
		"release needs origin": {env: Env{JWTSecret: "0123456789abcdef", GinMode: "release"}, wantErr: "CORS_ALLOWED_ORIGINS"},
		"debug without origin": {env: Env{JWTSecret: "0123456789abcdef", GinMode: "debug"}},
		"release configured": {env: Env{
			JWTSecret:      "0123456789abcdef",
			GinMode:        "release",
			AllowedOrigins: []string{"https://admin.example.com"},
		}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.env.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadEnvHasNoDefaultSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	env := LoadEnv()
	assert.Empty(t, env.JWTSecret)
	assert.Error(t, env.Validate())
}
