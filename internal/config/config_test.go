package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBaseConfig() *Config {
	return &Config{
		AppName:    "Goalboard",
		AppEnv:     "development",
		AppURL:     "http://localhost:8090",
		Port:       "8090",
		Timezone:   "Asia/Seoul",
		JWTSecret:  "dev-secret",
		GuestStore: GuestStoreMemory,
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validBaseConfig().Validate())
}

func TestConfig_Validate_InvalidAppEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.AppEnv = "staging"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV")
}

func TestConfig_Validate_UnknownTimezone(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Timezone = "Mars/Olympus"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_TIMEZONE")
}

func TestConfig_Validate_S3GuestStoreNeedsBucket(t *testing.T) {
	cfg := validBaseConfig()
	cfg.GuestStore = GuestStoreS3

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")

	cfg.S3Bucket = "guests"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_ProductionRequirements(t *testing.T) {
	cfg := validBaseConfig()
	cfg.AppEnv = "production"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAKAO_CLIENT_ID")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestConfig_Validate_ReportsAllErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Port = ""
	cfg.JWTSecret = ""
	cfg.GuestStore = "disk"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "GUEST_STORE")
}

func TestConfig_Location(t *testing.T) {
	cfg := validBaseConfig()
	assert.Equal(t, "Asia/Seoul", cfg.Location().String())

	cfg.Timezone = "nowhere"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestConfig_Sanitized_DropsSecrets(t *testing.T) {
	cfg := validBaseConfig()
	cfg.KakaoClientSecret = "kakao-secret"
	cfg.S3SecretKey = "s3-secret"
	cfg.DBConnection = "postgres://user:pass@db/goalboard"

	safe := cfg.Sanitized()

	assert.Empty(t, safe.JWTSecret)
	assert.Empty(t, safe.KakaoClientSecret)
	assert.Empty(t, safe.S3SecretKey)
	assert.Empty(t, safe.DBConnection)
	assert.Equal(t, cfg.AppName, safe.AppName)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("GB_TEST_LIST", " http://a.test , ,http://b.test")
	t.Setenv("GB_TEST_DURATION", "bogus")
	t.Setenv("GB_TEST_BOOL", "true")

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, envList("GB_TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, envList("GB_TEST_MISSING", []string{"x"}))
	assert.Equal(t, time.Minute, envDuration("GB_TEST_DURATION", time.Minute))
	assert.True(t, envBool("GB_TEST_BOOL", false))
	assert.Equal(t, "fallback", envString("GB_TEST_MISSING", "fallback"))
}
