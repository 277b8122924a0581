package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults_UnmarshalsDurations(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "memory", cfg.CartStore)
	assert.Equal(t, "memory", cfg.AIContextStore)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "static", cfg.CatalogSource)
	assert.Equal(t, 1500*time.Millisecond, cfg.ReminderDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.PaymentDelay)
	assert.Equal(t, 3*time.Second, cfg.AmbulanceSearchDelay)
	assert.Equal(t, 30*time.Minute, cfg.AIContextTTL)
	assert.Equal(t, "gemini-flash-lite-latest", cfg.GeminiModel)
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
	AppConfig.Env = "development"
	assert.False(t, IsProduction())
}
