// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_FLAG", "false")
	assert.False(t, getEnvAsBool("TEST_BOOL_FLAG", true))

	t.Setenv("TEST_BOOL_FLAG", "TRUE")
	assert.True(t, getEnvAsBool("TEST_BOOL_FLAG", false))

	t.Setenv("TEST_BOOL_FLAG", "not-a-bool")
	assert.True(t, getEnvAsBool("TEST_BOOL_FLAG", true))

	assert.True(t, getEnvAsBool("TEST_BOOL_FLAG_UNSET", true))
	assert.False(t, getEnvAsBool("TEST_BOOL_FLAG_UNSET", false))
}

func TestLoadPaymentToggle(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Payment.Enabled)

	t.Setenv("PAYMENT_ENABLED", "false")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.Payment.Enabled)
}
