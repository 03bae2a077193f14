package config_test

import (
	"os"
	"testing"

	"github.com/mna/lumen/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 16384, cfg.MaxStackSlots)
	require.Equal(t, 64, cfg.MaxCallFrames)
	require.False(t, cfg.GCStressTest)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LUMEN_MAX_CALL_FRAMES", "128")
	t.Setenv("LUMEN_GC_STRESS_TEST", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 128, cfg.MaxCallFrames)
	require.True(t, cfg.GCStressTest)

	vmCfg := cfg.VM()
	require.Equal(t, 128, vmCfg.MaxCallFrames)
	require.True(t, vmCfg.GCStressTest)
}

func init() {
	// Guard against stray LUMEN_* vars leaking in from the host environment
	// when running this file in isolation.
	for _, k := range []string{"LUMEN_MAX_STACK_SLOTS", "LUMEN_MAX_CALL_FRAMES", "LUMEN_GC_STRESS_TEST"} {
		_ = os.Unsetenv(k)
	}
}
