// Package config binds the VM's resource limits from the environment, so
// the lumen binary is tunable without recompiling (e.g. in CI sandboxes
// that want a smaller call-stack cap).
package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/mna/lumen/lang/vm"
)

// Config mirrors vm.Config with environment-variable bindings under the
// LUMEN_ prefix.
type Config struct {
	MaxStackSlots int  `env:"MAX_STACK_SLOTS" envDefault:"16384"`
	MaxCallFrames int  `env:"MAX_CALL_FRAMES" envDefault:"64"`
	GCStressTest  bool `env:"GC_STRESS_TEST" envDefault:"false"`
}

// Load reads Config from the environment, starting from the same defaults
// as vm.DefaultConfig.
func Load() (Config, error) {
	cfg := Config{
		MaxStackSlots: vm.DefaultConfig().MaxStackSlots,
		MaxCallFrames: vm.DefaultConfig().MaxCallFrames,
	}
	if err := env.Parse(&cfg, env.Options{Prefix: "LUMEN_"}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// VM converts Config to the vm.Config the VM constructor expects.
func (c Config) VM() vm.Config {
	return vm.Config{
		MaxStackSlots: c.MaxStackSlots,
		MaxCallFrames: c.MaxCallFrames,
		GCStressTest:  c.GCStressTest,
	}
}
