package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/lumen/internal/config"
	"github.com/mna/lumen/lang/value"
	"github.com/mna/lumen/lang/vm"
)

// Run compiles and executes args[0], lumen's core entry point, wrapped for
// the CLI driver.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFile(ctx, stdio, args[0])
}

func RunFile(_ context.Context, stdio mainer.Stdio, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	m := vm.New(cfg.VM(), value.NewHeap(), stdio.Stdout, stdio.Stderr)
	m.DefineClock()

	switch result := m.Interpret(string(src)); result {
	case vm.OK:
		return nil
	default:
		return fmt.Errorf("%s: %s", file, result)
	}
}
