package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/mna/lumen/internal/filetest"
	"github.com/mna/lumen/internal/maincmd"
)

var testUpdateDisasmTests = flag.Bool("test.update-disasm-tests", false, "If set, replace expected disasm test results with actual results.")

func TestDisasm(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "disasm", "in"), filepath.Join("testdata", "disasm", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lumen") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			_ = maincmd.DisasmFile(ctx, stdio, filepath.Join(srcDir, fi.Name()))
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateDisasmTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateDisasmTests)
		})
	}
}
