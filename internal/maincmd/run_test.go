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

var testUpdateRunTests = flag.Bool("test.update-run-tests", false, "If set, replace expected run test results with actual results.")

func TestRun(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "run", "in"), filepath.Join("testdata", "run", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lumen") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			// error is ignored, we just want it printed to ebuf by the VM
			_ = maincmd.RunFile(ctx, stdio, filepath.Join(srcDir, fi.Name()))
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateRunTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateRunTests)
		})
	}
}
