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

var testUpdateTokenizeTests = flag.Bool("test.update-tokenize-tests", false, "If set, replace expected tokenize test results with actual results.")

func TestTokenize(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "tokenize", "in"), filepath.Join("testdata", "tokenize", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lumen") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			_ = maincmd.TokenizeFile(ctx, stdio, filepath.Join(srcDir, fi.Name()))
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateTokenizeTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateTokenizeTests)
		})
	}
}
