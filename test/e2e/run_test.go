package e2e

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/blaze/internal/shell"
	"github.com/you-not-fish/blaze/internal/syntax"
)

var update = flag.Bool("update", false, "rewrite .golden files")

// TestE2E parses every .blz file in testdata/ and compares the printed
// diagnostics and summary against the matching .golden file.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.blz")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .blz test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".blz")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

func runE2ETest(t *testing.T, blzFile string) {
	t.Helper()

	src, err := os.ReadFile(blzFile)
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}

	got := analyze(filepath.Base(blzFile), string(src))

	goldenFile := strings.TrimSuffix(blzFile, ".blz") + ".golden"
	if *update {
		if err := os.WriteFile(goldenFile, []byte(got), 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}

	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	if want := string(expected); got != want {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// analyze runs the parser over src the way the CLI does and returns what
// it would print.
func analyze(source, src string) string {
	styles := shell.NewStyles(false)

	var b strings.Builder
	sink := syntax.SinkFunc(func(d syntax.Diagnostic) {
		b.WriteString(styles.Diagnostic(d))
		b.WriteByte('\n')
	})

	res := shell.NewRunner(source, sink, nil).Parse(src)
	if s := res.Summary(); s != "" {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}
