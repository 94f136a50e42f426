package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// AssertGolden compares rendered output, with ANSI styling removed, against
// testdata/<goldenName> of the calling package. UPDATE_GOLDEN=1 rewrites the
// file instead.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	plain := ansi.Strip(output)
	path := filepath.Join("testdata", goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create testdata: %v", err)
		}
		if err := os.WriteFile(path, []byte(plain), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", goldenName, err)
	}
	want := string(data)
	if want == plain {
		return
	}
	wantLines, gotLines := strings.Split(want, "\n"), strings.Split(plain, "\n")
	for i := 0; i < len(wantLines) || i < len(gotLines); i++ {
		var w, g string
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if w != g {
			t.Fatalf("%s differs at line %d\nexpected: %q\nactual:   %q\nfull output:\n%s", goldenName, i+1, w, g, plain)
		}
	}
	t.Fatalf("%s differs from output:\n%s", goldenName, plain)
}
