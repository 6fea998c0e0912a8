package gentests

import (
	"strings"
	"testing"

	"github.com/vic/goski/pkg/combinator"
	"github.com/vic/goski/pkg/ski"
)

// CheckRendering compares the rendering of the named catalog entry against
// the golden text produced by cmd/gentests.
func CheckRendering(t *testing.T, name string, golden string) {
	t.Helper()
	expected := strings.TrimSpace(golden)

	entry, ok := combinator.Lookup(name)
	if !ok {
		t.Fatalf("%s: not in catalog", name)
	}

	actual := ski.Render(entry.Shape)
	if actual != expected {
		t.Errorf("Mismatch in %s:\nExpected: %s\nActual:   %s", name, expected, actual)
	}

	// The golden text must itself be a well-formed rendering: balanced
	// parentheses with one application per pair of leaves.
	depth, leaves, apps := 0, 0, 0
	for _, ch := range expected {
		switch ch {
		case '(':
			depth++
			apps++
		case ')':
			depth--
			if depth < 0 {
				t.Fatalf("%s: unbalanced golden text", name)
			}
		case 'S', 'K', 'I':
			leaves++
		case ' ':
		default:
			t.Fatalf("%s: unexpected %q in golden text", name, ch)
		}
	}
	if depth != 0 || apps != leaves-1 {
		t.Errorf("%s: malformed golden text (%d leaves, %d applications)", name, leaves, apps)
	}
	if leaves != ski.Size(entry.Shape) {
		t.Errorf("%s: golden has %d leaves, term has %d", name, leaves, ski.Size(entry.Shape))
	}

	t.Logf("%s: size=%d depth=%d", name, ski.Size(entry.Shape), ski.Depth(entry.Shape))
}
