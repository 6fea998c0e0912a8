package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/goski/pkg/combinator"
	"github.com/vic/goski/pkg/ski"
)

const testTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/vic/goski/cmd/gentests/helper"
//go:embed term.ski
var term string
func Test_%s_Rendering(t *testing.T) {
	gentests.CheckRendering(t, "%s", term)
}
`

func main() {
	baseDir := "cmd/gentests/generated"
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", baseDir, err)
		os.Exit(1)
	}

	entries := combinator.Catalog()
	for i, e := range entries {
		caseName := fmt.Sprintf("%03d_%s", i+1, e.Name)
		dir := filepath.Join(baseDir, caseName)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
			os.Exit(1)
		}

		testGo := fmt.Sprintf(testTemplate, caseName, e.Name)

		if err := os.WriteFile(filepath.Join(dir, "term.ski"), []byte(ski.Render(e.Shape)+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing golden for %s: %v\n", e.Name, err)
			os.Exit(1)
		}
		if err := os.WriteFile(filepath.Join(dir, "rendering_test.go"), []byte(testGo), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing test for %s: %v\n", e.Name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generated %d tests\n", len(entries))
}
