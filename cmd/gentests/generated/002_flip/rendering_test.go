package gentests

import _ "embed"
import "testing"
import "github.com/vic/goski/cmd/gentests/helper"

//go:embed term.ski
var term string

func Test_002_flip_Rendering(t *testing.T) {
	gentests.CheckRendering(t, "flip", term)
}
