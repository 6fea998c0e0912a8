package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/goski/pkg/ski"
)

func TestCatalogNames(t *testing.T) {
	assert.Equal(t, []string{
		"comp", "flip", "rev", "rotr", "rotv", "join",
		"true", "false", "not", "and", "or", "xor",
	}, Names())
}

func TestCatalogIsACopy(t *testing.T) {
	c := Catalog()
	c[0].Name = "changed"
	assert.Equal(t, "comp", Names()[0])
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("comp")
	require.True(t, ok)
	assert.Equal(t, "((S (K S)) K)", ski.Render(e.Shape))

	_, ok = Lookup("fix")
	assert.False(t, ok)
}

func TestCatalogSizes(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		depth int
	}{
		{"comp", 4, 3},
		{"flip", 10, 8},
		{"rev", 11, 9},
		{"rotr", 20, 9},
		{"rotv", 25, 10},
		{"join", 12, 10},
		{"true", 1, 0},
		{"false", 2, 1},
		{"not", 10, 8},
		{"and", 22, 13},
		{"or", 12, 10},
		{"xor", 40, 12},
	}
	for _, tc := range cases {
		e, ok := Lookup(tc.name)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.size, ski.Size(e.Shape), tc.name)
		assert.Equal(t, tc.depth, ski.Depth(e.Shape), tc.name)
	}
}

func TestNotIsFlip(t *testing.T) {
	assert.True(t, ski.Equal(Not[int](), Flip[string, bool, int]()))
	assert.True(t, ski.Equal(True[int](), ski.K[int, int]()))
}
