package uniuri_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionpanel/optionpanel/internal/uniuri"
)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)

	for range 100 {
		got := uniuri.New()

		require.Len(t, got, uniuri.StdLen)
		assert.False(t, seen[got], "duplicate random string %q", got)

		for _, c := range got {
			assert.True(t, strings.ContainsRune(string(uniuri.StdChars), c))
		}

		seen[got] = true
	}
}

func TestNewLen(t *testing.T) {
	for _, length := range []int{0, 1, 16, 64, 257} {
		assert.Len(t, uniuri.NewLen(length), length)
	}
}

func TestNewLenCharsPanics(t *testing.T) {
	assert.Panics(t, func() { uniuri.NewLenChars(8, []byte("a")) })
	assert.Panics(t, func() { uniuri.NewLenChars(8, make([]byte, 300)) })
}
