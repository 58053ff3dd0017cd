// Package test provides small helpers shared by tests across the module.
package test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Close(t *testing.T, c io.Closer) {
	assert.NoError(t, c.Close())
}

// WithTestDir runs f with a temporary directory that is kept around for
// inspection when the test fails or panics.
func WithTestDir(t *testing.T, f func(dir string)) {
	dir, err := os.MkdirTemp("", strings.ReplaceAll(t.Name(), "/", "_"))
	assert.NoError(t, err)
	defer func() {
		if r := recover(); r != nil {
			t.Log("Test directory available at", dir)
			panic(r)
		} else if t.Failed() {
			t.Log("Test directory available at", dir)
		} else {
			os.RemoveAll(dir)
		}
	}()

	f(dir)
}
