package gen

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Solar-Falcon/raylib-ffigen/loader"
	"github.com/Solar-Falcon/raylib-ffigen/model"
)

// loadTestAPI loads a raylib_api.json fixture from testdata into a Context.
func loadTestAPI(t *testing.T, name string) *Context {
	t.Helper()
	path := filepath.Join("..", "testdata", name)
	api, err := loader.LoadAPI(path)
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}
	return NewContext(api, model.DefaultOptions(), t.TempDir(), path)
}

// collapse squeezes runs of whitespace so gofmt alignment does not matter.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
