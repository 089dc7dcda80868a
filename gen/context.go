package gen

import (
	"github.com/Solar-Falcon/raylib-ffigen/model"
)

// Context holds everything a generator needs to produce output.
type Context struct {
	API        *model.API
	Options    *model.Options
	OutputDir  string
	APIPath    string // Path to the raylib_api.json the API was loaded from
	ConfigPath string // Options file, empty when running on defaults
}

// NewContext creates a new generation context. A nil opts selects the defaults.
func NewContext(api *model.API, opts *model.Options, outputDir string, apiPath string) *Context {
	if opts == nil {
		opts = model.DefaultOptions()
	}
	return &Context{
		API:       api,
		Options:   opts,
		OutputDir: outputDir,
		APIPath:   apiPath,
	}
}
