package bficonfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/modes"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

var filenames = []string{
	"bfi.cue",
	".bfi.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs modes.ConfigDirs,
) configs.Loader {

	// explicit files first
	paths := append([]string(nil), *configFiles...)

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
