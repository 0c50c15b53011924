package loxconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
)

//go:embed schema.cue
var schema string

// ConfigDirs lists directories searched for config files, highest priority first
type ConfigDirs []string

func (Module) ConfigDirs() ConfigDirs {
	var dirs ConfigDirs
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs ConfigDirs,
) configs.Loader {

	var paths []string
	filenames := []string{
		"lox.cue",
		".lox.cue",
	}
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
