package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

// config holds settings from the INI file. Command-line flags override it.
type config struct {
	inputDir string
	workers  int
	verbose  bool
}

// loadConfig reads the [advent] section of the named INI file. If name is
// empty, $HOME/.config/advent.ini is used if it exists.
func loadConfig(name string) (*config, error) {
	cfg := &config{workers: 1}
	explicit := name != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		name = filepath.Join(home, ".config", "advent.ini")
	}
	file, err := ini.LoadFile(name)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	for key, val := range file.Section("advent") {
		switch key {
		case "inputdir":
			cfg.inputDir = expandHome(val)
		case "workers":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("config %s: bad workers value %q", name, val)
			}
			cfg.workers = n
		case "verbose":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("config %s: bad verbose value %q", name, val)
			}
			cfg.verbose = b
		default:
			return nil, fmt.Errorf("config %s: unknown key %q in [advent]", name, key)
		}
	}
	return cfg, nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
