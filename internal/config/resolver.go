// Package config resolves the effective configuration from built-in
// defaults, an optional config file and CLI flags.
package config

import (
	"path/filepath"
	"strings"

	"dashcheck/internal/model"
)

// Logger receives the resolver's diagnostics.
type Logger interface {
	Warnf(format string, args ...any)
	Table(title string, rows [][2]string)
}

// Stages holds the partial configuration seen at each resolution step.
type Stages struct {
	Defaults model.Values
	File     model.Values
	CLI      model.Values
}

// ConfigFilePath returns the --configFile value as an absolute path, or the
// default file name when the flag is absent. When the flag repeats, the last
// one wins, as for every other flag.
func ConfigFilePath(args []string) string {
	const prefix = "--" + string(model.ParamConfigFile) + "="
	path := ""
	for _, tok := range args {
		if v, ok := strings.CutPrefix(tok, prefix); ok && v != "" {
			path = v
		}
	}
	if path == "" {
		return model.DefaultConfigFile
	}
	abs, err := filepath.Abs(model.ExpandTilde(path))
	if err != nil {
		return path
	}
	return abs
}

// Resolve merges defaults, the config file and CLI flags with precedence
// CLI > file > default, printing each stage to log.
// Meta flags are ignored here; see ScanMeta.
func Resolve(args []string, log Logger) model.Config {
	cfg, _ := resolve(args, log)
	return cfg
}

func resolve(args []string, log Logger) (model.Config, Stages) {
	path := ConfigFilePath(args)

	stages := Stages{Defaults: model.Defaults()}
	stages.File = LoadFile(path, log.Warnf)
	stages.CLI, _ = ParseArgs(args, log.Warnf)

	log.Table("Default configuration", stages.Defaults.Rows())
	log.Table("Config file "+path, stages.File.Rows())
	log.Table("Command line", stages.CLI.Rows())

	merged := model.Values{}
	for _, p := range model.Params {
		merged[p] = stages.Defaults[p]
		if v, ok := stages.File[p]; ok {
			merged[p] = v
		}
		if v, ok := stages.CLI[p]; ok {
			merged[p] = v
		}
	}
	merged[model.ParamConfigFile] = path

	cfg := model.ConfigFrom(merged)
	cfg.InputFile = model.ExpandTilde(cfg.InputFile)
	cfg.Exclusions = model.ExpandTilde(cfg.Exclusions)
	cfg.Summary = model.ExpandTilde(cfg.Summary)

	log.Table("Effective configuration", cfg.Values().Rows())
	return cfg, stages
}
