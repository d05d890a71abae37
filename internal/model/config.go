package model

import (
	"fmt"
	"sort"
)

// Param names a recognized configuration parameter. The same names are used
// for CLI flags and config file keys.
type Param string

const (
	ParamBatch      Param = "batch"
	ParamDryRun     Param = "dryRun"
	ParamExclusions Param = "exclusions"
	ParamInputFile  Param = "inputFile"
	ParamProject    Param = "project"
	ParamReview     Param = "review"
	ParamSummary    Param = "summary"
	ParamTimeout    Param = "timeout"
	ParamConfigFile Param = "configFile"
)

// Params lists every recognized parameter in declaration order.
var Params = []Param{
	ParamBatch,
	ParamDryRun,
	ParamExclusions,
	ParamInputFile,
	ParamProject,
	ParamReview,
	ParamSummary,
	ParamTimeout,
	ParamConfigFile,
}

// Kind is the value shape a parameter accepts.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

// KindOf returns the value shape of p.
func KindOf(p Param) Kind {
	switch p {
	case ParamBatch, ParamTimeout:
		return KindInt
	case ParamDryRun, ParamReview:
		return KindBool
	default:
		return KindString
	}
}

// IsParam reports whether name is a recognized parameter.
func IsParam(name string) bool {
	for _, p := range Params {
		if string(p) == name {
			return true
		}
	}
	return false
}

// Values is a partial configuration produced by one resolution stage.
// Values are int, string or bool according to KindOf.
type Values map[Param]any

// Keys returns the set parameters in declaration order.
func (v Values) Keys() []Param {
	var keys []Param
	for _, p := range Params {
		if _, ok := v[p]; ok {
			keys = append(keys, p)
		}
	}
	return keys
}

// Default file names, relative to the working directory.
const (
	DefaultConfigFile = "license-check-config.json"
	DefaultInputFile  = "package-lock.json"
	DefaultExclusions = "license-check-baseline.json"
	DefaultSummary    = "license-check-summary.txt"
	DefaultBatch      = 50
	DefaultTimeout    = 200
)

// Config is the effective configuration of one run.
type Config struct {
	Batch      int
	Timeout    int
	InputFile  string
	Project    string
	Review     bool
	DryRun     bool
	Exclusions string
	Summary    string
	ConfigFile string
}

// Defaults returns the built-in configuration.
func Defaults() Values {
	return Values{
		ParamBatch:      DefaultBatch,
		ParamDryRun:     false,
		ParamExclusions: DefaultExclusions,
		ParamInputFile:  DefaultInputFile,
		ParamProject:    "",
		ParamReview:     false,
		ParamSummary:    DefaultSummary,
		ParamTimeout:    DefaultTimeout,
		ParamConfigFile: DefaultConfigFile,
	}
}

// ConfigFrom builds a Config from fully populated values. Missing or
// mistyped entries leave the zero value.
func ConfigFrom(v Values) Config {
	str := func(p Param) string { s, _ := v[p].(string); return s }
	num := func(p Param) int { n, _ := v[p].(int); return n }
	flag := func(p Param) bool { b, _ := v[p].(bool); return b }

	return Config{
		Batch:      num(ParamBatch),
		Timeout:    num(ParamTimeout),
		InputFile:  str(ParamInputFile),
		Project:    str(ParamProject),
		Review:     flag(ParamReview),
		DryRun:     flag(ParamDryRun),
		Exclusions: str(ParamExclusions),
		Summary:    str(ParamSummary),
		ConfigFile: str(ParamConfigFile),
	}
}

// Values returns c as a fully populated Values map.
func (c Config) Values() Values {
	return Values{
		ParamBatch:      c.Batch,
		ParamDryRun:     c.DryRun,
		ParamExclusions: c.Exclusions,
		ParamInputFile:  c.InputFile,
		ParamProject:    c.Project,
		ParamReview:     c.Review,
		ParamSummary:    c.Summary,
		ParamTimeout:    c.Timeout,
		ParamConfigFile: c.ConfigFile,
	}
}

// Rows renders v as sorted key/value pairs for display.
func (v Values) Rows() [][2]string {
	rows := make([][2]string, 0, len(v))
	for p, val := range v {
		rows = append(rows, [2]string{string(p), fmt.Sprint(val)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return rows
}

// Meta holds the flags that control the wrapper itself and never enter
// Config.
type Meta struct {
	Help    bool
	Version bool
	Update  bool
}
