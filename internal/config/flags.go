package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"dashcheck/internal/model"
)

// Warnf reports a non-fatal problem.
type Warnf func(format string, args ...any)

// NewFlagSet declares every flag the wrapper recognizes. The flag set is a
// schema: ParseArgs uses it to validate tokens and Usage to document them.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("dashcheck", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.Int(string(model.ParamBatch), model.DefaultBatch, "Number of dependencies sent per scanner request")
	fs.Bool(string(model.ParamDryRun), false, "Print the scanner command instead of running it")
	fs.String(string(model.ParamExclusions), model.DefaultExclusions, "Baseline of reviewed restricted dependencies (JSON)")
	fs.String(string(model.ParamInputFile), model.DefaultInputFile, "Dependency manifest passed to the scanner")
	fs.String(string(model.ParamProject), "", "Eclipse project id used for review requests")
	fs.Bool(string(model.ParamReview), false, "Open review requests for restricted dependencies (needs DASH_TOKEN)")
	fs.String(string(model.ParamSummary), model.DefaultSummary, "Summary file written by the scanner")
	fs.Int(string(model.ParamTimeout), model.DefaultTimeout, "Scanner timeout in seconds")
	fs.String(string(model.ParamConfigFile), model.DefaultConfigFile, "Config file (JSON, or YAML by extension)")

	fs.BoolP("help", "h", false, "Show this help message")
	fs.Bool("version", false, "Print version information")
	fs.Bool("update", false, "Check for a newer Dash license tool release")
	return fs
}

// Usage writes the help text.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: dashcheck [options]\n\n")
	fmt.Fprintf(w, "dashcheck runs the Eclipse Dash license tool over a lock file and fails\n")
	fmt.Fprintf(w, "when a restricted dependency is missing from the baseline.\n\n")
	fmt.Fprintf(w, "Options (value flags take the --name=value form):\n")
	fmt.Fprint(w, NewFlagSet().FlagUsages())
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  DASH_TOKEN          Token passed to the scanner; required for --review\n")
	fmt.Fprintf(w, "  DASH_LICENSES_JAR   Location of the scanner jar\n")
	fmt.Fprintf(w, "  NO_COLOR            Disable colored output\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  dashcheck                               # check package-lock.json\n")
	fmt.Fprintf(w, "  dashcheck --inputFile=yarn.lock --dryRun\n")
	fmt.Fprintf(w, "  dashcheck --review --project=ecd.theia  # file review requests\n")
}

// ParseArgs extracts recognized flags from args. Tokens that match no
// declared flag shape are reported through warn and skipped.
func ParseArgs(args []string, warn Warnf) (model.Values, model.Meta) {
	fs := NewFlagSet()

	for _, tok := range args {
		if err := setToken(fs, tok); err != nil {
			warn("Unable to parse argument %q: %v", tok, err)
		}
	}

	values := model.Values{}
	for _, p := range model.Params {
		f := fs.Lookup(string(p))
		if f == nil || !f.Changed {
			continue
		}
		switch model.KindOf(p) {
		case model.KindInt:
			n, _ := fs.GetInt(string(p))
			values[p] = n
		case model.KindBool:
			values[p] = true
		default:
			s, _ := fs.GetString(string(p))
			values[p] = s
		}
	}

	meta := model.Meta{
		Help:    fs.Changed("help"),
		Version: fs.Changed("version"),
		Update:  fs.Changed("update"),
	}
	return values, meta
}

// ScanMeta reports the meta flags in args without printing any warnings.
func ScanMeta(args []string) model.Meta {
	_, meta := ParseArgs(args, func(string, ...any) {})
	return meta
}

func setToken(fs *pflag.FlagSet, tok string) error {
	if tok == "-h" {
		return fs.Set("help", "true")
	}
	if !strings.HasPrefix(tok, "--") {
		return errors.New("not a --flag")
	}

	name, value, hasValue := strings.Cut(strings.TrimPrefix(tok, "--"), "=")
	f := fs.Lookup(name)
	if f == nil {
		return fmt.Errorf("unknown flag --%s", name)
	}

	if f.Value.Type() == "bool" {
		if hasValue {
			return fmt.Errorf("--%s takes no value", name)
		}
		return fs.Set(name, "true")
	}

	if !hasValue || value == "" {
		return fmt.Errorf("--%s needs a value (--%s=...)", name, name)
	}
	if f.Value.Type() == "int" {
		n, ok := parseCount(value)
		if !ok {
			return fmt.Errorf("--%s needs a whole number between 1 and %d", name, maxCount)
		}
		value = strconv.Itoa(n)
	}
	if err := fs.Set(name, value); err != nil {
		return fmt.Errorf("invalid value for --%s", name)
	}
	return nil
}
