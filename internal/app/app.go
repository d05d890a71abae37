// Package app runs one license check: scan the manifest, read the summary
// and reconcile restricted dependencies against the baseline.
package app

import (
	"fmt"
	"os"
	"strings"

	"dashcheck/internal/baseline"
	"dashcheck/internal/console"
	"dashcheck/internal/model"
	"dashcheck/internal/scanner"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitScannerError = scanner.InternalErrorCode
)

// ExitError ends the run with Code after printing Message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func failf(code int, format string, args ...any) error {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// App holds the collaborators of a run.
type App struct {
	Console *console.Console
	Runner  scanner.Runner
	Jar     string
	Getenv  func(key string) string
}

// New returns an App that runs real subprocesses.
func New(c *console.Console) *App {
	return &App{
		Console: c,
		Runner:  scanner.ExecRunner{},
		Jar:     scanner.JarPath(),
		Getenv:  os.Getenv,
	}
}

// Run executes the check for cfg. A failed check is returned as *ExitError.
func (a *App) Run(cfg model.Config) error {
	if !model.FileExists(cfg.InputFile) {
		return failf(ExitFailure, "Input file %s not found", cfg.InputFile)
	}

	review := a.reviewMode(cfg)

	if cfg.DryRun {
		a.Console.Infof("%s Dry run, the scanner would be called as:\n  %s", model.IconInfo, scanner.ScanCommand(a.Jar, cfg, review))
		if !model.FileExists(cfg.Summary) {
			a.Console.Infof("No summary at %s, nothing to check", cfg.Summary)
			return nil
		}
		a.Console.Infof("Checking existing summary %s", cfg.Summary)
	} else if err := a.scan(cfg, review); err != nil {
		return err
	}

	return a.check(cfg)
}

// reviewMode decides whether review arguments are passed. Review needs both
// the scanner token and a project id.
func (a *App) reviewMode(cfg model.Config) bool {
	if !cfg.Review {
		return false
	}
	if a.Getenv(scanner.TokenEnv) == "" {
		a.Console.Warnf("Review mode needs %s in the environment; running without review", scanner.TokenEnv)
		return false
	}
	if strings.TrimSpace(cfg.Project) == "" {
		a.Console.Warnf("Review mode needs --project; running without review")
		return false
	}
	a.Console.Infof("%s Review mode enabled for project %s", model.IconInfo, cfg.Project)
	return true
}

func (a *App) scan(cfg model.Config, review bool) error {
	if _, err := scanner.EnsureJar(a.Runner, a.Jar, a.Console.Spin); err != nil {
		return failf(ExitFailure, "%v", err)
	}

	moved, err := scanner.BackupSummary(cfg.Summary)
	if err != nil {
		return failf(ExitFailure, "%v", err)
	}
	if moved {
		a.Console.Infof("Moved previous summary to %s.old", cfg.Summary)
	}

	cmd := scanner.ScanCommand(a.Jar, cfg, review)
	a.Console.Infof("%s Running %s", model.IconInfo, cmd)

	status, err := a.Runner.Run(cmd)
	if err != nil {
		return failf(ExitFailure, "%v", err)
	}
	switch {
	case status.Signal != "":
		a.Console.Warnf("%s", status)
	case status.Code == scanner.InternalErrorCode:
		return failf(ExitScannerError, "The Dash license tool reported an internal error: %s", status)
	case status.Code != 0:
		a.Console.Warnf("%s; checking the summary", status)
	}

	if !model.FileExists(cfg.Summary) {
		return failf(ExitFailure, "The Dash license tool did not write a summary to %s", cfg.Summary)
	}
	return nil
}

func (a *App) check(cfg model.Config) error {
	entries, err := scanner.ReadSummary(cfg.Summary)
	if err != nil {
		return failf(ExitFailure, "%v", err)
	}

	restricted := baseline.Restricted(entries)
	if len(restricted) == 0 {
		a.Console.Successf("No restricted dependencies in %s (%d checked)", cfg.Summary, len(entries))
		return nil
	}

	var exclusions model.Exclusions
	if model.FileExists(cfg.Exclusions) {
		exclusions, err = baseline.Load(cfg.Exclusions)
		if err != nil {
			return failf(ExitFailure, "%v", err)
		}
	} else {
		a.Console.Warnf("Exclusions file %s not found; every restricted dependency is unhandled", cfg.Exclusions)
	}

	res := baseline.Reconcile(restricted, exclusions)
	for _, id := range res.Unmatched {
		a.Console.Warnf("Exclusion %s matched no restricted dependency and may be stale", id)
	}
	if len(res.Excluded) > 0 {
		a.Console.Infof("%d restricted dependencies are covered by %s", len(res.Excluded), cfg.Exclusions)
	}

	if !res.Passed() {
		a.Console.Errorf("Found %d unhandled restricted dependencies:", len(res.Unhandled))
		for _, e := range res.Unhandled {
			a.Console.Errorf("  %s (%s)", e.Dependency, e.License)
		}
		return failf(ExitFailure, "Review the dependencies above or add them to %s", cfg.Exclusions)
	}

	a.Console.Successf("All %d restricted dependencies are in the baseline", len(res.Excluded))
	return nil
}
