// Package scanner drives the Eclipse Dash license tool: it locates or
// downloads the jar, runs it as a subprocess and reads its summary file.
package scanner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dashcheck/internal/model"
)

const (
	// DownloadURL resolves to the latest published jar.
	DownloadURL = "https://repo.eclipse.org/service/local/artifact/maven/redirect?r=dash-licenses&g=org.eclipse.dash&a=org.eclipse.dash.licenses&v=LATEST"

	// TokenEnv holds the credential the scanner uses in review mode. The
	// wrapper only checks that it is set.
	TokenEnv = "DASH_TOKEN"

	// JarEnv overrides the jar location.
	JarEnv = "DASH_LICENSES_JAR"

	// InternalErrorCode is the exit code the scanner uses for its own failures.
	InternalErrorCode = 127

	jarName = "dash-licenses.jar"
)

// JarPath returns where the scanner jar is kept.
func JarPath() string {
	if p := os.Getenv(JarEnv); p != "" {
		return model.ExpandTilde(p)
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".dashcheck", jarName)
	}
	return filepath.Join(dir, "dashcheck", jarName)
}

// Args builds the scanner's arguments for cfg. Review arguments are added
// only when review is true; the caller decides whether review is allowed.
func Args(jar string, cfg model.Config, review bool) []string {
	args := []string{
		"-jar", jar,
		cfg.InputFile,
		"-batch", strconv.Itoa(cfg.Batch),
		"-timeout", strconv.Itoa(cfg.Timeout),
		"-summary", cfg.Summary,
	}
	if review {
		args = append(args, "-review", "-project", cfg.Project)
	}
	return args
}

// ScanCommand returns the java invocation for cfg with stdio inherited from
// the wrapper.
func ScanCommand(jar string, cfg model.Config, review bool) Command {
	return Command{
		Name:   "java",
		Args:   Args(jar, cfg, review),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// DownloadCommand returns the curl invocation that fetches url into dest.
func DownloadCommand(url, dest string) Command {
	return Command{
		Name: "curl",
		Args: []string{"-L", "--fail", "--silent", "--show-error", "-o", dest, url},
	}
}

// Spinner shows progress while work runs.
type Spinner func(title string, work func() error) error

// EnsureJar downloads the jar to jar when it is not already present. It
// reports whether a download happened.
func EnsureJar(r Runner, jar string, spin Spinner) (bool, error) {
	if model.FileExists(jar) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(jar), 0o755); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(jar), err)
	}

	part := jar + ".part"
	var output bytes.Buffer
	cmd := DownloadCommand(DownloadURL, part)
	cmd.Stdout = &output
	cmd.Stderr = &output

	var status Status
	err := spin("Downloading Dash license tool to "+jar, func() error {
		var runErr error
		status, runErr = r.Run(cmd)
		return runErr
	})
	if err != nil {
		os.Remove(part)
		return false, err
	}
	if !status.Success() {
		os.Remove(part)
		return false, fmt.Errorf("failed to download the Dash license tool: %s: %s", status, strings.TrimSpace(output.String()))
	}
	if err := os.Rename(part, jar); err != nil {
		return false, fmt.Errorf("installing %s: %w", jar, err)
	}
	return true, nil
}

// BackupSummary renames an existing summary to <path>.old, replacing any
// previous backup. It reports whether a file was moved.
func BackupSummary(path string) (bool, error) {
	if !model.FileExists(path) {
		return false, nil
	}
	if err := os.Rename(path, path+".old"); err != nil {
		return false, fmt.Errorf("backing up summary %s: %w", path, err)
	}
	return true, nil
}
