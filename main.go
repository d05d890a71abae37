package main

import (
	"errors"
	"fmt"
	"os"

	"dashcheck/internal/app"
	"dashcheck/internal/config"
	"dashcheck/internal/console"
	"dashcheck/internal/model"
	"dashcheck/internal/scanner"

	"github.com/tcnksm/go-latest"
)

func checkUpdate(con *console.Console, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:             "eclipse-dash",
		Repository:        "dash-licenses",
		FixVersionStrFunc: latest.DeleteFrontV(),
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		con.Warnf("Unable to check for a newer Dash license tool: %v", err)
		return
	}

	if res.Outdated {
		con.Infof("%s A newer Dash license tool is available: %s (dashcheck was tested with %s)", model.IconNew, res.Current, currentVer)
		con.Infof("%s Delete %s to download it on the next run", model.IconInfo, scanner.JarPath())
	} else {
		con.Successf("dashcheck was tested with the latest Dash license tool: %s", currentVer)
	}
}

func main() {
	args := os.Args[1:]
	con := console.New(os.Stdout, os.Stderr, console.ColorEnabled())

	meta := config.ScanMeta(args)
	if meta.Help {
		config.Usage(os.Stderr)
		return
	}

	if meta.Version {
		fmt.Fprintf(con.Out(), "dashcheck version %s (Dash license tool %s)\n", model.Version, model.ScannerVersion)
		return
	}

	if meta.Update {
		checkUpdate(con, model.ScannerVersion)
		return
	}

	cfg := config.Resolve(args, con)

	if err := app.New(con).Run(cfg); err != nil {
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			con.Errorf("%s", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		con.Errorf("%v", err)
		os.Exit(app.ExitFailure)
	}
}
