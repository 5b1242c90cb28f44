// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a command-line client for the fitness tracker API.
//
// Usage:
//
//	client [-server addr] [-token tok] [-timeout d] <command> [flags]
//
// Commands print the server's JSON response to stdout. signup and login
// print the access token, which later commands take from -token or the
// FIT_TOKEN environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-fit-tracker/internal/adapter"
	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-fit-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, os.Args[1:], cfg, os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, cfg *config.Client, out io.Writer, log *logger.Logger) error {
	global := flag.NewFlagSet("client", flag.ContinueOnError)
	global.StringVar(&cfg.ServerAddress, "server", cfg.ServerAddress, "server address (env FIT_SERVER)")
	global.StringVar(&cfg.Token, "token", cfg.Token, "bearer token (env FIT_TOKEN)")
	global.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout (env FIT_TIMEOUT)")
	global.Usage = func() { usage(global) }

	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		usage(global)
		return flag.ErrHelp
	}

	name, cmdArgs := global.Arg(0), global.Args()[1:]
	if name == "version" {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Fprintf(out, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			info.BuildVersion(), info.BuildDate(), info.BuildCommit())
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		usage(global)
		return fmt.Errorf("unknown command %q", name)
	}

	api, err := adapter.NewHTTPFitnessAPI(cfg.ServerAddress, cfg.RequestTimeout, log)
	if err != nil {
		return err
	}
	api.SetToken(cfg.Token)

	result, err := cmd.run(ctx, api, cmdArgs)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return printJSON(out, result)
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: client [global flags] <command> [command flags]")
	fmt.Fprintln(w, "\nCommands:")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "  %-16s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(w, "  %-16s %s\n", "version", "print build information")
	fmt.Fprintln(w, "\nGlobal flags:")
	fs.PrintDefaults()
}

