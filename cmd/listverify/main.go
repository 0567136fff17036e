/*
Copyright 2014 Workiva, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command listverify replays random operation scripts against the
// ArrayList and a reference model and writes a report of any divergence.
//
// Exit status is 0 when the list matched the model, 1 on divergence and 2
// on usage or configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/blastbao/go-arraylist/internal/config"
	applog "github.com/blastbao/go-arraylist/internal/log"
	"github.com/blastbao/go-arraylist/internal/verify"
)

const (
	exitPass  = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("listverify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to YAML config (defaults are used when empty)")
		target     = fs.String("target", "", "list.ArrayList, list.SafeList or list.* (overrides config)")
		seed       = fs.Int64("seed", 0, "base seed (overrides config)")
		threads    = fs.Int("threads", 0, "worker count (overrides config)")
		profile    = fs.String("profile", "", "operation profile: DEFAULT or STRONGER (overrides config)")
		out        = fs.String("out", "", "report directory (overrides config)")
		logLevel   = fs.String("log-level", "", "log level (overrides config)")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitPass
		}
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "listverify: %v\n", err)
		return exitUsage
	}
	// only flags given on the command line override the config
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target":
			cfg.Target = *target
		case "seed":
			cfg.Seed = *seed
		case "threads":
			cfg.Threads = *threads
		case "profile":
			cfg.Profile = strings.ToUpper(*profile)
		case "out":
			cfg.ReportDir = *out
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "listverify: %v\n", err)
		return exitUsage
	}

	logger := applog.WithComponent(applog.New(applog.Config{Level: cfg.LogLevel, Output: stderr}), "listverify")
	return execute(ctx, cfg, logger)
}

func execute(ctx context.Context, cfg config.Config, logger zerolog.Logger) int {
	report, runErr := verify.Run(ctx, cfg, logger)
	if report == nil {
		logger.Error().Err(runErr).Msg("verification did not start")
		return exitUsage
	}
	if runErr != nil {
		logger.Error().Err(runErr).Msg("verification interrupted")
	}

	paths, err := verify.WriteReport(cfg.ReportDir, cfg.OutputFormats, cfg.TimestampedReports, report)
	if err != nil {
		logger.Error().Err(err).Msg("write report")
		return exitFail
	}
	for _, p := range paths {
		logger.Info().Str("path", p).Msg("report written")
	}

	if runErr != nil || !report.Passed() {
		for _, f := range report.Failures {
			logger.Error().
				Int("script", f.Script).
				Int64("seed", f.Seed).
				Int("step", f.Step).
				Str("op", f.Op).
				Strs("trace", f.Trace).
				Msg(f.Diff)
		}
		return exitFail
	}
	return exitPass
}
