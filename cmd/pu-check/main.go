package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactkeval/present-value/internal/api"
	"github.com/contactkeval/present-value/internal/check"
	"github.com/contactkeval/present-value/internal/config"
	"github.com/contactkeval/present-value/internal/logger"
	"github.com/contactkeval/present-value/internal/report"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("loading config: %v", err)
		return exitUsage
	}
	logger.SetLevel(cfg.Level)

	fs := flag.NewFlagSet("pu-check", flag.ContinueOnError)
	scenariosPath := fs.String("scenarios", cfg.Scenarios, "path to a JSON array of scenarios (default: embedded scenario)")
	reportDir := fs.String("report", cfg.ReportDir, "directory for results.json and results.csv")
	verbosity := fs.Int("v", int(cfg.Level), "log verbosity: 0 error, 1 info, 2 debug, 3 trace")
	rest := fs.Bool("rest", false, "serve the REST API instead of running the check")
	addr := fs.String("addr", cfg.Addr, "REST server listen address")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	logger.SetVerbosity(*verbosity)

	scenarios := []check.Scenario{check.Default()}
	if *scenariosPath != "" {
		scenarios, err = check.LoadScenarios(*scenariosPath)
		if err != nil {
			logger.Errorf("%v", err)
			return exitUsage
		}
	}

	if *rest {
		if err := serve(*addr, cfg.ShutdownTimeout, scenarios); err != nil {
			logger.Errorf("server: %v", err)
			return exitFailed
		}
		return exitOK
	}

	start := time.Now()
	results, runErr := check.Run(scenarios)
	for _, r := range results {
		fmt.Fprintln(stdout, check.Line(r))
	}

	if *reportDir != "" {
		if err := report.Write(results, *reportDir); err != nil {
			logger.Errorf("%v", err)
			return exitFailed
		}
		logger.Infof("wrote %d results to %s", len(results), *reportDir)
	}

	logger.Debugf("checked %d scenarios in %v", len(results), time.Since(start))
	if runErr != nil {
		return exitFailed
	}
	return exitOK
}

func serve(addr string, shutdownTimeout time.Duration, scenarios []check.Scenario) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(scenarios),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("starting REST server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Infof("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
