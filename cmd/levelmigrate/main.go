// Command levelmigrate applies schema migrations to the Laserfingers level
// corpus. Each migration step is its own subcommand; `all` composes the
// full chain in order. Exit code 0 means full success; any per-file failure,
// a missing levels directory, or an empty corpus exits 1.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zachsnow/laserfingers/internal/config"
	"github.com/zachsnow/laserfingers/internal/history"
	"github.com/zachsnow/laserfingers/internal/logging"
	"github.com/zachsnow/laserfingers/internal/migrate"
	"github.com/zachsnow/laserfingers/internal/parser"
	"github.com/zachsnow/laserfingers/internal/runner"
	"github.com/zachsnow/laserfingers/internal/schema"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: levelmigrate <command>

commands:
  unify-kinds       replace nested legacy laser kinds with flat ray/segment records
  fix-cycle-times   double one-way cycle times into full round trips
  endpoints-array   rewrite singular endpoint fields into endpoints arrays
  remove-angles     delete stored initialAngle from ray lasers
  rename-initial-t  rename initialT to t, dropping zero phases
  all               run the full migration chain in order
  schema            write the canonical level JSON schema
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command := strings.ToLower(os.Args[1])

	if err := config.Load("."); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logManager := logging.NewSlogManager()
	logFile := openLogFile()
	if logFile != nil {
		defer logFile.Close()
	}
	if logFile != nil {
		logManager.Setup(logFile, config.GetString("logLevel"))
	} else {
		logManager.Setup(nil, config.GetString("logLevel"))
	}
	logger := logManager.Logger()

	if command == "schema" {
		outPath := config.GetString("schema.outputPath")
		if err := schema.Write(outPath); err != nil {
			logger.Error("Failed to write schema", "error", err)
			os.Exit(1)
		}
		logger.Info("Wrote canonical level schema", "path", outPath)
		return
	}

	p := parser.NewParser(logger)
	verifyMotion := config.GetBool("verifyMotion")

	var steps []migrate.Step
	if command == "all" {
		steps = migrate.Chain(p, verifyMotion)
	} else {
		step, err := migrate.ByName(command, p, verifyMotion)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(2)
		}
		steps = []migrate.Step{step}
	}

	dbLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	hist, err := history.NewBackend(dbLogger)
	if err != nil {
		logger.Error("Failed to set up history backend", "error", err)
		os.Exit(1)
	}
	if hist != nil {
		defer hist.Close()
	}

	summary, err := runner.New(logger, steps, hist).Run(config.GetString("levelsDir"))
	if err != nil {
		logger.Error("Migration aborted", "error", err)
		os.Exit(1)
	}
	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// openLogFile creates the session log file; logging falls back to stdout
// only when the logs directory cannot be used.
func openLogFile() *os.File {
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil
	}
	f, err := os.Create(logging.LogFilePath(logsDir, time.Now()))
	if err != nil {
		return nil
	}
	return f
}
