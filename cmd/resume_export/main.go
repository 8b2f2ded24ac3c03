// Package main provides the resume_export CLI: an HTTP export server and
// local conversion of resume text to DOCX and PDF.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

// rootOptions holds flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "resume_export",
		Short:         "Resume document export service",
		Long:          "Converts lightly marked-up resume text into DOCX and PDF documents using the simple, classic or modern template.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed output")

	cmd.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newTemplatesCmd(),
		newTokenCmd(opts),
	)
	return cmd
}

// load reads configuration and builds the logger for a command run. Logs go
// to stderr so command output on stdout stays clean.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Logging.Level
	if o.verbose {
		level = logrus.DebugLevel.String()
	}
	return cfg, observability.NewLogger(cmd.ErrOrStderr(), level, cfg.Logging.Format), nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default stays in effect.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
