package check

import (
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/scan-io-git/commentcheck/internal/checker"
	"github.com/scan-io-git/commentcheck/internal/findings"
	"github.com/scan-io-git/commentcheck/internal/report"
	"github.com/scan-io-git/commentcheck/internal/tokens"
	"github.com/scan-io-git/commentcheck/pkg/shared"
	"github.com/scan-io-git/commentcheck/pkg/shared/config"
	"github.com/scan-io-git/commentcheck/pkg/shared/errors"
	"github.com/scan-io-git/commentcheck/pkg/shared/logger"
)

// RunOptionsCheck holds the arguments for the check command.
type RunOptionsCheck struct {
	EventsFile   string
	SourceRoot   string
	GitRepo      string
	Revision     string
	ReportFormat string
	OutputPath   string
	Threads      int
}

var (
	AppConfig         *config.Config
	checkOptions      RunOptionsCheck
	exampleCheckUsage = `  # Checking files described by a token stream, reading sources from the current directory
  commentcheck check --events /path/to/events.yml

  # Reading sources from another directory and printing a SARIF report
  commentcheck check --events /path/to/events.json --source-root /path/to/project --format sarif

  # Reading sources from a git revision with 4 concurrent threads
  commentcheck check --events /path/to/events.yml --git-repo /path/to/repo --revision main -j 4

  # Saving a JSON report into a directory
  commentcheck check --events /path/to/events.yml --format json --output /path/to/results`
)

// CheckCmd represents the check command.
var CheckCmd = &cobra.Command{
	Use:                   "check --events/-e PATH [--source-root/-s DIR | --git-repo DIR [--revision REV]] [--format/-f FORMAT] [--output/-o PATH] [-j THREADS]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleCheckUsage,
	Short:                 "Runs the comment rules over a token stream and reports violations",
	Long: `Runs the comment rules over a token stream and reports violations.

The command exits with 0 when no violation is found, 1 when violations are
reported and 2 when the input or the configuration is invalid.`,
	RunE: runCheckCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runCheckCommand executes the check command.
func runCheckCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	cfg := AppConfig
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := logger.NewLogger(cfg, "core-check")

	return runCheck(checkOptions, cfg, cmd.OutOrStdout(), log)
}

// runCheck validates the options, checks every file of the token stream and writes the report.
func runCheck(opts RunOptionsCheck, cfg *config.Config, out io.Writer, log hclog.Logger) error {
	applyConfigDefaults(&opts, cfg)

	if err := validateCheckArgs(&opts); err != nil {
		log.Error("invalid check arguments", "error", err)
		return errors.NewCommandError(err, errors.ExitFailure)
	}

	rs, err := checker.RulesFromConfig(cfg)
	if err != nil {
		log.Error("invalid rule configuration", "error", err)
		return errors.NewCommandError(err, errors.ExitFailure)
	}

	provider, err := newLineProvider(&opts, log)
	if err != nil {
		log.Error("failed to prepare source lines", "error", err)
		return errors.NewCommandError(err, errors.ExitFailure)
	}

	stream, err := tokens.Load(opts.EventsFile)
	if err != nil {
		log.Error("failed to load token stream", "error", err)
		return errors.NewCommandError(err, errors.ExitFailure)
	}

	started := time.Now()
	sink := findings.NewCollector()
	summary := checker.New(rs, provider, opts.Threads, log).Run(stream, sink)
	result := report.NewResult(started, summary, sink.Findings())

	if err := writeReport(&opts, result, out, log); err != nil {
		log.Error("failed to write report", "error", err)
		return errors.NewCommandError(err, errors.ExitFailure)
	}

	if summary.Failed > 0 {
		err := fmt.Errorf("%d of %d file(s) could not be checked", summary.Failed, len(summary.Files))
		log.Error("check command failed", "error", err)
		return errors.NewCommandError(err, errors.ExitFailure)
	}
	if n := len(result.Findings); n > 0 {
		log.Info("check command found violations", "findings", n, "run_id", result.RunID)
		return errors.NewFindingsError(n)
	}

	log.Info("check command completed successfully", "run_id", result.RunID)
	return nil
}

// Initialize flags for the check command.
func init() {
	CheckCmd.Flags().StringVarP(&checkOptions.EventsFile, "events", "e", "", "Path to a YAML or JSON token stream produced by the parser.")
	CheckCmd.Flags().StringVarP(&checkOptions.SourceRoot, "source-root", "s", "", "Directory the file paths of the token stream are relative to (default is the current directory).")
	CheckCmd.Flags().StringVar(&checkOptions.GitRepo, "git-repo", "", "Read source lines from this git repository instead of the working tree.")
	CheckCmd.Flags().StringVar(&checkOptions.Revision, "revision", "", "Branch, tag or commit hash to read from --git-repo (default is HEAD).")
	CheckCmd.Flags().StringVarP(&checkOptions.ReportFormat, "format", "f", "", "Report format: text, json or sarif (default from config).")
	CheckCmd.Flags().StringVarP(&checkOptions.OutputPath, "output", "o", "", "Path to the output file or directory for the report (default is stdout).")
	CheckCmd.Flags().IntVarP(&checkOptions.Threads, "threads", "j", 0, "Number of concurrent threads to use (default from config).")
	CheckCmd.Flags().BoolP("help", "h", false, "Show help for the check command.")
}
