package check

import (
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/commentcheck/internal/report"
	"github.com/scan-io-git/commentcheck/internal/source"
	"github.com/scan-io-git/commentcheck/pkg/shared/config"
)

// applyConfigDefaults fills options not given on the command line from the configuration.
func applyConfigDefaults(opts *RunOptionsCheck, cfg *config.Config) {
	opts.ReportFormat = config.SetThen(opts.ReportFormat, cfg.Checker.Format)
	opts.Threads = config.SetThen(opts.Threads, cfg.Checker.Threads)
}

// newLineProvider selects where source lines are read from.
func newLineProvider(opts *RunOptionsCheck, log hclog.Logger) (source.Provider, error) {
	if opts.GitRepo != "" {
		g, err := source.NewGit(opts.GitRepo, opts.Revision)
		if err != nil {
			return nil, err
		}
		log.Debug("reading sources from git", "repo", g.RepoPath, "revision", g.Revision, "commit", g.Commit.String())
		return g, nil
	}

	root := opts.SourceRoot
	if root == "" {
		root = "."
	}
	d, err := source.NewDir(root)
	if err != nil {
		return nil, err
	}
	log.Debug("reading sources from directory", "root", d.Root)
	return d, nil
}

// writeReport writes the report to the output path, or to out when no path is set.
func writeReport(opts *RunOptionsCheck, result report.Result, out io.Writer, log hclog.Logger) error {
	if opts.OutputPath == "" {
		return report.Write(out, opts.ReportFormat, result)
	}
	path, err := report.WriteFile(opts.OutputPath, opts.ReportFormat, result)
	if err != nil {
		return err
	}
	log.Info("report saved", "path", path, "format", opts.ReportFormat)
	return nil
}
