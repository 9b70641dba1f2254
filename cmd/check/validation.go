package check

import (
	"fmt"

	"github.com/scan-io-git/commentcheck/pkg/shared/config"
	"github.com/scan-io-git/commentcheck/pkg/shared/files"
)

// validateCheckArgs validates the arguments provided to the check command.
func validateCheckArgs(opts *RunOptionsCheck) error {
	if opts.EventsFile == "" {
		return fmt.Errorf("the 'events' flag must be specified")
	}
	if err := files.ValidatePath(opts.EventsFile); err != nil {
		return fmt.Errorf("the events file is invalid: %w", err)
	}

	if opts.SourceRoot != "" && opts.GitRepo != "" {
		return fmt.Errorf("you cannot use the 'source-root' and 'git-repo' flags at the same time")
	}
	if opts.Revision != "" && opts.GitRepo == "" {
		return fmt.Errorf("the 'revision' flag requires the 'git-repo' flag")
	}

	if opts.Threads <= 0 {
		return fmt.Errorf("the 'threads' flag must be a positive integer")
	}
	if opts.Threads > config.MaxThreads {
		return fmt.Errorf("the 'threads' flag must not exceed %d", config.MaxThreads)
	}

	if err := config.ValidateFormat(opts.ReportFormat); err != nil {
		return err
	}
	return nil
}
