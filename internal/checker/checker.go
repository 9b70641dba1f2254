package checker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/commentcheck/internal/findings"
	"github.com/scan-io-git/commentcheck/internal/rules"
	"github.com/scan-io-git/commentcheck/internal/source"
	"github.com/scan-io-git/commentcheck/internal/tokens"
	"github.com/scan-io-git/commentcheck/pkg/shared"
	"github.com/scan-io-git/commentcheck/pkg/shared/config"
)

// Result statuses of a checked file.
const (
	StatusOK     = "OK"
	StatusFailed = "FAILED"
)

// ErrNoLineSource is returned when a file has method bodies, no inline lines and no provider.
var ErrNoLineSource = errors.New("no source lines available")

// RuleSet is the immutable set of rules applied to every file.
type RuleSet struct {
	SingleLine *rules.SingleLineCommentRule // nil disables the rule
	MethodBody bool
}

// RulesFromConfig builds the rule set. An invalid comment format fails here,
// before any file is processed.
func RulesFromConfig(cfg *config.Config) (RuleSet, error) {
	var rs RuleSet
	if config.SingleLineCommentEnabled(cfg) {
		c := cfg.Rules.SingleLineComment
		rule, err := rules.NewSingleLineCommentRule(c.Format, c.Message)
		if err != nil {
			return RuleSet{}, fmt.Errorf("rules.single_line_comment: %w", err)
		}
		rs.SingleLine = rule
	}
	rs.MethodBody = config.MethodBodyCommentsEnabled(cfg)
	return rs, nil
}

// Checker applies a rule set to the files of a token stream.
type Checker struct {
	rules   RuleSet
	lines   source.Provider
	threads int
	logger  hclog.Logger
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path     string `json:"path"`
	Findings int    `json:"findings"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

// Summary holds the per-file results of a run in input order.
type Summary struct {
	Files  []FileResult `json:"files"`
	Failed int          `json:"failed"`
}

// New creates a Checker. lines may be nil when every file carries its own lines.
func New(rs RuleSet, lines source.Provider, threads int, logger hclog.Logger) *Checker {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if threads < 1 {
		threads = 1
	}
	return &Checker{
		rules:   rs,
		lines:   lines,
		threads: threads,
		logger:  logger,
	}
}

// CheckFile runs every enabled rule over one file and reports the findings to sink,
// ordered by line. Nothing is reported when the file cannot be checked.
func (c *Checker) CheckFile(f tokens.FileEvents, sink findings.Sink) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, fmt.Errorf("malformed token stream: %w", err)
	}

	var found []findings.Finding

	if c.rules.SingleLine != nil && len(f.Comments) > 0 {
		events, err := f.Events()
		if err != nil {
			return 0, err
		}
		found = append(found, c.rules.SingleLine.Check(events)...)
	}

	if c.rules.MethodBody && len(f.Bodies) > 0 {
		lines, err := c.sourceLines(f)
		if err != nil {
			return 0, err
		}
		for _, span := range f.Spans() {
			found = append(found, rules.CheckMethodBody(span, lines)...)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Line < found[j].Line
	})
	for _, fnd := range found {
		fnd.FilePath = f.Path
		sink.Report(fnd)
	}
	return len(found), nil
}

func (c *Checker) sourceLines(f tokens.FileEvents) (rules.SourceLines, error) {
	if f.Lines != nil {
		return rules.SourceLines(f.Lines), nil
	}
	if c.lines == nil {
		return nil, ErrNoLineSource
	}
	lines, err := c.lines.Lines(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source lines: %w", err)
	}
	return lines, nil
}

// Run checks every file of the stream concurrently. A file that fails is
// recorded in the summary and does not affect the other files.
func (c *Checker) Run(stream *tokens.Stream, sink findings.Sink) Summary {
	c.logger.Info("check starting", "files", len(stream.Files), "goroutines", c.threads)

	results := make([]FileResult, len(stream.Files))
	values := make([]interface{}, len(stream.Files))
	for i := range stream.Files {
		values[i] = stream.Files[i]
	}

	shared.ForEveryWithBoundedGoroutines(c.threads, values, func(i int, value interface{}) {
		file, ok := value.(tokens.FileEvents)
		if !ok {
			c.logger.Error("invalid file argument type")
			results[i] = FileResult{Status: StatusFailed, Message: "invalid file argument type"}
			return
		}
		c.logger.Debug("checking file", "#", i+1, "path", file.Path)

		n, err := c.CheckFile(file, sink)
		if err != nil {
			c.logger.Error("failed to check file", "path", file.Path, "error", err)
			results[i] = FileResult{Path: file.Path, Status: StatusFailed, Message: err.Error()}
			return
		}
		results[i] = FileResult{Path: file.Path, Findings: n, Status: StatusOK}
	})

	summary := Summary{Files: results}
	for _, r := range results {
		if r.Status == StatusFailed {
			summary.Failed++
		}
	}
	c.logger.Info("check finished", "files", len(results), "failed", summary.Failed)
	return summary
}
