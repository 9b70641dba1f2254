package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/commentcheck/internal/findings"
	"github.com/scan-io-git/commentcheck/internal/rules"
)

const (
	toolName = "commentcheck"
	toolURI  = "https://github.com/scan-io-git/commentcheck"
)

var ruleDescriptions = map[string]string{
	rules.SingleLineCommentID:  "Block comment written on a single line where a line comment is required.",
	rules.MethodBodyCommentsID: "Line comment inside a method or constructor body.",
}

// BuildSARIF converts the result into a SARIF 2.1.0 report with a single run.
func BuildSARIF(r Result) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	seen := make(map[string]bool)
	for _, f := range r.Findings {
		if !seen[f.RuleID] {
			seen[f.RuleID] = true
			description, ok := ruleDescriptions[f.RuleID]
			if !ok {
				description = f.Message
			}
			run.AddRule(f.RuleID).
				WithDescription(description).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: toSarifLevel(f.Severity),
				})
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.FilePath)).
				WithRegion(sarif.NewRegion().WithStartLine(f.Line)),
		)

		result := sarif.NewRuleResult(f.RuleID).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(toSarifLevel(f.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	report.AddRun(run)
	return report, nil
}

func writeSARIF(w io.Writer, r Result) error {
	report, err := BuildSARIF(r)
	if err != nil {
		return err
	}
	return report.PrettyWrite(w)
}

func toSarifLevel(severity string) string {
	switch severity {
	case findings.SeverityWarning:
		return "warning"
	default:
		return "error"
	}
}
