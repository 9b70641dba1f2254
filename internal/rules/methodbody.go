package rules

import (
	"strings"

	"github.com/scan-io-git/commentcheck/internal/findings"
)

const (
	// MethodBodyCommentsID identifies findings of CheckMethodBody.
	MethodBodyCommentsID = "MethodBodyComments"
	// MethodBodyCommentsMessage is the fixed message of the method body rule.
	MethodBodyCommentsMessage = "Comments in method body are prohibited."

	lineCommentMarker = "//"
	pragmaMarker      = "@checkstyle"
)

// MethodBodySpan is the interior of a method or constructor body: the 1-based
// lines strictly between the opening and the closing brace, both inclusive.
type MethodBodySpan struct {
	InteriorStart int
	InteriorEnd   int
}

// NewMethodBodySpan derives the interior span from the brace line numbers.
func NewMethodBodySpan(openLine, closeLine int) MethodBodySpan {
	return MethodBodySpan{InteriorStart: openLine + 1, InteriorEnd: closeLine - 1}
}

// Empty reports whether the body has no interior line at all.
func (s MethodBodySpan) Empty() bool {
	return s.InteriorEnd < s.InteriorStart
}

// Oneliner reports whether the interior is exactly one line.
func (s MethodBodySpan) Oneliner() bool {
	return s.InteriorStart == s.InteriorEnd
}

// CheckMethodBody reports every line comment inside the body interior, except
// pragma comments starting with @checkstyle. Bodies with a single interior line
// are never reported.
func CheckMethodBody(span MethodBodySpan, lines SourceLines) []findings.Finding {
	if span.Empty() || span.Oneliner() {
		return nil
	}

	var found []findings.Finding
	for pos := span.InteriorStart; pos <= span.InteriorEnd; pos++ {
		raw, ok := lines.Line(pos)
		if !ok {
			continue
		}
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, lineCommentMarker) {
			continue
		}
		comment := strings.TrimSpace(line[len(lineCommentMarker):])
		if strings.HasPrefix(comment, pragmaMarker) {
			continue
		}
		found = append(found, findings.Finding{
			RuleID:  MethodBodyCommentsID,
			Line:    pos,
			Message: MethodBodyCommentsMessage,
		})
	}
	return found
}
