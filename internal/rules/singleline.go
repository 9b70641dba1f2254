package rules

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/scan-io-git/commentcheck/internal/findings"
)

// SingleLineCommentID identifies findings of SingleLineCommentRule.
const SingleLineCommentID = "SingleLineComment"

// ErrInvalidPattern is wrapped by every PatternError.
var ErrInvalidPattern = errors.New("invalid comment pattern")

// PatternError reports a comment format that does not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// SingleLineCommentRule reports block comments that start and end on the same
// line and whose whole text matches the configured format.
//
// The rule is immutable once built. Scan state lives in CommentState values,
// so one rule can serve any number of files concurrently.
// The zero value never matches.
type SingleLineCommentRule struct {
	format  *regexp.Regexp
	message string
}

// NewSingleLineCommentRule compiles format and returns the rule.
// The format has to match the entire comment text, delimiters included.
func NewSingleLineCommentRule(format, message string) (*SingleLineCommentRule, error) {
	// a broken format can turn valid once wrapped, e.g. ")("
	if _, err := regexp.Compile(format); err != nil {
		return nil, &PatternError{Pattern: format, Err: err}
	}
	re, err := regexp.Compile(`^(?:` + format + `)$`)
	if err != nil {
		return nil, &PatternError{Pattern: format, Err: err}
	}
	return &SingleLineCommentRule{format: re, message: message}, nil
}

// Message returns the message attached to every finding of the rule.
func (r *SingleLineCommentRule) Message() string {
	return r.message
}

// CommentState is the accumulator for the block comment currently being read.
// The zero value is the idle state.
type CommentState struct {
	open      bool
	startLine int
	text      string
}

// Open reports whether a comment has begun and not yet ended.
func (s CommentState) Open() bool {
	return s.open
}

// Step feeds one event into the state and returns the next state along with a
// finding when the event closes a violating comment.
func (r *SingleLineCommentRule) Step(state CommentState, ev CommentEvent) (CommentState, *findings.Finding) {
	switch ev.Kind {
	case CommentBegin:
		return CommentState{open: true, startLine: ev.Line, text: ev.Text}, nil
	case CommentContent:
		state.text += ev.Text
		return state, nil
	case CommentEnd:
		text := state.text + ev.Text
		if r.matches(text) && state.startLine == ev.Line {
			return CommentState{}, &findings.Finding{
				RuleID:  SingleLineCommentID,
				Line:    ev.Line,
				Message: r.message,
			}
		}
		return CommentState{}, nil
	}
	return state, nil
}

// Check folds a whole comment event stream, starting from the idle state.
func (r *SingleLineCommentRule) Check(events []CommentEvent) []findings.Finding {
	var (
		state CommentState
		found []findings.Finding
	)
	for _, ev := range events {
		var f *findings.Finding
		state, f = r.Step(state, ev)
		if f != nil {
			found = append(found, *f)
		}
	}
	return found
}

func (r *SingleLineCommentRule) matches(text string) bool {
	if r == nil || r.format == nil {
		return false
	}
	return r.format.MatchString(text)
}
