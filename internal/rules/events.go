package rules

import "fmt"

// CommentKind tags a block comment event.
type CommentKind int

const (
	CommentBegin CommentKind = iota + 1
	CommentContent
	CommentEnd
)

// String implements fmt.Stringer.
func (k CommentKind) String() string {
	switch k {
	case CommentBegin:
		return "begin"
	case CommentContent:
		return "content"
	case CommentEnd:
		return "end"
	default:
		return fmt.Sprintf("CommentKind(%d)", int(k))
	}
}

// ParseCommentKind converts the textual form of a kind back to a CommentKind.
func ParseCommentKind(s string) (CommentKind, error) {
	switch s {
	case "begin":
		return CommentBegin, nil
	case "content":
		return CommentContent, nil
	case "end":
		return CommentEnd, nil
	default:
		return 0, fmt.Errorf("unknown comment event kind %q", s)
	}
}

// CommentEvent is one piece of a block comment as emitted by the token source.
// Line is 1-based and only meaningful for begin and end events.
type CommentEvent struct {
	Kind CommentKind
	Text string
	Line int
}

// Begin, Content and End build comment events.
func Begin(text string, line int) CommentEvent {
	return CommentEvent{Kind: CommentBegin, Text: text, Line: line}
}

func Content(text string) CommentEvent {
	return CommentEvent{Kind: CommentContent, Text: text}
}

func End(text string, line int) CommentEvent {
	return CommentEvent{Kind: CommentEnd, Text: text, Line: line}
}

// SourceLines holds the raw lines of a file.
type SourceLines []string

// Line returns the line with the given 1-based number.
func (s SourceLines) Line(n int) (string, bool) {
	if n < 1 || n > len(s) {
		return "", false
	}
	return s[n-1], true
}
