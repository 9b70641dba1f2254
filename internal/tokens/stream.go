package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/scan-io-git/commentcheck/internal/rules"
	"github.com/scan-io-git/commentcheck/pkg/shared/files"
)

// Stream contract errors.
var (
	ErrOrphanEvent         = errors.New("comment event without a preceding begin")
	ErrNestedComment       = errors.New("comment begins before the previous one ended")
	ErrUnterminatedComment = errors.New("comment never ends")
	ErrBadLine             = errors.New("invalid line number")
)

// Stream is a materialised token source document.
type Stream struct {
	Files []FileEvents `yaml:"files" json:"files"`
}

// FileEvents holds the syntactic events produced for one source file.
type FileEvents struct {
	Path     string         `yaml:"path" json:"path"`
	Lines    []string       `yaml:"lines,omitempty" json:"lines,omitempty"`
	Comments []CommentEvent `yaml:"comments,omitempty" json:"comments,omitempty"`
	Bodies   []Body         `yaml:"bodies,omitempty" json:"bodies,omitempty"`
}

// CommentEvent is the document form of rules.CommentEvent.
type CommentEvent struct {
	Kind string `yaml:"kind" json:"kind"`
	Text string `yaml:"text" json:"text"`
	Line int    `yaml:"line,omitempty" json:"line,omitempty"`
}

// Body holds the brace lines of a method or constructor body.
type Body struct {
	Open  int `yaml:"open" json:"open"`
	Close int `yaml:"close" json:"close"`
}

// Load reads a token stream document from a YAML or JSON file.
func Load(path string) (*Stream, error) {
	if err := files.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token stream %q: %w", path, err)
	}
	return s, nil
}

// Decode reads a token stream document and checks event kinds.
// Documents starting with '{' are decoded as JSON, anything else as YAML.
func Decode(r io.Reader) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var s Stream
	if isJSON(data) {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for i, f := range s.Files {
		if f.Path == "" {
			return nil, fmt.Errorf("file #%d has no path", i+1)
		}
		for j, ev := range f.Comments {
			if _, err := rules.ParseCommentKind(ev.Kind); err != nil {
				return nil, fmt.Errorf("%s: event #%d: %w", f.Path, j+1, err)
			}
		}
	}
	return &s, nil
}

// isJSON reports whether data looks like a JSON object. yaml.v2 rejects some
// valid JSON escapes such as "\/".
func isJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// Events converts the document comment events into rule events.
func (f FileEvents) Events() ([]rules.CommentEvent, error) {
	out := make([]rules.CommentEvent, 0, len(f.Comments))
	for i, ev := range f.Comments {
		kind, err := rules.ParseCommentKind(ev.Kind)
		if err != nil {
			return nil, fmt.Errorf("event #%d: %w", i+1, err)
		}
		out = append(out, rules.CommentEvent{Kind: kind, Text: ev.Text, Line: ev.Line})
	}
	return out, nil
}

// Spans converts the document bodies into method body spans.
func (f FileEvents) Spans() []rules.MethodBodySpan {
	out := make([]rules.MethodBodySpan, 0, len(f.Bodies))
	for _, b := range f.Bodies {
		out = append(out, rules.NewMethodBodySpan(b.Open, b.Close))
	}
	return out
}

// Validate checks the ordering contract of the comment events: every comment
// is begin, any number of content events, then end, with no nesting.
func (f FileEvents) Validate() error {
	open := false
	beginLine := 0
	for i, ev := range f.Comments {
		kind, err := rules.ParseCommentKind(ev.Kind)
		if err != nil {
			return fmt.Errorf("event #%d: %w", i+1, err)
		}
		switch kind {
		case rules.CommentBegin:
			if open {
				return fmt.Errorf("event #%d at line %d: %w", i+1, ev.Line, ErrNestedComment)
			}
			if ev.Line < 1 {
				return fmt.Errorf("event #%d: begin line %d: %w", i+1, ev.Line, ErrBadLine)
			}
			open, beginLine = true, ev.Line
		case rules.CommentContent:
			if !open {
				return fmt.Errorf("event #%d (content): %w", i+1, ErrOrphanEvent)
			}
		case rules.CommentEnd:
			if !open {
				return fmt.Errorf("event #%d (end) at line %d: %w", i+1, ev.Line, ErrOrphanEvent)
			}
			if ev.Line < beginLine {
				return fmt.Errorf("event #%d: end line %d before begin line %d: %w", i+1, ev.Line, beginLine, ErrBadLine)
			}
			open = false
		}
	}
	if open {
		return fmt.Errorf("comment started at line %d: %w", beginLine, ErrUnterminatedComment)
	}

	for i, b := range f.Bodies {
		if b.Open < 1 || b.Close < b.Open {
			return fmt.Errorf("body #%d {%d..%d}: %w", i+1, b.Open, b.Close, ErrBadLine)
		}
	}
	return nil
}
