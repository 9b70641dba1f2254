package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/commentcheck/internal/findings"
)

// numbered builds SourceLines where line n holds body[n], other lines are code.
func numbered(total int, body map[int]string) SourceLines {
	lines := make(SourceLines, total)
	for i := range lines {
		lines[i] = "        doSomething();"
	}
	for n, text := range body {
		lines[n-1] = text
	}
	return lines
}

func TestCheckMethodBody(t *testing.T) {
	tests := []struct {
		name  string
		span  MethodBodySpan
		lines SourceLines
		want  []findings.Finding
	}{
		{
			name:  "comment in a four line body",
			span:  NewMethodBodySpan(9, 14),
			lines: numbered(20, map[int]string{12: "        // TODO cleanup"}),
			want: []findings.Finding{
				{RuleID: MethodBodyCommentsID, Line: 12, Message: MethodBodyCommentsMessage},
			},
		},
		{
			name:  "comment without space",
			span:  NewMethodBodySpan(1, 5),
			lines: numbered(6, map[int]string{3: "\t//leftover debug"}),
			want: []findings.Finding{
				{RuleID: MethodBodyCommentsID, Line: 3, Message: MethodBodyCommentsMessage},
			},
		},
		{
			name:  "pragma comment is allowed",
			span:  NewMethodBodySpan(1, 5),
			lines: numbered(6, map[int]string{3: "    // @checkstyle Foo (1 line)"}),
			want:  nil,
		},
		{
			name:  "pragma without space is allowed",
			span:  NewMethodBodySpan(1, 5),
			lines: numbered(6, map[int]string{3: "//@checkstyle Foo"}),
			want:  nil,
		},
		{
			name:  "oneliner body with comment",
			span:  NewMethodBodySpan(4, 6),
			lines: numbered(7, map[int]string{5: "    // only a comment"}),
			want:  nil,
		},
		{
			name:  "empty body",
			span:  NewMethodBodySpan(4, 5),
			lines: numbered(6, map[int]string{4: "// before", 5: "// after"}),
			want:  nil,
		},
		{
			name:  "braces on the same line",
			span:  NewMethodBodySpan(4, 4),
			lines: numbered(6, nil),
			want:  nil,
		},
		{
			name:  "trailing comment after code is not a comment line",
			span:  NewMethodBodySpan(1, 5),
			lines: numbered(6, map[int]string{2: "    x = 1; // set x"}),
			want:  nil,
		},
		{
			name:  "block comment is ignored",
			span:  NewMethodBodySpan(1, 5),
			lines: numbered(6, map[int]string{2: "    /* block */"}),
			want:  nil,
		},
		{
			name:  "brace lines are not checked",
			span:  NewMethodBodySpan(2, 6),
			lines: numbered(7, map[int]string{2: "// open", 6: "// close", 4: "// inner"}),
			want: []findings.Finding{
				{RuleID: MethodBodyCommentsID, Line: 4, Message: MethodBodyCommentsMessage},
			},
		},
		{
			name:  "lines past the end of file are skipped",
			span:  NewMethodBodySpan(1, 10),
			lines: SourceLines{"void f() {", "  // one", "  // two"},
			want: []findings.Finding{
				{RuleID: MethodBodyCommentsID, Line: 2, Message: MethodBodyCommentsMessage},
				{RuleID: MethodBodyCommentsID, Line: 3, Message: MethodBodyCommentsMessage},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckMethodBody(tt.span, tt.lines))
		})
	}
}

func TestCheckMethodBodyScenario(t *testing.T) {
	span := MethodBodySpan{InteriorStart: 10, InteriorEnd: 13}
	lines := numbered(15, map[int]string{12: "// TODO cleanup"})

	got := CheckMethodBody(span, lines)
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].Line)
	assert.Equal(t, "Comments in method body are prohibited.", got[0].Message)

	assert.Equal(t, got, CheckMethodBody(span, lines))
}

func TestMethodBodySpan(t *testing.T) {
	span := NewMethodBodySpan(9, 14)
	assert.Equal(t, MethodBodySpan{InteriorStart: 10, InteriorEnd: 13}, span)
	assert.False(t, span.Empty())
	assert.False(t, span.Oneliner())

	assert.True(t, NewMethodBodySpan(3, 5).Oneliner())
	assert.True(t, NewMethodBodySpan(3, 4).Empty())
}

func TestSourceLinesLine(t *testing.T) {
	lines := SourceLines{"a", "b"}
	got, ok := lines.Line(1)
	assert.True(t, ok)
	assert.Equal(t, "a", got)

	_, ok = lines.Line(0)
	assert.False(t, ok)
	_, ok = lines.Line(3)
	assert.False(t, ok)
}
