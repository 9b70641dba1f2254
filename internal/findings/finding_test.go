package findings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorOrdersByPathAndLine(t *testing.T) {
	c := NewCollector()
	c.Report(Finding{RuleID: "B", FilePath: "b.java", Line: 3, Message: "m"})
	c.Report(Finding{RuleID: "A", FilePath: "a.java", Line: 9, Message: "first"})
	c.Report(Finding{RuleID: "B", FilePath: "a.java", Line: 2, Message: "m"})
	c.Report(Finding{RuleID: "A", FilePath: "a.java", Line: 9, Message: "second"})

	got := c.Findings()
	assert.Len(t, got, 4)
	assert.Equal(t, "a.java", got[0].FilePath)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, "first", got[1].Message)
	assert.Equal(t, "second", got[2].Message)
	assert.Equal(t, "b.java", got[3].FilePath)
	for _, f := range got {
		assert.Equal(t, SeverityError, f.Severity)
	}
}

func TestCollectorConcurrentReport(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(line int) {
			defer wg.Done()
			c.Report(Finding{RuleID: "A", FilePath: "x.java", Line: line})
		}(i + 1)
	}
	wg.Wait()

	got := c.Findings()
	assert.Equal(t, 50, c.Len())
	for i := range got {
		assert.Equal(t, i+1, got[i].Line)
	}
}

func TestCountByRule(t *testing.T) {
	counts := CountByRule([]Finding{{RuleID: "A"}, {RuleID: "B"}, {RuleID: "A"}})
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, counts)
}
