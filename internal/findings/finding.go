package findings

import (
	"sort"
	"sync"
)

// Severity levels used in reports.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Finding is a single reported violation of a comment rule.
type Finding struct {
	RuleID   string `json:"rule_id"`
	FilePath string `json:"file_path"`
	Line     int    `json:"line"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Sink receives findings as rules detect them.
type Sink interface {
	Report(f Finding)
}

// Collector is a Sink that keeps every reported finding in memory.
// It is safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	findings []Finding
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report stores the finding, defaulting an empty severity to error.
func (c *Collector) Report(f Finding) {
	if f.Severity == "" {
		f.Severity = SeverityError
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings = append(c.findings, f)
}

// Len returns the number of collected findings.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.findings)
}

// Findings returns a copy of the collected findings ordered by file path and line.
// Findings on the same line keep the order in which they were reported.
func (c *Collector) Findings() []Finding {
	c.mu.Lock()
	out := make([]Finding, len(c.findings))
	copy(out, c.findings)
	c.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FilePath != out[j].FilePath {
			return out[i].FilePath < out[j].FilePath
		}
		return out[i].Line < out[j].Line
	})
	return out
}

// CountByRule returns the number of findings per rule ID.
func CountByRule(list []Finding) map[string]int {
	counts := make(map[string]int)
	for _, f := range list {
		counts[f.RuleID]++
	}
	return counts
}
