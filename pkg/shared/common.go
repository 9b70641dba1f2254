package shared

import (
	"sync"

	"github.com/spf13/pflag"
)

// Versions holds build information for the core application.
type Versions struct {
	Version       string `json:"version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
}

// ForEveryWithBoundedGoroutines calls f for every value with at most limit calls running at once.
// It returns when every call has finished.
func ForEveryWithBoundedGoroutines(limit int, values []interface{}, f func(i int, value interface{})) {
	if limit < 1 {
		limit = 1
	}
	guard := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, value := range values {
		guard <- struct{}{} // would block if guard channel is already filled
		wg.Add(1)
		go func(i int, value interface{}) {
			defer wg.Done()
			f(i, value)
			<-guard
		}(i, value)
	}
	wg.Wait()
}

// HasFlags reports whether any flag of the set was explicitly changed.
func HasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(*pflag.Flag) {
		changed = true
	})
	return changed
}
