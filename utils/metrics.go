package utils

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// NewRunScope - in-memory scope of one run, read back by LogMetrics
func NewRunScope(prefix string) tally.TestScope {
	return tally.NewTestScope(prefix, map[string]string{})
}

// LogMetrics - log every counter of the scope
func LogMetrics(scope tally.TestScope) {
	counters := scope.Snapshot().Counters()

	names := make([]string, 0, len(counters))
	values := make(map[string]int64, len(counters))
	for _, c := range counters {
		names = append(names, c.Name())
		values[c.Name()] = c.Value()
	}
	sort.Strings(names)

	fields := log.Fields{"prefix": "metrics"}
	for _, n := range names {
		fields[n] = values[n]
	}
	log.WithFields(fields).Info("run summary")
}
