package framework

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarningLogPreservesInsertionOrder(t *testing.T) {
	log := NewWarningLog()
	log.Record(SeverityInfo, "test1", "first")
	log.Record(SeverityCritical, "test2", "second")
	log.Record(SeverityWarning, "test1", "third")

	all := log.All()
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Message)
	assert.Equal(t, "second", all[1].Message)
	assert.Equal(t, "third", all[2].Message)
	assert.Equal(t, "test2", all[1].TestName)
}

func TestWarningLogFiltersBySeverity(t *testing.T) {
	log := NewWarningLog()
	log.Record(SeverityInfo, "a", "i1")
	log.Record(SeverityWarning, "b", "w1")
	log.Record(SeverityInfo, "c", "i2")
	log.Record(SeverityCritical, "d", "c1")

	infos := log.BySeverity(SeverityInfo)
	require.Len(t, infos, 2)
	assert.Equal(t, "i1", infos[0].Message)
	assert.Equal(t, "i2", infos[1].Message)

	assert.Len(t, log.BySeverity(SeverityCritical), 1)
	assert.Empty(t, log.BySeverity(Severity(99)))
}

func TestWarningLogSnapshotIsIndependent(t *testing.T) {
	log := NewWarningLog()
	log.Record(SeverityInfo, "a", "before")

	snapshot := log.All()
	log.Record(SeverityInfo, "a", "after")

	assert.Len(t, snapshot, 1)
	assert.Len(t, log.All(), 2)
}

func TestWarningLogReset(t *testing.T) {
	log := NewWarningLog()
	log.Record(SeverityCritical, "a", "m")
	log.Reset()

	assert.Empty(t, log.All())
	assert.Equal(t, WarningSummary{}, log.Summary())
}

func TestWarningLogSummaryCounts(t *testing.T) {
	log := NewWarningLog()
	log.Record(SeverityCritical, "a", "c1")
	log.Record(SeverityWarning, "a", "w1")
	log.Record(SeverityWarning, "a", "w2")
	log.Record(SeverityInfo, "a", "i1")
	log.Record(SeverityInfo, "a", "i2")
	log.Record(SeverityInfo, "a", "i3")

	summary := log.Summary()
	assert.Equal(t, WarningSummary{Critical: 1, Warnings: 2, Info: 3}, summary)
	assert.Equal(t, 6, summary.Total())
}

func TestWarningLogConcurrentAppendsLoseNothing(t *testing.T) {
	log := NewWarningLog()
	const goroutines = 30
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			severity := Severity(g % 3)
			for i := 0; i < perGoroutine; i++ {
				log.Record(severity, fmt.Sprintf("test-%d", g), fmt.Sprintf("entry %d", i))
			}
		}(g)
	}
	wg.Wait()

	summary := log.Summary()
	assert.Equal(t, goroutines*perGoroutine, summary.Total())
	assert.Equal(t, goroutines/3*perGoroutine, summary.Info)
	assert.Equal(t, goroutines/3*perGoroutine, summary.Warnings)
	assert.Equal(t, goroutines/3*perGoroutine, summary.Critical)

	for _, w := range log.All() {
		assert.NotEmpty(t, w.Message, "an entry's fields were torn by a concurrent append")
		assert.NotEmpty(t, w.TestName)
	}
}
