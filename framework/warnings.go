package framework

import (
	"fmt"
	"sync"
)

// Severity classifies an entry in the warning log.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
}

// Warning is one observation about the service under test. Warnings are not test
// failures: they record behavior that a human should review, such as the service
// accepting an attack-shaped payload.
type Warning struct {
	Severity Severity
	Message  string
	TestName string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.Severity, w.TestName, w.Message)
}

// WarningSummary is the per-severity breakdown of a warning log.
type WarningSummary struct {
	Critical int
	Warnings int
	Info     int
}

func (s WarningSummary) Total() int {
	return s.Critical + s.Warnings + s.Info
}

func (s WarningSummary) String() string {
	return fmt.Sprintf("%d critical, %d warnings, %d info", s.Critical, s.Warnings, s.Info)
}

// WarningLog is an append-only collection of warnings for one test run. A single
// instance is shared by every test in the run, so Record is safe to call from
// concurrently executing tests; each appended entry is kept whole. Read methods
// return snapshots and do not observe entries appended after they return.
type WarningLog struct {
	entries []Warning
	lock    sync.Mutex
}

func NewWarningLog() *WarningLog {
	return &WarningLog{}
}

// Record appends one warning attributed to the named test.
func (l *WarningLog) Record(severity Severity, testName string, message string) {
	l.lock.Lock()
	l.entries = append(l.entries, Warning{Severity: severity, Message: message, TestName: testName})
	l.lock.Unlock()
}

// All returns a snapshot of every warning recorded so far, in insertion order.
func (l *WarningLog) All() []Warning {
	l.lock.Lock()
	ret := append([]Warning(nil), l.entries...)
	l.lock.Unlock()
	return ret
}

// BySeverity returns a snapshot of the warnings with the given severity, in
// insertion order.
func (l *WarningLog) BySeverity(severity Severity) []Warning {
	l.lock.Lock()
	var ret []Warning
	for _, w := range l.entries {
		if w.Severity == severity {
			ret = append(ret, w)
		}
	}
	l.lock.Unlock()
	return ret
}

// Summary counts the recorded warnings by severity.
func (l *WarningLog) Summary() WarningSummary {
	l.lock.Lock()
	var s WarningSummary
	for _, w := range l.entries {
		switch w.Severity {
		case SeverityCritical:
			s.Critical++
		case SeverityWarning:
			s.Warnings++
		default:
			s.Info++
		}
	}
	l.lock.Unlock()
	return s
}

// Reset discards all recorded warnings.
func (l *WarningLog) Reset() {
	l.lock.Lock()
	l.entries = nil
	l.lock.Unlock()
}
