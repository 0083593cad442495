package queryparams_test

import (
	"context"
	"fmt"
	"strings"
)

// recordLogger captures log lines so tests can assert on the
// diagnostic side effect of a failed coercion.
type recordLogger struct {
	lines []string
}

func (r *recordLogger) record(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordLogger) contains(substr string) bool {
	for _, line := range r.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func (r *recordLogger) Debug(_ context.Context, args ...any) { r.record("%v", args...) }
func (r *recordLogger) Debugf(_ context.Context, format string, args ...any) {
	r.record(format, args...)
}
func (r *recordLogger) Info(_ context.Context, args ...any) { r.record("%v", args...) }
func (r *recordLogger) Infof(_ context.Context, format string, args ...any) {
	r.record(format, args...)
}
func (r *recordLogger) Warn(_ context.Context, args ...any) { r.record("%v", args...) }
func (r *recordLogger) Warnf(_ context.Context, format string, args ...any) {
	r.record(format, args...)
}
func (r *recordLogger) Error(_ context.Context, args ...any) { r.record("%v", args...) }
func (r *recordLogger) Errorf(_ context.Context, format string, args ...any) {
	r.record(format, args...)
}
func (r *recordLogger) Fatal(_ context.Context, args ...any) { r.record("%v", args...) }
func (r *recordLogger) Fatalf(_ context.Context, format string, args ...any) {
	r.record(format, args...)
}
