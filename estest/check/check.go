package check

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrCheckFailed is the sentinel error for the recoverable-check kind.
var ErrCheckFailed = errors.New("check failed")

// Error represents one failed probe of an asynchronous condition.
type Error struct {
	Message string
	Details string
	history []error
}

// Error returns the formatted check failure message.
func (entry *Error) Error() string {
	if entry == nil {
		return ErrCheckFailed.Error()
	}

	if entry.Details == "" {
		return "check failed: " + entry.Message
	}

	return "check failed: " + entry.Message + "\n" + entry.Details
}

// Unwrap exposes the sentinel plus the chronological failure history, so
// errors.Is and errors.As see every earlier attempt.
func (entry *Error) Unwrap() []error {
	out := make([]error, 0, len(entry.history)+1)
	out = append(out, ErrCheckFailed)
	out = append(out, entry.history...)

	return out
}

// Failed reports whether err is the recoverable-check kind. Retry loops
// must not absorb anything else.
func Failed(err error) bool {
	return errors.Is(err, ErrCheckFailed)
}

// Failedf builds a recoverable-check failure with a formatted message.
func Failedf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// That returns a recoverable-check failure if ok is false. kv are
// key/value detail pairs attached to the failure.
//
// Example:
//
//	return check.That(cluster.Ready(), "cluster not ready", "nodes", cluster.Size())
func That(ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return &Error{Message: msg, Details: formatKeyValueLines(kv)}
}

// NoError converts err into a recoverable-check failure. The error
// message and type are included in the failure details.
func NoError(err error, msg string, kv ...any) error {
	if err == nil {
		return nil
	}

	// errorKVPairs: 2 pairs added (error + error_type), each pair = 2 elements
	const errorKVPairs = 4

	kvWithError := make([]any, 0, len(kv)+errorKVPairs)
	kvWithError = append(kvWithError, "error", err.Error())
	kvWithError = append(kvWithError, "error_type", fmt.Sprintf("%T", err))
	kvWithError = append(kvWithError, kv...)

	return &Error{Message: msg, Details: formatKeyValueLines(kvWithError)}
}

// WithHistory returns the final failure with earlier failures attached,
// oldest first. The final error itself is not mutated.
func WithHistory(final error, history []error) error {
	if len(history) == 0 {
		return final
	}

	var entry *Error
	if errors.As(final, &entry) {
		clone := *entry
		clone.history = append(slices.Clone(history), entry.history...)

		return &clone
	}

	return &Error{Message: final.Error(), history: slices.Clone(history)}
}

// History returns the earlier failures attached to err, oldest first.
func History(err error) []error {
	var entry *Error
	if errors.As(err, &entry) {
		return slices.Clone(entry.history)
	}

	return nil
}

const maxValueLength = 200 // Truncate values longer than this

// truncateValue truncates long values for logging safety.
func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		} else {
			value = "MISSING_VALUE"
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(value))
	}

	return sb.String()
}

// SpanEventName is the event name used when recording exhausted retries on spans.
const SpanEventName = "check.exhausted"

// RecordToSpan records a budget-exhausted check failure as an event on
// the active span, if one is recording. invocations is the total number
// of times the condition was probed.
func RecordToSpan(ctx context.Context, err error, invocations int) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("check.message", err.Error()),
		attribute.Int("check.invocations", invocations),
		attribute.Int("check.prior_failures", len(History(err))),
	}

	span.AddEvent(SpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, "condition never became true")
}
