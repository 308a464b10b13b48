package runtime

import (
	"context"
	"fmt"
	goruntime "runtime"
	"strings"
	"sync"

	"github.com/skukx/elasticsearch/estest/log"
)

// Matcher classifies a recovered fault value.
type Matcher func(value any) bool

// MessageContains returns a matcher on the fault's string form.
func MessageContains(substr string) Matcher {
	return func(value any) bool {
		return strings.Contains(fmt.Sprint(value), substr)
	}
}

// Handler logs faults recovered by test infrastructure and forwards
// them to an optional parent, preserving the chain a previous handler
// established. It never mutates process-global hooks on its own;
// installation is explicit and paired with uninstall.
type Handler struct {
	logger log.Logger
	parent func(value any)
	ignore []Matcher
	dump   []Matcher
}

// NewHandler creates a handler that logs through logger. A nil logger
// drops all output.
func NewHandler(logger log.Logger) *Handler {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Handler{logger: logger}
}

// WithParent forwards every non-ignored fault to parent after logging.
func (h *Handler) WithParent(parent func(value any)) *Handler {
	h.parent = parent

	return h
}

// Ignore suppresses faults matched by match entirely. Use it for
// expected shutdown noise.
func (h *Handler) Ignore(match Matcher) *Handler {
	h.ignore = append(h.ignore, match)

	return h
}

// DumpStacksOn logs a dump of every live goroutine when a fault matches.
// Use it for resource-exhaustion faults where the interesting state is
// what every other goroutine was doing.
func (h *Handler) DumpStacksOn(match Matcher) *Handler {
	h.dump = append(h.dump, match)

	return h
}

// Handle routes one recovered fault value. Nil values are dropped.
func (h *Handler) Handle(ctx context.Context, value any) {
	if value == nil {
		return
	}

	for _, match := range h.ignore {
		if match(value) {
			return
		}
	}

	for _, match := range h.dump {
		if match(value) {
			h.logger.Log(ctx, log.LevelError, "goroutine dump", log.String("stacks", FormatStacks()))
			break
		}
	}

	h.logger.Log(ctx, log.LevelError, "uncaught fault", log.Any("value", value))

	if h.parent != nil {
		h.parent(value)
	}
}

// Recover is a deferred guard that routes a panic through the handler
// and resumes execution.
//
//	defer handler.Recover(ctx)
func (h *Handler) Recover(ctx context.Context) {
	if recovered := recover(); recovered != nil {
		h.Handle(ctx, recovered)
	}
}

var (
	currentMu sync.RWMutex
	current   *Handler
)

// Install registers h as the active handler and returns the paired
// uninstall function, which restores whichever handler was active
// before. Install and the returned uninstall form a scoped acquisition.
func (h *Handler) Install() (uninstall func()) {
	currentMu.Lock()
	previous := current
	current = h
	currentMu.Unlock()

	return func() {
		currentMu.Lock()
		current = previous
		currentMu.Unlock()
	}
}

// Current returns the active handler, or nil when none is installed.
func Current() *Handler {
	currentMu.RLock()
	defer currentMu.RUnlock()

	return current
}

// FormatStacks renders the stack of every live goroutine.
func FormatStacks() string {
	buf := make([]byte, 1<<20)

	for {
		n := goruntime.Stack(buf, true)
		if n < len(buf) {
			return string(buf[:n])
		}

		buf = make([]byte, len(buf)*2)
	}
}
