package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pbxpatch/internal/ui/output"
	"go.trai.ch/pbxpatch/internal/ui/style"
)

// pathKey names the attribute promoted to a "<path>: " line prefix, at any group depth.
const pathKey = "path"

// ConsoleHandler is a slog.Handler writing one line per record:
// the level mark, the manifest path if any, the message and the remaining
// attributes as dotted key=value pairs.
type ConsoleHandler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	path   string
	pairs  []string
}

// NewConsoleHandler creates a ConsoleHandler writing to w at level and above.
// A nil w writes to stderr and a nil level means info.
func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{mu: &sync.Mutex{}, out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	path := h.path
	pairs := slices.Clone(h.pairs)
	r.Attrs(func(a slog.Attr) bool {
		pairs = appendAttr(pairs, &path, h.prefix, a)
		return true
	})

	msg := r.Message
	if path != "" {
		msg = path + ": " + msg
	}
	mark := style.ForLevel(r.Level)

	var b strings.Builder
	b.WriteString(h.paint(mark.Prefix(msg), mark.Color))
	for _, p := range pairs {
		b.WriteByte(' ')
		b.WriteString(h.paint(p, style.Slate))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		c.pairs = appendAttr(c.pairs, &c.path, c.prefix, a)
	}
	return c
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.prefix += name + "."
	return c
}

func (h *ConsoleHandler) clone() *ConsoleHandler {
	c := *h
	c.pairs = slices.Clone(h.pairs)
	return &c
}

func (h *ConsoleHandler) paint(s string, c lipgloss.Color) string {
	if h.out.Profile == termenv.Ascii {
		return s
	}
	return h.out.String(s).Foreground(h.out.Color(string(c))).String()
}

// appendAttr flattens a into key=value pairs under prefix. A string path attribute
// replaces the line path instead.
func appendAttr(pairs []string, path *string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return pairs
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub += a.Key + "."
		}
		for _, g := range a.Value.Group() {
			pairs = appendAttr(pairs, path, sub, g)
		}
		return pairs
	}

	if a.Key == pathKey && a.Value.Kind() == slog.KindString {
		*path = a.Value.String()
		return pairs
	}
	return append(pairs, prefix+a.Key+"="+quote(a.Value.String()))
}

// quote wraps values that would not read back as a single token.
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
