package progrock

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*ProgressWriter)(nil)

// ProgressWriter renders vertex logs and completions as plain "<vertex>: <line>" text.
// Updates are dropped until an output is attached.
type ProgressWriter struct {
	mu    sync.Mutex
	out   io.Writer
	names map[string]string
	done  map[string]bool
}

// NewProgressWriter creates a ProgressWriter with no output attached.
func NewProgressWriter() *ProgressWriter {
	return &ProgressWriter{
		names: make(map[string]string),
		done:  make(map[string]bool),
	}
}

// Attach starts streaming progress to w.
func (p *ProgressWriter) Attach(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = w
}

// WriteStatus implements progrock.Writer.
func (p *ProgressWriter) WriteStatus(u *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range u.Vertexes {
		p.names[v.Id] = v.Name
	}
	if p.out == nil {
		return nil
	}

	for _, l := range u.Logs {
		name := p.names[l.Vertex]
		for _, line := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
			if _, err := fmt.Fprintf(p.out, "%s: %s\n", name, line); err != nil {
				return err
			}
		}
	}

	for _, v := range u.Vertexes {
		if v.Completed == nil || p.done[v.Id] {
			continue
		}
		p.done[v.Id] = true
		if _, err := fmt.Fprintf(p.out, "%s: %s\n", v.Name, status(v)); err != nil {
			return err
		}
	}
	return nil
}

// Close implements progrock.Writer. The attached output is owned by the caller.
func (p *ProgressWriter) Close() error {
	return nil
}

func status(v *progrock.Vertex) string {
	switch {
	case v.Error != nil:
		return "failed: " + *v.Error
	case v.Cached:
		return "cached"
	default:
		return "done"
	}
}
