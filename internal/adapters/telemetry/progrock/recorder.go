// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pbxpatch/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Every update goes to the sink writer and to a progress writer that prints once attached.
type Recorder struct {
	w        progrock.Writer
	progress *ProgressWriter
	rec      *progrock.Recorder
}

// New creates a Recorder whose only output is the attachable progress stream.
func New() *Recorder {
	return NewRecorder(progrock.Discard{})
}

// NewRecorder creates a new Recorder that also records into w.
func NewRecorder(w progrock.Writer) *Recorder {
	progress := NewProgressWriter()
	sink := progrock.MultiWriter{w, progress}
	return &Recorder{
		w:        sink,
		progress: progress,
		rec:      progrock.NewRecorder(sink),
	}
}

// Record starts recording a new vertex keyed by the digest of its name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Attach streams vertex logs and completions to w.
func (r *Recorder) Attach(w io.Writer) {
	r.progress.Attach(w)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}
