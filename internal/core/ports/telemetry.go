package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of patch operations.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Attach streams progress of recorded vertices to w.
	Attach(w io.Writer)
	// Close flushes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Log records a message against the vertex.
	Log(msg string)
	// Cached marks the vertex as satisfied without doing work.
	Cached()
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
