// Package telemetry provides progress recording implementations.
package telemetry

import (
	"context"

	"go.trai.ch/molt/internal/core/ports"
)

var _ ports.Telemetry = (*Noop)(nil)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards everything.
func (n *Noop) Record(_ context.Context, _ string) ports.Vertex {
	return noopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Complete(_ error) {}
