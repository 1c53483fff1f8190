package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"go.trai.ch/molt/internal/adapters/telemetry"
	"go.trai.ch/molt/internal/adapters/telemetry/progrock"
)

func TestNoop(t *testing.T) {
	n := telemetry.NewNoop()

	vtx := n.Record(context.Background(), "jsr:@std/fmt@1.0.8")
	if vtx == nil {
		t.Fatal("Record returned nil vertex")
	}
	vtx.Complete(nil)
	vtx = n.Record(context.Background(), "jsr:@std/path@1.0.0")
	vtx.Complete(errors.New("failed"))

	if err := n.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestRecorder(t *testing.T) {
	rec := progrock.New()

	vtx := rec.Record(context.Background(), "jsr:@std/fmt@1.0.8")
	if vtx == nil {
		t.Fatal("Record returned nil vertex")
	}
	vtx.Complete(nil)

	if err := rec.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
