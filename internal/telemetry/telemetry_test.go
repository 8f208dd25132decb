package telemetry

import (
	"context"
	"testing"
)

func TestExporterOptions(t *testing.T) {
	if opts := exporterOptions(Options{}); len(opts) != 0 {
		t.Errorf("Expected no options without an API key, got %d", len(opts))
	}
	if opts := exporterOptions(Options{APIKey: "key"}); len(opts) != 2 {
		t.Errorf("Expected endpoint and header options, got %d", len(opts))
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "guess.submit")
	defer span.End()

	if span.IsRecording() {
		t.Error("Noop span should not record")
	}
}
