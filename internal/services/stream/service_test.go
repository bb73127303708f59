package stream_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/srctree/internal/commands"
	"github.com/temirov/srctree/internal/services/stream"
)

func writeFixture(t *testing.T, root string, relativePaths ...string) {
	t.Helper()
	for _, relativePath := range relativePaths {
		absolutePath := filepath.Join(root, filepath.FromSlash(relativePath))
		if err := os.MkdirAll(filepath.Dir(absolutePath), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(absolutePath, nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestStreamTreeDeliversEventsInTraversalOrder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeFixture(t, root, "src/main.c", "Makefile")

	var direct []commands.TreeEvent
	if err := commands.StreamTree(commands.TreeOptions{Root: root}, func(event commands.TreeEvent) error {
		direct = append(direct, event)
		return nil
	}); err != nil {
		t.Fatalf("commands.StreamTree: %v", err)
	}

	var streamed []commands.TreeEvent
	err := stream.StreamTree(context.Background(), commands.TreeOptions{Root: root}, func(event commands.TreeEvent) error {
		streamed = append(streamed, event)
		return nil
	})
	if err != nil {
		t.Fatalf("stream.StreamTree: %v", err)
	}

	if len(streamed) != len(direct) {
		t.Fatalf("expected %d events, got %d", len(direct), len(streamed))
	}
	for index := range direct {
		if streamed[index].Kind != direct[index].Kind {
			t.Fatalf("event %d: expected kind %v, got %v", index, direct[index].Kind, streamed[index].Kind)
		}
	}
	if streamed[0].Kind != commands.TreeEventEnterDir || streamed[len(streamed)-1].Kind != commands.TreeEventLeaveDir {
		t.Fatalf("expected stream to open and close the root directory")
	}
}

func TestStreamTreeStopsOnConsumerError(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeFixture(t, root, "a.c", "b.c", "c.c", "sub/d.c")

	consumerFailure := errors.New("writer closed")
	received := 0
	err := stream.StreamTree(context.Background(), commands.TreeOptions{Root: root}, func(event commands.TreeEvent) error {
		received++
		return consumerFailure
	})
	if !errors.Is(err, consumerFailure) {
		t.Fatalf("expected consumer error, got %v", err)
	}
	if received != 1 {
		t.Fatalf("expected consumer to be called once, got %d", received)
	}
}

func TestStreamTreeHonoursCancelledContext(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeFixture(t, root, "a.c")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := stream.StreamTree(ctx, commands.TreeOptions{Root: root}, func(commands.TreeEvent) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
