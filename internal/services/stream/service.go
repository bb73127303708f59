// Package stream runs a tree traversal and its renderer as a producer/consumer pair.
package stream

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/srctree/internal/commands"
)

// Consumer receives traversal events in order.
type Consumer func(event commands.TreeEvent) error

// emitter forwards traversal events onto a channel unless ctx is cancelled first.
type emitter struct {
	ctx context.Context
	out chan<- commands.TreeEvent
}

func (e *emitter) send(event commands.TreeEvent) error {
	if e.out == nil {
		return fmt.Errorf("stream: event channel is nil")
	}
	select {
	case <-e.ctx.Done():
		return e.ctx.Err()
	case e.out <- event:
		return nil
	}
}

// StreamTree walks options.Root on one goroutine and hands every event to consume on another.
// Events reach consume in traversal order. A consumer error or ctx cancellation stops the walk;
// cancellation of the caller's ctx is reported as its error.
func StreamTree(ctx context.Context, options commands.TreeOptions, consume Consumer) error {
	if consume == nil {
		return fmt.Errorf("stream: consumer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	group, streamCtx := errgroup.WithContext(ctx)
	events := make(chan commands.TreeEvent)

	group.Go(func() error {
		defer close(events)
		producer := &emitter{ctx: streamCtx, out: events}
		return commands.StreamTree(options, producer.send)
	})

	group.Go(func() error {
		for {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := consume(event); err != nil {
					return err
				}
			}
		}
	})

	return group.Wait()
}
