package executor

import (
	"context"
	"sync"
)

// SourceEvent is a single value (or error) produced by a subscription's source stream.
type SourceEvent struct {
	Value interface{}
	Err   error
}

// SourceStream is the event stream produced by resolving a subscription's root field, analogous
// to the async iterable a JavaScript implementation would return from its subscribe resolver.
// Close must be safe to call more than once and should cause Events to close promptly.
type SourceStream interface {
	Events() <-chan SourceEvent
	Close()
}

// SubscriptionResult is one per-event execution result produced by MapSourceStream.
type SubscriptionResult struct {
	Data   *OrderedMap
	Errors []*Error
}

// MapSourceStream maps each event off of a source stream through execute, which should run the
// subscription's selection set against the event value (see ExecuteRequest /
// ExecuteRequestSync with InitialValue set to the event's value). It returns a channel of one
// SubscriptionResult per source event, and a stop function the caller must invoke when it is done
// consuming results early.
//
// The underlying stream's Close is guaranteed to run exactly once: whether the source stream ends
// on its own, the source stream delivers an error event, the context is canceled, or the caller
// calls stop. Errors returned by execute for an event are delivered with that event's result and
// do not end the stream. This is the "abrupt close" guarantee a JavaScript mapAsyncIterator
// implementation provides by forwarding return() to the underlying iterator.
func MapSourceStream(ctx context.Context, stream SourceStream, execute func(eventValue interface{}) (*OrderedMap, []*Error)) (results <-chan SubscriptionResult, stop func()) {
	out := make(chan SubscriptionResult)
	done := make(chan struct{})
	var closeOnce sync.Once
	closeStream := func() {
		closeOnce.Do(stream.Close)
	}

	go func() {
		defer close(out)
		defer closeStream()
		for {
			select {
			case ev, ok := <-stream.Events():
				if !ok {
					return
				}
				if ev.Err != nil {
					select {
					case out <- SubscriptionResult{Errors: []*Error{newError(nil, "%s", ev.Err.Error())}}:
					case <-done:
					}
					return
				}
				data, errs := execute(ev.Value)
				select {
				case out <- SubscriptionResult{Data: data, Errors: errs}:
				case <-done:
					return
				}
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	var stopOnce sync.Once
	return out, func() {
		stopOnce.Do(func() {
			closeStream()
			close(done)
		})
	}
}
