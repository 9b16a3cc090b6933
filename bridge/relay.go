// Package bridge relays a feed of the messaging core to a remote sink.
//
// Every feed follows the same two-phase protocol: one InitialSnapshot, then
// one Update per value read from the live source, in source order. The relay
// never retries and never reports an error: a consumer that goes away or a
// source that closes are both normal ends of a stream. A new subscription is
// the only way to resume, and it always starts from a fresh snapshot.
package bridge

import (
	"chat-bridge/broadcast"
	"chat-bridge/contract"
	"chat-bridge/domain"
	"context"
	"errors"
	"log/slog"
)

// Termination is the reason a relay stopped.
type Termination int

const (
	// TerminationSinkClosed the consumer rejected an event
	TerminationSinkClosed Termination = iota
	// TerminationSourceClosed the core closed the feed
	TerminationSourceClosed
	// TerminationCancelled the transport context is done
	TerminationCancelled
)

func (t Termination) String() string {
	switch t {
	case TerminationSinkClosed:
		return "sink_closed"
	case TerminationSourceClosed:
		return "source_closed"
	case TerminationCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Relay pushes sub to sink until one side goes away.
//
// Lag is absorbed silently. This is only correct because every update carries
// the full state of its item: missing intermediate updates leaves the
// consumer with fewer intermediate states, never with stale data.
func Relay[I, U any](ctx context.Context, log *slog.Logger, feed string,
	sub domain.Subscription[I, U], sink contract.Sink[domain.StreamItem[I, U]]) Termination {
	defer release(sub.Updates)

	if err := sink.Add(ctx, domain.InitialSnapshot[I, U](sub.Initial)); err != nil {
		log.Debug("Sink closed before initial snapshot", "feed", feed, "error", err)
		return TerminationSinkClosed
	}

	for {
		update, err := sub.Updates.Recv(ctx)
		if err != nil {
			var lagged *broadcast.LaggedError
			switch {
			case errors.As(err, &lagged):
				log.Debug("Slow consumer skipped updates", "feed", feed, "skipped", lagged.Skipped)
				continue
			case errors.Is(err, broadcast.ErrLagged):
				log.Debug("Slow consumer skipped updates", "feed", feed)
				continue
			case errors.Is(err, broadcast.ErrClosed):
				return TerminationSourceClosed
			case ctx.Err() != nil:
				return TerminationCancelled
			default:
				log.Warn("Update source failed, ending stream", "feed", feed, "error", err)
				return TerminationSourceClosed
			}
		}

		if err := sink.Add(ctx, domain.NewUpdate[I](update)); err != nil {
			log.Debug("Sink closed, ending stream", "feed", feed, "error", err)
			return TerminationSinkClosed
		}
	}
}

// release frees the receiving end once the relay owns nothing else.
func release(source any) {
	if r, ok := source.(interface{ Close() }); ok {
		r.Close()
	}
}
