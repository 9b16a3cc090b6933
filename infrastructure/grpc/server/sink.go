package server

import (
	"context"

	"google.golang.org/grpc"
)

// streamSink maps relay items to their wire message and pushes them on a
// server stream. Add fails once the client left or the stream broke, which
// ends the relay.
type streamSink[T, P any] struct {
	stream grpc.ServerStreamingServer[P]
	toPb   func(T) *P
}

func newStreamSink[T, P any](stream grpc.ServerStreamingServer[P], toPb func(T) *P) *streamSink[T, P] {
	return &streamSink[T, P]{stream: stream, toPb: toPb}
}

func (s *streamSink[T, P]) Add(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.stream.Send(s.toPb(item))
}
