package domain

import "context"

// UpdateSource is the receiving end of a feed's live updates.
// Recv blocks until an update is available, the source is closed or ctx is
// done. Implementations report missed updates with broadcast.ErrLagged.
type UpdateSource[U any] interface {
	Recv(ctx context.Context) (U, error)
}

// Subscription pairs a snapshot with the point of the update source it was
// taken at. The core builds both under the same lock so that no update is
// lost or delivered twice relative to Initial.
type Subscription[I, U any] struct {
	Initial []I
	Updates UpdateSource[U]
}

type StreamItemKind string

const (
	StreamInitialSnapshot StreamItemKind = "initial_snapshot"
	StreamUpdate          StreamItemKind = "update"
)

// StreamItem is the two-phase shape pushed to the host: one InitialSnapshot,
// then any number of Update.
type StreamItem[I, U any] struct {
	Kind   StreamItemKind `json:"kind"`
	Items  []I            `json:"items"`
	Update *U             `json:"update,omitempty"`
}

func InitialSnapshot[I, U any](items []I) StreamItem[I, U] {
	if items == nil {
		items = []I{}
	}
	return StreamItem[I, U]{Kind: StreamInitialSnapshot, Items: items}
}

func NewUpdate[I, U any](update U) StreamItem[I, U] {
	return StreamItem[I, U]{Kind: StreamUpdate, Update: &update}
}
