package databases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ChangeEvent describes a single row change in a watched collection. The
// dashboard treats any event as a signal to refetch the affected list; no
// coalescing is applied.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Operation  string `json:"operation"`
	DocumentID string `json:"document_id"`
}

// Watchable is any collection accessor that can open a change stream
type Watchable interface {
	Watch(context.Context, interface{}, ...*options.ChangeStreamOptions) (ChangeStreamHelper, error)
}

// Watcher fans change-stream events from the watched collections into a
// single handler. A collection whose stream cannot be opened is skipped and
// logged; the rest of the service keeps running without push for it.
type Watcher struct {
	collections map[string]Watchable
}

// NewWatcher creates an empty watcher
func NewWatcher() *Watcher {
	return &Watcher{collections: map[string]Watchable{}}
}

// Add registers a collection accessor under its collection name
func (w *Watcher) Add(name string, c Watchable) {
	w.collections[name] = c
}

// Start opens one change stream per registered collection and pumps events
// into handler until ctx is cancelled
func (w *Watcher) Start(ctx context.Context, handler func(ChangeEvent)) {
	for name, coll := range w.collections {
		stream, err := coll.Watch(ctx, bson.A{})
		if err != nil {
			zap.S().Warnw("change stream unavailable, realtime refresh disabled for collection",
				"collection", name,
				"error", err,
			)
			continue
		}
		go w.pump(ctx, name, stream, handler)
	}
}

// ChangeDocument is the slice of a change-stream document the watcher cares
// about
type ChangeDocument struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID interface{} `bson:"_id"`
	} `bson:"documentKey"`
}

func (w *Watcher) pump(ctx context.Context, name string, stream ChangeStreamHelper, handler func(ChangeEvent)) {
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var change ChangeDocument
		if err := stream.Decode(&change); err != nil {
			zap.S().Warnw("failed to decode change event",
				"collection", name,
				"error", err,
			)
			continue
		}
		handler(ChangeEvent{
			Collection: name,
			Operation:  change.OperationType,
			DocumentID: documentID(change.DocumentKey.ID),
		})
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		zap.S().Errorw("change stream closed",
			"collection", name,
			"error", err,
		)
	}
}

func documentID(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
