package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/bizmarket/internal/db/dbtest"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
}

func (s *recordingSink) Log(ctx context.Context, ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zap.NewNop())

	d.Dispatch(Event{Action: "approve_business", EntityID: "b1"})
	d.Dispatch(Event{Action: "reject_business", EntityID: "b2"})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "approve_business", sink.events[0].Action)
	assert.Equal(t, "b2", sink.events[1].EntityID)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	d := NewDispatcher(sink, zap.NewNop())

	// one event is held by the worker, queueSize more fill the buffer
	for i := 0; i < queueSize+20; i++ {
		d.Dispatch(Event{Action: "x"})
	}

	close(sink.block)
	d.Close()

	assert.LessOrEqual(t, len(sink.events), queueSize+1)
	assert.GreaterOrEqual(t, len(sink.events), queueSize)
}

func TestLogger_PersistsEvents(t *testing.T) {
	l := New(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, l.Log(ctx, Event{
		ActorID:  "admin-1",
		Action:   "approve_business",
		Entity:   "business",
		EntityID: "b1",
		Metadata: map[string]string{"from": "pending"},
	}))

	entries, err := l.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "approve_business", entries[0].Action)
	assert.Equal(t, "admin-1", *entries[0].ActorID)
	assert.JSONEq(t, `{"from":"pending"}`, entries[0].Metadata)
}
