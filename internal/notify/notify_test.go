package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	name string
	err  error

	mu  sync.Mutex
	got []Message
}

func (f *fakeNotifier) Name() string {
	return f.name
}

func (f *fakeNotifier) Notify(ctx context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, msg)
	return f.err
}

func (f *fakeNotifier) received() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.got
}

func TestDispatcher_SendsToAllNotifiers(t *testing.T) {
	first := &fakeNotifier{name: "first"}
	second := &fakeNotifier{name: "second"}
	d := NewDispatcher([]Notifier{first, second}, nil)

	wait := d.Send(context.Background(), Message{Title: "hi", Body: "Beep!"})
	wait()

	require.Len(t, first.received(), 1)
	require.Len(t, second.received(), 1)
	assert.Equal(t, "Beep!", first.received()[0].Body)
	assert.Equal(t, "hi", second.received()[0].Title)
}

func TestDispatcher_FailureDoesNotBlockOthers(t *testing.T) {
	broken := &fakeNotifier{name: "broken", err: errors.New("boom")}
	working := &fakeNotifier{name: "working"}
	d := NewDispatcher([]Notifier{broken, working}, nil)

	wait := d.Send(context.Background(), Message{Body: "Beep!"})
	wait()

	assert.Len(t, broken.received(), 1)
	assert.Len(t, working.received(), 1)
}

func TestDispatcher_NoNotifiers(t *testing.T) {
	d := NewDispatcher(nil, nil)

	wait := d.Send(context.Background(), Message{Body: "Beep!"})
	wait()
}
