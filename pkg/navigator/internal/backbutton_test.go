package internal

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeyReader struct {
	events    chan *evdev.InputEvent
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeKeyReader() *fakeKeyReader {
	return &fakeKeyReader{
		events: make(chan *evdev.InputEvent),
		closed: make(chan struct{}),
	}
}

func (f *fakeKeyReader) ReadOne() (*evdev.InputEvent, error) {
	select {
	case ev := <-f.events:
		return ev, nil
	case <-f.closed:
		return nil, errors.New("device closed")
	}
}

func (f *fakeKeyReader) Close() error {
	f.closeOnce.Do(func() { close(f.closed) })
	return nil
}

func TestBackButton_FiresOnKeyDown(t *testing.T) {
	reader := newFakeKeyReader()
	presses := make(chan struct{}, 10)

	b := WatchBackButton(reader, 158, func() { presses <- struct{}{} })

	reader.events <- &evdev.InputEvent{Type: evdev.EV_KEY, Code: 158, Value: 1}
	reader.events <- &evdev.InputEvent{Type: evdev.EV_KEY, Code: 158, Value: 2} // repeat
	reader.events <- &evdev.InputEvent{Type: evdev.EV_KEY, Code: 158, Value: 0} // release
	reader.events <- &evdev.InputEvent{Type: evdev.EV_KEY, Code: 116, Value: 1} // other key
	reader.events <- &evdev.InputEvent{Type: evdev.EV_SYN, Code: 158, Value: 1}
	reader.events <- &evdev.InputEvent{Type: evdev.EV_KEY, Code: 158, Value: 1}

	require.NoError(t, b.Close())
	assert.Len(t, presses, 2)
}

func TestBackButton_CloseIsIdempotent(t *testing.T) {
	reader := newFakeKeyReader()
	b := WatchBackButton(reader, 158, func() {})

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	select {
	case <-b.done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestBackButton_StopsOnReadError(t *testing.T) {
	reader := newFakeKeyReader()
	b := WatchBackButton(reader, 158, func() {})

	// device vanished underneath the watcher
	require.NoError(t, reader.Close())

	select {
	case <-b.done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	require.NoError(t, b.Close())
}
