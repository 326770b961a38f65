package internal

import (
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// KeyReader is the part of an evdev input device the back button watcher uses.
type KeyReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// BackButton watches an input device for presses of a hardware back key.
// Handhelds often report that key on a device SDL does not see.
type BackButton struct {
	reader  KeyReader
	code    evdev.EvCode
	onPress func()
	closed  atomic.Bool
	done    chan struct{}
}

// OpenBackButton opens the evdev device at path and calls onPress from a
// background goroutine each time key code goes down.
func OpenBackButton(path string, code uint16, onPress func()) (*BackButton, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	if name, err := device.Name(); err == nil {
		GetInternalLogger().Debug("Watching back button", "device", path, "name", name, "code", code)
	}

	return WatchBackButton(device, code, onPress), nil
}

// WatchBackButton starts watching reader. Close stops it.
func WatchBackButton(reader KeyReader, code uint16, onPress func()) *BackButton {
	b := &BackButton{
		reader:  reader,
		code:    evdev.EvCode(code),
		onPress: onPress,
		done:    make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *BackButton) run() {
	defer close(b.done)

	for {
		event, err := b.reader.ReadOne()
		if err != nil {
			if !b.closed.Load() {
				GetInternalLogger().Error("Back button device read failed", "error", err)
			}
			return
		}

		// Value 1 is key down, 2 is autorepeat.
		if event.Type == evdev.EV_KEY && event.Code == b.code && event.Value == 1 {
			b.onPress()
		}
	}
}

// Close releases the device and waits for the watcher goroutine to exit.
func (b *BackButton) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := b.reader.Close()
	<-b.done
	return err
}
