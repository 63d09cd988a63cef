// Package input reads raw keyboard events from every evdev device on the
// machine and routes the five recognized keys into the game. Everything
// else on the event stream is ignored.
package input

import (
	"fmt"
	"sync"

	evdev "github.com/holoplot/go-evdev"

	"pongxelflut/internal/game"
)

// Bindings maps raw evdev key codes to logical game keys.
type Bindings map[evdev.EvCode]game.Key

// DefaultBindings is the stock layout: W/S for player 1, arrow keys for
// player 2, space to start.
func DefaultBindings() Bindings {
	return Bindings{
		evdev.KEY_W:     game.KeyP1Up,
		evdev.KEY_S:     game.KeyP1Down,
		evdev.KEY_UP:    game.KeyP2Up,
		evdev.KEY_DOWN:  game.KeyP2Down,
		evdev.KEY_SPACE: game.KeyStart,
	}
}

// NewBindings builds a layout from raw key codes, such as ones read from a
// config file.
func NewBindings(p1Up, p1Down, p2Up, p2Down, start uint16) Bindings {
	return Bindings{
		evdev.EvCode(p1Up):   game.KeyP1Up,
		evdev.EvCode(p1Down): game.KeyP1Down,
		evdev.EvCode(p2Up):   game.KeyP2Up,
		evdev.EvCode(p2Down): game.KeyP2Down,
		evdev.EvCode(start):  game.KeyStart,
	}
}

// KeySink receives classified key transitions. *game.World satisfies it.
type KeySink interface {
	HandleKey(key game.Key, pressed bool)
}

// event is one raw key transition after autorepeat filtering.
type event struct {
	code    evdev.EvCode
	pressed bool
}

// Dispatcher fans key events in from every keyboard-capable device and
// routes the bound ones into the sink.
type Dispatcher struct {
	Bindings Bindings
	Sink     KeySink
}

// Run opens every EV_KEY-capable device, then blocks routing events until
// all device readers have died, at which point it returns an error and the
// supervisor re-enumerates from scratch. Devices that cannot be opened
// (permissions, hotplug races) are skipped.
func (d *Dispatcher) Run() error {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return fmt.Errorf("input: list devices: %w", err)
	}

	events := make(chan event)
	var wg sync.WaitGroup
	opened := 0
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		if !hasKeys(dev) {
			dev.Close()
			continue
		}
		opened++
		wg.Add(1)
		go func(dev *evdev.InputDevice) {
			defer wg.Done()
			defer dev.Close()
			readDevice(dev, events)
		}(dev)
	}
	if opened == 0 {
		return fmt.Errorf("input: no readable keyboard devices")
	}
	go func() {
		wg.Wait()
		close(events)
	}()

	for ev := range events {
		d.route(ev)
	}
	return fmt.Errorf("input: all device readers exited")
}

// route maps one raw transition through the bindings. Unbound codes are
// dropped silently.
func (d *Dispatcher) route(ev event) {
	key, ok := d.Bindings[ev.code]
	if !ok {
		return
	}
	d.Sink.HandleKey(key, ev.pressed)
}

func hasKeys(dev *evdev.InputDevice) bool {
	for _, t := range dev.CapableTypes() {
		if t == evdev.EV_KEY {
			return true
		}
	}
	return false
}

// readDevice pumps one device until its first read error. Value 2 is
// kernel autorepeat and must not re-fire press transitions.
func readDevice(dev *evdev.InputDevice, out chan<- event) {
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			return
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}
		switch ev.Value {
		case 0:
			out <- event{ev.Code, false}
		case 1:
			out <- event{ev.Code, true}
		}
	}
}
