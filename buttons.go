package main

import (
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

type buttonEvent int

const (
	evNextMode buttonEvent = iota
	evCycleTimezone
	evForceSync
)

func (ev buttonEvent) String() string {
	switch ev {
	case evNextMode:
		return "next-mode"
	case evCycleTimezone:
		return "cycle-timezone"
	case evForceSync:
		return "force-sync"
	}
	return "unknown"
}

// debounceInterval suppresses repeat edges from switch bounce. 200ms is
// enough for the tact switches on the NanoHat.
const debounceInterval = 200 * time.Millisecond

// eventBuffer bounds the queue between edge detection and the tick loop.
const eventBuffer = 8

// buttonPin maps a physical button to its logical role. Names are tried in
// order; BCM-style aliases first, raw sysfs numbers as fallback.
type buttonPin struct {
	names []string
	event buttonEvent
}

var buttonPins = []buttonPin{
	{names: []string{"GPIO16", "16"}, event: evNextMode},
	{names: []string{"GPIO20", "20"}, event: evCycleTimezone},
	{names: []string{"GPIO21", "21"}, event: evForceSync},
}

type debouncer struct {
	last time.Time
}

// accept reports whether an edge at now is far enough from the previous
// accepted edge on the same source.
func (d *debouncer) accept(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < debounceInterval {
		return false
	}
	d.last = now
	return true
}

// watchButtons configures the three buttons (active-low, falling edge) and
// starts one edge-wait goroutine per pin. A pin that cannot be found or
// configured disables that button only. The returned func halts the pins.
func watchButtons() (<-chan buttonEvent, func()) {
	events := make(chan buttonEvent, eventBuffer)
	var pins []gpio.PinIO
	for _, bp := range buttonPins {
		p := lookupPin(bp.names)
		if p == nil {
			log.Printf("button %s: no pin among %v, disabled", bp.event, bp.names)
			continue
		}
		if err := p.In(gpio.PullUp, gpio.FallingEdge); err != nil {
			log.Printf("button %s: pin %s setup failed: %v", bp.event, p, err)
			continue
		}
		pins = append(pins, p)
		go watchPin(p, bp.event, events)
		log.Printf("button %s on pin %s", bp.event, p)
	}
	halt := func() {
		for _, p := range pins {
			_ = p.Halt()
		}
	}
	return events, halt
}

func lookupPin(names []string) gpio.PinIO {
	for _, name := range names {
		if p := gpioreg.ByName(name); p != nil {
			return p
		}
	}
	return nil
}

func watchPin(p gpio.PinIO, ev buttonEvent, events chan<- buttonEvent) {
	var d debouncer
	for {
		if !p.WaitForEdge(-1) {
			return
		}
		if p.Read() != gpio.Low {
			continue
		}
		if !d.accept(time.Now()) {
			continue
		}
		select {
		case events <- ev:
		default:
			// consumer is behind; dropping beats blocking the edge loop
		}
	}
}
