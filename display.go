package main

import (
	"image"
	"log"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
)

const (
	displayW = 128
	displayH = 64
)

// frameSink is the transmit side of the display boundary. *ssd1306.Dev
// satisfies it; nopSink stands in when no panel answers.
type frameSink interface {
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	Bounds() image.Rectangle
	Halt() error
}

type nopSink struct{}

func (nopSink) Draw(image.Rectangle, image.Image, image.Point) error { return nil }
func (nopSink) Bounds() image.Rectangle                              { return image.Rect(0, 0, displayW, displayH) }
func (nopSink) Halt() error                                          { return nil }

var (
	displayBuses = []string{"1", "0"}
	displayAddrs = []uint16{0x3C, 0x3D}
)

// probeDisplay walks the candidate buses and addresses for an SSD1306
// panel. Total failure is not fatal: the daemon keeps running against a
// no-op sink.
func probeDisplay(brightness int) frameSink {
	for _, ref := range displayBuses {
		bus, err := i2creg.Open(ref)
		if err != nil {
			continue
		}
		addr, found := pingDisplay(bus)
		if !found {
			bus.Close()
			continue
		}
		if addr != 0x3C {
			// the ssd1306 driver only speaks to 0x3C
			log.Printf("oled answers at bus %s addr %#02x, unsupported", ref, addr)
			bus.Close()
			continue
		}
		opts := ssd1306.DefaultOpts
		dev, err := ssd1306.NewI2C(bus, &opts)
		if err != nil {
			log.Printf("oled init on bus %s failed: %v", ref, err)
			bus.Close()
			continue
		}
		if err := dev.SetContrast(byte(brightness)); err != nil {
			log.Printf("oled contrast: %v", err)
		}
		log.Printf("oled initialized on bus %s addr %#02x", ref, addr)
		return dev
	}
	log.Printf("no oled display found, rendering to nothing")
	return nopSink{}
}

func pingDisplay(bus i2c.Bus) (uint16, bool) {
	for _, addr := range displayAddrs {
		d := i2c.Dev{Bus: bus, Addr: addr}
		if err := d.Tx([]byte{0x00}, nil); err == nil {
			return addr, true
		}
	}
	return 0, false
}
