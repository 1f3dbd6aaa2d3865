package main

import (
	"image"
	"log"
	"sync"
	"time"
)

type displayMode int

const (
	modeDateTime displayMode = iota
	modeSystemInfo
	modeNetworkInfo
	modeTemperature
	modeUptime
	modeCount
)

func (m displayMode) String() string {
	switch m {
	case modeDateTime:
		return "datetime"
	case modeSystemInfo:
		return "system-info"
	case modeNetworkInfo:
		return "network-info"
	case modeTemperature:
		return "temperature"
	case modeUptime:
		return "uptime"
	}
	return "unknown"
}

// monitor owns the current display mode and the periodic refresh loop.
// mu serializes the render/transmit path: a button-triggered redraw and
// the tick never interleave writes to the panel.
type monitor struct {
	mu      sync.Mutex
	cfg     config
	cfgPath string
	mode    displayMode
	loc     *time.Location
	sink    frameSink
	syncer  *syncer

	// metric readers, swapped out in tests
	readSystem  func() (systemInfo, bool)
	readNetwork func() (networkInfo, bool)
	readTemp    func() (float64, bool)
	readUptime  func() (uptimeInfo, bool)
}

func newMonitor(cfg config, cfgPath string, sink frameSink, sy *syncer) *monitor {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("timezone %q unavailable, using UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}
	return &monitor{
		cfg:         cfg,
		cfgPath:     cfgPath,
		mode:        modeDateTime,
		loc:         loc,
		sink:        sink,
		syncer:      sy,
		readSystem:  readSystemInfo,
		readNetwork: readNetworkInfo,
		readTemp:    readTemperature,
		readUptime:  readUptime,
	}
}

// run is the tick loop. Each tick checks clock staleness, redraws the
// current mode from fresh data, then sleeps the rest of the refresh
// period while draining button events. Returns when stop closes.
func (m *monitor) run(stop <-chan struct{}, events <-chan buttonEvent) {
	for {
		tickStart := time.Now()
		m.maybeAutoSync()
		m.redraw()

		period := time.Duration(m.cfg.RefreshRate * float64(time.Second))
	sleep:
		for {
			remaining := period - time.Since(tickStart)
			if remaining <= 0 {
				break
			}
			select {
			case <-stop:
				return
			case ev := <-events:
				m.handleEvent(ev)
			case <-time.After(remaining):
				break sleep
			}
		}
		select {
		case <-stop:
			return
		default:
		}
	}
}

func (m *monitor) maybeAutoSync() {
	if m.syncer.age() > syncInterval {
		go m.syncer.attempt(m.cfg.NTPServers)
	}
}

func (m *monitor) handleEvent(ev buttonEvent) {
	switch ev {
	case evNextMode:
		m.mu.Lock()
		m.mode = (m.mode + 1) % modeCount
		mode := m.mode
		m.mu.Unlock()
		log.Printf("mode: %s", mode)
		m.redraw()
	case evCycleTimezone:
		m.cycleTimezone()
		m.redraw()
	case evForceSync:
		go m.syncer.attempt(m.cfg.NTPServers)
	}
}

// cycleTimezone advances the fixed timezone list, re-derives the active
// location and persists the config. A failed save only loses persistence,
// the new timezone stays active.
func (m *monitor) cycleTimezone() {
	m.mu.Lock()
	next := nextTimezone(m.cfg.Timezone)
	m.cfg.Timezone = next
	loc, err := time.LoadLocation(next)
	if err != nil {
		log.Printf("timezone %q unavailable: %v", next, err)
		loc = time.UTC
	}
	m.loc = loc
	cfg := m.cfg
	m.mu.Unlock()

	if err := saveConfig(m.cfgPath, cfg); err != nil {
		log.Printf("config save failed: %v", err)
	}
	log.Printf("timezone: %s", next)
}

func (m *monitor) redraw() {
	m.mu.Lock()
	defer m.mu.Unlock()
	frame := rasterize(m.renderCurrent())
	if err := m.sink.Draw(m.sink.Bounds(), frame, image.Point{}); err != nil {
		log.Printf("display draw failed: %v", err)
	}
}

// renderCurrent fetches data for the active mode only and formats it.
// Any fault degrades to the error frame; the loop never aborts.
func (m *monitor) renderCurrent() (lines []textLine) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render %s failed: %v", m.mode, r)
			lines = renderError()
		}
	}()
	switch m.mode {
	case modeSystemInfo:
		info, ok := m.readSystem()
		return renderSystemInfo(info, ok)
	case modeNetworkInfo:
		info, ok := m.readNetwork()
		return renderNetworkInfo(info, ok)
	case modeTemperature:
		c, ok := m.readTemp()
		return renderTemperature(c, ok, m.cfg.TemperatureUnit)
	case modeUptime:
		up, ok := m.readUptime()
		return renderUptime(up, ok)
	default:
		return renderDateTime(time.Now().In(m.loc), m.cfg.Timezone, m.cfg.ShowSeconds, m.syncer.last())
	}
}
