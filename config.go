package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

type config struct {
	Timezone        string   `json:"timezone"`
	Brightness      int      `json:"display_brightness"`
	NTPServers      []string `json:"ntp_servers"`
	RefreshRate     float64  `json:"refresh_rate"`
	TemperatureUnit string   `json:"temperature_unit"`
	ShowSeconds     bool     `json:"show_seconds"`
}

func defaultConfig() config {
	return config{
		Timezone:        "UTC",
		Brightness:      255,
		NTPServers:      []string{"pool.ntp.org", "time.google.com"},
		RefreshRate:     1.0,
		TemperatureUnit: "C",
		ShowSeconds:     true,
	}
}

// timezones is the fixed cycle order for the timezone button.
var timezones = []string{
	"UTC",
	"Europe/London",
	"Europe/Berlin",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"America/New_York",
	"America/Los_Angeles",
}

func nextTimezone(current string) string {
	idx := 0
	for i, tz := range timezones {
		if tz == current {
			idx = i
			break
		}
	}
	return timezones[(idx+1)%len(timezones)]
}

// loadConfig merges stored settings over the defaults. A missing or
// malformed file is not an error; the defaults stand in.
func loadConfig(path string) config {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config load skipped: %v", err)
		return cfg
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		log.Printf("config parse failed, using defaults: %v", err)
		return defaultConfig()
	}
	return clampConfig(cfg)
}

func clampConfig(cfg config) config {
	if cfg.Brightness < 0 {
		cfg.Brightness = 0
	}
	if cfg.Brightness > 255 {
		cfg.Brightness = 255
	}
	if cfg.RefreshRate <= 0 {
		cfg.RefreshRate = defaultConfig().RefreshRate
	}
	switch cfg.TemperatureUnit {
	case "C", "F":
	case "c":
		cfg.TemperatureUnit = "C"
	case "f":
		cfg.TemperatureUnit = "F"
	default:
		cfg.TemperatureUnit = "C"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultConfig().Timezone
	}
	if len(cfg.NTPServers) == 0 {
		cfg.NTPServers = defaultConfig().NTPServers
	}
	return cfg
}

func saveConfig(path string, cfg config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
