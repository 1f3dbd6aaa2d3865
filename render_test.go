package main

import (
	"strings"
	"testing"
	"time"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func lineText(lines []textLine) string {
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln.s)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestTempStatusBanding(t *testing.T) {
	tests := []struct {
		celsius float64
		want    string
	}{
		{49.9, "COOL"},
		{50.0, "WARM"},
		{69.9, "WARM"},
		{70.0, "HOT!"},
		{-10, "COOL"},
	}
	for _, tt := range tests {
		if got := tempStatus(tt.celsius); got != tt.want {
			t.Errorf("tempStatus(%v) = %q, want %q", tt.celsius, got, tt.want)
		}
	}
}

func TestCToF(t *testing.T) {
	if got := cToF(0); got != 32.0 {
		t.Errorf("cToF(0) = %v, want 32", got)
	}
	if got := cToF(100); got != 212.0 {
		t.Errorf("cToF(100) = %v, want 212", got)
	}
}

func TestRenderTemperatureFahrenheit(t *testing.T) {
	got := lineText(renderTemperature(50.0, true, "F"))
	if !strings.Contains(got, "122.0F") {
		t.Errorf("no fahrenheit line in %q", got)
	}
	if !strings.Contains(got, "50.0C") {
		t.Errorf("celsius not shown alongside in %q", got)
	}
	if !strings.Contains(got, "Status: WARM") {
		t.Errorf("no status line in %q", got)
	}
}

func TestRenderTemperatureCelsius(t *testing.T) {
	got := lineText(renderTemperature(42.5, true, "C"))
	if !strings.Contains(got, "42.5C") || strings.Contains(got, "F") {
		t.Errorf("unexpected lines %q", got)
	}
}

func TestRenderPlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		lines []textLine
		want  string
	}{
		{"system", renderSystemInfo(systemInfo{}, false), "System info unavailable"},
		{"network", renderNetworkInfo(networkInfo{}, false), "Network unavailable"},
		{"temperature", renderTemperature(0, false, "C"), "Sensor unavailable"},
		{"uptime", renderUptime(uptimeInfo{}, false), "Uptime unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lineText(tt.lines); !strings.Contains(got, tt.want) {
				t.Errorf("got %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestRenderNetworkInfo(t *testing.T) {
	info := networkInfo{
		addrs:  []string{"192.168.1.5", "10.0.0.7", "172.16.0.9"},
		sentMB: 120,
		recvMB: 4096,
	}
	got := lineText(renderNetworkInfo(info, true))
	if !strings.Contains(got, "IP: 192.168.1.5") || !strings.Contains(got, "IP: 10.0.0.7") {
		t.Errorf("first two addresses missing in %q", got)
	}
	if strings.Contains(got, "172.16.0.9") {
		t.Errorf("third address should not be shown: %q", got)
	}
	if !strings.Contains(got, "TX: 120MB") || !strings.Contains(got, "RX: 4096MB") {
		t.Errorf("counters missing in %q", got)
	}
}

func TestRenderNetworkInfoNoAddrs(t *testing.T) {
	got := lineText(renderNetworkInfo(networkInfo{}, true))
	if !strings.Contains(got, "No IP address") {
		t.Errorf("got %q, want a no-address line", got)
	}
}

func TestRenderDateTime(t *testing.T) {
	now := time.Date(2026, time.March, 9, 14, 30, 45, 0, time.UTC)

	got := lineText(renderDateTime(now, "America/New_York", true, now.Add(-time.Minute)))
	if !strings.Contains(got, "14:30:45") {
		t.Errorf("seconds missing in %q", got)
	}
	if !strings.Contains(got, "TZ: New_York") {
		t.Errorf("timezone short name missing in %q", got)
	}
	if !strings.Contains(got, "NTP: Synced") {
		t.Errorf("sync status missing in %q", got)
	}

	got = lineText(renderDateTime(now, "UTC", false, time.Time{}))
	if strings.Contains(got, "14:30:45") || !strings.Contains(got, "14:30") {
		t.Errorf("seconds not suppressed in %q", got)
	}
	if !strings.Contains(got, "NTP: Never") {
		t.Errorf("never-synced status missing in %q", got)
	}
}

func TestNTPStatus(t *testing.T) {
	now := time.Now()
	if got := ntpStatus(time.Time{}, now); got != "Never" {
		t.Errorf("zero last sync: %q", got)
	}
	if got := ntpStatus(now.Add(-time.Hour), now); got != "Synced" {
		t.Errorf("1h old: %q", got)
	}
	if got := ntpStatus(now.Add(-3*time.Hour), now); got != "Old" {
		t.Errorf("3h old: %q", got)
	}
}

func TestRasterize(t *testing.T) {
	frame := rasterize([]textLine{{0, "CPU: 12.3%"}, {48, "bottom"}})
	if got := frame.Bounds(); got.Dx() != displayW || got.Dy() != displayH {
		t.Fatalf("bounds = %v", got)
	}
	lit := 0
	for y := 0; y < displayH; y++ {
		for x := 0; x < displayW; x++ {
			if frame.BitAt(x, y) == image1bit.On {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no pixels set")
	}
}

func TestRasterizeEmpty(t *testing.T) {
	frame := rasterize(nil)
	for y := 0; y < displayH; y++ {
		for x := 0; x < displayW; x++ {
			if frame.BitAt(x, y) == image1bit.On {
				t.Fatalf("pixel (%d,%d) set on empty frame", x, y)
			}
		}
	}
}
