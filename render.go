package main

import (
	"fmt"
	"image"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// textLine is one row of the 128x64 layout; y is the top of the line.
type textLine struct {
	y int
	s string
}

func renderDateTime(now time.Time, tzName string, showSeconds bool, lastSync time.Time) []textLine {
	timeFormat := "15:04:05"
	if !showSeconds {
		timeFormat = "15:04"
	}
	short := tzName
	if i := strings.LastIndex(tzName, "/"); i >= 0 {
		short = tzName[i+1:]
	}
	return []textLine{
		{0, now.Format("Mon, Jan 02 2006")},
		{16, now.Format(timeFormat)},
		{32, "TZ: " + short},
		{48, "NTP: " + ntpStatus(lastSync, now)},
	}
}

// ntpStatus bands the clock staleness: Synced within two sync intervals,
// Old beyond, Never before the first success.
func ntpStatus(lastSync, now time.Time) string {
	if lastSync.IsZero() {
		return "Never"
	}
	if now.Sub(lastSync) < 2*syncInterval {
		return "Synced"
	}
	return "Old"
}

func renderSystemInfo(info systemInfo, ok bool) []textLine {
	if !ok {
		return []textLine{{0, "System info unavailable"}}
	}
	return []textLine{
		{0, fmt.Sprintf("CPU: %.1f%%", info.cpuPercent)},
		{12, fmt.Sprintf("RAM: %.1f%%", info.memPercent)},
		{24, fmt.Sprintf("     %d/%dMB", info.memUsedMB, info.memTotalMB)},
		{36, fmt.Sprintf("Disk: %.1f%%", info.diskPercent)},
		{48, fmt.Sprintf("      %d/%dGB", info.diskUsedGB, info.diskTotalGB)},
	}
}

func renderNetworkInfo(info networkInfo, ok bool) []textLine {
	if !ok {
		return []textLine{{0, "Network unavailable"}}
	}
	lines := []textLine{{0, "Network Info"}}
	y := 12
	if len(info.addrs) == 0 {
		lines = append(lines, textLine{y, "No IP address"})
		y += 12
	}
	for i, ip := range info.addrs {
		if i >= 2 {
			break
		}
		lines = append(lines, textLine{y, "IP: " + ip})
		y += 12
	}
	lines = append(lines,
		textLine{y, fmt.Sprintf("TX: %dMB", info.sentMB)},
		textLine{y + 12, fmt.Sprintf("RX: %dMB", info.recvMB)},
	)
	return lines
}

func renderTemperature(celsius float64, ok bool, unit string) []textLine {
	lines := []textLine{{0, "Temperature"}}
	if !ok {
		return append(lines, textLine{16, "Sensor unavailable"})
	}
	if unit == "F" {
		lines = append(lines,
			textLine{16, fmt.Sprintf("CPU: %.1fF", cToF(celsius))},
			textLine{28, fmt.Sprintf("     %.1fC", celsius)},
		)
	} else {
		lines = append(lines, textLine{16, fmt.Sprintf("CPU: %.1fC", celsius)})
	}
	return append(lines, textLine{40, "Status: " + tempStatus(celsius)})
}

func cToF(c float64) float64 {
	return c*9/5 + 32
}

func tempStatus(celsius float64) string {
	switch {
	case celsius < 50:
		return "COOL"
	case celsius < 70:
		return "WARM"
	default:
		return "HOT!"
	}
}

func renderUptime(up uptimeInfo, ok bool) []textLine {
	lines := []textLine{{0, "System Uptime"}}
	if !ok {
		return append(lines, textLine{16, "Uptime unavailable"})
	}
	return append(lines,
		textLine{16, fmt.Sprintf("Days: %d", up.days)},
		textLine{28, fmt.Sprintf("Hours: %d", up.hours)},
		textLine{40, fmt.Sprintf("Minutes: %d", up.minutes)},
	)
}

func renderError() []textLine {
	return []textLine{{0, "Error"}}
}

// rasterize draws the lines with the 7x13 bitmap face into a fresh 1-bit
// frame in the ssd1306's native vertical-LSB layout.
func rasterize(lines []textLine) *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, displayW, displayH))
	for _, ln := range lines {
		drawText(img, 0, ln.y, ln.s)
	}
	return img
}

func drawText(img *image1bit.VerticalLSB, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(image1bit.On),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}
