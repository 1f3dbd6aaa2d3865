package main

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// cpuSampleWindow bounds the blocking cpu.Percent call on the tick path.
const cpuSampleWindow = 250 * time.Millisecond

type systemInfo struct {
	cpuPercent  float64
	memPercent  float64
	memUsedMB   uint64
	memTotalMB  uint64
	diskPercent float64
	diskUsedGB  uint64
	diskTotalGB uint64
}

type networkInfo struct {
	addrs  []string
	sentMB uint64
	recvMB uint64
}

type uptimeInfo struct {
	days    uint64
	hours   uint64
	minutes uint64
}

func readSystemInfo() (systemInfo, bool) {
	pct, err := cpu.Percent(cpuSampleWindow, false)
	if err != nil || len(pct) == 0 {
		return systemInfo{}, false
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return systemInfo{}, false
	}
	du, err := disk.Usage("/")
	if err != nil {
		return systemInfo{}, false
	}
	return systemInfo{
		cpuPercent:  pct[0],
		memPercent:  vm.UsedPercent,
		memUsedMB:   vm.Used >> 20,
		memTotalMB:  vm.Total >> 20,
		diskPercent: du.UsedPercent,
		diskUsedGB:  du.Used >> 30,
		diskTotalGB: du.Total >> 30,
	}, true
}

func readNetworkInfo() (networkInfo, bool) {
	counters, err := psnet.IOCounters(false)
	if err != nil || len(counters) == 0 {
		return networkInfo{}, false
	}
	info := networkInfo{
		sentMB: counters[0].BytesSent >> 20,
		recvMB: counters[0].BytesRecv >> 20,
	}
	if ifaces, err := psnet.Interfaces(); err == nil {
		info.addrs = localIPv4Addrs(ifaces)
	}
	return info, true
}

func localIPv4Addrs(ifaces psnet.InterfaceStatList) []string {
	var addrs []string
	for _, ifc := range ifaces {
		if hasFlag(ifc.Flags, "loopback") {
			continue
		}
		for _, addr := range ifc.Addrs {
			ip, _, err := net.ParseCIDR(addr.Addr)
			if err != nil {
				ip = net.ParseIP(addr.Addr)
			}
			if ip == nil || ip.To4() == nil {
				continue
			}
			addrs = append(addrs, ip.String())
		}
	}
	return addrs
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

// thermalPaths are tried in order; values are millidegrees Celsius.
var thermalPaths = []string{
	"/sys/class/thermal/thermal_zone0/temp",
	"/sys/class/hwmon/hwmon0/temp1_input",
}

func readTemperature() (float64, bool) {
	if c, ok := readThermalFiles(thermalPaths); ok {
		return c, true
	}
	if temps, err := host.SensorsTemperatures(); err == nil {
		for _, t := range temps {
			if t.Temperature != 0 {
				return t.Temperature, true
			}
		}
	}
	return 0, false
}

func readThermalFiles(paths []string) (float64, bool) {
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
		if err != nil {
			continue
		}
		return v / 1000.0, true
	}
	return 0, false
}

func readUptime() (uptimeInfo, bool) {
	seconds, err := host.Uptime()
	if err != nil {
		return uptimeInfo{}, false
	}
	return splitUptime(seconds), true
}

func splitUptime(seconds uint64) uptimeInfo {
	return uptimeInfo{
		days:    seconds / 86400,
		hours:   (seconds % 86400) / 3600,
		minutes: (seconds % 3600) / 60,
	}
}
