package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
)

const (
	serviceName = "oled-monitor.service"
	servicePath = "/etc/systemd/system/" + serviceName
)

const serviceUnit = `[Unit]
Description=OLED status monitor
After=network.target

[Service]
Type=simple
ExecStart=%s
Restart=always
RestartSec=10

[Install]
WantedBy=multi-user.target
`

// installService registers the current executable as a systemd unit so the
// monitor comes up at boot. Needs root.
func installService() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	unit := fmt.Sprintf(serviceUnit, exe)
	if err := os.WriteFile(servicePath, []byte(unit), 0o644); err != nil {
		return fmt.Errorf("write unit: %w", err)
	}
	if out, err := exec.Command("systemctl", "daemon-reload").CombinedOutput(); err != nil {
		return fmt.Errorf("daemon-reload: %v: %s", err, out)
	}
	if out, err := exec.Command("systemctl", "enable", serviceName).CombinedOutput(); err != nil {
		return fmt.Errorf("enable: %v: %s", err, out)
	}
	log.Printf("service installed: %s", servicePath)
	log.Printf("start with: systemctl start %s", serviceName)
	return nil
}
