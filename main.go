package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"periph.io/x/host/v3"
)

func main() {
	home, _ := os.UserHomeDir()
	configPath := flag.String("config", filepath.Join(home, ".oled-monitor.json"), "settings file path")
	installFlag := flag.Bool("install-service", false, "install and enable a systemd unit, then exit")
	flag.Parse()

	if *installFlag {
		if err := installService(); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg := loadConfig(*configPath)

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	sink := probeDisplay(cfg.Brightness)
	defer func() {
		if err := sink.Halt(); err != nil {
			log.Printf("display halt: %v", err)
		}
	}()

	events, haltButtons := watchButtons()
	defer haltButtons()

	sy := newSyncer()
	go sy.attempt(cfg.NTPServers)

	stop := make(chan struct{})
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		log.Printf("signal %s, shutting down", s)
		close(stop)
	}()

	m := newMonitor(cfg, *configPath, sink, sy)
	log.Printf("oled monitor started, refresh %.1fs", cfg.RefreshRate)
	m.run(stop, events)
	log.Printf("oled monitor stopped")
}
