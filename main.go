package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/hn-tui/internal/app"
	"github.com/atomicstack/hn-tui/internal/config"
	"github.com/atomicstack/hn-tui/internal/logging"
	"github.com/atomicstack/hn-tui/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty := probeTerminal()
	events.App.Start(startupTracePayload(cfg, tty))
	if tty.Detected == nil {
		fmt.Fprintln(os.Stderr, "Error: hn-tui must be run in a terminal")
		logging.Close()
		os.Exit(1)
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Close()
}

// startupTracePayload bundles the resolved configuration and the process
// context for the app.start trace event.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    tty,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalInfo struct {
	Detected *terminalSize   `json:"detected,omitempty"`
	Probes   []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

var standardDescriptors = []struct {
	name string
	file *os.File
}{
	{"stdin", os.Stdin},
	{"stdout", os.Stdout},
	{"stderr", os.Stderr},
}

// probeTerminal reports which standard descriptors are terminals. The first
// one with a readable size is recorded as Detected.
func probeTerminal() terminalInfo {
	info := terminalInfo{Probes: make([]terminalProbe, 0, len(standardDescriptors))}
	for _, d := range standardDescriptors {
		probe := terminalProbe{Name: d.name}
		fd := int(d.file.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			case info.Detected == nil:
				info.Detected = &terminalSize{Source: d.name, Width: width, Height: height}
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}
