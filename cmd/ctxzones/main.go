// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	latest "github.com/tcnksm/go-latest"

	"github.com/ctxzones/ctxzones"
	"github.com/ctxzones/ctxzones/internal/mcp"
	"github.com/ctxzones/ctxzones/internal/tui"
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	zoneStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	noteStyle  = lipgloss.NewStyle().Italic(true).Faint(true)
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "ctxzones",
		Repository: "ctxzones",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\nA new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("Download it from https://github.com/ctxzones/ctxzones/releases")
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctxzones [options] [path]\n\n")
		fmt.Fprintf(os.Stderr, "ctxzones detects which behavioral zone a filesystem path belongs to\n")
		fmt.Fprintf(os.Stderr, "and resolves that zone's inherited configuration.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ctxzones                     # Detect zone for current directory\n")
		fmt.Fprintf(os.Stderr, "  ctxzones ~/Projects/myapp    # Check a specific path\n")
		fmt.Fprintf(os.Stderr, "  ctxzones --config            # Output the zone's behavioral instructions\n")
		fmt.Fprintf(os.Stderr, "  ctxzones --with-inheritance  # Include inherited zone configs\n")
		fmt.Fprintf(os.Stderr, "  ctxzones --metrics           # Show usage statistics\n")
		fmt.Fprintf(os.Stderr, "  ctxzones --serve             # Run the MCP stdio server\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output as JSON")
	configFlag := pflag.BoolP("config", "c", false, "Output the zone's configuration content")
	inheritFlag := pflag.Bool("with-inheritance", false, "Include inherited zone configs (use with --config)")
	zoneOnlyFlag := pflag.Bool("zone-only", false, "Output only the zone name")
	logFlag := pflag.BoolP("log", "l", false, "Log this detection for usage metrics")
	metricsFlag := pflag.BoolP("metrics", "m", false, "Show zone usage metrics")
	listFlag := pflag.Bool("list-zones", false, "List all available zones")
	initFlag := pflag.Bool("init", false, "Initialize user configuration")
	hookFlag := pflag.Bool("hook", false, "Output hook script for automatic zone loading")
	serveFlag := pflag.BoolP("serve", "s", false, "Run the MCP server over stdin/stdout")
	tuiFlag := pflag.BoolP("tui", "t", false, "Browse zones interactively")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("ctxzones version %s\n", ctxzones.Version)
		return
	}

	if *updateFlag {
		checkUpdate(ctxzones.Version)
		return
	}

	detector := ctxzones.NewDetector()

	switch {
	case *initFlag:
		runInit(detector)
	case *hookFlag:
		fmt.Print(ctxzones.HookScript())
	case *serveFlag:
		runServe(detector)
	case *tuiFlag:
		runTui(detector)
	case *metricsFlag:
		runMetrics(detector, *jsonFlag)
	case *listFlag:
		runListZones(detector, *jsonFlag)
	default:
		runDetect(detector, pflag.Arg(0), *jsonFlag, *configFlag, *inheritFlag, *zoneOnlyFlag, *logFlag)
	}
}

func runInit(detector *ctxzones.Detector) {
	created, err := detector.Config.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing user configuration: %v\n", err)
		os.Exit(1)
	}

	if len(created) == 0 {
		fmt.Println("Already initialized")
		return
	}

	fmt.Printf("Initialized: %s\n", strings.Join(created, ", "))
}

func runServe(detector *ctxzones.Detector) {
	fmt.Fprintf(os.Stderr, "[ctxzones] v%s — MCP server on stdio\n", ctxzones.Version)
	if err := mcp.NewServer(detector).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "[ctxzones] transport error: %v\n", err)
		os.Exit(1)
	}
}

func runTui(detector *ctxzones.Detector) {
	m := tui.InitialModel(detector)
	if _, err := tea.NewProgram(&m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running zone browser: %v\n", err)
		os.Exit(1)
	}
}

func runMetrics(detector *ctxzones.Detector, asJSON bool) {
	summary := detector.Metrics.Summarize()

	if asJSON {
		printJSON(summary)
		return
	}

	fmt.Printf("Total detections: %d\n", summary.Total)

	type zoneCount struct {
		zone  string
		count int
	}

	counts := make([]zoneCount, 0, len(summary.Zones))
	for zone, count := range summary.Zones {
		counts = append(counts, zoneCount{zone, count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}

		return counts[i].zone < counts[j].zone
	})

	if len(counts) > 0 {
		fmt.Println("\nZone usage counts:")
		for _, c := range counts {
			fmt.Printf("  %s: %d\n", zoneStyle.Render(c.zone), c.count)
		}
	}

	if len(summary.Recent) > 0 {
		fmt.Println("\nRecent:")
		for i, entry := range summary.Recent {
			if i >= 5 {
				break
			}

			fmt.Printf("  %s - %s\n", zoneStyle.Render(entry.Zone), entry.Path)
		}
	}
}

func runListZones(detector *ctxzones.Detector, asJSON bool) {
	registry := detector.Config.Registry()

	if asJSON {
		printJSON(registry.Names())
		return
	}

	fmt.Println("Available zones:")
	for _, zone := range registry.Zones() {
		line := "  " + zoneStyle.Render(zone.Name)
		if len(zone.Inherits) > 0 {
			line += noteStyle.Render(" (inherits: " + strings.Join(zone.Inherits, ", ") + ")")
		}

		fmt.Println(line)
	}
}

func runDetect(detector *ctxzones.Detector, path string, asJSON, config, withInheritance, zoneOnly, log bool) {
	result, err := detector.Detect(path, ctxzones.DetectOptions{Log: log})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error detecting zone: %v\n", err)
		os.Exit(1)
	}

	switch {
	case zoneOnly:
		fmt.Println(result.Zone)
	case config:
		if withInheritance {
			fmt.Println(detector.InheritedConfig(result.Zone, nil))
		} else {
			fmt.Println(detector.ConfigContent(result.Config))
		}
	case asJSON:
		printJSON(result)
	default:
		fmt.Printf("%s %s\n", labelStyle.Render("Zone:"), zoneStyle.Render(result.Zone))
		fmt.Printf("%s %s\n", labelStyle.Render("Config:"), result.Config)
		if result.MatchedPattern != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Matched:"), result.MatchedPattern)
		}

		if len(result.Inheritance) > 1 {
			fmt.Printf("%s %s\n", labelStyle.Render("Inherits:"), strings.Join(result.Inheritance, " -> "))
		}

		if result.Override {
			fmt.Println(noteStyle.Render("(via " + ctxzones.MarkerFileName + " override)"))
		}
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
