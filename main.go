package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/astrolul/tinydaw/internal/app"
	"github.com/astrolul/tinydaw/internal/services"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	services.Shared().Set("debug", *debug)
	if *debug {
		if err := services.InitLogger("logs.log"); err != nil {
			fmt.Printf("Could not open log file: %v\n", err)
			os.Exit(1)
		}
	}

	registry, err := app.DefaultRegistry()
	if err != nil {
		fmt.Printf("Invalid view set: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app.NewRouterModel(registry), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_ = services.Logger().Error(fmt.Sprintf("Unexpected error: %v", err))
		fmt.Printf("An unexpected error has occurred.\n")
		os.Exit(1)
	}

	_ = services.Logger().Info("Exited gracefully")
}
