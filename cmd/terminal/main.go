package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/sevigo/review-analyzer/internal/config"
	"github.com/sevigo/review-analyzer/internal/prefs"
)

func main() {
	themeFlag := flag.String("theme", "", "UI theme for this session (light, dark)")
	listThemes := flag.Bool("list-themes", false, "List all available themes")
	flag.Parse()

	if *listThemes {
		fmt.Println("Available themes:")
		for _, theme := range prefs.ListThemes() {
			fmt.Printf("  - %s\n", theme)
		}
		os.Exit(0)
	}

	var override prefs.Theme
	if *themeFlag != "" {
		theme, ok := prefs.ParseTheme(*themeFlag)
		if !ok {
			fmt.Printf("Invalid theme '%s'. Use --list-themes to see available options.\n", *themeFlag)
			os.Exit(1)
		}
		override = theme
	}

	// The alternate screen owns stdout, so logs always go to the log file.
	viper.Set(config.KeyLogOutput, "file")

	m := initialModel(override)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.shutdown()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
