package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andareed/tickdown/alert"
	"github.com/andareed/tickdown/countdown"
	"github.com/andareed/tickdown/logging"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	logFile = flag.String("debug", "", "Write Debug Logs to file")
	silent  = flag.Bool("silent", false, "Disable the completion tone")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.Setup(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("tickdown: Started")

	initial := countdown.Default
	if args := flag.Args(); len(args) > 0 {
		initial = countdown.Parse(args[0])
		if initial.IsZero() {
			fmt.Printf("Cannot start from %q\n", args[0])
			fmt.Println("Usage: tickdown [--debug debug.log] [--silent] [HH:MM:SS|MM:SS]")
			os.Exit(1)
		}
	}

	var notifier countdown.Notifier = alert.Speaker{}
	if *silent {
		notifier = alert.Nop{}
	}

	m := newModel(initial, notifier)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
