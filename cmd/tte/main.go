// Command tte is a minimal modal-less terminal text editor.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/braheezy/tte/internal/debuglog"
	"github.com/braheezy/tte/internal/editor"
)

// Version is the compile-time release string, shown in the empty-
// buffer welcome banner.
const Version = "0.1.0"

var (
	debugLogPath string
	tabStop      int
)

var rootCmd = &cobra.Command{
	Use:   "tte [path]",
	Short: "A minimal terminal text editor",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&debugLogPath, "debug-log", "", "write one JSON debug record per input cycle to this file")
	rootCmd.Flags().IntVar(&tabStop, "tab-stop", 4, "column width a tab advances to")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v. Quitting tte...\r\n", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("tte requires an interactive terminal")
	}

	var sink editor.DebugSink
	if debugLogPath != "" {
		s, err := debuglog.Open(debugLogPath)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer s.Flush()
		sink = s
	}

	editor.Version = Version

	tty := editor.NewUnixTerminal(int(os.Stdin.Fd()), int(os.Stdout.Fd()), os.Stdin, os.Stdout)
	if err := tty.EnableRawMode(); err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer tty.DisableRawMode()

	ed := editor.New(tty, sink)
	ed.SetTabStop(tabStop)

	if err := ed.Init(); err != nil {
		return fmt.Errorf("initializing editor: %w", err)
	}

	exitErr := runLoop(ed, args)
	ed.ClearScreen()
	return exitErr
}

func runLoop(ed *editor.Editor, args []string) error {
	if len(args) >= 1 {
		if err := ed.Open(args[0]); err != nil {
			return err
		}
	}

	ed.SetStatusMessage("HELP: Ctrl-Q - quit | Ctrl-S - save | Ctrl-F - find | Ctrl-W - toggle wrap")

	for {
		if err := ed.RefreshScreen(); err != nil {
			return err
		}
		cont, err := ed.ProcessKeypress()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
