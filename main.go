package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"teleprompter/app"
	"teleprompter/config"
	"teleprompter/keys"
	"teleprompter/log"
	"teleprompter/picker"
	"teleprompter/protocol"
	"teleprompter/state"
	"teleprompter/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "0.3.0"
	rootCmd = &cobra.Command{
		Use:   "teleprompter [script]",
		Short: "Teleprompter - an always-on-top prompter for presenters.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Initialize()
			defer log.Close()
			log.InitDebug()
			defer log.CloseDebug()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("teleprompter needs an interactive terminal")
			}

			cfg := config.LoadConfig()
			file, err := config.DefaultStateFile(cfg)
			if err != nil {
				return fmt.Errorf("failed to locate state file: %w", err)
			}

			writer := config.NewStateWriter(file, cfg.SaveDebounce())
			defer writer.Flush()

			screen := cfg.Screen()
			store := state.NewStore(file.Load(), state.Options{
				Screen:      screen,
				Persister:   writer,
				SampleDelay: cfg.SampleDebounce(),
			})
			// Runs before writer.Flush so a pending drag reaches the disk.
			defer store.Close()

			window := ui.NewWindow()
			store.Attach(window)
			defer store.Detach()

			bridge := protocol.NewBridge(store, protocol.NewHub(), picker.New())
			if len(args) == 1 {
				path, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}
				if _, err := bridge.LoadScript(path); err != nil {
					return err
				}
			}

			return app.Run(ctx, app.Deps{
				Bridge:  bridge,
				Window:  window,
				Screen:  screen,
				Hotkeys: keys.NewHotkeyMap(cfg.Hotkeys),
			})
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved settings and script",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			file, err := config.DefaultStateFile(cfg)
			if err != nil {
				return fmt.Errorf("failed to locate state file: %w", err)
			}
			if err := file.Delete(); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
			fmt.Println("State has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")
			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			file := config.NewStateFile(cfg.StatePath(configDir))
			stateJson, _ := json.MarshalIndent(file.Load(), "", "  ")
			fmt.Printf("State: %s\n%s\n", file.Path(), stateJson)

			fmt.Println("Hotkeys:")
			for _, hk := range keys.NewHotkeyMap(cfg.Hotkeys).Bindings() {
				fmt.Printf("  %-20s %s\n", hk.Accelerator, hk.Command)
			}
			fmt.Printf("Log: %s\n", log.FileName())

			return nil
		},
	}

	sendCmd = &cobra.Command{
		Use:   "send <command>",
		Short: "Apply a command to the saved state",
		Long: "Apply a command to the saved state, for binding to system-wide shortcuts.\n" +
			"Commands: " + commandList(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			file, err := config.DefaultStateFile(cfg)
			if err != nil {
				return fmt.Errorf("failed to locate state file: %w", err)
			}

			writer := config.NewStateWriter(file, -1)
			store := state.NewStore(file.Load(), state.Options{Screen: cfg.Screen(), Persister: writer})
			defer store.Close()

			bridge := protocol.NewBridge(store, protocol.NewHub(), nil)
			if !bridge.SendCommand(args[0]) {
				return fmt.Errorf("unknown command %q, expected one of: %s", args[0], commandList())
			}
			if err := writer.Err(); err != nil {
				return err
			}

			st := bridge.Bootstrap()
			fmt.Printf("%s: %s, %d px/s, %dpx, %s\n", args[0], st.PlaybackStatus,
				st.Settings.SpeedPxPerSec, st.Settings.FontSizePx, st.Settings.Mode)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of teleprompter",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("teleprompter version %s\n", version)
		},
	}
)

func commandList() string {
	var names []string
	for _, c := range state.Commands() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
