// Package main implements flotilla, a floating window desk for the
// terminal. Mail composer, dialer, text threads, and notes live in
// floating windows that can be dragged, resized, minimized to a dock,
// and maximized, with the keyboard or the mouse.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode           bool
	cpuProfile          string
	asciiOnly           bool
	themeName           string
	borderStyle         string
	dockPosition        string
	hideWindowButtons   bool
	windowTitlePosition string
	hideClock           bool
	fps                 int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flotilla",
		Short: "Floating window desk for the terminal",
		Long: `Flotilla - a floating window desk for the terminal

Mail composer, dialer, text threads, and notes live in floating windows
that you drag, resize, minimize to a dock, and maximize, with the
keyboard or the mouse.`,
		Example: `  # Run flotilla
  flotilla

  # Run with a specific theme
  flotilla --theme dracula

  # Run with plain ASCII borders and icons
  flotilla --ascii

  # Interactively pick a theme with fzf
  flotilla --theme $(flotilla themes --plain | fzf)

  # Run as SSH server
  flotilla ssh --port 2222

  # Edit configuration
  flotilla config edit

  # List all keybindings
  flotilla keybinds list`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii", false, "Use plain ASCII characters for borders and icons")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&dockPosition, "dock-position", "", "Dock position: bottom, top, hidden (default: from config or bottom)")
	rootCmd.PersistentFlags().BoolVar(&hideWindowButtons, "hide-window-buttons", false, "Hide window control buttons (minimize, maximize, close)")
	rootCmd.PersistentFlags().StringVar(&windowTitlePosition, "title-position", "", "Window title position: top, bottom, hidden (default: from config or top)")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the status bar clock")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.NormalFPS, "Maximum render rate")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run flotilla as SSH server",
		Long: `Run flotilla as an SSH server

Allows remote connections to flotilla via SSH. Every connection gets its
own desk sized to the client terminal. The server will generate a host
key automatically if not specified.`,
		Example: `  # Start SSH server on defaults
  flotilla ssh

  # Start on custom port
  flotilla ssh --port 2222

  # Specify custom host key
  flotilla ssh --host-key /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshHost, "host", "", "SSH server host (default: from config or localhost)")
	sshCmd.Flags().StringVar(&sshPort, "port", "", "SSH server port (default: from config or 2222)")
	sshCmd.Flags().StringVar(&sshKeyPath, "host-key", "", "Path to SSH host key (default: from config, auto-generated if missing)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage flotilla configuration",
		Long:  `Manage flotilla configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the flotilla configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the flotilla configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the flotilla configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect flotilla keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCustomCmd := &cobra.Command{
		Use:   "list-custom",
		Short: "List customized keybindings",
		Long: `Display only keybindings that differ from defaults

Shows a comparison of default and custom keybindings.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listCustomKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd, keybindsCustomCmd)

	var themesPlain bool

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Long: `List all available color themes with a swatch preview

Includes built-in themes and any custom themes found in the themes
directory next to the configuration file.`,
		Example: `  # List themes with color swatches
  flotilla themes

  # Print theme IDs only, for scripting
  flotilla themes --plain`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listThemes(themesPlain)
		},
	}

	themesCmd.Flags().BoolVar(&themesPlain, "plain", false, "Print theme IDs only, one per line")

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd, themesCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
