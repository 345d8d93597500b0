package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/flotilla-sh/flotilla/internal/app"
	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/input"
	"github.com/flotilla-sh/flotilla/internal/server"
	"golang.org/x/term"
)

// filterMouseMotion filters out redundant mouse motion events to reduce
// CPU usage. Only passes through mouse motion during drag/resize
// operations.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	m, ok := model.(*app.Manager)
	if !ok {
		return msg
	}

	if m.Interacting() {
		return msg
	}

	return nil
}

// enableDebugLog points FLOTILLA_DEBUG at a log file so the in-app log
// has somewhere to persist. An explicit FLOTILLA_DEBUG wins over the
// default location.
func enableDebugLog() {
	if os.Getenv("FLOTILLA_DEBUG") == "" {
		_ = os.Setenv("FLOTILLA_DEBUG", filepath.Join(os.TempDir(), "flotilla-debug.log"))
	}
	fmt.Println("Debug logging to", os.Getenv("FLOTILLA_DEBUG"))
}

func runLocal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("flotilla requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	if debugMode {
		enableDebugLog()
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:           asciiOnly,
		BorderStyle:         borderStyle,
		DockPosition:        dockPosition,
		HideWindowButtons:   hideWindowButtons,
		WindowTitlePosition: windowTitlePosition,
		HideClock:           hideClock,
		ThemeName:           themeName,
	}, userConfig)

	// Terminals that cannot render Unicode get the ASCII decorations
	// whether they asked or not.
	if profile := colorprofile.Detect(os.Stdout, os.Environ()); profile == colorprofile.Ascii || profile == colorprofile.NoTTY {
		config.UseASCIIOnly = true
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Printf("Warning: failed to close CPU profile file: %v", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	app.SetInputHandler(input.HandleInput)

	keybindRegistry := config.NewKeybindRegistry(userConfig)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		log.Printf("Configuration: %s", configPath)
	}

	m := app.NewManager(0, 0, keybindRegistry)

	p := tea.NewProgram(
		m,
		tea.WithFPS(fps),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

func runServe(sshHost, sshPort, sshKeyPath string) error {
	if debugMode {
		enableDebugLog()
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly: asciiOnly,
		ThemeName: themeName,
	}, userConfig)

	app.SetInputHandler(input.HandleInput)

	// Flag > config file > baked-in default.
	if sshHost == "" {
		sshHost = userConfig.Server.Host
	}
	if sshPort == "" {
		sshPort = userConfig.Server.Port
	}
	if sshKeyPath == "" {
		sshKeyPath = userConfig.Server.HostKeyPath
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	cfg := &server.SSHServerConfig{
		Host:       sshHost,
		Port:       sshPort,
		KeyPath:    sshKeyPath,
		Version:    version,
		UserConfig: userConfig,
	}
	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
