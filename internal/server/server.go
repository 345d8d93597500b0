// Package server runs flotilla over SSH. Every connection gets its own
// desk sized to the client PTY; nothing is shared between sessions.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/ssh"

	"github.com/flotilla-sh/flotilla/internal/app"
	"github.com/flotilla-sh/flotilla/internal/config"
)

// shutdownTimeout bounds how long open sessions get to wind down after
// the server is asked to stop.
const shutdownTimeout = 30 * time.Second

// SSHServerConfig configures the SSH server.
type SSHServerConfig struct {
	// Host is the listen address.
	Host string

	// Port is the listen port.
	Port string

	// KeyPath is the host key location. Empty picks the default under
	// the working directory; the key is generated when missing.
	KeyPath string

	// Version is reported in the SSH protocol banner.
	Version string

	// UserConfig is the server-side configuration handed to every
	// session. Nil falls back to defaults.
	UserConfig *config.UserConfig
}

// StartSSHServer serves desks over SSH until ctx is canceled, then
// shuts down gracefully. It blocks for the lifetime of the server.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	if cfg.Host == "" {
		cfg.Host = config.DefaultSSHHost
	}
	if cfg.Port == "" {
		cfg.Port = config.DefaultSSHPort
	}
	if cfg.KeyPath == "" {
		cfg.KeyPath = config.DefaultSSHHostKeyPath
	}

	userConfig := cfg.UserConfig
	if userConfig == nil {
		userConfig = config.DefaultConfig()
	}
	keybinds := config.NewKeybindRegistry(userConfig)

	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(cfg.KeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler(keybinds)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	if cfg.Version != "" {
		s.Version = "flotilla_" + cfg.Version
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting SSH server", "host", cfg.Host, "port", cfg.Port)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Stopping SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return nil
}

// sessionHandler builds the per-connection desk. The desk starts at the
// client PTY size; later changes arrive as WindowSizeMsg through the
// middleware.
func sessionHandler(keybinds *config.KeybindRegistry) func(ssh.Session) (tea.Model, []tea.ProgramOption) {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		// activeterm guarantees a PTY, but the reported size can
		// still be zero with odd clients.
		pty, _, _ := s.Pty()
		width, height := pty.Window.Width, pty.Window.Height
		if width <= 0 {
			width = config.DefaultTerminalWidth
		}
		if height <= 0 {
			height = config.DefaultTerminalHeight
		}

		m := app.NewManager(width, height, keybinds)
		m.LogInfo("Session for %s from %s", s.User(), s.RemoteAddr())
		return m, sessionProgramOptions()
	}
}

// sessionProgramOptions mirrors the local program options. Signal
// handling stays off so a session cannot take down the server.
func sessionProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	}
}

// filterMouseMotion drops mouse motion outside drag and resize
// sessions. Same filter the local program installs.
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
