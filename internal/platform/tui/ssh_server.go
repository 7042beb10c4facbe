package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/registry"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

// shutdownGrace bounds how long open sessions get to finish on shutdown.
const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the SSH front end.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // Empty means ~/.blockpilot/host_key, created on first start
	DBPath      string        // Scores database shared by all sessions
	IdleTimeout time.Duration // Idle connections are dropped after this
	TickRate    int           // Simulation rate of every session
	Game        registry.Options
	Logger      *log.Logger // Nil logs to stderr
}

// DefaultSSHServerConfig returns the settings used by "blockpilot serve".
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.blockpilot/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer hands every SSH client its own blockpilot session.
// All sessions share one scores database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the host key and database and builds the server.
// A database that cannot be opened only disables score saving.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	logger = logger.WithPrefix("blockpilot-ssh")
	if cfg.Game.Logger == nil {
		cfg.Game.Logger = logger
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, logger: logger}
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("scores will not be saved", "db", cfg.DBPath, "error", err)
		s.store = nil
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: cannot locate home directory: %w", err)
		}
		path = filepath.Join(home, ".blockpilot", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea model for one client.
// Clients without a PTY get nothing.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejected session without PTY", "user", sess.User())
		return nil, nil
	}

	opts := s.config.Game
	opts.Logger = opts.Logger.With("user", sess.User())

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	// The renderer detects the client's colour support.
	model := NewSessionModel(s.store, cfg, opts).
		WithRenderer(NewScreenRenderer(bubbletea.MakeRenderer(sess)))
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		start := time.Now()
		l.Info("session started")
		next(sess)
		l.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until ctx is cancelled, SIGINT or SIGTERM arrives,
// or the listener fails. The database is closed on return.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address)
	errc := make(chan error, 1)
	go func() { errc <- s.server.ListenAndServe() }()

	select {
	case err := <-errc:
		s.closeStore()
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown stops accepting clients and waits briefly for open sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close scores database", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
