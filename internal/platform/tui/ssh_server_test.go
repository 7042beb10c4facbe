package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := hostKeyPath("")
	if err != nil {
		t.Fatalf("hostKeyPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".blockpilot", "host_key"); got != want {
		t.Errorf("hostKeyPath() = %q, expected %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Errorf("key directory not created: %v", err)
	}

	custom := filepath.Join(home, "keys", "deep", "id")
	if got, _ = hostKeyPath(custom); got != custom {
		t.Errorf("hostKeyPath(%q) = %q", custom, got)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Error("scores database should be open")
	}
	if srv.config.Game.Logger == nil {
		t.Error("games should inherit the server logger")
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
	if srv.store != nil {
		t.Error("Shutdown should close the database")
	}
}
