package testutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// TestSessionName is the session StartServer creates.
const TestSessionName = "tmux-quick-actions-test"

// RequireTmux skips the calling test when tmux is not on PATH.
func RequireTmux(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("tmux")
	if err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	return path
}

// Server is a throwaway tmux server listening on its own socket. It is shut
// down, checked for crashes and removed when the test ends.
type Server struct {
	Socket string
	// Dir holds the socket and the server's -vv logs.
	Dir string
}

// StartServer boots a server with a single detached session named
// TestSessionName.
func StartServer(t *testing.T) *Server {
	t.Helper()
	RequireTmux(t)
	dir, err := os.MkdirTemp("/tmp", "tmux-quick-actions-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	s := &Server{Socket: filepath.Join(dir, "tmux-test.sock"), Dir: dir}
	// the server writes its -vv logs to its working directory
	start := s.Command("-f", "/dev/null", "-vv", "new-session", "-d", "-s", TestSessionName, "sleep", "600")
	start.Dir = dir
	if err := start.Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	if pid, err := s.Output("display-message", "-p", "#{pid}"); err == nil && pid != "" {
		t.Logf("started tmux test server pid=%s socket=%s", pid, s.Socket)
	}
	t.Cleanup(func() {
		s.kill(t)
		s.checkLogs(t)
	})
	return s
}

// Command prepares a tmux invocation against the server, isolated from any
// tmux session the tests themselves run in.
func (s *Server) Command(args ...string) *exec.Cmd {
	cmd := exec.Command("tmux", append([]string{"-S", s.Socket}, args...)...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "TMUX=") || strings.HasPrefix(entry, "TMUX_PANE=") {
			continue
		}
		env = append(env, entry)
	}
	cmd.Env = append(env, "TMUX=", "TMUX_TMPDIR="+s.Dir)
	return cmd
}

// Run executes a tmux command and discards its output.
func (s *Server) Run(args ...string) error {
	return s.Command(args...).Run()
}

// Output executes a tmux command and returns its trimmed stdout.
func (s *Server) Output(args ...string) (string, error) {
	out, err := s.Command(args...).Output()
	return strings.TrimSpace(string(out)), err
}

// PaneID resolves the active pane of target, skipping the test when tmux
// cannot answer.
func (s *Server) PaneID(t *testing.T, target string) string {
	t.Helper()
	id, err := s.Output("display-message", "-t", target, "-p", "#{pane_id}")
	if err != nil || id == "" {
		t.Skipf("skipping: unable to resolve pane id for %s (%v)", target, err)
	}
	return id
}

func (s *Server) kill(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := killServerControl(ctx, s.Socket); err != nil {
		t.Logf("control-mode kill failed for socket %s: %v; falling back to tmux kill-server", s.Socket, err)
		_ = s.Run("kill-server")
	}
}

// checkLogs fails the test when the server logged an unexpected exit.
func (s *Server) checkLogs(t *testing.T) {
	files, err := filepath.Glob(filepath.Join(s.Dir, "tmux-server-*.log"))
	if err != nil {
		t.Errorf("failed to glob tmux logs: %v", err)
		return
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("failed to read tmux server log %s: %v", path, err)
			continue
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			t.Errorf("tmux server reported unexpected exit; see %s", path)
		}
	}
}

func killServerControl(ctx context.Context, socket string) error {
	if strings.TrimSpace(socket) == "" {
		return errors.New("empty tmux socket path")
	}
	client, err := gotmux.NewTmuxWithOptions(socket, gotmux.WithContext(ctx))
	if err != nil {
		return err
	}
	defer client.Close()
	return client.KillServer()
}
