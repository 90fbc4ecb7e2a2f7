package cmd

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// fakeTerminal forces the stdin TTY check for the duration of a test.
func fakeTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	old := stdinIsTerminal
	stdinIsTerminal = func() bool { return isTTY }
	t.Cleanup(func() { stdinIsTerminal = old })
}

// TestExecute_Version verifies --version prints a version string.
func TestExecute_Version(t *testing.T) {
	err := Execute(context.Background(), []string{"--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_Help verifies --help returns without error.
func TestExecute_Help(t *testing.T) {
	err := Execute(context.Background(), []string{"--help"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_InvalidFlags verifies unknown flags produce an error.
func TestExecute_InvalidFlags(t *testing.T) {
	err := Execute(context.Background(), []string{"--nonexistent-flag"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

// TestExecute_ConflictingModes verifies -z and -D conflict is caught.
func TestExecute_ConflictingModes(t *testing.T) {
	err := Execute(context.Background(), []string{"-z", "-D", "--dry-run"})
	if err == nil {
		t.Fatal("expected error for -z with -D")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("error should mention mutually exclusive: %v", err)
	}
}

// TestExecute_DryRun verifies --dry-run validates and exits cleanly.
func TestExecute_DryRun(t *testing.T) {
	err := Execute(context.Background(), []string{"-n", "-p", "8393", "--dry-run"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_DryRunInvalid verifies --dry-run still catches bad configs.
func TestExecute_DryRunInvalid(t *testing.T) {
	err := Execute(context.Background(), []string{"-n", "-p", "0", "--dry-run"})
	if err == nil {
		t.Fatal("expected validation error for port 0")
	}
}

// TestExecute_PositionalPort verifies a trailing port overrides -p.
func TestExecute_PositionalPort(t *testing.T) {
	err := Execute(context.Background(), []string{"-n", "--dry-run", "8396"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = Execute(context.Background(), []string{"-n", "--dry-run", "not-a-port"})
	if err == nil {
		t.Fatal("expected error for bad positional port")
	}

	err = Execute(context.Background(), []string{"-n", "--dry-run", "8392", "8393"})
	if err == nil {
		t.Fatal("expected error for extra arguments")
	}
}

// TestExecute_NoScriptOnTerminal verifies interactive send without a
// payload source is rejected.
func TestExecute_NoScriptOnTerminal(t *testing.T) {
	fakeTerminal(t, true)

	err := Execute(context.Background(), []string{"-p", "8392", "--dry-run"})
	if err == nil {
		t.Fatal("expected error for terminal stdin with no -f/-n")
	}
	if !strings.Contains(err.Error(), "no script") {
		t.Errorf("unexpected message: %v", err)
	}
}

// TestExecute_SendFromFile performs an end-to-end send against a local
// listener standing in for the backend.
func TestExecute_SendFromFile(t *testing.T) {
	fakeTerminal(t, true)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		for {
			if _, err := conn.Read(buf); err != nil {
				return
			}
		}
	}()

	script := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(script, []byte("step()\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err = Execute(context.Background(), []string{
		"-f", script, "-p", strconv.Itoa(port),
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	<-done
}

// TestExecute_CheckLive verifies -z exits zero against a listener.
func TestExecute_CheckLive(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	err = Execute(context.Background(), []string{"-z", "-p", strconv.Itoa(port)})
	if err != nil {
		t.Fatalf("check against live port: %v", err)
	}
}

// TestExecute_MissingScriptFile verifies -f with a bad path errors out.
func TestExecute_MissingScriptFile(t *testing.T) {
	err := Execute(context.Background(), []string{
		"-f", filepath.Join(t.TempDir(), "missing.txt"), "--dry-run",
	})
	if err == nil {
		t.Fatal("expected error for missing script file")
	}
}
