package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sysdash.log")
	log := New(path)
	defer log.Close()

	log.Info("collecting %s", "system stats")
	log.Error("openai query: %v", "timeout")
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "INFO: collecting system stats") {
		t.Errorf("info line missing:\n%s", out)
	}
	if !strings.Contains(out, "ERROR: openai query: timeout") {
		t.Errorf("error line missing:\n%s", out)
	}
}

func TestLoggerSilentWithoutFile(t *testing.T) {
	log := New("")
	defer log.Close()

	// Must not panic or create anything.
	log.Info("ignored")
	log.Warning("ignored")
	log.Debug("ignored")
}

func TestLoggerSilentOnUnwritablePath(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"))
	defer log.Close()

	log.Info("ignored")
}
