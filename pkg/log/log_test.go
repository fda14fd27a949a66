package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithLevel(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}

	l.Infof("hidden %d", 1)
	l.Warnf("checksum mismatch: %02X", 0xAB)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "checksum mismatch: AB") {
		t.Errorf("expected warning in output, got %q", out)
	}
	if !strings.Contains(out, "level=warning") {
		t.Errorf("expected level field in output, got %q", out)
	}
}

func TestNewWithLevel_Invalid(t *testing.T) {
	if _, err := NewWithLevel(&bytes.Buffer{}, "loud"); err == nil {
		t.Errorf("expected error for invalid level")
	}
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Infof("%s", "nothing")
	l.Errorf("%s", "nothing")
}
