package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCmd_MissingROM(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Errorf("expected an error without a ROM argument")
	}
}

func TestRootCmd_Run(t *testing.T) {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01}) // NOP; JP 0x0150
	copy(rom[0x150:], []byte{
		0x3E, 'H', // LD A, 'H'
		0xE0, 0x01, // LDH (SB), A
		0x3E, 0x81, // LD A, 0x81
		0xE0, 0x02, // LDH (SC), A
		0x40,       // LD B, B
		0x18, 0xFE, // JR -2
	})
	path := filepath.Join(t.TempDir(), "test.gb")
	if err := os.WriteFile(path, rom, 0o644); err != nil {
		t.Fatal(err)
	}
	profilePath := filepath.Join(t.TempDir(), "profile.png")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--debug", "--log-level", "error", "--profile", profilePath, path})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "H" {
		t.Errorf("expected serial output H, got %q", out.String())
	}
	if _, err := os.Stat(profilePath); err != nil {
		t.Errorf("expected profile to be written: %v", err)
	}
}
