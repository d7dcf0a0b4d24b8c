package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/brewblox/brewblox-ctl/internal/settings"
)

func TestSnapshotSaveCommand(t *testing.T) {
	dir := t.TempDir()
	runner := &stubRunner{}
	installSeams(t, &stubUI{def: true}, newStubProbe(), runner, &settings.Settings{})

	out, err := executeCommand(t, "snapshot", "save", "--dir", dir, "--file", "/tmp/brewblox.tar.gz")
	if err != nil {
		t.Fatalf("execute error: %v\noutput:\n%s", err, out)
	}
	if len(runner.commands) != 1 || !strings.Contains(runner.commands[0], "sudo tar -C") {
		t.Fatalf("expected tar command, ran: %v", runner.commands)
	}
	if !strings.Contains(runner.commands[0], filepath.Base(dir)) {
		t.Fatalf("archive must hold the directory basename, ran: %v", runner.commands)
	}
}

func TestSnapshotLoadMissingArchive(t *testing.T) {
	runner := &stubRunner{}
	installSeams(t, &stubUI{def: true}, newStubProbe(), runner, &settings.Settings{})

	_, err := executeCommand(t, "snapshot", "load", "--dir", t.TempDir(), "--file", "/tmp/missing.tar.gz")
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing archive error, got %v", err)
	}
	if len(runner.commands) != 0 {
		t.Fatalf("no commands without an archive, ran: %v", runner.commands)
	}
}

func TestSnapshotLoadCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "brewblox")
	runner := &stubRunner{}
	pr := newStubProbe()
	pr.paths["/tmp/brewblox.tar.gz"] = true
	installSeams(t, &stubUI{def: true}, pr, runner, &settings.Settings{})

	out, err := executeCommand(t, "snapshot", "load", "--dir", dir, "--file", "/tmp/brewblox.tar.gz")
	if err != nil {
		t.Fatalf("execute error: %v\noutput:\n%s", err, out)
	}
	if !runner.ranContaining("sudo tar -xzf /tmp/brewblox.tar.gz") {
		t.Fatalf("expected extract command, ran: %v", runner.commands)
	}
}
