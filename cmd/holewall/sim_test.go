package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/holewall/internal/config"
	"github.com/vovakirdan/holewall/internal/games/holewall"
)

func TestSimulateWithoutAutopilotCrashes(t *testing.T) {
	r := simulate(config.DefaultHolewallConfig(), 5, 20000, false, log.New(io.Discard))

	if r.Status != holewall.StatusStopped {
		t.Fatalf("status = %v, expected stopped", r.Status)
	}
	if r.Score != 0 {
		t.Errorf("score = %d, expected 0", r.Score)
	}
	if r.Ticks > 200 {
		t.Errorf("ran %d ticks, expected to stop at the first wall", r.Ticks)
	}
}

func TestSimulateWithAutopilot(t *testing.T) {
	r := simulate(config.DefaultHolewallConfig(), 5, 1000, true, log.New(io.Discard))

	if r.Status != holewall.StatusRunning {
		t.Fatalf("status = %v, expected running", r.Status)
	}
	if r.Ticks != 1000 {
		t.Errorf("ticks = %d, expected 1000", r.Ticks)
	}
	if r.Score < 8 {
		t.Errorf("score = %d, expected about 10", r.Score)
	}
	if !r.Aimed {
		t.Error("autopilot should report a target for the current wall")
	}

	var buf bytes.Buffer
	writeSummary(&buf, r, false)
	if strings.Contains(buf.String(), "target: none") {
		t.Errorf("summary should print the autopilot target:\n%s", buf.String())
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a := simulate(config.DefaultHolewallConfig(), 9, 500, true, log.New(io.Discard))
	b := simulate(config.DefaultHolewallConfig(), 9, 500, true, log.New(io.Discard))

	if a.Score != b.Score || a.Screen.String() != b.Screen.String() {
		t.Error("same seed should produce the same session")
	}
}

func TestWriteSummary(t *testing.T) {
	r := simulate(config.DefaultHolewallConfig(), 5, 50, false, log.New(io.Discard))

	var buf bytes.Buffer
	writeSummary(&buf, r, false)
	out := buf.String()
	for _, want := range []string{"seed:   5", "ticks:  50", "walls:  0", "status: running", "player 9.00", "target: none"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	writeSummary(&buf, r, true)
	if !strings.Contains(buf.String(), "Score: 0") {
		t.Error("snapshot should include the rendered HUD")
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	if _, err := newLogger(io.Discard); err == nil {
		t.Error("expected error for unknown log level")
	}

	flagLogLevel = "debug"
	logger, err := newLogger(io.Discard)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", logger.GetLevel())
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), config.DefaultYAML()) {
		t.Error("config should print the embedded defaults")
	}
}
