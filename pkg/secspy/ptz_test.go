package secspy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGotoPresetCommandNumbers(t *testing.T) {
	var rec queryRecorder
	ts := recordingServer(&rec)
	defer ts.Close()

	c := newTestClient(t, ts)

	if err := c.GotoPreset(context.Background(), "1", 2); err != nil {
		t.Fatalf("GotoPreset: %v", err)
	}
	if rec.path != "/ptz" {
		t.Fatalf("path = %q, want /ptz", rec.path)
	}
	// preset n maps to command 11+n
	if got := rec.query.Get("command"); got != "13" {
		t.Fatalf("command = %q, want 13", got)
	}
	if got := rec.query.Get("cameraNum"); got != "1" {
		t.Fatalf("cameraNum = %q", got)
	}

	if err := c.SavePreset(context.Background(), "1", 2); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}
	if got := rec.query.Get("command"); got != "113" {
		t.Fatalf("command = %q, want 113", got)
	}
}

func TestPresetRangeValidation(t *testing.T) {
	var rec queryRecorder
	ts := recordingServer(&rec)
	defer ts.Close()

	c := newTestClient(t, ts)
	for _, preset := range []int{0, -1, 13} {
		if err := c.GotoPreset(context.Background(), "1", preset); err == nil {
			t.Fatalf("preset %d should be rejected", preset)
		}
		if err := c.SavePreset(context.Background(), "1", preset); err == nil {
			t.Fatalf("preset %d should be rejected", preset)
		}
	}
	if rec.path != "" {
		t.Fatal("no request should be sent for out-of-range presets")
	}
}

func TestPTZMoveAndStop(t *testing.T) {
	var rec queryRecorder
	ts := recordingServer(&rec)
	defer ts.Close()

	c := newTestClient(t, ts)

	if err := c.PTZMove(context.Background(), "1", DirectionZoomIn); err != nil {
		t.Fatalf("PTZMove: %v", err)
	}
	if got := rec.query.Get("command"); got != "5" {
		t.Fatalf("command = %q, want 5", got)
	}

	if err := c.PTZStop(context.Background(), "1"); err != nil {
		t.Fatalf("PTZStop: %v", err)
	}
	if got := rec.query.Get("command"); got != "0" {
		t.Fatalf("command = %q, want 0", got)
	}

	if err := c.PTZMove(context.Background(), "1", Direction(42)); err == nil {
		t.Fatal("unknown direction should be rejected")
	}
}

func TestPTZPresetsAndCapabilities(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(systemInfoFixture))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)

	presets, err := c.PTZPresets(context.Background(), "0")
	if err != nil {
		t.Fatalf("PTZPresets: %v", err)
	}
	if len(presets) != 1 || presets[0].Name != "Gate" || presets[0].Index != 1 {
		t.Fatalf("unexpected presets: %+v", presets)
	}

	caps, err := c.PTZCapabilities(context.Background(), "0")
	if err != nil {
		t.Fatalf("PTZCapabilities: %v", err)
	}
	if caps != 15 {
		t.Fatalf("capabilities = %d, want 15", caps)
	}

	caps, err = c.PTZCapabilities(context.Background(), "1")
	if err != nil {
		t.Fatalf("PTZCapabilities: %v", err)
	}
	if caps != 0 {
		t.Fatalf("capabilities = %d, want 0", caps)
	}
}
