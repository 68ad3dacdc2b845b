package shooter

import (
	"testing"
)

func TestReplayReproducesSession(t *testing.T) {
	s := DefaultSettings()
	const seed = 2024

	e, err := NewSeededEngine(s, seed)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecording(seed, s)
	pilot := NewAutopilot(s, 0)

	snap := e.Snapshot()
	for i := 0; i < 2000; i++ {
		in := pilot.Next(snap)
		rec.Append(in)
		snap = e.Tick(in)
	}

	if rec.Len() != 2000 {
		t.Errorf("Len() = %d, expected 2000", rec.Len())
	}

	replayed, err := Replay(*rec)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if replayed.Hash() != snap.Hash() {
		t.Errorf("Replay hash = %d, expected %d", replayed.Hash(), snap.Hash())
	}
	if !replayed.Equal(snap) {
		t.Error("replayed snapshot differs from the live one")
	}
}

func TestReplayEmptyRecording(t *testing.T) {
	snap, err := Replay(*NewRecording(1, DefaultSettings()))
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if snap.Frame != 0 || snap.Score != 0 || len(snap.Enemies) != 0 {
		t.Errorf("empty replay = %+v, expected initial state", snap)
	}
}

func TestReplayInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.SpawnInterval = 0
	if _, err := Replay(*NewRecording(1, s)); err == nil {
		t.Error("Replay() with invalid settings should fail")
	}
}

func TestHashDistinguishesStates(t *testing.T) {
	e, err := NewSeededEngine(DefaultSettings(), 5)
	if err != nil {
		t.Fatal(err)
	}
	a := e.Tick(Intent{})
	b := e.Tick(Intent{MoveLeft: true})

	if a.Hash() == b.Hash() {
		t.Error("consecutive snapshots should hash differently")
	}
	if a.Equal(b) {
		t.Error("consecutive snapshots should not be equal")
	}
}
