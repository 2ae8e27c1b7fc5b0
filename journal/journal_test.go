package journal

import (
	"path/filepath"
	"testing"

	"github.com/nstehr/harvest/model"
)

func TestWriteAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "decisions.jsonl.zst")

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	entries := []Entry{
		{Tick: 1, Phase: "expansion", Gold: 0, Fired: []string{"expansion-harvest"}, Actions: []model.Action{model.Gather(2, 9)}},
		{Tick: 2, Phase: "expansion", Gold: 400, Fired: []string{"produce-worker"}, Actions: []model.Action{model.Produce(1, 100)}},
		{Tick: 3, Phase: "growth", Omitted: []int{4}, Skipped: []string{"build-farm"}},
	}
	for _, e := range entries {
		if err := w.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Write(Entry{}); err == nil {
		t.Error("Write after Close should fail")
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i, e := range got {
		if e.Session != w.Session() {
			t.Errorf("entry %d session = %q, want %q", i, e.Session, w.Session())
		}
		if e.Tick != entries[i].Tick || e.Phase != entries[i].Phase {
			t.Errorf("entry %d = %+v", i, e)
		}
	}
	if got[1].Actions[0] != model.Produce(1, 100) {
		t.Errorf("actions = %v", got[1].Actions)
	}
	if len(got[2].Omitted) != 1 || got[2].Omitted[0] != 4 {
		t.Errorf("omitted = %v", got[2].Omitted)
	}
}

func TestSessionsAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decisions.jsonl.zst")

	var sessions []string
	for tick := 1; tick <= 2; tick++ {
		w, err := Create(path)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := w.Write(Entry{Tick: tick}); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		sessions = append(sessions, w.Session())
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 || got[0].Session != sessions[0] || got[1].Session != sessions[1] {
		t.Errorf("entries = %+v, sessions = %v", got, sessions)
	}
	if sessions[0] == sessions[1] {
		t.Error("sessions should have distinct ids")
	}
}
