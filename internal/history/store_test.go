package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"pubg-tracker/internal/match"
)

func summary(id string) match.Summary {
	return match.Summary{ID: id, MapName: "Erangel"}
}

func TestAppendIfNew(t *testing.T) {
	s := &Store{}

	if !s.AppendIfNew(summary("m1")) {
		t.Fatal("first append rejected")
	}
	if !s.AppendIfNew(summary("m2")) {
		t.Fatal("second append rejected")
	}

	// Duplicate id: rejected, no mutation.
	if s.AppendIfNew(summary("m1")) {
		t.Error("duplicate append accepted")
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
	if !s.Contains("m1") || !s.Contains("m2") {
		t.Error("appended matches missing")
	}
	if s.Contains("m3") {
		t.Error("unseen match reported present")
	}
}

func TestEviction(t *testing.T) {
	s := &Store{}

	for i := 0; i < Capacity; i++ {
		if !s.AppendIfNew(summary(fmt.Sprintf("m%02d", i))) {
			t.Fatalf("append %d rejected", i)
		}
	}
	if s.Len() != Capacity {
		t.Fatalf("len = %d, want %d", s.Len(), Capacity)
	}
	if got := s.DrainEvicted(); len(got) != 0 {
		t.Fatalf("evictions before overflow: %v", got)
	}

	// The 31st append evicts the oldest entry, and the evicted entry's own
	// id is what gets queued for cache invalidation.
	if !s.AppendIfNew(summary("overflow")) {
		t.Fatal("overflow append rejected")
	}
	if s.Len() != Capacity {
		t.Errorf("len = %d, want %d after eviction", s.Len(), Capacity)
	}

	evicted := s.DrainEvicted()
	if len(evicted) != 1 || evicted[0] != "m00" {
		t.Errorf("evicted = %v, want [m00]", evicted)
	}
	if s.Contains("m00") {
		t.Error("evicted match still present")
	}
	if !s.Contains("overflow") {
		t.Error("newest match missing")
	}

	// The drain clears the queue.
	if got := s.DrainEvicted(); len(got) != 0 {
		t.Errorf("second drain = %v, want empty", got)
	}
}

func TestEvictionOrder(t *testing.T) {
	s := &Store{}
	for i := 0; i < Capacity+3; i++ {
		s.AppendIfNew(summary(fmt.Sprintf("m%02d", i)))
	}

	evicted := s.DrainEvicted()
	want := []string{"m00", "m01", "m02"}
	if len(evicted) != len(want) {
		t.Fatalf("evicted = %v, want %v", evicted, want)
	}
	for i := range want {
		if evicted[i] != want[i] {
			t.Errorf("evicted[%d] = %q, want %q", i, evicted[i], want[i])
		}
	}

	matches := s.Matches()
	if matches[0].ID != "m03" {
		t.Errorf("oldest retained = %q, want m03", matches[0].ID)
	}
	if matches[len(matches)-1].ID != fmt.Sprintf("m%02d", Capacity+2) {
		t.Errorf("newest retained = %q", matches[len(matches)-1].ID)
	}
}

func TestLoadPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "matches.json")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("missing file should yield an empty ledger")
	}

	s.AppendIfNew(summary("m1"))
	s.AppendIfNew(summary("m2"))
	if err := s.Persist(); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("reloaded len = %d, want 2", reloaded.Len())
	}
	if !reloaded.Contains("m1") || !reloaded.Contains("m2") {
		t.Error("reloaded ledger missing matches")
	}

	matches := reloaded.Matches()
	if matches[0].ID != "m1" || matches[0].MapName != "Erangel" {
		t.Errorf("reloaded entry = %+v", matches[0])
	}
}

func TestLoadCorruptLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("corrupt ledger should fail, not silently reset")
	}
}

func TestEncodeMatches(t *testing.T) {
	s := &Store{}
	s.AppendIfNew(summary("m1"))

	blob, err := s.EncodeMatches()
	if err != nil {
		t.Fatalf("EncodeMatches failed: %v", err)
	}
	want := `[{"id":"m1","date":"","game_mode":"","map_name":"Erangel","squad":null}]`
	if string(blob) != want {
		t.Errorf("blob = %s, want %s", blob, want)
	}
}
