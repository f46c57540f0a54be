package move

import (
	"testing"

	"github.com/tavlaboard/tavla/internal/board"
	"github.com/tavlaboard/tavla/internal/models"
)

func TestSnapshotIsIndependentOfLiveCollection(t *testing.T) {
	state := board.NewState(testCollection())
	snap := Capture(state)

	// Mutate the live items after capture
	live := state.Find("x")
	live.Rank = 99
	live.Column = "done"
	live.History = append(live.History, models.HistoryEntry{Description: "mutated"})

	for _, item := range snap.Items() {
		if item.ID == "x" {
			if item.Rank != 0 || item.Column != "todo" || len(item.History) != 0 {
				t.Errorf("Expected snapshot untouched by live mutation, got %+v", item)
			}
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	state := board.NewState(testCollection())
	snap := Capture(state)

	state.Find("x").Rank = 99
	state.Find("y").Rank = 0

	snap.Restore(state)

	if got := state.Find("x").Rank; got != 0 {
		t.Errorf("Expected x rank restored to 0, got %d", got)
	}
	if got := state.Find("y").Rank; got != 1 {
		t.Errorf("Expected y rank restored to 1, got %d", got)
	}
}

func TestLockSingleFlight(t *testing.T) {
	var lock Lock

	if !lock.TryBegin() {
		t.Fatal("Expected first acquisition to succeed")
	}
	if lock.TryBegin() {
		t.Fatal("Expected second acquisition to fail while held")
	}
	if !lock.Held() {
		t.Error("Expected lock to report held")
	}

	lock.End()

	if lock.Held() {
		t.Error("Expected lock released")
	}
	if !lock.TryBegin() {
		t.Error("Expected acquisition to succeed after release")
	}
}
