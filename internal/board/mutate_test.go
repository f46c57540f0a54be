package board

import (
	"testing"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

func assertRanks(t *testing.T, s *State, column string, want map[string]int) {
	t.Helper()
	if err := CheckDense(s.Items(), types.ColumnID(column)); err != nil {
		t.Fatalf("Column %s not dense: %v", column, err)
	}
	for id, rank := range want {
		item := s.Find(types.ItemID(id))
		if item == nil {
			t.Fatalf("Expected item %s to exist", id)
		}
		if string(item.Column) != column {
			t.Errorf("Expected %s in column %s, got %s", id, column, item.Column)
		}
		if item.Rank != rank {
			t.Errorf("Expected %s rank %d, got %d", id, rank, item.Rank)
		}
	}
}

func TestApplyMoveWithinColumn(t *testing.T) {
	s := NewState([]*models.Item{
		item("x", "todo", 0),
		item("y", "todo", 1),
		item("z", "todo", 2),
	})

	err := s.ApplyMove(models.MoveIntent{ItemID: "y", TargetColumn: "todo", TargetIndex: 0})
	if err != nil {
		t.Fatalf("Failed to apply move: %v", err)
	}

	assertRanks(t, s, "todo", map[string]int{"y": 0, "x": 1, "z": 2})
}

func TestApplyMoveAcrossColumns(t *testing.T) {
	s := NewState([]*models.Item{
		item("x", "todo", 0),
		item("y", "todo", 1),
		item("z", "done", 0),
	})

	err := s.ApplyMove(models.MoveIntent{ItemID: "x", TargetColumn: "done", TargetIndex: 1})
	if err != nil {
		t.Fatalf("Failed to apply move: %v", err)
	}

	assertRanks(t, s, "todo", map[string]int{"y": 0})
	assertRanks(t, s, "done", map[string]int{"z": 0, "x": 1})
}

func TestApplyMoveClampsOverflowIndex(t *testing.T) {
	s := NewState([]*models.Item{
		item("x", "todo", 0),
		item("y", "todo", 1),
		item("z", "done", 0),
	})

	err := s.ApplyMove(models.MoveIntent{ItemID: "x", TargetColumn: "done", TargetIndex: 99})
	if err != nil {
		t.Fatalf("Failed to apply move: %v", err)
	}

	assertRanks(t, s, "done", map[string]int{"z": 0, "x": 1})
}

func TestApplyMoveUnknownItem(t *testing.T) {
	s := NewState([]*models.Item{item("x", "todo", 0)})

	err := s.ApplyMove(models.MoveIntent{ItemID: "ghost", TargetColumn: "todo", TargetIndex: 0})
	if err == nil {
		t.Fatal("Expected error for unknown item")
	}
}

func TestApplyMoveSequenceStaysDense(t *testing.T) {
	s := NewState([]*models.Item{
		item("a", "todo", 0),
		item("b", "todo", 1),
		item("c", "todo", 2),
		item("d", "done", 0),
	})

	moves := []models.MoveIntent{
		{ItemID: "a", TargetColumn: "done", TargetIndex: 0},
		{ItemID: "d", TargetColumn: "todo", TargetIndex: 1},
		{ItemID: "c", TargetColumn: "done", TargetIndex: 5},
		{ItemID: "b", TargetColumn: "todo", TargetIndex: 0},
	}

	for _, intent := range moves {
		if err := s.ApplyMove(intent); err != nil {
			t.Fatalf("Failed to apply move of %s: %v", intent.ItemID, err)
		}
		for _, col := range []string{"todo", "done"} {
			if err := CheckDense(s.Items(), types.ColumnID(col)); err != nil {
				t.Fatalf("After moving %s, column %s broken: %v", intent.ItemID, col, err)
			}
		}
	}
}
