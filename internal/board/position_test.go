package board

import (
	"testing"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

func item(id string, col string, rank int) *models.Item {
	return &models.Item{
		ID:     types.ItemID(id),
		Column: types.ColumnID(col),
		Rank:   rank,
		Title:  id,
	}
}

func TestCheckDenseValid(t *testing.T) {
	items := []*models.Item{
		item("a", "todo", 0),
		item("b", "todo", 1),
		item("c", "todo", 2),
		item("d", "done", 0),
	}

	if err := CheckDense(items, "todo"); err != nil {
		t.Errorf("Expected valid todo column, got %v", err)
	}
	if err := CheckDense(items, "done"); err != nil {
		t.Errorf("Expected valid done column, got %v", err)
	}
	// A column with no items is trivially dense
	if err := CheckDense(items, "waiting"); err != nil {
		t.Errorf("Expected empty column to be valid, got %v", err)
	}
}

func TestCheckDenseDetectsDuplicates(t *testing.T) {
	items := []*models.Item{
		item("a", "todo", 0),
		item("b", "todo", 0),
	}

	if err := CheckDense(items, "todo"); err == nil {
		t.Error("Expected error for duplicate ranks")
	}
}

func TestCheckDenseDetectsGaps(t *testing.T) {
	items := []*models.Item{
		item("a", "todo", 0),
		item("b", "todo", 2),
	}

	if err := CheckDense(items, "todo"); err == nil {
		t.Error("Expected error for gapped ranks")
	}
}

func TestCheckDenseDetectsNegativeRank(t *testing.T) {
	items := []*models.Item{item("a", "todo", -1)}

	if err := CheckDense(items, "todo"); err == nil {
		t.Error("Expected error for negative rank")
	}
}

func TestRenumberWithoutSkip(t *testing.T) {
	items := []*models.Item{
		item("a", "todo", 3),
		item("b", "todo", 7),
		item("c", "todo", 9),
	}

	Renumber(items, -1)

	for i, it := range items {
		if it.Rank != i {
			t.Errorf("Expected rank %d for %s, got %d", i, it.ID, it.Rank)
		}
	}
}

func TestRenumberSkipsReservedSlot(t *testing.T) {
	items := []*models.Item{
		item("a", "todo", 0),
		item("b", "todo", 1),
		item("c", "todo", 2),
	}

	Renumber(items, 1)

	want := []int{0, 2, 3}
	for i, it := range items {
		if it.Rank != want[i] {
			t.Errorf("Expected rank %d for %s, got %d", want[i], it.ID, it.Rank)
		}
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		size  int
		want  int
	}{
		{"negative clamps to zero", -5, 3, 0},
		{"within range untouched", 2, 3, 2},
		{"at size allowed (append)", 3, 3, 3},
		{"overflow clamps to size", 99, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampIndex(tt.index, tt.size); got != tt.want {
				t.Errorf("ClampIndex(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
			}
		})
	}
}
