package tabs

import (
	"context"
	"errors"
	"testing"
)

var hrSet = NewSet(
	Tab{ID: "vacation", Label: "Férias"},
	Tab{ID: "attendance", Label: "Frequência"},
	Tab{ID: "training", Label: "Treinamentos"},
)

func countingBlocks(calls map[string]int) map[string]Block[string] {
	blocks := map[string]Block[string]{}
	for _, tab := range hrSet.Tabs() {
		id := tab.ID
		blocks[id] = func(context.Context) (string, error) {
			calls[id]++
			return id, nil
		}
	}
	return blocks
}

func TestSelectorDefaultsToFirstTab(t *testing.T) {
	sel := hrSet.NewSelector()
	if sel.Current().ID != "vacation" {
		t.Fatalf("expected default vacation, got %s", sel.Current().ID)
	}
}

func TestRenderInvokesExactlyOneBlock(t *testing.T) {
	calls := map[string]int{}
	sel := hrSet.NewSelector()
	if err := sel.Select("training"); err != nil {
		t.Fatalf("select: %v", err)
	}
	out, err := Render(context.Background(), sel, countingBlocks(calls))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "training" {
		t.Fatalf("expected training block, got %s", out)
	}
	if len(calls) != 1 || calls["training"] != 1 {
		t.Fatalf("expected a single block call, got %v", calls)
	}
}

func TestReselectIsNoop(t *testing.T) {
	sel := hrSet.NewSelector()
	_ = sel.Select("attendance")
	first, _ := Render(context.Background(), sel, countingBlocks(map[string]int{}))
	_ = sel.Select("attendance")
	second, _ := Render(context.Background(), sel, countingBlocks(map[string]int{}))
	if first != second || sel.Current().ID != "attendance" {
		t.Fatalf("reselect changed output: %s vs %s", first, second)
	}
}

func TestUnknownTabKeepsSelection(t *testing.T) {
	sel := hrSet.NewSelector()
	_ = sel.Select("training")
	err := sel.Select("payroll")
	if !errors.Is(err, ErrUnknownTab) {
		t.Fatalf("expected ErrUnknownTab, got %v", err)
	}
	if sel.Current().ID != "training" {
		t.Fatalf("selection changed after invalid select: %s", sel.Current().ID)
	}
}

func TestEmptySelectKeepsDefault(t *testing.T) {
	sel := hrSet.NewSelector()
	if err := sel.Select(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Current().ID != "vacation" {
		t.Fatalf("expected default, got %s", sel.Current().ID)
	}
}

func TestNewSetRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate ids")
		}
	}()
	NewSet(Tab{ID: "a"}, Tab{ID: "a"})
}
