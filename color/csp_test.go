package color_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/statmaps/geochroma/adjacency"
	"github.com/statmaps/geochroma/color"
)

// triangle returns the K3 graph A-B, B-C, C-A.
func triangle() *adjacency.Graph {
	g := adjacency.NewGraph()
	g.AddBorder("A", "B")
	g.AddBorder("B", "C")
	g.AddBorder("C", "A")

	return g
}

// complete returns the complete graph on n regions r0..r(n-1).
func complete(n int) *adjacency.Graph {
	g := adjacency.NewGraph()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddBorder(fmt.Sprintf("r%d", i), fmt.Sprintf("r%d", j))
		}
	}

	return g
}

// TestColor_Errors verifies invalid inputs and options are rejected.
func TestColor_Errors(t *testing.T) {
	if _, err := color.Color(nil); !errors.Is(err, color.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := triangle()
	if _, err := color.Color(g, color.WithPalette(0)); !errors.Is(err, color.ErrOptionViolation) {
		t.Errorf("palette 0: want ErrOptionViolation, got %v", err)
	}
	if _, err := color.Color(g, color.WithPalette(65)); !errors.Is(err, color.ErrOptionViolation) {
		t.Errorf("palette 65: want ErrOptionViolation, got %v", err)
	}
	if _, err := color.Color(g, color.WithMaxNodes(-1)); !errors.Is(err, color.ErrOptionViolation) {
		t.Errorf("negative MaxNodes: want ErrOptionViolation, got %v", err)
	}
	if _, err := color.Color(g, color.WithTimeLimit(-1)); !errors.Is(err, color.ErrOptionViolation) {
		t.Errorf("negative TimeLimit: want ErrOptionViolation, got %v", err)
	}
}

// TestColor_Triangle verifies K3 under the default palette yields three
// pairwise-distinct colors.
func TestColor_Triangle(t *testing.T) {
	g := triangle()
	a, err := color.Color(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = a.Validate(g); err != nil {
		t.Fatalf("coloring invalid: %v", err)
	}
	seen := map[int]bool{}
	for _, id := range []string{"A", "B", "C"} {
		seen[a.Colors[id]] = true
	}
	if len(seen) != 3 {
		t.Errorf("triangle colors = %v; want 3 distinct", a.Colors)
	}
}

// TestColor_IsolatedRegions verifies two regions with no borders color
// validly, with a single color sufficing.
func TestColor_IsolatedRegions(t *testing.T) {
	g := adjacency.NewGraph()
	g.AddRegion("X")
	g.AddRegion("Y")

	a, err := color.Color(g, color.WithPalette(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = a.Validate(g); err != nil {
		t.Errorf("coloring invalid: %v", err)
	}
	if a.Colors["X"] != 0 || a.Colors["Y"] != 0 {
		t.Errorf("palette-1 coloring = %v; want both 0", a.Colors)
	}
}

// TestColor_EmptyGraph verifies a region-free graph colors trivially.
func TestColor_EmptyGraph(t *testing.T) {
	a, err := color.Color(adjacency.NewGraph())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Colors) != 0 {
		t.Errorf("empty graph coloring = %v; want empty", a.Colors)
	}
}

// TestColor_NoSolution verifies K6 is infeasible under 5 colors: the
// only way real adjacency input needs a 6th color is non-planar data.
func TestColor_NoSolution(t *testing.T) {
	_, err := color.Color(complete(6))
	if !errors.Is(err, color.ErrNoSolution) {
		t.Fatalf("K6 with 5 colors: want ErrNoSolution, got %v", err)
	}
}

// TestColor_ExactPalette verifies K5 succeeds with exactly 5 colors.
func TestColor_ExactPalette(t *testing.T) {
	g := complete(5)
	a, err := color.Color(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = a.Validate(g); err != nil {
		t.Errorf("coloring invalid: %v", err)
	}
}

// TestColor_Idempotent verifies two runs on the same graph both yield
// valid colorings.
func TestColor_Idempotent(t *testing.T) {
	g := triangle()
	for run := 0; run < 2; run++ {
		a, err := color.Color(g)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		if err = a.Validate(g); err != nil {
			t.Errorf("run %d: coloring invalid: %v", run, err)
		}
	}
}

// TestColor_NodeBudget verifies budget exhaustion surfaces ErrNoSolution.
func TestColor_NodeBudget(t *testing.T) {
	a, err := color.Color(triangle(), color.WithMaxNodes(2))
	if !errors.Is(err, color.ErrNoSolution) {
		t.Fatalf("budget 2 on K3: want ErrNoSolution, got %v (assignment %v)", err, a)
	}
}

// TestColor_TimeBudget verifies an immediately-spent time budget aborts.
func TestColor_TimeBudget(t *testing.T) {
	_, err := color.Color(triangle(), color.WithTimeLimit(1))
	if !errors.Is(err, color.ErrNoSolution) {
		t.Fatalf("1ns budget: want ErrNoSolution, got %v", err)
	}
}

// TestColor_Cancellation verifies a canceled context aborts the search
// with the context's own error, not ErrNoSolution.
func TestColor_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := color.Color(triangle(), color.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled ctx: want context.Canceled, got %v", err)
	}
}

// TestColor_Deterministic verifies this implementation's repeatability:
// identical inputs yield identical colorings (a stronger guarantee than
// the contract, asserted to pin the deterministic branching).
func TestColor_Deterministic(t *testing.T) {
	g := complete(5)
	first, err := color.Color(g)
	if err != nil {
		t.Fatal(err)
	}
	for run := 0; run < 3; run++ {
		again, err := color.Color(g)
		if err != nil {
			t.Fatal(err)
		}
		for id, c := range first.Colors {
			if again.Colors[id] != c {
				t.Fatalf("run %d: color[%s] = %d; want %d", run, id, again.Colors[id], c)
			}
		}
	}
}

// TestAssignment_Validate verifies conflict and coverage detection.
func TestAssignment_Validate(t *testing.T) {
	g := triangle()

	bad := &color.Assignment{Colors: map[string]int{"A": 0, "B": 0, "C": 1}, Palette: 5}
	if err := bad.Validate(g); !errors.Is(err, color.ErrInvalidAssignment) {
		t.Errorf("conflicting coloring: want ErrInvalidAssignment, got %v", err)
	}

	missing := &color.Assignment{Colors: map[string]int{"A": 0, "B": 1}, Palette: 5}
	if err := missing.Validate(g); !errors.Is(err, color.ErrInvalidAssignment) {
		t.Errorf("uncolored region: want ErrInvalidAssignment, got %v", err)
	}

	outOfRange := &color.Assignment{Colors: map[string]int{"A": 0, "B": 1, "C": 7}, Palette: 5}
	if err := outOfRange.Validate(g); !errors.Is(err, color.ErrInvalidAssignment) {
		t.Errorf("out-of-palette color: want ErrInvalidAssignment, got %v", err)
	}
}

// TestHex covers the render palette and its gray fallback.
func TestHex(t *testing.T) {
	if got := color.Hex(0); got != "#3b82f6" {
		t.Errorf("Hex(0) = %s; want #3b82f6", got)
	}
	if got := color.Hex(-1); got != "#9ca3af" {
		t.Errorf("Hex(-1) = %s; want gray fallback", got)
	}
	if got := color.Hex(99); got != "#9ca3af" {
		t.Errorf("Hex(99) = %s; want gray fallback", got)
	}
}
