package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}

	if got := len(c.Flavors()); got != 35 {
		t.Fatalf("expected 35 flavors, got %d", got)
	}

	machines := c.Machines()
	if len(machines) != 3 {
		t.Fatalf("expected 3 machines, got %d", len(machines))
	}
	for i, slug := range []string{"m1", "m2", "m3"} {
		if machines[i].Slug != slug || machines[i].ID != int64(i+1) {
			t.Fatalf("machine %d: expected id %d slug %q, got %+v", i, i+1, slug, machines[i])
		}
	}

	if !c.HasFlavor("CARNE") || !c.HasFlavor("FRANGO C/ CATUPIRY") {
		t.Fatalf("expected default flavors to be present")
	}
	if c.HasFlavor("SUSHI") {
		t.Fatalf("unexpected flavor SUSHI")
	}
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	c, err := New([]string{"CARNE"}, []Machine{{ID: 1, Name: "one", Slug: "m1"}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	flavors := c.Flavors()
	flavors[0] = "changed"
	machines := c.Machines()
	machines[0].Name = "changed"

	if c.Flavors()[0] != "CARNE" {
		t.Fatalf("flavors leaked internal slice")
	}
	if m, _ := c.Machine(1); m.Name != "one" {
		t.Fatalf("machines leaked internal slice")
	}
}

func TestNew_InvalidCases(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		flavors  []string
		machines []Machine
	}{
		{name: "no_flavors", machines: []Machine{{ID: 1, Slug: "m1"}}},
		{name: "no_machines", flavors: []string{"CARNE"}},
		{name: "empty_flavor", flavors: []string{" "}, machines: []Machine{{ID: 1, Slug: "m1"}}},
		{name: "duplicate_flavor", flavors: []string{"CARNE", "CARNE"}, machines: []Machine{{ID: 1, Slug: "m1"}}},
		{name: "zero_id", flavors: []string{"CARNE"}, machines: []Machine{{ID: 0, Slug: "m1"}}},
		{name: "duplicate_id", flavors: []string{"CARNE"}, machines: []Machine{{ID: 1, Slug: "m1"}, {ID: 1, Slug: "m2"}}},
		{name: "duplicate_slug", flavors: []string{"CARNE"}, machines: []Machine{{ID: 1, Slug: "m1"}, {ID: 2, Slug: "m1"}}},
		{name: "empty_slug", flavors: []string{"CARNE"}, machines: []Machine{{ID: 1}}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tc.flavors, tc.machines)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := "flavors: [CARNE, QUEIJO]\nmachines:\n  - {id: 7, name: Única, slug: solo}\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m, ok := c.Machine(7); !ok || m.Slug != "solo" {
		t.Fatalf("expected machine 7 solo, got %+v (ok=%v)", m, ok)
	}
	if _, ok := c.Machine(1); ok {
		t.Fatalf("unexpected machine 1")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSnapshotMentionsFlavorsAndMachines(t *testing.T) {
	t.Parallel()

	c, err := New([]string{"CARNE", "QUEIJO"}, []Machine{{ID: 1, Name: "Máquina 01", Slug: "m1"}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	snap := c.Snapshot()
	for _, want := range []string{"(2)", "CARNE, QUEIJO", "Máquina 01"} {
		if !strings.Contains(snap, want) {
			t.Fatalf("snapshot %q does not contain %q", snap, want)
		}
	}
}
