package core

import "testing"

func TestBuildReport(t *testing.T) {
	t.Parallel()

	tasks := []Task{
		{Flavor: "QUEIJO", Quantity: 10, MachineID: 2, Status: Pending},
		{Flavor: "CARNE", Quantity: 20, MachineID: 1, Status: Done},
		{Flavor: "QUEIJO", Quantity: 5, MachineID: 1, Status: Pending},
		{Flavor: "PIZZA", Quantity: 7, MachineID: 2, Status: Pending},
	}

	r := BuildReport(testMachines, tasks)

	if r.Pending != 3 || r.Done != 1 {
		t.Fatalf("expected 3 pending / 1 done, got %d / %d", r.Pending, r.Done)
	}

	wantFlavors := []FlavorTotal{{"QUEIJO", 15}, {"CARNE", 20}, {"PIZZA", 7}}
	if len(r.FlavorTotals) != len(wantFlavors) {
		t.Fatalf("expected %d flavor totals, got %+v", len(wantFlavors), r.FlavorTotals)
	}
	for i, want := range wantFlavors {
		if r.FlavorTotals[i] != want {
			t.Fatalf("flavor %d: expected %+v, got %+v", i, want, r.FlavorTotals[i])
		}
	}

	wantLoads := []struct {
		load  int64
		count int
	}{{5, 1}, {17, 2}, {0, 0}}
	if len(r.MachineLoads) != 3 {
		t.Fatalf("expected 3 machine loads, got %d", len(r.MachineLoads))
	}
	for i, want := range wantLoads {
		ml := r.MachineLoads[i]
		if ml.Machine.ID != testMachines[i].ID || ml.Load != want.load || ml.PendingTasks != want.count {
			t.Fatalf("machine %d: expected load %d count %d, got %+v", i+1, want.load, want.count, ml)
		}
	}
}

func TestBuildReport_Empty(t *testing.T) {
	t.Parallel()

	r := BuildReport(testMachines, nil)
	if r.Pending != 0 || r.Done != 0 || len(r.FlavorTotals) != 0 {
		t.Fatalf("expected empty report, got %+v", r)
	}
	if len(r.MachineLoads) != 3 {
		t.Fatalf("expected every machine listed, got %d", len(r.MachineLoads))
	}
}
