package core

import (
	"testing"
	"time"

	"github.com/LuizRMSilva1973/projeto-pastelaria/production/catalog"
)

var testMachines = []catalog.Machine{
	{ID: 1, Name: "Máquina 01", Slug: "m1"},
	{ID: 2, Name: "Máquina 02", Slug: "m2"},
	{ID: 3, Name: "Máquina 03", Slug: "m3"},
}

func newTestDistributor(now time.Time) *Distributor {
	return NewDistributor(testMachines, ProductionDateRule{Hour: 8, Location: time.UTC},
		WithClock(func() time.Time { return now }),
		WithOrderIDs(func() string { return "order-1" }),
	)
}

func machinesOf(tasks []Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.MachineID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDistribute_SingleItemPicksLeastLoaded(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		pending map[int64]int64
		want    int64
	}{
		{name: "all_empty_first_machine", pending: map[int64]int64{}, want: 1},
		{name: "first_loaded_tie_between_two_and_three", pending: map[int64]int64{1: 50}, want: 2},
		{name: "third_is_lightest", pending: map[int64]int64{1: 30, 2: 20, 3: 10}, want: 3},
		{name: "tie_between_one_and_three", pending: map[int64]int64{1: 5, 2: 9, 3: 5}, want: 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newTestDistributor(time.Date(2024, 5, 10, 7, 0, 0, 0, time.UTC))
			res := d.Distribute(Order{Client: "c", Origin: OriginManual, Items: []OrderItem{{Flavor: "FRANGO", Quantity: 10}}}, tc.pending)

			if len(res.Tasks) != 1 {
				t.Fatalf("expected 1 task, got %d", len(res.Tasks))
			}
			if res.Tasks[0].MachineID != tc.want {
				t.Fatalf("expected machine %d, got %d", tc.want, res.Tasks[0].MachineID)
			}
		})
	}
}

func TestDistribute_EqualItemsSpreadAcrossMachines(t *testing.T) {
	t.Parallel()

	d := newTestDistributor(time.Date(2024, 5, 10, 7, 0, 0, 0, time.UTC))
	res := d.Distribute(Order{Client: "c", Items: []OrderItem{
		{Flavor: "CARNE", Quantity: 20},
		{Flavor: "QUEIJO", Quantity: 20},
		{Flavor: "PIZZA", Quantity: 20},
	}}, map[int64]int64{})

	if got := machinesOf(res.Tasks); !equalIDs(got, []int64{1, 2, 3}) {
		t.Fatalf("expected machines [1 2 3], got %v", got)
	}

	loads := PendingLoads(res.Tasks)
	for _, m := range testMachines {
		if loads[m.ID] != 20 {
			t.Fatalf("expected load 20 on machine %d, got %d", m.ID, loads[m.ID])
		}
	}

	for _, task := range res.Tasks {
		if task.Status != Pending {
			t.Fatalf("expected PENDING, got %s", task.Status)
		}
		if !task.ProductionDate.Equal(res.Tasks[0].ProductionDate) {
			t.Fatalf("expected one production date per order")
		}
		if task.OrderID != "order-1" {
			t.Fatalf("expected order id order-1, got %q", task.OrderID)
		}
	}
}

func TestDistribute_RoundRobinThenBalancesByQuantity(t *testing.T) {
	t.Parallel()

	d := newTestDistributor(time.Date(2024, 5, 10, 7, 0, 0, 0, time.UTC))
	res := d.Distribute(Order{Client: "c", Items: []OrderItem{
		{Flavor: "A", Quantity: 30}, // m1 -> 30
		{Flavor: "B", Quantity: 10}, // m2 -> 10
		{Flavor: "C", Quantity: 10}, // m3 -> 10
		{Flavor: "D", Quantity: 5},  // m2 -> 15 (tie m2/m3, m2 first)
		{Flavor: "E", Quantity: 5},  // m3 -> 15
		{Flavor: "F", Quantity: 20}, // m2 -> 35 (tie m2/m3 at 15)
		{Flavor: "G", Quantity: 1},  // m3 -> 16
	}}, map[int64]int64{})

	want := []int64{1, 2, 3, 2, 3, 2, 3}
	if got := machinesOf(res.Tasks); !equalIDs(got, want) {
		t.Fatalf("expected machines %v, got %v", want, got)
	}
}

func TestDistribute_AccountsForOrderLocalLoad(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		pending map[int64]int64
		want    []int64
	}{
		// Without the order-local term both items would land on machine 3.
		{name: "second_item_sees_first", pending: map[int64]int64{1: 10, 2: 10}, want: []int64{3, 1}},
		{name: "lightest_stays_lightest", pending: map[int64]int64{1: 100, 2: 100}, want: []int64{3, 3}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := newTestDistributor(time.Date(2024, 5, 10, 7, 0, 0, 0, time.UTC))
			res := d.Distribute(Order{Client: "c", Items: []OrderItem{
				{Flavor: "A", Quantity: 10},
				{Flavor: "B", Quantity: 10},
			}}, tc.pending)

			if got := machinesOf(res.Tasks); !equalIDs(got, tc.want) {
				t.Fatalf("expected machines %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDistribute_CopiesOrderFields(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 10, 9, 15, 0, 0, time.UTC)
	d := newTestDistributor(now)
	res := d.Distribute(Order{Client: "João", Origin: OriginRDStation, Items: []OrderItem{{Flavor: "SUSHI", Quantity: 3}}}, nil)

	task := res.Tasks[0]
	if task.Client != "João" || task.Origin != OriginRDStation || task.Flavor != "SUSHI" || task.Quantity != 3 {
		t.Fatalf("unexpected task %+v", task)
	}
	if !task.CreatedAt.Equal(now) {
		t.Fatalf("expected created at %s, got %s", now, task.CreatedAt)
	}
	if day := d.Rule().Day(task.ProductionDate); day != "2024-05-11" {
		t.Fatalf("expected production day 2024-05-11, got %s", day)
	}
	if task.ID != 0 {
		t.Fatalf("distributor must not assign ids, got %d", task.ID)
	}
}

func TestDistribute_EmptyOrder(t *testing.T) {
	t.Parallel()

	d := newTestDistributor(time.Now())
	res := d.Distribute(Order{Client: "c"}, nil)
	if len(res.Tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(res.Tasks))
	}
}

func TestPendingLoads_IgnoresDone(t *testing.T) {
	t.Parallel()

	loads := PendingLoads([]Task{
		{MachineID: 1, Quantity: 10, Status: Pending},
		{MachineID: 1, Quantity: 7, Status: Done},
		{MachineID: 2, Quantity: 3, Status: Pending},
	})
	if loads[1] != 10 || loads[2] != 3 || loads[3] != 0 {
		t.Fatalf("unexpected loads %v", loads)
	}
}
