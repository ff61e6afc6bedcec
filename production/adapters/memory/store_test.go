package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/LuizRMSilva1973/projeto-pastelaria/production/core"
)

type fakeJournal struct {
	mu        sync.Mutex
	rows      []core.Task
	insertErr error
	markErr   error
	marked    []int64
}

func (j *fakeJournal) Ping(context.Context) error { return nil }

func (j *fakeJournal) LoadTasks(context.Context) ([]core.Task, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]core.Task(nil), j.rows...), nil
}

func (j *fakeJournal) InsertTasks(_ context.Context, tasks []core.Task) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.insertErr != nil {
		return j.insertErr
	}
	j.rows = append(j.rows, tasks...)
	return nil
}

func (j *fakeJournal) MarkDone(_ context.Context, id int64) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.markErr != nil {
		return j.markErr
	}
	j.marked = append(j.marked, id)
	return nil
}

func newTask(flavor string, qty, machineID int64) core.Task {
	return core.Task{
		Flavor:    flavor,
		Quantity:  qty,
		MachineID: machineID,
		Status:    core.Pending,
		Origin:    core.OriginManual,
		Client:    "client",
		CreatedAt: time.Now(),
	}
}

func mustAppend(t *testing.T, s *Store, tasks ...core.Task) []core.Task {
	t.Helper()

	out, err := s.Append(context.Background(), tasks)
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	return out
}

func TestAppend_AssignsSequentialIDsInOrder(t *testing.T) {
	s := New()

	first := mustAppend(t, s, newTask("CARNE", 10, 1), newTask("QUEIJO", 5, 2))
	second := mustAppend(t, s, newTask("PIZZA", 3, 3))

	if first[0].ID != 1 || first[1].ID != 2 || second[0].ID != 3 {
		t.Fatalf("unexpected ids: %d %d %d", first[0].ID, first[1].ID, second[0].ID)
	}

	all, _ := s.QueryAll(context.Background(), nil)
	if len(all) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(all))
	}
	for i, flavor := range []string{"CARNE", "QUEIJO", "PIZZA"} {
		if all[i].Flavor != flavor {
			t.Fatalf("position %d: expected %s, got %s", i, flavor, all[i].Flavor)
		}
	}
}

func TestAppend_ConcurrentBurstsNeverCollide(t *testing.T) {
	s := New()

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, _ = s.Append(context.Background(), []core.Task{newTask("CARNE", 1, 1)})
			}
		}()
	}
	wg.Wait()

	all, _ := s.QueryAll(context.Background(), nil)
	seen := make(map[int64]bool, len(all))
	for _, task := range all {
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d tasks, got %d", workers*perWorker, len(seen))
	}
}

func TestComplete_IsIdempotent(t *testing.T) {
	s := New()
	created := mustAppend(t, s, newTask("CARNE", 10, 1))
	id := created[0].ID

	task, changed, err := s.Complete(context.Background(), id)
	if err != nil || !changed {
		t.Fatalf("first Complete: changed=%v err=%v", changed, err)
	}
	if task.Status != core.Done {
		t.Fatalf("expected DONE, got %s", task.Status)
	}

	task, changed, err = s.Complete(context.Background(), id)
	if err != nil || changed {
		t.Fatalf("second Complete: changed=%v err=%v", changed, err)
	}
	if task.Status != core.Done {
		t.Fatalf("expected DONE to stay, got %s", task.Status)
	}

	all, _ := s.QueryAll(context.Background(), nil)
	if len(all) != 1 {
		t.Fatalf("expected no duplicates, got %d tasks", len(all))
	}
}

func TestComplete_UnknownIDIsNoop(t *testing.T) {
	s := New()
	mustAppend(t, s, newTask("CARNE", 10, 1))

	_, changed, err := s.Complete(context.Background(), 999)
	if err != nil || changed {
		t.Fatalf("Complete(999): changed=%v err=%v", changed, err)
	}

	pending := core.Pending
	tasks, _ := s.QueryAll(context.Background(), &pending)
	if len(tasks) != 1 {
		t.Fatalf("expected store unchanged, got %d pending", len(tasks))
	}
}

func TestQueryByMachine_FiltersByMachineAndStatus(t *testing.T) {
	s := New()
	created := mustAppend(t, s,
		newTask("CARNE", 10, 1),
		newTask("QUEIJO", 5, 2),
		newTask("PIZZA", 7, 1),
	)
	if _, _, err := s.Complete(context.Background(), created[0].ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	all, _ := s.QueryByMachine(context.Background(), 1, nil)
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks on machine 1, got %d", len(all))
	}

	pending := core.Pending
	open, _ := s.QueryByMachine(context.Background(), 1, &pending)
	if len(open) != 1 || open[0].Flavor != "PIZZA" {
		t.Fatalf("expected only PIZZA pending on machine 1, got %+v", open)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := New()

	if _, err := s.Get(context.Background(), 1); !errors.Is(err, core.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestJournal_InsertFailureLeavesStoreUnchanged(t *testing.T) {
	j := &fakeJournal{insertErr: errors.New("db down")}
	s, err := Restore(context.Background(), j)
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}

	if _, err := s.Append(context.Background(), []core.Task{newTask("CARNE", 1, 1), newTask("QUEIJO", 1, 2)}); err == nil {
		t.Fatalf("expected Append error")
	}

	all, _ := s.QueryAll(context.Background(), nil)
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d tasks", len(all))
	}

	j.insertErr = nil
	created := mustAppend(t, s, newTask("PIZZA", 1, 1))
	if created[0].ID != 1 {
		t.Fatalf("expected id sequence untouched by failed append, got %d", created[0].ID)
	}
}

func TestJournal_RestoreContinuesIDs(t *testing.T) {
	restored := newTask("CARNE", 4, 2)
	restored.ID = 41
	restored.Status = core.Done
	j := &fakeJournal{rows: []core.Task{restored}}

	s, err := Restore(context.Background(), j)
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}

	got, err := s.Get(context.Background(), 41)
	if err != nil || got.Status != core.Done {
		t.Fatalf("expected restored DONE task, got %+v err=%v", got, err)
	}

	created := mustAppend(t, s, newTask("QUEIJO", 1, 1))
	if created[0].ID != 42 {
		t.Fatalf("expected next id 42, got %d", created[0].ID)
	}
	if len(j.rows) != 2 {
		t.Fatalf("expected journal to receive the new task, got %d rows", len(j.rows))
	}
}

func TestJournal_MarkDoneWrittenOnce(t *testing.T) {
	j := &fakeJournal{}
	s, _ := Restore(context.Background(), j)
	created := mustAppend(t, s, newTask("CARNE", 1, 1))

	for i := 0; i < 3; i++ {
		if _, _, err := s.Complete(context.Background(), created[0].ID); err != nil {
			t.Fatalf("Complete returned error: %v", err)
		}
	}

	if len(j.marked) != 1 {
		t.Fatalf("expected one journal write, got %d", len(j.marked))
	}
}

func TestJournal_MarkDoneFailureKeepsPending(t *testing.T) {
	j := &fakeJournal{markErr: errors.New("db down")}
	s, _ := Restore(context.Background(), j)
	created := mustAppend(t, s, newTask("CARNE", 1, 1))

	if _, _, err := s.Complete(context.Background(), created[0].ID); err == nil {
		t.Fatalf("expected Complete error")
	}

	got, _ := s.Get(context.Background(), created[0].ID)
	if got.Status != core.Pending {
		t.Fatalf("expected PENDING after failed journal write, got %s", got.Status)
	}
}
