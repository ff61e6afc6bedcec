package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/LuizRMSilva1973/projeto-pastelaria/production/core"
)

// Store is the canonical task collection. When a journal is attached every
// write goes to the journal first and is committed in memory only if the
// journal accepted it.
type Store struct {
	mu      sync.RWMutex
	tasks   []core.Task
	index   map[int64]int
	nextID  int64
	journal core.Journal
}

func New() *Store {
	return &Store{
		index:  make(map[int64]int),
		nextID: 1,
	}
}

// Restore builds a store backed by journal, replaying its rows in id order.
func Restore(ctx context.Context, journal core.Journal) (*Store, error) {
	s := New()
	s.journal = journal

	tasks, err := journal.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	for _, t := range tasks {
		if _, dup := s.index[t.ID]; dup {
			return nil, fmt.Errorf("load journal: duplicate task id %d", t.ID)
		}
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t)
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.journal == nil {
		return nil
	}
	return s.journal.Ping(ctx)
}

func (s *Store) Append(ctx context.Context, tasks []core.Task) ([]core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Task, len(tasks))
	for i, t := range tasks {
		t.ID = s.nextID + int64(i)
		out[i] = t
	}

	if s.journal != nil && len(out) > 0 {
		if err := s.journal.InsertTasks(ctx, out); err != nil {
			return nil, fmt.Errorf("journal insert: %w", err)
		}
	}

	for _, t := range out {
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t)
	}
	s.nextID += int64(len(out))

	return out, nil
}

func (s *Store) Complete(ctx context.Context, id int64) (core.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return core.Task{}, false, nil
	}
	if s.tasks[i].Status == core.Done {
		return s.tasks[i], false, nil
	}

	if s.journal != nil {
		if err := s.journal.MarkDone(ctx, id); err != nil {
			return core.Task{}, false, fmt.Errorf("journal mark done: %w", err)
		}
	}

	s.tasks[i].Status = core.Done
	return s.tasks[i], true, nil
}

func (s *Store) Get(_ context.Context, id int64) (core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return core.Task{}, core.ErrTaskNotFound
	}
	return s.tasks[i], nil
}

func (s *Store) QueryByMachine(_ context.Context, machineID int64, status *core.TaskStatus) ([]core.Task, error) {
	return s.query(core.ListTasksFilter{MachineID: &machineID, Status: status}), nil
}

func (s *Store) QueryAll(_ context.Context, status *core.TaskStatus) ([]core.Task, error) {
	return s.query(core.ListTasksFilter{Status: status}), nil
}

func (s *Store) query(f core.ListTasksFilter) []core.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

var _ core.Store = (*Store)(nil)
