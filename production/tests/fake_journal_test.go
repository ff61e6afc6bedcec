package tests

import (
	"context"
	"errors"
	"sync"

	"github.com/LuizRMSilva1973/projeto-pastelaria/production/core"
)

var errJournalDown = errors.New("journal down")

// fakeJournal keeps journaled rows in memory so a store can be rebuilt from it.
type fakeJournal struct {
	mu sync.Mutex

	rows       []core.Task
	failInsert bool
}

func newFakeJournal() *fakeJournal {
	return &fakeJournal{}
}

func (j *fakeJournal) setFailInsert(v bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.failInsert = v
}

func (j *fakeJournal) Ping(context.Context) error {
	return nil
}

func (j *fakeJournal) LoadTasks(context.Context) ([]core.Task, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]core.Task(nil), j.rows...), nil
}

func (j *fakeJournal) InsertTasks(_ context.Context, tasks []core.Task) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.failInsert {
		return errJournalDown
	}
	j.rows = append(j.rows, tasks...)
	return nil
}

func (j *fakeJournal) MarkDone(_ context.Context, id int64) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i := range j.rows {
		if j.rows[i].ID == id {
			j.rows[i].Status = core.Done
		}
	}
	return nil
}
