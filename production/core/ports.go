package core

import "context"

// Store is the task collection. It only appends and flips status; it never
// removes tasks.
type Store interface {
	Ping(ctx context.Context) error

	// Append assigns ids and commits the whole batch or nothing.
	Append(ctx context.Context, tasks []Task) ([]Task, error)
	// Complete reports changed=false for unknown ids and tasks already DONE.
	Complete(ctx context.Context, id int64) (task Task, changed bool, err error)
	Get(ctx context.Context, id int64) (Task, error)
	QueryByMachine(ctx context.Context, machineID int64, status *TaskStatus) ([]Task, error)
	QueryAll(ctx context.Context, status *TaskStatus) ([]Task, error)
}

// Journal is an optional write-through collaborator behind the Store.
type Journal interface {
	Ping(ctx context.Context) error
	LoadTasks(ctx context.Context) ([]Task, error)
	InsertTasks(ctx context.Context, tasks []Task) error
	MarkDone(ctx context.Context, id int64) error
}
