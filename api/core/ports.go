package core

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Production interface {
	Pinger

	Catalog(ctx context.Context) (Catalog, error)

	// orders
	SubmitOrder(ctx context.Context, o Order) (OrderResult, error)
	ImportOrder(ctx context.Context, origin string) (OrderResult, error)

	// tasks
	CompleteTask(ctx context.Context, id int64) (CompleteResult, error)
	GetTask(ctx context.Context, id int64) (Task, error)
	ListTasks(ctx context.Context, f ListTasksFilter) ([]Task, error)

	// machines
	MachineQueue(ctx context.Context, machineID int64) (MachineQueue, error)
	Report(ctx context.Context) (Report, error)
}

// Assistant is the language model behind the dashboard chat. It only ever
// sees the catalog snapshot and the conversation.
type Assistant interface {
	Ask(ctx context.Context, snapshot string, history []ChatTurn, message string) (string, error)
}

type Deps struct {
	Production Production
	Assistant  Assistant
}
