package core

import "time"

type TaskStatus string

const (
	StatusPending TaskStatus = "PENDING"
	StatusDone    TaskStatus = "DONE"
)

type Machine struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Catalog struct {
	Flavors  []string  `json:"flavors"`
	Machines []Machine `json:"machines"`
	Snapshot string    `json:"-"`
}

type Task struct {
	ID             int64      `json:"id"`
	OrderID        string     `json:"order_id"`
	Flavor         string     `json:"flavor"`
	Quantity       int64      `json:"quantity"`
	MachineID      int64      `json:"machine_id"`
	Status         TaskStatus `json:"status"`
	Origin         string     `json:"origin"`
	Client         string     `json:"client"`
	ProductionDate time.Time  `json:"production_date"`
	ProductionDay  string     `json:"production_day"`
	CreatedAt      time.Time  `json:"created_at"`
}

type OrderItem struct {
	Flavor   string `json:"flavor"`
	Quantity int64  `json:"quantity"`
}

type Order struct {
	Client string
	Origin string
	Items  []OrderItem
}

type OrderResult struct {
	OrderID string `json:"order_id"`
	Tasks   []Task `json:"tasks"`
}

// CompleteResult has a nil Task when the id was unknown.
type CompleteResult struct {
	Task    *Task `json:"task,omitempty"`
	Changed bool  `json:"changed"`
}

type ListTasksFilter struct {
	MachineID *int64
	Status    *TaskStatus
}

type MachineQueue struct {
	Machine Machine `json:"machine"`
	Load    int64   `json:"load"`
	Tasks   []Task  `json:"tasks"`
}

type FlavorTotal struct {
	Flavor   string `json:"flavor"`
	Quantity int64  `json:"quantity"`
}

type MachineLoad struct {
	Machine      Machine `json:"machine"`
	Load         int64   `json:"load"`
	PendingTasks int64   `json:"pending_tasks"`
}

type Report struct {
	Pending      int64         `json:"pending"`
	Done         int64         `json:"done"`
	FlavorTotals []FlavorTotal `json:"flavor_totals"`
	MachineLoads []MachineLoad `json:"machine_loads"`
}

// Chat roles as the dashboard sends them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ChatReply struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}
