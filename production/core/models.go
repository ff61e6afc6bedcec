package core

import "time"

type TaskStatus string

const (
	Pending TaskStatus = "PENDING"
	Done    TaskStatus = "DONE"
)

const (
	OriginManual    = "MANUAL"
	OriginRDStation = "RD_STATION"
)

// Task is immutable after creation except for Status.
type Task struct {
	ID             int64      `db:"id"`
	OrderID        string     `db:"order_id"`
	Flavor         string     `db:"flavor"`
	Quantity       int64      `db:"quantity"`
	MachineID      int64      `db:"machine_id"`
	Status         TaskStatus `db:"status"`
	Origin         string     `db:"origin"`
	Client         string     `db:"client"`
	ProductionDate time.Time  `db:"production_date"`
	CreatedAt      time.Time  `db:"created_at"`
}

// MaxItemQuantity bounds a single line item so machine loads stay far from
// int64 overflow.
const MaxItemQuantity = 1_000_000

type OrderItem struct {
	Flavor   string
	Quantity int64
}

type Order struct {
	Client string
	Origin string
	Items  []OrderItem
}

type OrderResult struct {
	OrderID string
	Tasks   []Task
}
