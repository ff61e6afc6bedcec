package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/LuizRMSilva1973/projeto-pastelaria/production/catalog"
)

// Distributor turns an order into tasks, one per line item, each bound to the
// machine with the lowest combined load at the moment the item is placed.
type Distributor struct {
	machines []catalog.Machine
	rule     ProductionDateRule
	now      func() time.Time
	newID    func() string
}

type DistributorOption func(*Distributor)

func WithClock(now func() time.Time) DistributorOption {
	return func(d *Distributor) {
		if now != nil {
			d.now = now
		}
	}
}

func WithOrderIDs(newID func() string) DistributorOption {
	return func(d *Distributor) {
		if newID != nil {
			d.newID = newID
		}
	}
}

// NewDistributor keeps machines in the given order; that order breaks ties.
func NewDistributor(machines []catalog.Machine, rule ProductionDateRule, opts ...DistributorOption) *Distributor {
	d := &Distributor{
		machines: append([]catalog.Machine(nil), machines...),
		rule:     rule,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Distributor) Rule() ProductionDateRule {
	return d.rule
}

// Distribute does not touch any store: pending is the PENDING load per machine
// id before this order, and the returned tasks have no ids yet.
func (d *Distributor) Distribute(o Order, pending map[int64]int64) OrderResult {
	now := d.now()
	prodDate := d.rule.Apply(now)
	orderID := d.newID()

	local := make(map[int64]int64, len(d.machines))
	tasks := make([]Task, 0, len(o.Items))

	for _, item := range o.Items {
		machineID := d.leastLoaded(pending, local)
		local[machineID] += item.Quantity

		tasks = append(tasks, Task{
			OrderID:        orderID,
			Flavor:         item.Flavor,
			Quantity:       item.Quantity,
			MachineID:      machineID,
			Status:         Pending,
			Origin:         o.Origin,
			Client:         o.Client,
			ProductionDate: prodDate,
			CreatedAt:      now,
		})
	}

	return OrderResult{OrderID: orderID, Tasks: tasks}
}

// leastLoaded only replaces the candidate on a strictly lower load, so ties go
// to the machine listed first.
func (d *Distributor) leastLoaded(pending, local map[int64]int64) int64 {
	best := d.machines[0].ID
	bestLoad := pending[best] + local[best]

	for _, m := range d.machines[1:] {
		load := pending[m.ID] + local[m.ID]
		if load < bestLoad {
			best, bestLoad = m.ID, load
		}
	}
	return best
}

// PendingLoads sums quantities of PENDING tasks per machine.
func PendingLoads(tasks []Task) map[int64]int64 {
	loads := make(map[int64]int64)
	for _, t := range tasks {
		if t.Status == Pending {
			loads[t.MachineID] += t.Quantity
		}
	}
	return loads
}
