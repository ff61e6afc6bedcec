package core

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/LuizRMSilva1973/projeto-pastelaria/production/catalog"
)

type Service struct {
	store       Store
	catalog     *catalog.Catalog
	distributor *Distributor

	strictFlavors bool
	intn          func(n int) int

	// orders serializes load computation, distribution and append so two
	// concurrent orders cannot both see the same least-loaded machine.
	orders sync.Mutex
}

type Option func(*Service)

// WithStrictFlavors rejects order items whose flavor is not in the catalog.
func WithStrictFlavors(strict bool) Option {
	return func(s *Service) { s.strictFlavors = strict }
}

// WithRandom replaces the source used to synthesise imported orders.
func WithRandom(intn func(n int) int) Option {
	return func(s *Service) {
		if intn != nil {
			s.intn = intn
		}
	}
}

func NewService(store Store, cat *catalog.Catalog, distributor *Distributor, opts ...Option) *Service {
	s := &Service{
		store:       store,
		catalog:     cat,
		distributor: distributor,
		intn:        rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func isValidStatus(st TaskStatus) bool {
	return st == Pending || st == Done
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// ProductionDay buckets a task by the production calendar day. Tasks restored
// from the journal come back in the driver's zone, so the rule's zone is
// applied here rather than trusted from the stored value.
func (s *Service) ProductionDay(t Task) string {
	return s.distributor.Rule().Day(t.ProductionDate)
}

// Orders

func (s *Service) SubmitOrder(ctx context.Context, o Order) (OrderResult, error) {
	o, err := s.normalizeOrder(o)
	if err != nil {
		return OrderResult{}, err
	}

	s.orders.Lock()
	defer s.orders.Unlock()

	pendingStatus := Pending
	pending, err := s.store.QueryAll(ctx, &pendingStatus)
	if err != nil {
		return OrderResult{}, fmt.Errorf("load pending tasks: %w", err)
	}

	result := s.distributor.Distribute(o, PendingLoads(pending))

	stored, err := s.store.Append(ctx, result.Tasks)
	if err != nil {
		return OrderResult{}, fmt.Errorf("append order %s: %w", result.OrderID, err)
	}
	result.Tasks = stored

	return result, nil
}

// ImportOrder stands in for an order pulled from an external CRM: a random web
// client ordering two random flavors.
func (s *Service) ImportOrder(ctx context.Context, origin string) (OrderResult, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		origin = OriginRDStation
	}

	flavors := s.catalog.Flavors()
	o := Order{
		Client: fmt.Sprintf("Cliente Web #%d", s.intn(1000)),
		Origin: origin,
		Items: []OrderItem{
			{Flavor: flavors[s.intn(len(flavors))], Quantity: int64(10 + s.intn(40))},
			{Flavor: flavors[s.intn(len(flavors))], Quantity: int64(5 + s.intn(20))},
		},
	}

	return s.SubmitOrder(ctx, o)
}

func (s *Service) normalizeOrder(o Order) (Order, error) {
	o.Client = strings.TrimSpace(o.Client)
	if o.Client == "" {
		return Order{}, fmt.Errorf("%w: client is required", ErrOrderInvalidArgs)
	}
	if len(o.Items) == 0 {
		return Order{}, fmt.Errorf("%w: order has no items", ErrOrderInvalidArgs)
	}

	o.Origin = strings.TrimSpace(o.Origin)
	if o.Origin == "" {
		o.Origin = OriginManual
	}

	items := make([]OrderItem, 0, len(o.Items))
	for i, item := range o.Items {
		item.Flavor = strings.TrimSpace(item.Flavor)
		if item.Flavor == "" {
			return Order{}, fmt.Errorf("%w: item %d has no flavor", ErrOrderInvalidArgs, i)
		}
		if item.Quantity <= 0 {
			return Order{}, fmt.Errorf("%w: item %d quantity must be positive", ErrOrderInvalidArgs, i)
		}
		if item.Quantity > MaxItemQuantity {
			return Order{}, fmt.Errorf("%w: item %d quantity exceeds %d", ErrOrderInvalidArgs, i, MaxItemQuantity)
		}
		if s.strictFlavors && !s.catalog.HasFlavor(item.Flavor) {
			return Order{}, fmt.Errorf("%w: %q", ErrUnknownFlavor, item.Flavor)
		}
		items = append(items, item)
	}
	o.Items = items

	return o, nil
}

// Tasks

// CompleteTask is idempotent: unknown ids and tasks already DONE come back with
// changed=false and no error.
func (s *Service) CompleteTask(ctx context.Context, id int64) (Task, bool, error) {
	if id <= 0 {
		return Task{}, false, ErrTaskInvalidArgs
	}
	return s.store.Complete(ctx, id)
}

func (s *Service) GetTask(ctx context.Context, id int64) (Task, error) {
	if id <= 0 {
		return Task{}, ErrTaskInvalidArgs
	}
	return s.store.Get(ctx, id)
}

func (s *Service) ListTasks(ctx context.Context, f ListTasksFilter) ([]Task, error) {
	if f.Status != nil && !isValidStatus(*f.Status) {
		return nil, ErrTaskInvalidArgs
	}
	if f.MachineID != nil {
		if _, ok := s.catalog.Machine(*f.MachineID); !ok {
			return nil, ErrMachineNotFound
		}
		return s.store.QueryByMachine(ctx, *f.MachineID, f.Status)
	}
	return s.store.QueryAll(ctx, f.Status)
}

// Machines

// MachineQueue returns the PENDING tasks of one machine in creation order.
func (s *Service) MachineQueue(ctx context.Context, machineID int64) (MachineQueue, error) {
	m, ok := s.catalog.Machine(machineID)
	if !ok {
		return MachineQueue{}, ErrMachineNotFound
	}

	pendingStatus := Pending
	tasks, err := s.store.QueryByMachine(ctx, machineID, &pendingStatus)
	if err != nil {
		return MachineQueue{}, fmt.Errorf("query machine %d: %w", machineID, err)
	}

	q := MachineQueue{Machine: m, Tasks: tasks}
	for _, t := range tasks {
		q.Load += t.Quantity
	}
	return q, nil
}

// Reporting

func (s *Service) Report(ctx context.Context) (Report, error) {
	tasks, err := s.store.QueryAll(ctx, nil)
	if err != nil {
		return Report{}, fmt.Errorf("query tasks: %w", err)
	}
	return BuildReport(s.catalog.Machines(), tasks), nil
}
