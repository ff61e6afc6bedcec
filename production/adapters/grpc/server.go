package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	productionpb "github.com/LuizRMSilva1973/projeto-pastelaria/proto/production"
	"github.com/LuizRMSilva1973/projeto-pastelaria/production/catalog"
	"github.com/LuizRMSilva1973/projeto-pastelaria/production/core"
)

type Server struct {
	productionpb.UnimplementedProductionServiceServer

	log     *slog.Logger
	service *core.Service
}

func NewServer(log *slog.Logger, service *core.Service) *Server {
	return &Server{log: log, service: service}
}

func (s *Server) Ping(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.service.Ping(ctx); err != nil {
		s.log.Error("ping failed", "error", err)
		return nil, status.Error(codes.Internal, "ping failed")
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) GetCatalog(_ context.Context, _ *emptypb.Empty) (*productionpb.Catalog, error) {
	cat := s.service.Catalog()

	machines := cat.Machines()
	out := &productionpb.Catalog{
		Flavors:  cat.Flavors(),
		Machines: make([]*productionpb.Machine, 0, len(machines)),
		Snapshot: cat.Snapshot(),
	}
	for _, m := range machines {
		out.Machines = append(out.Machines, machineToPB(m))
	}
	return out, nil
}

// Orders

func (s *Server) SubmitOrder(ctx context.Context, req *productionpb.SubmitOrderRequest) (*productionpb.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	o := core.Order{
		Client: req.GetClient(),
		Origin: req.GetOrigin(),
		Items:  make([]core.OrderItem, 0, len(req.GetItems())),
	}
	for _, it := range req.GetItems() {
		if it == nil {
			return nil, status.Error(codes.InvalidArgument, "empty order item")
		}
		o.Items = append(o.Items, core.OrderItem{Flavor: it.GetFlavor(), Quantity: it.GetQuantity()})
	}

	res, err := s.service.SubmitOrder(ctx, o)
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.log.Info("order distributed", "order_id", res.OrderID, "client", o.Client, "items", len(res.Tasks))
	return s.orderToPB(res), nil
}

func (s *Server) ImportOrder(ctx context.Context, req *productionpb.ImportOrderRequest) (*productionpb.OrderResponse, error) {
	res, err := s.service.ImportOrder(ctx, req.GetOrigin())
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.log.Info("order imported", "order_id", res.OrderID, "items", len(res.Tasks))
	return s.orderToPB(res), nil
}

// Tasks

func (s *Server) CompleteTask(ctx context.Context, req *productionpb.CompleteTaskRequest) (*productionpb.CompleteTaskResponse, error) {
	if req == nil || req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid id")
	}

	t, changed, err := s.service.CompleteTask(ctx, req.GetId())
	if err != nil {
		return nil, s.mapErr(err)
	}

	out := &productionpb.CompleteTaskResponse{Changed: changed}
	if t.ID != 0 {
		out.Task = s.taskToPB(t)
	}
	if changed {
		s.log.Info("task completed", "task_id", t.ID, "machine_id", t.MachineID)
	}
	return out, nil
}

func (s *Server) GetTask(ctx context.Context, req *productionpb.GetTaskRequest) (*productionpb.Task, error) {
	if req == nil || req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid id")
	}

	t, err := s.service.GetTask(ctx, req.GetId())
	if err != nil {
		return nil, s.mapErr(err)
	}
	return s.taskToPB(t), nil
}

func (s *Server) ListTasks(ctx context.Context, req *productionpb.ListTasksRequest) (*productionpb.ListTasksResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if req.GetMachineId() < 0 {
		return nil, status.Error(codes.InvalidArgument, "machine_id cannot be negative")
	}

	var f core.ListTasksFilter
	if req.GetMachineId() != 0 {
		id := req.GetMachineId()
		f.MachineID = &id
	}
	if req.GetStatus() != productionpb.TaskStatus_TASK_STATUS_UNSPECIFIED {
		st, err := pbStatusToCore(req.GetStatus())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid status")
		}
		f.Status = &st
	}

	items, err := s.service.ListTasks(ctx, f)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &productionpb.ListTasksResponse{Tasks: s.tasksToPB(items)}, nil
}

// Machines

func (s *Server) GetMachineQueue(ctx context.Context, req *productionpb.GetMachineQueueRequest) (*productionpb.MachineQueue, error) {
	if req == nil || req.GetMachineId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid machine id")
	}

	q, err := s.service.MachineQueue(ctx, req.GetMachineId())
	if err != nil {
		return nil, s.mapErr(err)
	}

	return &productionpb.MachineQueue{
		Machine: machineToPB(q.Machine),
		Load:    q.Load,
		Tasks:   s.tasksToPB(q.Tasks),
	}, nil
}

func (s *Server) GetReport(ctx context.Context, _ *emptypb.Empty) (*productionpb.Report, error) {
	r, err := s.service.Report(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}

	out := &productionpb.Report{
		Pending:      int64(r.Pending),
		Done:         int64(r.Done),
		FlavorTotals: make([]*productionpb.FlavorTotal, 0, len(r.FlavorTotals)),
		MachineLoads: make([]*productionpb.MachineLoad, 0, len(r.MachineLoads)),
	}
	for _, ft := range r.FlavorTotals {
		out.FlavorTotals = append(out.FlavorTotals, &productionpb.FlavorTotal{Flavor: ft.Flavor, Quantity: ft.Quantity})
	}
	for _, ml := range r.MachineLoads {
		out.MachineLoads = append(out.MachineLoads, &productionpb.MachineLoad{
			Machine:      machineToPB(ml.Machine),
			Load:         ml.Load,
			PendingTasks: int64(ml.PendingTasks),
		})
	}
	return out, nil
}

// Helpers

func machineToPB(m catalog.Machine) *productionpb.Machine {
	return &productionpb.Machine{Id: m.ID, Name: m.Name, Slug: m.Slug}
}

func (s *Server) taskToPB(t core.Task) *productionpb.Task {
	return &productionpb.Task{
		Id:             t.ID,
		OrderId:        t.OrderID,
		Flavor:         t.Flavor,
		Quantity:       t.Quantity,
		MachineId:      t.MachineID,
		Status:         coreStatusToPB(t.Status),
		Origin:         t.Origin,
		Client:         t.Client,
		ProductionDate: timestamppb.New(t.ProductionDate),
		CreatedAt:      timestamppb.New(t.CreatedAt),
		ProductionDay:  s.service.ProductionDay(t),
	}
}

func (s *Server) tasksToPB(items []core.Task) []*productionpb.Task {
	out := make([]*productionpb.Task, 0, len(items))
	for _, t := range items {
		out = append(out, s.taskToPB(t))
	}
	return out
}

func (s *Server) orderToPB(res core.OrderResult) *productionpb.OrderResponse {
	return &productionpb.OrderResponse{OrderId: res.OrderID, Tasks: s.tasksToPB(res.Tasks)}
}

func pbStatusToCore(st productionpb.TaskStatus) (core.TaskStatus, error) {
	switch st {
	case productionpb.TaskStatus_TASK_STATUS_PENDING:
		return core.Pending, nil
	case productionpb.TaskStatus_TASK_STATUS_DONE:
		return core.Done, nil
	default:
		return core.Pending, errors.New("unknown status")
	}
}

func coreStatusToPB(st core.TaskStatus) productionpb.TaskStatus {
	switch st {
	case core.Pending:
		return productionpb.TaskStatus_TASK_STATUS_PENDING
	case core.Done:
		return productionpb.TaskStatus_TASK_STATUS_DONE
	default:
		return productionpb.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

func (s *Server) mapErr(err error) error {
	switch {
	// orders
	case errors.Is(err, core.ErrOrderInvalidArgs):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, core.ErrUnknownFlavor):
		return status.Error(codes.InvalidArgument, err.Error())

	// tasks
	case errors.Is(err, core.ErrTaskInvalidArgs):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, core.ErrTaskNotFound):
		return status.Error(codes.NotFound, err.Error())

	// machines
	case errors.Is(err, core.ErrMachineNotFound):
		return status.Error(codes.NotFound, err.Error())

	default:
		s.log.Error("internal error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
