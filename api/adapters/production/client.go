package production

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
	productionpb "github.com/LuizRMSilva1973/projeto-pastelaria/proto/production"
)

type Client struct {
	log  *slog.Logger
	conn *grpc.ClientConn

	production productionpb.ProductionServiceClient
}

func NewClient(address string, log *slog.Logger) (*Client, error) {
	conn, err := grpc.NewClient(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("new grpc client for %s: %w", address, err)
	}

	return &Client{
		log:        log,
		conn:       conn,
		production: productionpb.NewProductionServiceClient(conn),
	}, nil
}

// NewClientFromConn wraps an existing connection, e.g. an in-process bufconn.
func NewClientFromConn(conn grpc.ClientConnInterface, log *slog.Logger) *Client {
	return &Client{log: log, production: productionpb.NewProductionServiceClient(conn)}
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// ---- Pinger

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.production.Ping(ctx, &emptypb.Empty{})
	return mapGRPCErr(err)
}

func (c *Client) Catalog(ctx context.Context) (apicore.Catalog, error) {
	resp, err := c.production.GetCatalog(ctx, &emptypb.Empty{})
	if err != nil {
		return apicore.Catalog{}, mapGRPCErr(err)
	}

	out := apicore.Catalog{
		Flavors:  resp.GetFlavors(),
		Machines: make([]apicore.Machine, 0, len(resp.GetMachines())),
		Snapshot: resp.GetSnapshot(),
	}
	for _, m := range resp.GetMachines() {
		out.Machines = append(out.Machines, machineFromPB(m))
	}
	return out, nil
}

// ---- Orders

func (c *Client) SubmitOrder(ctx context.Context, o apicore.Order) (apicore.OrderResult, error) {
	req := &productionpb.SubmitOrderRequest{
		Client: o.Client,
		Origin: o.Origin,
		Items:  make([]*productionpb.OrderItem, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		req.Items = append(req.Items, &productionpb.OrderItem{Flavor: it.Flavor, Quantity: it.Quantity})
	}

	resp, err := c.production.SubmitOrder(ctx, req)
	if err != nil {
		return apicore.OrderResult{}, mapGRPCErr(err)
	}
	return c.orderFromPB(resp)
}

func (c *Client) ImportOrder(ctx context.Context, origin string) (apicore.OrderResult, error) {
	resp, err := c.production.ImportOrder(ctx, &productionpb.ImportOrderRequest{Origin: origin})
	if err != nil {
		return apicore.OrderResult{}, mapGRPCErr(err)
	}
	return c.orderFromPB(resp)
}

// ---- Tasks

func (c *Client) CompleteTask(ctx context.Context, id int64) (apicore.CompleteResult, error) {
	resp, err := c.production.CompleteTask(ctx, &productionpb.CompleteTaskRequest{Id: id})
	if err != nil {
		return apicore.CompleteResult{}, mapGRPCErr(err)
	}

	out := apicore.CompleteResult{Changed: resp.GetChanged()}
	if resp.GetTask() != nil {
		t, err := taskFromPB(resp.GetTask())
		if err != nil {
			c.log.Error("bad task from production", "task_id", resp.GetTask().GetId(), "error", err)
			return apicore.CompleteResult{}, err
		}
		out.Task = &t
	}
	return out, nil
}

func (c *Client) GetTask(ctx context.Context, id int64) (apicore.Task, error) {
	resp, err := c.production.GetTask(ctx, &productionpb.GetTaskRequest{Id: id})
	if err != nil {
		return apicore.Task{}, mapGRPCErr(err)
	}
	t, err := taskFromPB(resp)
	if err != nil {
		c.log.Error("bad task from production", "task_id", resp.GetId(), "error", err)
		return apicore.Task{}, err
	}
	return t, nil
}

func (c *Client) ListTasks(ctx context.Context, f apicore.ListTasksFilter) ([]apicore.Task, error) {
	req := &productionpb.ListTasksRequest{}
	if f.MachineID != nil {
		req.MachineId = *f.MachineID
	}
	if f.Status != nil {
		st, err := statusCoreToPB(*f.Status)
		if err != nil {
			return nil, err
		}
		req.Status = st
	}

	resp, err := c.production.ListTasks(ctx, req)
	if err != nil {
		return nil, mapGRPCErr(err)
	}
	return c.tasksFromPB(resp.GetTasks())
}

// ---- Machines

func (c *Client) MachineQueue(ctx context.Context, machineID int64) (apicore.MachineQueue, error) {
	resp, err := c.production.GetMachineQueue(ctx, &productionpb.GetMachineQueueRequest{MachineId: machineID})
	if err != nil {
		return apicore.MachineQueue{}, mapGRPCErr(err)
	}
	tasks, err := c.tasksFromPB(resp.GetTasks())
	if err != nil {
		return apicore.MachineQueue{}, err
	}
	return apicore.MachineQueue{
		Machine: machineFromPB(resp.GetMachine()),
		Load:    resp.GetLoad(),
		Tasks:   tasks,
	}, nil
}

func (c *Client) Report(ctx context.Context) (apicore.Report, error) {
	resp, err := c.production.GetReport(ctx, &emptypb.Empty{})
	if err != nil {
		return apicore.Report{}, mapGRPCErr(err)
	}

	out := apicore.Report{
		Pending:      resp.GetPending(),
		Done:         resp.GetDone(),
		FlavorTotals: make([]apicore.FlavorTotal, 0, len(resp.GetFlavorTotals())),
		MachineLoads: make([]apicore.MachineLoad, 0, len(resp.GetMachineLoads())),
	}
	for _, ft := range resp.GetFlavorTotals() {
		out.FlavorTotals = append(out.FlavorTotals, apicore.FlavorTotal{Flavor: ft.GetFlavor(), Quantity: ft.GetQuantity()})
	}
	for _, ml := range resp.GetMachineLoads() {
		out.MachineLoads = append(out.MachineLoads, apicore.MachineLoad{
			Machine:      machineFromPB(ml.GetMachine()),
			Load:         ml.GetLoad(),
			PendingTasks: ml.GetPendingTasks(),
		})
	}
	return out, nil
}

// ---- helpers

func mapGRPCErr(err error) error {
	if err == nil {
		return nil
	}
	msg := status.Convert(err).Message()
	switch status.Code(err) {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", apicore.ErrBadArguments, msg)
	case codes.NotFound:
		return fmt.Errorf("%w: %s", apicore.ErrNotFound, msg)
	case codes.DeadlineExceeded:
		return fmt.Errorf("production: %w", context.DeadlineExceeded)
	case codes.Unavailable, codes.Canceled:
		return fmt.Errorf("%w: %s", apicore.ErrUnavailable, msg)
	default:
		return err
	}
}

func statusPBToCore(st productionpb.TaskStatus) (apicore.TaskStatus, error) {
	switch st {
	case productionpb.TaskStatus_TASK_STATUS_PENDING:
		return apicore.StatusPending, nil
	case productionpb.TaskStatus_TASK_STATUS_DONE:
		return apicore.StatusDone, nil
	default:
		return "", fmt.Errorf("unexpected task status %s", st)
	}
}

func statusCoreToPB(st apicore.TaskStatus) (productionpb.TaskStatus, error) {
	switch st {
	case apicore.StatusPending:
		return productionpb.TaskStatus_TASK_STATUS_PENDING, nil
	case apicore.StatusDone:
		return productionpb.TaskStatus_TASK_STATUS_DONE, nil
	default:
		return productionpb.TaskStatus_TASK_STATUS_UNSPECIFIED, apicore.ErrBadArguments
	}
}

func machineFromPB(x *productionpb.Machine) apicore.Machine {
	if x == nil {
		return apicore.Machine{}
	}
	return apicore.Machine{ID: x.GetId(), Name: x.GetName(), Slug: x.GetSlug()}
}

func taskFromPB(x *productionpb.Task) (apicore.Task, error) {
	st, err := statusPBToCore(x.GetStatus())
	if err != nil {
		return apicore.Task{}, fmt.Errorf("task %d: %w", x.GetId(), err)
	}
	return apicore.Task{
		ID:             x.GetId(),
		OrderID:        x.GetOrderId(),
		Flavor:         x.GetFlavor(),
		Quantity:       x.GetQuantity(),
		MachineID:      x.GetMachineId(),
		Status:         st,
		Origin:         x.GetOrigin(),
		Client:         x.GetClient(),
		ProductionDate: x.GetProductionDate().AsTime(),
		ProductionDay:  x.GetProductionDay(),
		CreatedAt:      x.GetCreatedAt().AsTime(),
	}, nil
}

func (c *Client) tasksFromPB(items []*productionpb.Task) ([]apicore.Task, error) {
	out := make([]apicore.Task, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		t, err := taskFromPB(it)
		if err != nil {
			c.log.Error("bad task from production", "task_id", it.GetId(), "error", err)
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (c *Client) orderFromPB(x *productionpb.OrderResponse) (apicore.OrderResult, error) {
	tasks, err := c.tasksFromPB(x.GetTasks())
	if err != nil {
		return apicore.OrderResult{}, err
	}
	return apicore.OrderResult{OrderID: x.GetOrderId(), Tasks: tasks}, nil
}
