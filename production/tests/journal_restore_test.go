package tests

import (
	"context"
	"testing"

	productionpb "github.com/LuizRMSilva1973/projeto-pastelaria/proto/production"
	"github.com/LuizRMSilva1973/projeto-pastelaria/production/adapters/memory"
)

func TestGRPCRestart_RestoresFromJournal(t *testing.T) {
	t.Parallel()

	journal := newFakeJournal()

	store, err := memory.Restore(context.Background(), journal)
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	client, cleanup := newProductionGRPCClient(t, newTestService(t, store))

	order := mustSubmitOrder(t, client, "a",
		&productionpb.OrderItem{Flavor: "CARNE", Quantity: 30},
		&productionpb.OrderItem{Flavor: "QUEIJO", Quantity: 10},
	)
	if _, err := client.CompleteTask(context.Background(), &productionpb.CompleteTaskRequest{Id: order.Tasks[1].Id}); err != nil {
		t.Fatalf("CompleteTask returned error: %v", err)
	}
	cleanup()

	restored, err := memory.Restore(context.Background(), journal)
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	client, cleanup = newProductionGRPCClient(t, newTestService(t, restored))
	defer cleanup()

	list, err := client.ListTasks(context.Background(), &productionpb.ListTasksRequest{})
	if err != nil {
		t.Fatalf("ListTasks returned error: %v", err)
	}
	if len(list.Tasks) != 2 {
		t.Fatalf("expected 2 restored tasks, got %d", len(list.Tasks))
	}
	if list.Tasks[1].Status != productionpb.TaskStatus_TASK_STATUS_DONE {
		t.Fatalf("expected restored task to stay DONE, got %q", list.Tasks[1].Status)
	}

	// m1 still holds 30 pending, m2 is free again, m3 was never used.
	next := mustSubmitOrder(t, client, "b", &productionpb.OrderItem{Flavor: "PIZZA", Quantity: 5})
	if next.Tasks[0].Id != 3 {
		t.Fatalf("expected ids to continue at 3, got %d", next.Tasks[0].Id)
	}
	if next.Tasks[0].MachineId != 2 {
		t.Fatalf("expected machine 2, got %d", next.Tasks[0].MachineId)
	}
}
