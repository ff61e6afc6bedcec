package productionpb_test

import (
	"testing"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	productionpb "github.com/LuizRMSilva1973/projeto-pastelaria/proto/production"
)

func TestDescriptor(t *testing.T) {
	t.Parallel()

	fd := productionpb.File_production_production_proto
	if fd.Package() != "production" {
		t.Fatalf("unexpected package %q", fd.Package())
	}

	svc := fd.Services().ByName("ProductionService")
	if svc == nil {
		t.Fatal("ProductionService not found")
	}
	if got := string(svc.FullName()); got != productionpb.ProductionService_ServiceDesc.ServiceName {
		t.Fatalf("service name %q does not match desc %q", got, productionpb.ProductionService_ServiceDesc.ServiceName)
	}
	if svc.Methods().Len() != len(productionpb.ProductionService_ServiceDesc.Methods) {
		t.Fatalf("descriptor has %d methods, desc has %d", svc.Methods().Len(), len(productionpb.ProductionService_ServiceDesc.Methods))
	}

	task := fd.Messages().ByName("Task")
	if task == nil {
		t.Fatal("Task not found")
	}
	day := task.Fields().ByName("production_day")
	if day == nil || day.Number() != 11 {
		t.Fatalf("unexpected production_day field %v", day)
	}
	date := task.Fields().ByName("production_date")
	if date == nil || date.Message().FullName() != "google.protobuf.Timestamp" {
		t.Fatalf("unexpected production_date field %v", date)
	}
}

func TestTaskWireRoundTrip(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 5, 11, 3, 0, 0, 0, time.UTC)
	in := &productionpb.Task{
		Id:             7,
		OrderId:        "o-7",
		Flavor:         "CARNE",
		Quantity:       20,
		MachineId:      1,
		Status:         productionpb.TaskStatus_TASK_STATUS_DONE,
		ProductionDate: timestamppb.New(date),
		ProductionDay:  "2024-05-11",
	}

	raw, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal err=%v", err)
	}

	out := &productionpb.Task{}
	if err := proto.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch:\n in=%v\nout=%v", in, out)
	}
	if !out.GetProductionDate().AsTime().Equal(date) {
		t.Fatalf("unexpected production date %v", out.GetProductionDate().AsTime())
	}
}
