package production

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
	productionpb "github.com/LuizRMSilva1973/projeto-pastelaria/proto/production"
)

func TestMapGRPCErr(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   error
		want error
	}{
		{name: "invalid_argument", in: status.Error(codes.InvalidArgument, "client is required"), want: apicore.ErrBadArguments},
		{name: "not_found", in: status.Error(codes.NotFound, "task not found"), want: apicore.ErrNotFound},
		{name: "unavailable", in: status.Error(codes.Unavailable, "connection refused"), want: apicore.ErrUnavailable},
		{name: "canceled", in: status.Error(codes.Canceled, "client gone"), want: apicore.ErrUnavailable},
		{name: "deadline", in: status.Error(codes.DeadlineExceeded, "slow"), want: context.DeadlineExceeded},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := mapGRPCErr(tc.in); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if mapGRPCErr(nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	if got := mapGRPCErr(status.Error(codes.DeadlineExceeded, "slow")); errors.Is(got, apicore.ErrUnavailable) {
		t.Fatalf("deadline must not map to ErrUnavailable, got %v", got)
	}

	internal := status.Error(codes.Internal, "internal error")
	if got := mapGRPCErr(internal); got != internal {
		t.Fatalf("expected internal error passed through, got %v", got)
	}
}

func TestTaskFromPB(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	done, err := taskFromPB(&productionpb.Task{
		Id:             1,
		OrderId:        "o-1",
		Status:         productionpb.TaskStatus_TASK_STATUS_DONE,
		ProductionDate: timestamppb.New(date),
		ProductionDay:  "2024-05-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != apicore.StatusDone || done.OrderID != "o-1" {
		t.Fatalf("unexpected task: %+v", done)
	}
	if !done.ProductionDate.Equal(date) || done.ProductionDay != "2024-05-10" {
		t.Fatalf("unexpected production date %v / day %q", done.ProductionDate, done.ProductionDay)
	}

	pending, err := taskFromPB(&productionpb.Task{Id: 2, Status: productionpb.TaskStatus_TASK_STATUS_PENDING})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending.Status != apicore.StatusPending {
		t.Fatalf("expected PENDING, got %s", pending.Status)
	}

	if _, err := statusCoreToPB("LOST"); !errors.Is(err, apicore.ErrBadArguments) {
		t.Fatalf("expected ErrBadArguments, got %v", err)
	}
}

func TestTaskFromPB_UnknownStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   productionpb.TaskStatus
	}{
		{name: "unspecified", in: productionpb.TaskStatus_TASK_STATUS_UNSPECIFIED},
		{name: "future_value", in: productionpb.TaskStatus(7)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := taskFromPB(&productionpb.Task{Id: 3, Status: tc.in})
			if err == nil {
				t.Fatalf("expected error, got task with status %q", got.Status)
			}
			if got.Status != "" {
				t.Fatalf("expected no status on error, got %q", got.Status)
			}
		})
	}
}
