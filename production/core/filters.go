package core

type ListTasksFilter struct {
	MachineID *int64      `json:"machine_id"`
	Status    *TaskStatus `json:"status"`
}

func (f ListTasksFilter) Match(t Task) bool {
	if f.MachineID != nil && t.MachineID != *f.MachineID {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	return true
}
