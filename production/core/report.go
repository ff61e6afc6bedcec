package core

import "github.com/LuizRMSilva1973/projeto-pastelaria/production/catalog"

type FlavorTotal struct {
	Flavor   string
	Quantity int64
}

type MachineLoad struct {
	Machine      catalog.Machine
	Load         int64
	PendingTasks int
}

type Report struct {
	Pending      int
	Done         int
	FlavorTotals []FlavorTotal
	MachineLoads []MachineLoad
}

type MachineQueue struct {
	Machine catalog.Machine
	Load    int64
	Tasks   []Task
}

// BuildReport aggregates tasks regardless of status. Flavors are listed in the
// order they first appear in the task history.
func BuildReport(machines []catalog.Machine, tasks []Task) Report {
	var r Report

	flavorIdx := make(map[string]int)
	loads := make(map[int64]*MachineLoad, len(machines))
	r.MachineLoads = make([]MachineLoad, len(machines))
	for i, m := range machines {
		r.MachineLoads[i].Machine = m
		loads[m.ID] = &r.MachineLoads[i]
	}

	for _, t := range tasks {
		switch t.Status {
		case Pending:
			r.Pending++
			if ml, ok := loads[t.MachineID]; ok {
				ml.Load += t.Quantity
				ml.PendingTasks++
			}
		case Done:
			r.Done++
		}

		i, ok := flavorIdx[t.Flavor]
		if !ok {
			i = len(r.FlavorTotals)
			flavorIdx[t.Flavor] = i
			r.FlavorTotals = append(r.FlavorTotals, FlavorTotal{Flavor: t.Flavor})
		}
		r.FlavorTotals[i].Quantity += t.Quantity
	}

	return r
}
