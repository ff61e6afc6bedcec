package tui

import (
	"fmt"
	"strings"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

// Plain text renderings shared by the interactive views and the one-shot
// printer used when stdout is not a terminal.

func reportText(r apicore.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Pendentes: %d   Concluídas: %d\n", r.Pending, r.Done)

	sb.WriteString("\nCarga por máquina:\n")
	for _, ml := range r.MachineLoads {
		fmt.Fprintf(&sb, "  %-24s %5d un  (%d tarefas)\n", ml.Machine.Name, ml.Load, ml.PendingTasks)
	}

	sb.WriteString("\nProdução por sabor:\n")
	if len(r.FlavorTotals) == 0 {
		sb.WriteString("  nenhum pedido ainda\n")
	}
	for _, ft := range r.FlavorTotals {
		fmt.Fprintf(&sb, "  %-24s %5d\n", ft.Flavor, ft.Quantity)
	}
	return sb.String()
}

func taskLine(t apicore.Task) string {
	return fmt.Sprintf("#%-4d %-24s x%-4d %-16s %s", t.ID, t.Flavor, t.Quantity, t.Client, t.ProductionDay)
}

func queueHeader(q apicore.MachineQueue) string {
	return fmt.Sprintf("%s  carga %d un, %d tarefas", q.Machine.Name, q.Load, len(q.Tasks))
}

func queueText(q apicore.MachineQueue) string {
	var sb strings.Builder
	sb.WriteString(queueHeader(q))
	sb.WriteString("\n")
	if len(q.Tasks) == 0 {
		sb.WriteString("  fila vazia\n")
	}
	for _, t := range q.Tasks {
		sb.WriteString("  ")
		sb.WriteString(taskLine(t))
		sb.WriteString("\n")
	}
	return sb.String()
}

func catalogText(c apicore.Catalog) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sabores (%d):\n", len(c.Flavors))
	for _, f := range c.Flavors {
		sb.WriteString("  ")
		sb.WriteString(f)
		sb.WriteString("\n")
	}
	sb.WriteString("\nMáquinas:\n")
	for _, m := range c.Machines {
		fmt.Fprintf(&sb, "  %d  %s\n", m.ID, m.Name)
	}
	return sb.String()
}
