package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

type floorView struct {
	queue  apicore.MachineQueue
	loaded bool
	cursor int
	status string
	err    error
}

func (a *App) updateFloor(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := &a.floor

	switch msg := msg.(type) {
	case queueMsg:
		v.err = msg.err
		if msg.err == nil {
			v.queue, v.loaded = msg.queue, true
			if v.cursor >= len(v.queue.Tasks) {
				v.cursor = max(len(v.queue.Tasks)-1, 0)
			}
		}
		return a, nil

	case completeMsg:
		if msg.err != nil {
			v.err = msg.err
			return a, nil
		}
		v.err = nil
		switch {
		case msg.result.Changed && msg.result.Task != nil:
			t := msg.result.Task
			v.status = fmt.Sprintf("Concluído: #%d %s x%d", t.ID, t.Flavor, t.Quantity)
		default:
			v.status = "Tarefa já estava concluída"
		}
		return a, a.fetchQueue()

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "r":
			return a, a.fetchQueue()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.queue.Tasks)-1 {
				v.cursor++
			}
		case "enter", " ":
			if len(v.queue.Tasks) == 0 {
				return a, nil
			}
			id := v.queue.Tasks[v.cursor].ID
			return a, a.call(func(ctx context.Context) tea.Msg {
				res, err := a.backend.CompleteTask(ctx, id)
				return completeMsg{result: res, err: err}
			})
		}
	}
	return a, nil
}

func (a *App) viewFloor() string {
	v := a.floor

	var sb strings.Builder
	if !v.loaded {
		sb.WriteString(titleStyle.Render(fmt.Sprintf("Máquina %d", a.machine)))
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render("carregando fila..."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(titleStyle.Render(queueHeader(v.queue)))
		sb.WriteString("\n")

		lines := make([]string, 0, len(v.queue.Tasks))
		for i, t := range v.queue.Tasks {
			if i == v.cursor {
				lines = append(lines, selectedStyle.Render("> "+taskLine(t)))
			} else {
				lines = append(lines, "  "+taskLine(t))
			}
		}
		if len(lines) == 0 {
			lines = append(lines, labelStyle.Render("fila vazia"))
		}
		sb.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
		sb.WriteString("\n")
	}

	if v.err != nil {
		sb.WriteString(errorStyle.Render("erro: " + v.err.Error()))
		sb.WriteString("\n")
	} else if v.status != "" {
		sb.WriteString(statusStyle.Render(v.status))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("↑/↓ selecionar · enter concluir · r atualizar · q sair"))
	return sb.String()
}
