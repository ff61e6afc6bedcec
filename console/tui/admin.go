package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

type adminView struct {
	report  apicore.Report
	loaded  bool
	status  string
	err     error
	working bool
}

func (a *App) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := &a.admin

	switch msg := msg.(type) {
	case reportMsg:
		v.err = msg.err
		if msg.err == nil {
			v.report, v.loaded = msg.report, true
		}
		return a, nil

	case orderMsg:
		v.working = false
		if msg.err != nil {
			v.err = msg.err
			return a, nil
		}
		client, day := "", ""
		if len(msg.result.Tasks) > 0 {
			client, day = msg.result.Tasks[0].Client, msg.result.Tasks[0].ProductionDay
		}
		v.err = nil
		v.status = fmt.Sprintf("Pedido importado: %s (%d itens, produção %s)", client, len(msg.result.Tasks), day)
		return a, a.fetchReport()

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "r":
			return a, a.fetchReport()
		case "i":
			if v.working {
				return a, nil
			}
			v.working = true
			v.status = "Importando pedido..."
			return a, a.call(func(ctx context.Context) tea.Msg {
				res, err := a.backend.ImportOrder(ctx, "")
				return orderMsg{result: res, err: err}
			})
		}
	}
	return a, nil
}

func (a *App) viewAdmin() string {
	v := a.admin

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Painel de Controle · Gestão de Produção de Pastéis"))
	sb.WriteString("\n")

	if v.loaded {
		sb.WriteString(boxStyle.Render(strings.TrimRight(reportText(v.report), "\n")))
	} else {
		sb.WriteString(labelStyle.Render("carregando relatório..."))
	}
	sb.WriteString("\n")

	if v.err != nil {
		sb.WriteString(errorStyle.Render("erro: " + v.err.Error()))
		sb.WriteString("\n")
	} else if v.status != "" {
		sb.WriteString(statusStyle.Render(v.status))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("i importar pedido (CRM) · r atualizar · q sair"))
	return sb.String()
}
