package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

const (
	fieldClient = iota
	fieldFlavor
	fieldQuantity
	fieldCount
)

type operatorView struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	flavors map[string]struct{}

	cart    []apicore.OrderItem
	last    apicore.OrderResult
	status  string
	err     error
	sending bool
}

func newOperatorView() operatorView {
	var v operatorView

	client := textinput.New()
	client.Prompt = "Cliente:    "
	client.Placeholder = "nome do cliente"
	client.CharLimit = 80
	client.Focus()

	flavor := textinput.New()
	flavor.Prompt = "Sabor:      "
	flavor.Placeholder = "CARNE"
	flavor.CharLimit = 40
	flavor.ShowSuggestions = true

	qty := textinput.New()
	qty.Prompt = "Quantidade: "
	qty.Placeholder = "10"
	qty.CharLimit = 5

	v.inputs = [fieldCount]textinput.Model{client, flavor, qty}
	return v
}

func (v *operatorView) focusCmd() tea.Cmd {
	var cmd tea.Cmd
	for i := range v.inputs {
		if i == v.focus {
			cmd = v.inputs[i].Focus()
		} else {
			v.inputs[i].Blur()
		}
	}
	return cmd
}

func (v *operatorView) move(delta int) tea.Cmd {
	v.focus = (v.focus + delta + fieldCount) % fieldCount
	return v.focusCmd()
}

// addItem moves the flavor and quantity fields into the cart.
func (v *operatorView) addItem() error {
	flavor := strings.ToUpper(strings.TrimSpace(v.inputs[fieldFlavor].Value()))
	if flavor == "" {
		return fmt.Errorf("informe o sabor")
	}
	if v.flavors != nil {
		if _, ok := v.flavors[flavor]; !ok {
			return fmt.Errorf("sabor desconhecido: %s", flavor)
		}
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(v.inputs[fieldQuantity].Value()), 10, 64)
	if err != nil || qty <= 0 {
		return fmt.Errorf("quantidade inválida")
	}

	v.cart = append(v.cart, apicore.OrderItem{Flavor: flavor, Quantity: qty})
	v.inputs[fieldFlavor].Reset()
	v.inputs[fieldQuantity].Reset()
	return nil
}

// order validates locally so an obviously incomplete order never leaves the
// console.
func (v *operatorView) order() (apicore.Order, error) {
	client := strings.TrimSpace(v.inputs[fieldClient].Value())
	if client == "" {
		return apicore.Order{}, fmt.Errorf("informe o cliente")
	}
	if len(v.cart) == 0 {
		return apicore.Order{}, fmt.Errorf("carrinho vazio")
	}
	return apicore.Order{
		Client: client,
		Origin: "MANUAL",
		Items:  append([]apicore.OrderItem(nil), v.cart...),
	}, nil
}

func (a *App) updateOperator(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := &a.operator

	switch msg := msg.(type) {
	case catalogMsg:
		if msg.err != nil {
			v.err = msg.err
			return a, nil
		}
		v.flavors = make(map[string]struct{}, len(msg.catalog.Flavors))
		for _, f := range msg.catalog.Flavors {
			v.flavors[f] = struct{}{}
		}
		v.inputs[fieldFlavor].SetSuggestions(msg.catalog.Flavors)
		return a, nil

	case orderMsg:
		v.sending = false
		if msg.err != nil {
			v.err = msg.err
			return a, nil
		}
		v.err = nil
		v.last = msg.result
		v.cart = nil
		v.inputs[fieldClient].Reset()
		v.status = fmt.Sprintf("Pedido enviado: %d tarefas distribuídas", len(msg.result.Tasks))
		v.focus = fieldClient
		return a, v.focusCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return a, v.move(1)
		case "shift+tab", "up":
			return a, v.move(-1)
		case "enter":
			if v.focus == fieldClient {
				return a, v.move(1)
			}
			if err := v.addItem(); err != nil {
				v.err = err
				return a, nil
			}
			v.err = nil
			v.status = fmt.Sprintf("Carrinho: %d itens", len(v.cart))
			v.focus = fieldFlavor
			return a, v.focusCmd()
		case "ctrl+x":
			if n := len(v.cart); n > 0 {
				v.cart = v.cart[:n-1]
				v.status = fmt.Sprintf("Carrinho: %d itens", len(v.cart))
			}
			return a, nil
		case "ctrl+s":
			if v.sending {
				return a, nil
			}
			o, err := v.order()
			if err != nil {
				v.err = err
				return a, nil
			}
			v.sending = true
			v.err = nil
			v.status = "Enviando pedido..."
			return a, a.call(func(ctx context.Context) tea.Msg {
				res, err := a.backend.SubmitOrder(ctx, o)
				return orderMsg{result: res, err: err}
			})
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return a, cmd
}

func (a *App) viewOperator() string {
	v := a.operator

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Novo Pedido"))
	sb.WriteString("\n")

	fields := make([]string, 0, fieldCount)
	for i := range v.inputs {
		fields = append(fields, v.inputs[i].View())
	}
	sb.WriteString(boxStyle.Render(strings.Join(fields, "\n")))
	sb.WriteString("\n")

	cart := []string{labelStyle.Render("Carrinho")}
	if len(v.cart) == 0 {
		cart = append(cart, labelStyle.Render("  vazio"))
	}
	for _, it := range v.cart {
		cart = append(cart, fmt.Sprintf("  %-24s x%d", it.Flavor, it.Quantity))
	}
	sb.WriteString(boxStyle.Render(strings.Join(cart, "\n")))
	sb.WriteString("\n")

	if len(v.last.Tasks) > 0 {
		lines := []string{labelStyle.Render("Último pedido")}
		for _, t := range v.last.Tasks {
			lines = append(lines, fmt.Sprintf("  %-24s x%-4d -> máquina %d", t.Flavor, t.Quantity, t.MachineID))
		}
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}

	if v.err != nil {
		sb.WriteString(errorStyle.Render("erro: " + v.err.Error()))
		sb.WriteString("\n")
	} else if v.status != "" {
		sb.WriteString(statusStyle.Render(v.status))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("tab campo · enter adicionar item · ctrl+x remover último · ctrl+s enviar · esc sair"))
	return sb.String()
}
