package assistant

import (
	"strings"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

const instructionHeader = `Você é um assistente especialista no "Pastelaria Production System".

Dados do Sistema:
`

const instructionRules = `
Suas funções:
1. Ajudar o operador a encontrar sabores ou tirar dúvidas.
2. Explicar como funciona o sistema (distribuição automática, regra das 8h).
3. Responder de forma curta, amigável e em português do Brasil.

Se perguntarem sobre algo fora do contexto de pastelaria ou do sistema, traga gentilmente o assunto de volta.`

// SystemInstruction grounds the model in the catalog snapshot.
func SystemInstruction(snapshot string) string {
	var sb strings.Builder
	sb.WriteString(instructionHeader)
	for _, line := range strings.Split(strings.TrimSpace(snapshot), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sb.WriteString("- ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(instructionRules)
	return sb.String()
}

// buildMessages lays out system, history and the new question in chat
// completion order. The dashboard calls the model side "model".
func buildMessages(snapshot string, history []apicore.ChatTurn, message string) []Message {
	msgs := make([]Message, 0, len(history)+2)
	msgs = append(msgs, Message{Role: "system", Content: SystemInstruction(snapshot)})
	for _, turn := range history {
		role := "user"
		if turn.Role == apicore.RoleModel {
			role = "assistant"
		}
		msgs = append(msgs, Message{Role: role, Content: turn.Text})
	}
	msgs = append(msgs, Message{Role: "user", Content: message})
	return msgs
}
