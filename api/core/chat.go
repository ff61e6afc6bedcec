package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

const FallbackReply = "Desculpe, tive um problema ao processar sua mensagem. Tente novamente."

// ChatService answers dashboard questions. Assistant failures never reach the
// caller: they are logged and replaced with FallbackReply.
type ChatService struct {
	log        *slog.Logger
	production Production
	assistant  Assistant

	mu       sync.Mutex
	snapshot string
}

func NewChatService(log *slog.Logger, production Production, assistant Assistant) *ChatService {
	return &ChatService{log: log, production: production, assistant: assistant}
}

func (s *ChatService) Reply(ctx context.Context, message string, history []ChatTurn) (ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{}, fmt.Errorf("%w: message is required", ErrBadArguments)
	}
	for i, turn := range history {
		if turn.Role != RoleUser && turn.Role != RoleModel {
			return ChatReply{}, fmt.Errorf("%w: history[%d] has unknown role %q", ErrBadArguments, i, turn.Role)
		}
	}

	snapshot, err := s.catalogSnapshot(ctx)
	if err != nil {
		s.log.Error("assistant: catalog unavailable", "error", err)
		return ChatReply{Reply: FallbackReply, Fallback: true}, nil
	}

	text, err := s.assistant.Ask(ctx, snapshot, history, message)
	if err != nil {
		s.log.Error("assistant failed", "error", err)
		return ChatReply{Reply: FallbackReply, Fallback: true}, nil
	}
	return ChatReply{Reply: text}, nil
}

// catalogSnapshot is fetched once; the catalog never changes while the
// production service runs.
func (s *ChatService) catalogSnapshot(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != "" {
		return s.snapshot, nil
	}
	cat, err := s.production.Catalog(ctx)
	if err != nil {
		return "", err
	}
	s.snapshot = cat.Snapshot
	return s.snapshot, nil
}
