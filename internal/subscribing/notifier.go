package subscribing

import (
	"context"

	"github.com/vfg2006/painel-leads-api/pkg/log"
)

// Mensagens exibidas ao usuário
const (
	MessageStoreUnavailable = "Banco de dados não configurado. Dados não serão salvos (Modo Visualização)."
	MessageSaveFailed       = "Erro ao salvar dados."
)

// Notifier entrega avisos visíveis ao usuário.
type Notifier interface {
	Alert(ctx context.Context, message string)
}

// LogNotifier só registra o aviso no log.
type LogNotifier struct{}

func (LogNotifier) Alert(ctx context.Context, message string) {
	log.ForContext(ctx).Warn(message)
}
