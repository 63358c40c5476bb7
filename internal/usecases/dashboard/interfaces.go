package dashboard

import (
	"context"

	"github.com/vfg2006/painel-leads-api/internal/subscribing"
)

// Subscriber é a parte do gerenciador de assinaturas usada pelo painel.
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_subscriber.go -package=mocks
type Subscriber interface {
	Available() bool
	Watch(ctx context.Context, collection string) *subscribing.Stream
	SubscribeAggregateCounter(callback func(int)) subscribing.Unsubscribe
	Create(ctx context.Context, collection string, record any) (string, error)
	Update(ctx context.Context, collection, id string, record any) error
	SetAggregateCounter(ctx context.Context, value int) error
}

