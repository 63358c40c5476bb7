// Package docstore guarda os documentos do painel (leads, renovações, usuários) e avisa
// quem estiver observando uma coleção sempre que ela muda.
package docstore

import (
	"context"
	"errors"

	"github.com/vfg2006/painel-leads-api/internal/domain"
)

var (
	ErrDocumentNotFound  = errors.New("documento não encontrado")
	ErrInvalidCollection = errors.New("coleção inválida")
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// List devolve todos os documentos da coleção.
	List(ctx context.Context, collection string) ([]domain.Document, error)
	// Get devolve nil, nil quando o documento não existe.
	Get(ctx context.Context, collection, id string) (*domain.Document, error)
	// Insert cria um documento com id gerado e devolve o id.
	Insert(ctx context.Context, collection string, data map[string]any) (string, error)
	// Patch sobrescreve apenas os campos informados de um documento existente.
	Patch(ctx context.Context, collection, id string, data map[string]any) error
	// MergeSet cria o documento ou mescla os campos informados no existente.
	MergeSet(ctx context.Context, collection, id string, data map[string]any) error
	// Watch sinaliza uma vez ao começar e depois a cada alteração na coleção.
	// Sinais próximos são agrupados. O canal é fechado quando ctx termina.
	Watch(ctx context.Context, collection string) (<-chan struct{}, error)
}

func validCollection(collection string) error {
	if collection == "" {
		return ErrInvalidCollection
	}
	return nil
}
