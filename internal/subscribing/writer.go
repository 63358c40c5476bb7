package subscribing

import (
	"context"

	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/pkg/log"
)

// Create traduz o registro e grava um novo documento, devolvendo o id gerado pelo banco.
func (m *Manager) Create(ctx context.Context, collection string, record any) (string, error) {
	if !m.Available() {
		m.notifier.Alert(ctx, MessageStoreUnavailable)
		return "", ErrStoreUnavailable
	}
	if m.isClosed() {
		return "", ErrManagerClosed
	}

	logger := log.ForContext(ctx).WithField("collection", collection)

	data, err := m.translator.ToDocument(collection, record)
	if err != nil {
		logger.WithError(err).Error("Erro ao converter registro para documento")
		m.notifier.Alert(ctx, MessageSaveFailed)
		return "", &WriteError{Err: err, Op: OpCreate, Collection: collection}
	}

	id, err := m.store.Insert(ctx, collection, data)
	if err != nil {
		logger.WithError(err).Error("Erro ao criar documento")
		m.notifier.Alert(ctx, MessageSaveFailed)
		return "", &WriteError{Err: err, Op: OpCreate, Collection: collection}
	}

	logger.WithField("document_id", id).Info("Documento criado")
	return id, nil
}

// Update sobrescreve os campos do documento com o registro traduzido. Sem banco configurado não faz nada.
func (m *Manager) Update(ctx context.Context, collection, id string, record any) error {
	if !m.Available() {
		return nil
	}
	if m.isClosed() {
		return ErrManagerClosed
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"collection":  collection,
		"document_id": id,
	})

	data, err := m.translator.ToDocument(collection, record)
	if err != nil {
		logger.WithError(err).Error("Erro ao converter registro para documento")
		return &WriteError{Err: err, Op: OpUpdate, Collection: collection, DocumentID: id}
	}

	if err := m.store.Patch(ctx, collection, id, data); err != nil {
		logger.WithError(err).Error("Erro ao atualizar documento")
		return &WriteError{Err: err, Op: OpUpdate, Collection: collection, DocumentID: id}
	}

	logger.Debug("Documento atualizado")
	return nil
}

// SetAggregateCounter grava o total de renovações mesclando em totalrenovacoes/stats.
func (m *Manager) SetAggregateCounter(ctx context.Context, value int) error {
	if !m.Available() {
		return nil
	}
	if m.isClosed() {
		return ErrManagerClosed
	}

	err := m.store.MergeSet(ctx, domain.CollectionTotals, domain.TotalsDocumentID, map[string]any{
		domain.TotalsCountField: value,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gravar total de renovações")
		return &WriteError{
			Err:        err,
			Op:         OpSetAggregate,
			Collection: domain.CollectionTotals,
			DocumentID: domain.TotalsDocumentID,
		}
	}

	return nil
}
