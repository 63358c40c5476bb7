package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/internal/usecases/dashboard"
	"github.com/vfg2006/painel-leads-api/pkg/apiErrors"
	"github.com/vfg2006/painel-leads-api/pkg/log"
)

// ListLeadCollection devolve os leads de leads, renovacoes ou renovados
func ListLeadCollection(board Board, collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var leads []*domain.Lead

		switch collection {
		case domain.CollectionLeads:
			leads = board.Leads()
		case domain.CollectionRenewals:
			leads = board.Renewals()
		case domain.CollectionRenewed:
			leads = board.Renewed()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Coleção de leads inválida", nil)
			return
		}

		writeJSON(w, http.StatusOK, leads)
	}
}

// CreateLead grava um lead novo na coleção escolhida pela tela atual (?view=)
func CreateLead(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CreateLead")

		var lead domain.Lead
		if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
			logger.WithError(err).Warn("Corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		view := r.URL.Query().Get("view")

		id, err := board.AddLead(r.Context(), &lead, view)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar lead")
			writeServiceError(w, err, "Erro ao salvar dados.")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{
			"id":         id,
			"collection": dashboard.AddLeadCollection(&lead, view),
		})
	}
}

// UpdateLead sobrescreve um lead existente. A coleção vem da tela (?view=) ou da busca pelo id.
func UpdateLead(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - UpdateLead")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead não fornecido", nil)
			return
		}

		var lead domain.Lead
		if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
			logger.WithError(err).Warn("Corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		lead.ID = id

		if err := board.UpdateLead(r.Context(), &lead, r.URL.Query().Get("view")); err != nil {
			logrus.WithError(err).WithField("document_id", id).Error("Erro ao atualizar lead")
			writeServiceError(w, err, "Erro ao atualizar lead")
			return
		}

		writeJSON(w, http.StatusOK, lead)
	}
}
