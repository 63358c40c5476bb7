package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/pkg/apiErrors"
)

type renewalTotalBody struct {
	Count *int `json:"count"`
}

// GetRenewalTotal devolve o total de renovações guardado em totalrenovacoes/stats
func GetRenewalTotal(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"count": board.RenewalTotal()})
	}
}

func SetRenewalTotal(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetRenewalTotal")

		var body renewalTotalBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Total de renovações inválido", nil)
			return
		}

		if body.Count == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo count é obrigatório", nil)
			return
		}

		if err := board.SetRenewalTotal(r.Context(), *body.Count); err != nil {
			logrus.WithError(err).Error("Erro ao gravar total de renovações")
			writeServiceError(w, err, "Erro ao gravar total de renovações")
			return
		}

		writeJSON(w, http.StatusOK, map[string]int{"count": *body.Count})
	}
}
