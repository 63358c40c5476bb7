package handler

import (
	"net/http"

	"github.com/vfg2006/painel-leads-api/internal/usecases/ranking"
)

// GetSellerRanking retorna o ranking de vendedores pelos negócios fechados
func GetSellerRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetSellerRanking())
	}
}
