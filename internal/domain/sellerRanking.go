// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type SellerRankingResponse struct {
	Ranking    []SellerRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"last_update"`
}

type SellerRankingItem struct {
	Seller          string  `json:"seller"`
	ClosedDeals     int     `json:"closed_deals"`
	NetPremium      float64 `json:"net_premium"`
	CommissionValue float64 `json:"commission_value"`
	Position        int     `json:"position"`
}
