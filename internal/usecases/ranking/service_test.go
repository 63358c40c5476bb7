package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/painel-leads-api/internal/domain"
)

type staticLeads []*domain.Lead

func (s staticLeads) AllLeads() []*domain.Lead { return s }

func closedLead(seller string, premium, commission float64) *domain.Lead {
	return &domain.Lead{
		AssignedTo: seller,
		Status:     domain.LeadStatusClosed,
		DealInfo:   &domain.DealInfo{NetPremium: premium, Commission: commission},
	}
}

func TestBuildRanking(t *testing.T) {
	tests := []struct {
		name     string
		leads    []*domain.Lead
		validate func(t *testing.T, ranking []domain.SellerRankingItem)
	}{
		{
			name:  "sem leads",
			leads: nil,
			validate: func(t *testing.T, ranking []domain.SellerRankingItem) {
				assert.NotNil(t, ranking)
				assert.Empty(t, ranking)
			},
		},
		{
			name: "ignora leads abertos e sem responsável",
			leads: []*domain.Lead{
				{AssignedTo: "Carlos", Status: domain.LeadStatusNew},
				{AssignedTo: "Carlos", Status: domain.LeadStatusLost},
				closedLead("", 1000, 10),
				nil,
			},
			validate: func(t *testing.T, ranking []domain.SellerRankingItem) {
				assert.Empty(t, ranking)
			},
		},
		{
			name: "ordena por negócios fechados e depois por prêmio",
			leads: []*domain.Lead{
				closedLead("Ana", 1000, 10),
				closedLead("Bruno", 500, 20),
				closedLead("Bruno", 700.5, 10),
				closedLead("Carla", 3000, 10),
				{AssignedTo: "Ana", Status: domain.LeadStatusClosed},
			},
			validate: func(t *testing.T, ranking []domain.SellerRankingItem) {
				assert.Equal(t, []domain.SellerRankingItem{
					{Seller: "Bruno", ClosedDeals: 2, NetPremium: 1200.5, CommissionValue: 170.05, Position: 1},
					{Seller: "Ana", ClosedDeals: 2, NetPremium: 1000, CommissionValue: 100, Position: 2},
					{Seller: "Carla", ClosedDeals: 1, NetPremium: 3000, CommissionValue: 300, Position: 3},
				}, ranking)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildRanking(tt.leads))
		})
	}
}

func TestSellerRankingService_GetSellerRanking(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	service := &SellerRankingService{
		source: staticLeads{closedLead("Ana", 100, 10)},
		now:    func() time.Time { return now },
	}

	response := service.GetSellerRanking()
	assert.Equal(t, now, response.LastUpdate)
	assert.Len(t, response.Ranking, 1)
	assert.Equal(t, 1, response.Ranking[0].Position)
}
