package ranking

import (
	"sort"
	"time"

	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/pkg/utils"
)

// LeadSource fornece os leads de todas as coleções.
type LeadSource interface {
	AllLeads() []*domain.Lead
}

type RankingService interface {
	GetSellerRanking() *domain.SellerRankingResponse
}

type SellerRankingService struct {
	source LeadSource
	now    func() time.Time
}

func NewSellerRankingService(source LeadSource) RankingService {
	return &SellerRankingService{
		source: source,
		now:    time.Now,
	}
}

func (s *SellerRankingService) GetSellerRanking() *domain.SellerRankingResponse {
	return &domain.SellerRankingResponse{
		Ranking:    BuildRanking(s.source.AllLeads()),
		LastUpdate: s.now(),
	}
}

// BuildRanking agrupa os leads fechados por responsável. Ordena por negócios fechados e,
// no empate, por prêmio líquido. Leads sem responsável ficam de fora.
func BuildRanking(leads []*domain.Lead) []domain.SellerRankingItem {
	bySeller := make(map[string]*domain.SellerRankingItem)

	for _, lead := range leads {
		if lead == nil || !lead.IsClosed() || lead.AssignedTo == "" {
			continue
		}

		item, exists := bySeller[lead.AssignedTo]
		if !exists {
			item = &domain.SellerRankingItem{Seller: lead.AssignedTo}
			bySeller[lead.AssignedTo] = item
		}

		item.ClosedDeals++
		if lead.DealInfo != nil {
			item.NetPremium += lead.DealInfo.NetPremium
			item.CommissionValue += lead.DealInfo.CommissionValue()
		}
	}

	ranking := make([]domain.SellerRankingItem, 0, len(bySeller))
	for _, item := range bySeller {
		item.NetPremium = utils.RoundWithTwoDecimalPlace(item.NetPremium)
		item.CommissionValue = utils.RoundWithTwoDecimalPlace(item.CommissionValue)
		ranking = append(ranking, *item)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].ClosedDeals != ranking[j].ClosedDeals {
			return ranking[i].ClosedDeals > ranking[j].ClosedDeals
		}
		if ranking[i].NetPremium != ranking[j].NetPremium {
			return ranking[i].NetPremium > ranking[j].NetPremium
		}
		return ranking[i].Seller < ranking[j].Seller
	})

	for i := range ranking {
		ranking[i].Position = i + 1
	}

	return ranking
}
