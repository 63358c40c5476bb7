package domain

// Nomes das coleções no banco de documentos
const (
	CollectionLeads    = "leads"
	CollectionRenewals = "renovacoes"
	CollectionRenewed  = "renovados"
	CollectionUsers    = "usuarios"
	CollectionTotals   = "totalrenovacoes"
	TotalsDocumentID   = "stats"
	TotalsCountField   = "count"
)

// LeadCollections são as coleções que guardam leads; a coleção define o estágio do lead.
var LeadCollections = []string{CollectionLeads, CollectionRenewals, CollectionRenewed}

// Document é um documento como está salvo no banco: id + campos com vocabulário em português.
type Document struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

func IsLeadCollection(collection string) bool {
	for _, c := range LeadCollections {
		if c == collection {
			return true
		}
	}
	return false
}

// IsKnownCollection aceita as coleções de leads, usuarios e o contador totalrenovacoes.
func IsKnownCollection(collection string) bool {
	return collection == CollectionUsers || collection == CollectionTotals || IsLeadCollection(collection)
}
