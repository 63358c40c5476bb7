package dashboard

import "github.com/vfg2006/painel-leads-api/internal/domain"

// Telas do painel. A tela atual decide em qual coleção um lead é gravado.
const (
	ViewDashboard = "dashboard"
	ViewLeads     = "leads"
	ViewRenewals  = "renewals"
	ViewRenewed   = "renewed"
	ViewInsured   = "insured"
	ViewUsers     = "users"
	ViewRanking   = "ranking"
)

type EventKind string

const (
	EventSnapshot     EventKind = "snapshot"
	EventRenewalTotal EventKind = "renewal_total"
)

// Event avisa que uma coleção do painel mudou.
type Event struct {
	Kind       EventKind `json:"kind"`
	Collection string    `json:"collection,omitempty"`
}

type State struct {
	Leads          []*domain.Lead `json:"leads"`
	Renewals       []*domain.Lead `json:"renewals"`
	Renewed        []*domain.Lead `json:"renewed"`
	Users          []*domain.User `json:"users"`
	RenewalTotal   int            `json:"renewalTotal"`
	CurrentUser    *domain.User   `json:"currentUser,omitempty"`
	StoreAvailable bool           `json:"storeAvailable"`
}
