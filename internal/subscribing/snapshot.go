package subscribing

import "github.com/vfg2006/painel-leads-api/internal/domain"

// Snapshot é o conteúdo completo e já traduzido de uma coleção em um instante.
// Apenas um dos slices é preenchido, conforme a coleção.
type Snapshot struct {
	Collection string
	Leads      []*domain.Lead
	Users      []*domain.User
}

func (s Snapshot) Len() int {
	if s.Collection == domain.CollectionUsers {
		return len(s.Users)
	}
	return len(s.Leads)
}

func emptySnapshot(collection string) Snapshot {
	snapshot := Snapshot{Collection: collection}
	if collection == domain.CollectionUsers {
		snapshot.Users = []*domain.User{}
	} else {
		snapshot.Leads = []*domain.Lead{}
	}
	return snapshot
}
