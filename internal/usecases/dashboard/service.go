// Package dashboard mantém em memória as coleções exibidas no painel, alimentadas pelas
// assinaturas ao vivo, e decide em qual coleção cada lead novo ou alterado é gravado.
package dashboard

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/internal/subscribing"
)

type Service struct {
	subscriber Subscriber

	mu             sync.RWMutex
	leads          []*domain.Lead
	renewals       []*domain.Lead
	renewed        []*domain.Lead
	users          []*domain.User
	renewalTotal   int
	selectedUserID string

	// lifecycle serializa Start e Stop
	lifecycle         sync.Mutex
	streams           []*subscribing.Stream
	unsubscribeTotals subscribing.Unsubscribe
	consumers         sync.WaitGroup

	listenersMu  sync.Mutex
	listeners    map[int]func(Event)
	nextListener int
}

func NewService(subscriber Subscriber) *Service {
	return &Service{
		subscriber: subscriber,
		leads:      []*domain.Lead{},
		renewals:   []*domain.Lead{},
		renewed:    []*domain.Lead{},
		users:      []*domain.User{},
		listeners:  make(map[int]func(Event)),
	}
}

// Start abre um stream por coleção e assina o total de renovações. Chamadas repetidas,
// inclusive concorrentes, não duplicam assinaturas.
func (s *Service) Start(ctx context.Context) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.streams != nil {
		return
	}

	consumers := []struct {
		collection string
		apply      func(subscribing.Snapshot)
	}{
		{collection: domain.CollectionLeads, apply: s.onLeads},
		{collection: domain.CollectionRenewals, apply: s.onRenewals},
		{collection: domain.CollectionRenewed, apply: s.onRenewed},
		{collection: domain.CollectionUsers, apply: s.onUsers},
	}

	for _, c := range consumers {
		stream := s.subscriber.Watch(ctx, c.collection)
		s.streams = append(s.streams, stream)

		s.consumers.Add(1)
		go s.consume(stream, c.apply)
	}

	s.unsubscribeTotals = s.subscriber.SubscribeAggregateCounter(s.onRenewalTotal)

	logrus.WithField("store_available", s.subscriber.Available()).Info("Painel iniciado")
}

func (s *Service) consume(stream *subscribing.Stream, apply func(subscribing.Snapshot)) {
	defer s.consumers.Done()

	for snapshot := range stream.C() {
		apply(snapshot)
	}
}

// Stop fecha os streams e espera os consumidores terminarem. Depois dele Start pode ser chamado de novo.
func (s *Service) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	for _, stream := range s.streams {
		stream.Close()
	}
	if s.unsubscribeTotals != nil {
		s.unsubscribeTotals()
	}

	s.consumers.Wait()
	s.streams = nil
	s.unsubscribeTotals = nil
}

// OnChange registra um ouvinte chamado após cada mudança de estado. Devolve a função que o remove.
func (s *Service) OnChange(listener func(Event)) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Service) emit(event Event) {
	s.listenersMu.Lock()
	listeners := make([]func(Event), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

func (s *Service) onLeads(snapshot subscribing.Snapshot) {
	s.mu.Lock()
	s.leads = snapshot.Leads
	s.mu.Unlock()

	s.emit(Event{Kind: EventSnapshot, Collection: domain.CollectionLeads})
}

func (s *Service) onRenewals(snapshot subscribing.Snapshot) {
	s.mu.Lock()
	s.renewals = snapshot.Leads
	s.mu.Unlock()

	s.emit(Event{Kind: EventSnapshot, Collection: domain.CollectionRenewals})
}

// onRenewed força o status Fechado: tudo que está em renovados já foi fechado.
func (s *Service) onRenewed(snapshot subscribing.Snapshot) {
	renewed := make([]*domain.Lead, 0, len(snapshot.Leads))
	for _, lead := range snapshot.Leads {
		fixed := *lead
		fixed.Status = domain.LeadStatusClosed
		renewed = append(renewed, &fixed)
	}

	s.mu.Lock()
	s.renewed = renewed
	s.mu.Unlock()

	s.emit(Event{Kind: EventSnapshot, Collection: domain.CollectionRenewed})
}

func (s *Service) onUsers(snapshot subscribing.Snapshot) {
	s.mu.Lock()
	s.users = snapshot.Users
	s.mu.Unlock()

	s.emit(Event{Kind: EventSnapshot, Collection: domain.CollectionUsers})
}

func (s *Service) onRenewalTotal(total int) {
	s.mu.Lock()
	s.renewalTotal = total
	s.mu.Unlock()

	s.emit(Event{Kind: EventRenewalTotal, Collection: domain.CollectionTotals})
}

// AddLeadCollection decide a coleção de um lead novo a partir do id, do tipo de seguro e da tela atual.
func AddLeadCollection(lead *domain.Lead, view string) string {
	switch {
	case strings.Contains(lead.ID, "renewed"):
		return domain.CollectionRenewed
	case strings.Contains(lead.ID, "renewal_copy"):
		return domain.CollectionRenewals
	case lead.InsuranceType == domain.InsuranceTypeRenewal && view == ViewRenewals:
		return domain.CollectionRenewals
	default:
		return domain.CollectionLeads
	}
}

func (s *Service) AddLead(ctx context.Context, lead *domain.Lead, view string) (string, error) {
	if lead == nil {
		return "", ErrLeadRequired
	}

	collection := AddLeadCollection(lead, view)

	logrus.WithFields(logrus.Fields{
		"collection": collection,
		"view":       view,
	}).Debug("Adicionando lead")

	return s.subscriber.Create(ctx, collection, lead)
}

// UpdateLead grava na coleção da tela atual. Em telas sem coleção própria procura o id
// em leads, renovações e renovados, nessa ordem.
func (s *Service) UpdateLead(ctx context.Context, lead *domain.Lead, view string) error {
	if lead == nil {
		return ErrLeadRequired
	}
	if lead.ID == "" {
		return ErrLeadIDRequired
	}

	collection, err := s.updateLeadCollection(lead.ID, view)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"document_id": lead.ID,
			"view":        view,
		}).Warn("Lead não encontrado para atualização")
		return err
	}

	return s.subscriber.Update(ctx, collection, lead.ID, lead)
}

func (s *Service) updateLeadCollection(id, view string) (string, error) {
	switch view {
	case ViewLeads:
		return domain.CollectionLeads, nil
	case ViewRenewals, ViewInsured:
		return domain.CollectionRenewals, nil
	case ViewRenewed:
		return domain.CollectionRenewed, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case containsLead(s.leads, id):
		return domain.CollectionLeads, nil
	case containsLead(s.renewals, id):
		return domain.CollectionRenewals, nil
	case containsLead(s.renewed, id):
		return domain.CollectionRenewed, nil
	}

	return "", ErrLeadNotFound
}

func (s *Service) AddUser(ctx context.Context, user *domain.User) (string, error) {
	if user == nil {
		return "", ErrUserRequired
	}

	return s.subscriber.Create(ctx, domain.CollectionUsers, user)
}

func (s *Service) UpdateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return ErrUserRequired
	}
	if user.ID == "" {
		return ErrUserIDRequired
	}

	return s.subscriber.Update(ctx, domain.CollectionUsers, user.ID, user)
}

func (s *Service) SetRenewalTotal(ctx context.Context, total int) error {
	if total < 0 {
		return ErrInvalidTotal
	}

	return s.subscriber.SetAggregateCounter(ctx, total)
}

// CurrentUser simula o login: o usuário escolhido, senão o primeiro admin ativo, senão o primeiro usuário.
func (s *Service) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentUser()
}

func (s *Service) currentUser() *domain.User {
	if s.selectedUserID != "" {
		if user := findUser(s.users, s.selectedUserID); user != nil {
			return user
		}
	}

	for _, user := range s.users {
		if user.IsAdmin && user.IsActive {
			return user
		}
	}

	if len(s.users) > 0 {
		return s.users[0]
	}

	return nil
}

// SelectUser troca o usuário atual, como o seletor de usuário do painel.
func (s *Service) SelectUser(id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := findUser(s.users, id)
	if user == nil {
		return nil, ErrUserNotFound
	}

	s.selectedUserID = id
	return user, nil
}

func (s *Service) Leads() []*domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.leads)
}

func (s *Service) Renewals() []*domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.renewals)
}

func (s *Service) Renewed() []*domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.renewed)
}

func (s *Service) Users() []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *Service) RenewalTotal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renewalTotal
}

// AllLeads junta leads, renovações e renovados, base do ranking de vendedores.
func (s *Service) AllLeads() []*domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*domain.Lead, 0, len(s.leads)+len(s.renewals)+len(s.renewed))
	all = append(all, s.leads...)
	all = append(all, s.renewals...)
	all = append(all, s.renewed...)
	return all
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Leads:          slices.Clone(s.leads),
		Renewals:       slices.Clone(s.renewals),
		Renewed:        slices.Clone(s.renewed),
		Users:          slices.Clone(s.users),
		RenewalTotal:   s.renewalTotal,
		CurrentUser:    s.currentUser(),
		StoreAvailable: s.subscriber.Available(),
	}
}

func containsLead(leads []*domain.Lead, id string) bool {
	return slices.ContainsFunc(leads, func(l *domain.Lead) bool {
		return l.ID == id
	})
}

func findUser(users []*domain.User, id string) *domain.User {
	for _, user := range users {
		if user.ID == id {
			return user
		}
	}
	return nil
}
