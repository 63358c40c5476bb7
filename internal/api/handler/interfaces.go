package handler

import (
	"context"

	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/internal/usecases/dashboard"
)

// Board é o painel visto pelos handlers HTTP e pelo stream.
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
type Board interface {
	Leads() []*domain.Lead
	Renewals() []*domain.Lead
	Renewed() []*domain.Lead
	Users() []*domain.User
	RenewalTotal() int
	CurrentUser() *domain.User
	SelectUser(id string) (*domain.User, error)
	State() dashboard.State
	OnChange(listener func(dashboard.Event)) func()
	AddLead(ctx context.Context, lead *domain.Lead, view string) (string, error)
	UpdateLead(ctx context.Context, lead *domain.Lead, view string) error
	AddUser(ctx context.Context, user *domain.User) (string, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	SetRenewalTotal(ctx context.Context, total int) error
}
