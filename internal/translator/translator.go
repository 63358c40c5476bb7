// Package translator converte documentos do banco (vocabulário em português, tipos mistos)
// nos registros internos do painel e vice-versa.
package translator

import (
	"time"

	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/pkg/utils"
)

type Translator struct {
	now func() time.Time
}

type Option func(*Translator)

// WithClock troca o relógio usado para carimbar createdAt, updatedAt e registeredAt.
func WithClock(now func() time.Time) Option {
	return func(t *Translator) {
		t.now = now
	}
}

func New(opts ...Option) *Translator {
	t := &Translator{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Translator) timestamp() string {
	return utils.FormatISOTimestamp(t.now())
}

// FromDocument escolhe a regra de conversão pela coleção: usuarios vira User, o resto vira Lead.
func (t *Translator) FromDocument(collection string, doc domain.Document) (any, error) {
	if collection == domain.CollectionUsers {
		return t.DocumentToUser(doc)
	}

	return t.DocumentToLead(collection, doc)
}

// DocumentToLead converte um documento de leads, renovacoes ou renovados.
func (t *Translator) DocumentToLead(collection string, doc domain.Document) (*domain.Lead, error) {
	var raw leadDocument
	if err := decode(doc.Data, &raw); err != nil {
		return nil, &SchemaMismatchError{Collection: collection, DocumentID: doc.ID, Err: err}
	}

	lead := &domain.Lead{
		ID:               doc.ID,
		Name:             raw.Name,
		VehicleModel:     raw.VehicleModel,
		VehicleYear:      raw.VehicleYear,
		City:             raw.City,
		Phone:            raw.Phone,
		InsuranceType:    raw.InsuranceType,
		Status:           domain.LeadStatus(firstNonEmpty(raw.Status, string(domain.LeadStatusNew))),
		Email:            firstNonEmpty(raw.Email, raw.EmailLower),
		AssignedTo:       raw.AssignedTo,
		CreatedAt:        firstNonEmpty(utils.ToText(raw.CreatedAt), t.timestamp()),
		Notes:            firstNonEmpty(raw.Notes, raw.Observations),
		ScheduledDate:    utils.ToText(raw.ScheduledDate),
		CartaoPortoNovo:  parseFlag(raw.CartaoPortoNovo),
		InsurerConfirmed: parseFlag(raw.InsurerConfirmed),
		ClosedAt:         raw.ClosedAt,
		UsuarioID:        raw.UsuarioID,
		RegisteredAt:     raw.RegisteredAt,
		Endorsements:     raw.Endorsements,
	}

	if isSet(raw.Insurer) || isSet(raw.NetPremium) || isSet(raw.StartDate) {
		lead.DealInfo = &domain.DealInfo{
			Insurer:      utils.ToText(raw.Insurer),
			NetPremium:   utils.ParseCurrency(raw.NetPremium),
			Commission:   utils.ParsePercentage(raw.Commission),
			Installments: raw.Installments,
			StartDate:    utils.ParseDateToISO(raw.StartDate),
			EndDate:      utils.ParseDateToISO(raw.EndDate),
		}
	}

	if lead.Endorsements == nil {
		lead.Endorsements = []any{}
	}

	return lead, nil
}

func (t *Translator) DocumentToUser(doc domain.Document) (*domain.User, error) {
	var raw userDocument
	if err := decode(doc.Data, &raw); err != nil {
		return nil, &SchemaMismatchError{Collection: domain.CollectionUsers, DocumentID: doc.ID, Err: err}
	}

	return &domain.User{
		ID:            doc.ID,
		Name:          raw.Name,
		Login:         raw.Login,
		Password:      raw.Password,
		Email:         raw.Email,
		IsActive:      raw.Status == userStatusActive,
		IsAdmin:       raw.Type == userTypeAdmin,
		IsRenovations: raw.Type == userTypeRenewals,
		AvatarColor:   domain.DefaultAvatarColor,
	}, nil
}

// CounterFromDocument lê o campo count do documento totalrenovacoes/stats; documento ausente vale 0.
func (t *Translator) CounterFromDocument(doc *domain.Document) int {
	if doc == nil {
		return 0
	}

	return utils.ToInt(doc.Data[domain.TotalsCountField])
}

// ToDocument faz o caminho inverso, validando se o registro combina com a coleção.
func (t *Translator) ToDocument(collection string, record any) (map[string]any, error) {
	switch r := record.(type) {
	case *domain.User:
		if collection != domain.CollectionUsers {
			return nil, ErrRecordMismatch
		}
		if r == nil {
			return nil, ErrNilRecord
		}
		return t.UserToDocument(r), nil
	case domain.User:
		return t.ToDocument(collection, &r)
	case *domain.Lead:
		if collection == domain.CollectionUsers {
			return nil, ErrRecordMismatch
		}
		if r == nil {
			return nil, ErrNilRecord
		}
		return t.LeadToDocument(collection, r), nil
	case domain.Lead:
		return t.ToDocument(collection, &r)
	}

	return nil, ErrRecordMismatch
}

func (t *Translator) UserToDocument(user *domain.User) map[string]any {
	status := userStatusInactive
	if user.IsActive {
		status = userStatusActive
	}

	userType := userTypeCommon
	switch {
	case user.IsAdmin:
		userType = userTypeAdmin
	case user.IsRenovations:
		userType = userTypeRenewals
	}

	return map[string]any{
		"nome":      user.Name,
		"usuario":   user.Login,
		"senha":     user.Password,
		"email":     user.Email,
		"id":        user.ID,
		"status":    status,
		"tipo":      userType,
		"updatedAt": t.timestamp(),
	}
}

func (t *Translator) LeadToDocument(collection string, lead *domain.Lead) map[string]any {
	doc := map[string]any{
		"Nome":        lead.Name,
		"Modelo":      lead.VehicleModel,
		"AnoModelo":   lead.VehicleYear,
		"Cidade":      lead.City,
		"Telefone":    lead.Phone,
		"Email":       lead.Email,
		"TipoSeguro":  lead.InsuranceType,
		"createdAt":   lead.CreatedAt,
		"Responsavel": lead.AssignedTo,
		"status":      string(lead.Status),
		"agendamento": lead.ScheduledDate,
		"notes":       lead.Notes,

		"usuarioId":        stringOrEmpty(lead.UsuarioID),
		"closedAt":         stringOrEmpty(lead.ClosedAt),
		"insurerConfirmed": boolOrFalse(lead.InsurerConfirmed),
		"CartaoPortoNovo":  boolOrFalse(lead.CartaoPortoNovo),

		"Seguradora":      "",
		"PremioLiquido":   "",
		"Parcelamento":    "",
		"Comissao":        "",
		"VigenciaInicial": "",
		"VigenciaFinal":   "",
	}

	if deal := lead.DealInfo; deal != nil {
		doc["Seguradora"] = deal.Insurer
		doc["PremioLiquido"] = deal.NetPremium
		doc["Parcelamento"] = deal.Installments
		doc["Comissao"] = deal.Commission
		doc["VigenciaInicial"] = deal.StartDate
		doc["VigenciaFinal"] = deal.EndDate
	}

	// registeredAt só é escrito em renovacoes; nas outras coleções o patch mantém o que já estiver gravado
	if collection == domain.CollectionRenewals {
		doc["registeredAt"] = firstNonEmpty(stringOrEmpty(lead.RegisteredAt), t.timestamp())
	}

	if lead.Endorsements != nil {
		doc["endorsements"] = lead.Endorsements
	}

	return doc
}

// isSet segue a noção de "preenchido" do banco: texto não vazio, número diferente de zero, true.
func isSet(val any) bool {
	switch v := val.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case float32:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	}

	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolOrFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
