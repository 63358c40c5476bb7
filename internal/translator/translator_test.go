package translator

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/painel-leads-api/internal/domain"
)

var fixedNow = time.Date(2024, 3, 6, 12, 30, 0, 0, time.UTC)

func newTestTranslator() *Translator {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }

func fullLeadDocument() domain.Document {
	return domain.Document{
		ID: "lead-1",
		Data: map[string]any{
			"Nome":             "Maria Souza",
			"Modelo":           "Onix",
			"AnoModelo":        float64(2020),
			"Cidade":           "Curitiba",
			"Telefone":         "41999990000",
			"TipoSeguro":       "Auto",
			"status":           "Fechado",
			"Email":            "maria@example.com",
			"Responsavel":      "Carlos",
			"createdAt":        "2024-03-01T12:00:00.000Z",
			"Observacoes":      "cliente antiga",
			"agendamento":      "2024-03-10T09:30",
			"CartaoPortoNovo":  true,
			"insurerConfirmed": false,
			"closedAt":         "2024-03-05T10:00:00.000Z",
			"usuarioId":        "u1",
			"registeredAt":     "2024-02-28T08:00:00.000Z",
			"Seguradora":       "Porto Seguro",
			"PremioLiquido":    "R$ 1.234,56",
			"Comissao":         "15%",
			"Parcelamento":     "10x",
			"VigenciaInicial":  "05/03/2024",
			"VigenciaFinal":    "5/3/2025",
			"endorsements":     []any{map[string]any{"tipo": "inclusão"}},
		},
	}
}

func TestTranslator_DocumentToLead(t *testing.T) {
	tr := newTestTranslator()

	lead, err := tr.DocumentToLead(domain.CollectionLeads, fullLeadDocument())
	require.NoError(t, err)

	want := &domain.Lead{
		ID:               "lead-1",
		Name:             "Maria Souza",
		VehicleModel:     "Onix",
		VehicleYear:      "2020",
		City:             "Curitiba",
		Phone:            "41999990000",
		InsuranceType:    "Auto",
		Status:           domain.LeadStatusClosed,
		Email:            "maria@example.com",
		AssignedTo:       "Carlos",
		CreatedAt:        "2024-03-01T12:00:00.000Z",
		Notes:            "cliente antiga",
		ScheduledDate:    "2024-03-10T09:30",
		CartaoPortoNovo:  boolPtr(true),
		InsurerConfirmed: boolPtr(false),
		ClosedAt:         stringPtr("2024-03-05T10:00:00.000Z"),
		UsuarioID:        stringPtr("u1"),
		RegisteredAt:     stringPtr("2024-02-28T08:00:00.000Z"),
		DealInfo: &domain.DealInfo{
			Insurer:      "Porto Seguro",
			NetPremium:   1234.56,
			Commission:   15,
			Installments: "10x",
			StartDate:    "2024-03-05",
			EndDate:      "2025-03-05",
		},
		Endorsements: []any{map[string]any{"tipo": "inclusão"}},
	}

	if diff := cmp.Diff(want, lead); diff != "" {
		t.Errorf("lead convertido diferente (-want +got):\n%s", diff)
	}
}

func TestTranslator_DocumentToLead_Defaults(t *testing.T) {
	tr := newTestTranslator()

	lead, err := tr.DocumentToLead(domain.CollectionLeads, domain.Document{
		ID:   "lead-2",
		Data: map[string]any{"email": "minusculo@example.com", "notes": "nota"},
	})
	require.NoError(t, err)

	assert.Equal(t, "", lead.Name)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, "minusculo@example.com", lead.Email)
	assert.Equal(t, "nota", lead.Notes)
	assert.Equal(t, "2024-03-06T12:30:00.000Z", lead.CreatedAt)
	assert.Nil(t, lead.DealInfo)
	assert.Nil(t, lead.ClosedAt)
	assert.Nil(t, lead.CartaoPortoNovo)
	assert.NotNil(t, lead.Endorsements)
	assert.Empty(t, lead.Endorsements)
}

func TestTranslator_DocumentToLead_KeysAndFalsyValues(t *testing.T) {
	tr := newTestTranslator()

	tests := []struct {
		name  string
		data  map[string]any
		check func(t *testing.T, lead *domain.Lead)
	}{
		{
			name: "chave Status maiúscula é ignorada",
			data: map[string]any{"Nome": "Ana", "Status": "Fechado"},
			check: func(t *testing.T, lead *domain.Lead) {
				assert.Equal(t, domain.LeadStatusNew, lead.Status)
			},
		},
		{
			name: "email minúsculo só entra sem Email",
			data: map[string]any{"Email": "oficial@example.com", "email": "outro@example.com"},
			check: func(t *testing.T, lead *domain.Lead) {
				assert.Equal(t, "oficial@example.com", lead.Email)
			},
		},
		{
			name: "chave EMAIL não casa com nenhum campo",
			data: map[string]any{"EMAIL": "gritado@example.com", "NOTES": "x"},
			check: func(t *testing.T, lead *domain.Lead) {
				assert.Equal(t, "", lead.Email)
				assert.Equal(t, "", lead.Notes)
			},
		},
		{
			name: "false e zero viram texto vazio",
			data: map[string]any{"Nome": false, "AnoModelo": float64(0), "Parcelamento": float64(0), "Seguradora": "Allianz"},
			check: func(t *testing.T, lead *domain.Lead) {
				assert.Equal(t, "", lead.Name)
				assert.Equal(t, "", lead.VehicleYear)
				require.NotNil(t, lead.DealInfo)
				assert.Equal(t, "", lead.DealInfo.Installments)
			},
		},
		{
			name: "número preenchido vira texto",
			data: map[string]any{"AnoModelo": float64(2021), "Telefone": int64(41988887777)},
			check: func(t *testing.T, lead *domain.Lead) {
				assert.Equal(t, "2021", lead.VehicleYear)
				assert.Equal(t, "41988887777", lead.Phone)
			},
		},
		{
			name: "flags em texto",
			data: map[string]any{"CartaoPortoNovo": "Sim", "insurerConfirmed": "não"},
			check: func(t *testing.T, lead *domain.Lead) {
				assert.Equal(t, boolPtr(true), lead.CartaoPortoNovo)
				assert.Equal(t, boolPtr(false), lead.InsurerConfirmed)
			},
		},
		{
			name: "flags numéricas",
			data: map[string]any{"CartaoPortoNovo": float64(1), "insurerConfirmed": float64(0)},
			check: func(t *testing.T, lead *domain.Lead) {
				assert.Equal(t, boolPtr(true), lead.CartaoPortoNovo)
				assert.Equal(t, boolPtr(false), lead.InsurerConfirmed)
			},
		},
		{
			name: "flag ilegível mantém o lead sem valor",
			data: map[string]any{"Nome": "Bruno", "CartaoPortoNovo": "talvez", "insurerConfirmed": map[string]any{"ok": true}},
			check: func(t *testing.T, lead *domain.Lead) {
				assert.Equal(t, "Bruno", lead.Name)
				assert.Nil(t, lead.CartaoPortoNovo)
				assert.Nil(t, lead.InsurerConfirmed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, err := tr.DocumentToLead(domain.CollectionLeads, domain.Document{ID: "x", Data: tt.data})
			require.NoError(t, err)
			tt.check(t, lead)
		})
	}
}

func TestTranslator_DocumentToUser_ExactKeys(t *testing.T) {
	tr := newTestTranslator()

	user, err := tr.DocumentToUser(domain.Document{
		ID:   "u9",
		Data: map[string]any{"Nome": "Ana", "Status": "Ativo", "Tipo": "Admin", "usuario": "ana"},
	})
	require.NoError(t, err)

	assert.Equal(t, "", user.Name)
	assert.Equal(t, "ana", user.Login)
	assert.False(t, user.IsActive)
	assert.False(t, user.IsAdmin)
}

func TestTranslator_DealInfoPresence(t *testing.T) {
	tr := newTestTranslator()

	tests := []struct {
		name        string
		data        map[string]any
		wantDefined bool
	}{
		{
			name:        "nenhum campo de fechamento",
			data:        map[string]any{"Nome": "Ana", "Comissao": "10%", "Parcelamento": "5x"},
			wantDefined: false,
		},
		{
			name:        "campos vazios não contam",
			data:        map[string]any{"Seguradora": "", "PremioLiquido": "", "VigenciaInicial": ""},
			wantDefined: false,
		},
		{
			name:        "prêmio zero não conta",
			data:        map[string]any{"PremioLiquido": float64(0)},
			wantDefined: false,
		},
		{
			name:        "apenas seguradora",
			data:        map[string]any{"Seguradora": "Allianz"},
			wantDefined: true,
		},
		{
			name:        "apenas prêmio líquido",
			data:        map[string]any{"PremioLiquido": "850,00"},
			wantDefined: true,
		},
		{
			name:        "apenas vigência inicial",
			data:        map[string]any{"VigenciaInicial": "2024-01-10"},
			wantDefined: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, err := tr.DocumentToLead(domain.CollectionLeads, domain.Document{ID: "x", Data: tt.data})
			require.NoError(t, err)

			if tt.wantDefined {
				assert.NotNil(t, lead.DealInfo)
			} else {
				assert.Nil(t, lead.DealInfo)
			}
		})
	}
}

func TestTranslator_DocumentToLead_SchemaMismatch(t *testing.T) {
	tr := newTestTranslator()

	_, err := tr.DocumentToLead(domain.CollectionRenewals, domain.Document{
		ID:   "quebrado",
		Data: map[string]any{"Nome": map[string]any{"primeiro": "João"}},
	})
	require.Error(t, err)

	var mismatch *SchemaMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, domain.CollectionRenewals, mismatch.Collection)
	assert.Equal(t, "quebrado", mismatch.DocumentID)
	assert.Contains(t, err.Error(), "renovacoes/quebrado")
}

func TestTranslator_RoundTrip(t *testing.T) {
	tr := newTestTranslator()

	for _, collection := range domain.LeadCollections {
		t.Run(collection, func(t *testing.T) {
			first, err := tr.DocumentToLead(collection, fullLeadDocument())
			require.NoError(t, err)

			// a escrita é um patch: chaves ausentes continuam com o valor gravado
			stored := fullLeadDocument().Data
			for key, value := range tr.LeadToDocument(collection, first) {
				stored[key] = value
			}
			second, err := tr.DocumentToLead(collection, domain.Document{ID: first.ID, Data: stored})
			require.NoError(t, err)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("ida e volta alterou o lead (-first +second):\n%s", diff)
			}
		})
	}
}

func TestTranslator_LeadToDocument(t *testing.T) {
	tr := newTestTranslator()

	t.Run("sem dados de fechamento mantém as chaves vazias", func(t *testing.T) {
		doc := tr.LeadToDocument(domain.CollectionLeads, &domain.Lead{Name: "Ana", Status: domain.LeadStatusNew})

		for _, key := range []string{"Seguradora", "PremioLiquido", "Parcelamento", "Comissao", "VigenciaInicial", "VigenciaFinal", "usuarioId", "closedAt"} {
			value, exists := doc[key]
			assert.True(t, exists, key)
			assert.Equal(t, "", value, key)
		}
		assert.Equal(t, false, doc["insurerConfirmed"])
		assert.Equal(t, false, doc["CartaoPortoNovo"])
		assert.NotContains(t, doc, "registeredAt")
		assert.NotContains(t, doc, "endorsements")
		assert.Equal(t, "Novo", doc["status"])
	})

	t.Run("dados de fechamento numéricos", func(t *testing.T) {
		doc := tr.LeadToDocument(domain.CollectionLeads, &domain.Lead{
			DealInfo: &domain.DealInfo{Insurer: "Tokio", NetPremium: 999.9, Commission: 12.5, StartDate: "2024-01-01"},
		})

		assert.Equal(t, "Tokio", doc["Seguradora"])
		assert.Equal(t, 999.9, doc["PremioLiquido"])
		assert.Equal(t, 12.5, doc["Comissao"])
		assert.Equal(t, "2024-01-01", doc["VigenciaInicial"])
	})

	t.Run("renovação sem registro recebe carimbo", func(t *testing.T) {
		doc := tr.LeadToDocument(domain.CollectionRenewals, &domain.Lead{Name: "Ana"})
		assert.Equal(t, "2024-03-06T12:30:00.000Z", doc["registeredAt"])
	})

	t.Run("renovação com registro preserva o valor", func(t *testing.T) {
		doc := tr.LeadToDocument(domain.CollectionRenewals, &domain.Lead{RegisteredAt: stringPtr("2023-12-01T00:00:00.000Z")})
		assert.Equal(t, "2023-12-01T00:00:00.000Z", doc["registeredAt"])
	})

	t.Run("outras coleções não carimbam", func(t *testing.T) {
		doc := tr.LeadToDocument(domain.CollectionRenewed, &domain.Lead{Name: "Ana"})
		assert.NotContains(t, doc, "registeredAt")
	})

	t.Run("registro existente não é escrito fora de renovacoes", func(t *testing.T) {
		for _, collection := range []string{domain.CollectionLeads, domain.CollectionRenewed} {
			doc := tr.LeadToDocument(collection, &domain.Lead{Name: "Ana", RegisteredAt: stringPtr("2023-12-01T00:00:00.000Z")})
			assert.NotContains(t, doc, "registeredAt", collection)
		}
	})
}

func TestTranslator_Users(t *testing.T) {
	tr := newTestTranslator()

	tests := []struct {
		name string
		data map[string]any
		want domain.User
	}{
		{
			name: "admin ativo",
			data: map[string]any{"nome": "Paula", "usuario": "paula", "senha": "123", "email": "p@example.com", "status": "Ativo", "tipo": "Admin"},
			want: domain.User{ID: "u1", Name: "Paula", Login: "paula", Password: "123", Email: "p@example.com", IsActive: true, IsAdmin: true, AvatarColor: domain.DefaultAvatarColor},
		},
		{
			name: "renovações inativo",
			data: map[string]any{"nome": "Rui", "status": "Inativo", "tipo": "Renovações"},
			want: domain.User{ID: "u1", Name: "Rui", IsRenovations: true, AvatarColor: domain.DefaultAvatarColor},
		},
		{
			name: "comum sem status",
			data: map[string]any{"nome": "Léo", "tipo": "Comum"},
			want: domain.User{ID: "u1", Name: "Léo", AvatarColor: domain.DefaultAvatarColor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := tr.DocumentToUser(domain.Document{ID: "u1", Data: tt.data})
			require.NoError(t, err)
			assert.Equal(t, tt.want, *user)

			back, err := tr.DocumentToUser(domain.Document{ID: "u1", Data: tr.UserToDocument(user)})
			require.NoError(t, err)
			assert.Equal(t, *user, *back)
		})
	}
}

func TestTranslator_UserToDocument(t *testing.T) {
	tr := newTestTranslator()

	doc := tr.UserToDocument(&domain.User{ID: "u9", Name: "Bia", Login: "bia", Password: "s3nh4", IsActive: false, IsAdmin: true})

	assert.Equal(t, map[string]any{
		"nome":      "Bia",
		"usuario":   "bia",
		"senha":     "s3nh4",
		"email":     "",
		"id":        "u9",
		"status":    "Inativo",
		"tipo":      "Admin",
		"updatedAt": "2024-03-06T12:30:00.000Z",
	}, doc)
}

func TestTranslator_ToDocument(t *testing.T) {
	tr := newTestTranslator()

	_, err := tr.ToDocument(domain.CollectionLeads, &domain.User{Name: "x"})
	assert.ErrorIs(t, err, ErrRecordMismatch)

	_, err = tr.ToDocument(domain.CollectionUsers, &domain.Lead{Name: "x"})
	assert.ErrorIs(t, err, ErrRecordMismatch)

	_, err = tr.ToDocument(domain.CollectionLeads, "texto")
	assert.ErrorIs(t, err, ErrRecordMismatch)

	var nilLead *domain.Lead
	_, err = tr.ToDocument(domain.CollectionLeads, nilLead)
	assert.ErrorIs(t, err, ErrNilRecord)

	doc, err := tr.ToDocument(domain.CollectionUsers, domain.User{Name: "valor"})
	require.NoError(t, err)
	assert.Equal(t, "valor", doc["nome"])

	record, err := tr.FromDocument(domain.CollectionUsers, domain.Document{ID: "u", Data: doc})
	require.NoError(t, err)
	assert.IsType(t, &domain.User{}, record)

	record, err = tr.FromDocument(domain.CollectionRenewed, domain.Document{ID: "l", Data: map[string]any{}})
	require.NoError(t, err)
	assert.IsType(t, &domain.Lead{}, record)
}

func TestTranslator_CounterFromDocument(t *testing.T) {
	tr := newTestTranslator()

	assert.Equal(t, 0, tr.CounterFromDocument(nil))
	assert.Equal(t, 0, tr.CounterFromDocument(&domain.Document{ID: "stats", Data: map[string]any{}}))
	assert.Equal(t, 37, tr.CounterFromDocument(&domain.Document{ID: "stats", Data: map[string]any{"count": float64(37)}}))
}
