package translator

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/painel-leads-api/pkg/utils"
)

// leadDocument espelha os campos de leads/renovações/renovados no banco.
// Campos com tipo misto (texto formatado ou número) ficam como any e passam pelos parsers.
type leadDocument struct {
	Name          string `mapstructure:"Nome"`
	VehicleModel  string `mapstructure:"Modelo"`
	VehicleYear   string `mapstructure:"AnoModelo"`
	City          string `mapstructure:"Cidade"`
	Phone         string `mapstructure:"Telefone"`
	InsuranceType string `mapstructure:"TipoSeguro"`
	Status        string `mapstructure:"status"`
	Email         string `mapstructure:"Email"`
	EmailLower    string `mapstructure:"email"`
	AssignedTo    string `mapstructure:"Responsavel"`
	CreatedAt     any    `mapstructure:"createdAt"`
	Notes         string `mapstructure:"notes"`
	Observations  string `mapstructure:"Observacoes"`
	ScheduledDate any    `mapstructure:"agendamento"`

	// flags aceitam bool, "Sim"/"Não" e números; valor ilegível vira nil
	CartaoPortoNovo  any     `mapstructure:"CartaoPortoNovo"`
	InsurerConfirmed any     `mapstructure:"insurerConfirmed"`
	ClosedAt         *string `mapstructure:"closedAt"`
	UsuarioID        *string `mapstructure:"usuarioId"`
	RegisteredAt     *string `mapstructure:"registeredAt"`

	Insurer      any    `mapstructure:"Seguradora"`
	NetPremium   any    `mapstructure:"PremioLiquido"`
	Commission   any    `mapstructure:"Comissao"`
	Installments string `mapstructure:"Parcelamento"`
	StartDate    any    `mapstructure:"VigenciaInicial"`
	EndDate      any    `mapstructure:"VigenciaFinal"`

	Endorsements []any `mapstructure:"endorsements"`
}

type userDocument struct {
	Name     string `mapstructure:"nome"`
	Login    string `mapstructure:"usuario"`
	Password string `mapstructure:"senha"`
	Email    string `mapstructure:"email"`
	Status   string `mapstructure:"status"`
	Type     string `mapstructure:"tipo"`
}

// Valores do vocabulário de usuários
const (
	userStatusActive   = "Ativo"
	userStatusInactive = "Inativo"
	userTypeAdmin      = "Admin"
	userTypeRenewals   = "Renovações"
	userTypeCommon     = "Comum"
)

// decode casa as chaves exatamente como estão no banco: "Status" não preenche status.
func decode(input map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: scalarToText,
		MatchName:  func(mapKey, fieldName string) bool { return mapKey == fieldName },
		Result:     out,
		TagName:    "mapstructure",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

// scalarToText converte bool e número em texto para campos string; false e 0 viram "".
// Mapas e listas seguem adiante e o decoder recusa.
func scalarToText(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}

	switch from.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if reflect.ValueOf(data).IsZero() {
			return "", nil
		}
		return utils.ToText(data), nil
	}

	return data, nil
}

// parseFlag lê as flags do documento sem derrubar o lead quando o valor não é reconhecido.
func parseFlag(val any) *bool {
	yes, no := true, false

	switch v := val.(type) {
	case nil:
		return nil
	case bool:
		return &v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "sim", "s", "1":
			return &yes
		case "false", "não", "nao", "n", "0", "":
			return &no
		}
		return nil
	case float64:
		if v != 0 {
			return &yes
		}
		return &no
	case int:
		if v != 0 {
			return &yes
		}
		return &no
	case int64:
		if v != 0 {
			return &yes
		}
		return &no
	}

	return nil
}
