package dashboard

import "errors"

var (
	ErrLeadNotFound   = errors.New("lead não encontrado em nenhuma coleção")
	ErrLeadIDRequired = errors.New("id do lead é obrigatório")
	ErrLeadRequired   = errors.New("lead é obrigatório")
	ErrUserIDRequired = errors.New("id do usuário é obrigatório")
	ErrUserRequired   = errors.New("usuário é obrigatório")
	ErrUserNotFound   = errors.New("usuário não encontrado")
	ErrInvalidTotal   = errors.New("total de renovações não pode ser negativo")
)
