package subscribing

import (
	"errors"
	"fmt"
)

var (
	ErrStoreUnavailable = errors.New("banco de dados não configurado")
	ErrManagerClosed    = errors.New("gerenciador de assinaturas encerrado")
)

// Operações de escrita
const (
	OpCreate       = "create"
	OpUpdate       = "update"
	OpSetAggregate = "set_aggregate"
)

// WriteError é uma falha de escrita no banco com a coleção e o documento envolvidos.
type WriteError struct {
	Err        error
	Op         string
	Collection string
	DocumentID string
}

func (e *WriteError) Error() string {
	if e.DocumentID != "" {
		return fmt.Sprintf("%s em %s/%s: %s", e.Op, e.Collection, e.DocumentID, e.Err.Error())
	}
	return fmt.Sprintf("%s em %s: %s", e.Op, e.Collection, e.Err.Error())
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
