package translator

import (
	"errors"
	"fmt"
)

var (
	ErrRecordMismatch = errors.New("registro incompatível com a coleção")
	ErrNilRecord      = errors.New("registro vazio")
)

// SchemaMismatchError indica um documento cujo campo não pode ser convertido para o tipo esperado.
type SchemaMismatchError struct {
	Collection string
	DocumentID string
	Err        error
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("documento %s/%s fora do esquema: %v", e.Collection, e.DocumentID, e.Err)
}

func (e *SchemaMismatchError) Unwrap() error {
	return e.Err
}
