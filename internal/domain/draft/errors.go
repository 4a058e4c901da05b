package draft

import (
	"errors"
	"fmt"
)

// Errores de validación y de envío del borrador. Los de validación bloquean
// la operación ofensiva sin descartar el borrador en curso; los de envío
// bloquean el submit completo y el borrador sobrevive para corregirse.
var (
	ErrMissingField    = errors.New("descripción y tarifa son requeridas")
	ErrInvalidQuantity = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidStatus   = errors.New("estado de factura no reconocido")
	ErrIndexOutOfRange = errors.New("índice de línea fuera de rango")
	ErrEmptyItemSet    = errors.New("la factura no tiene líneas")
	ErrMissingClient   = errors.New("la factura requiere un cliente")
	ErrMissingDueDate  = errors.New("la factura requiere fecha de vencimiento")
)

// RemoteError envuelve un fallo del almacén REST remoto. Detail conserva el
// texto devuelto por el servidor tal cual, para mostrarlo al usuario.
type RemoteError struct {
	Op     string // operación que falló: "create invoice", "update invoice", ...
	Detail string
	Err    error
}

// fallback cuando el servidor no devolvió texto de error.
const genericRemoteDetail = "operación fallida"

// NewRemoteError construye un RemoteError con fallback genérico si detail es vacío.
func NewRemoteError(op, detail string, err error) *RemoteError {
	if detail == "" {
		detail = genericRemoteDetail
	}
	return &RemoteError{Op: op, Detail: detail, Err: err}
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *RemoteError) Unwrap() error { return e.Err }
