package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP. Detail repite Message bajo la clave que
// esperan los consumidores del frontend original; ambos llevan el mismo texto.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Err construye el cuerpo de error con Message y Detail iguales.
func Err(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Detail: message}
}

// MessageResponse respuesta simple de confirmación (deletes).
type MessageResponse struct {
	Message string `json:"message"`
}
