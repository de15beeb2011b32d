package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RedirectResponse acompaña a las redirecciones de la consola para clientes JSON.
type RedirectResponse struct {
	Location string `json:"location"`
}
