package dto

// LoginRequest credenciales enviadas al endpoint de autenticación.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=200"`
}

// LoginResponse respuesta del servidor: token JWT, usuario y autoridad ("ROLE_ADMIN").
// ID y FullName son opcionales; la API actual no los envía.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Roles    string `json:"roles"`
	ID       int64  `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// LoginForm cuerpo del formulario de la consola (credenciales + ruta de retorno).
type LoginForm struct {
	LoginRequest
	ReturnURL string `json:"returnUrl" form:"returnUrl" query:"returnUrl"`
}

// SessionResponse identidad actual expuesta por la consola.
type SessionResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// ProfileUpdateRequest cambios de perfil del empleado.
type ProfileUpdateRequest struct {
	FullName string `json:"fullName" validate:"required,max=200"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=200"`
}

// LoginPageResponse estado del formulario de login.
// Notice informa una sesión cerrada por la API (se muestra una sola vez).
type LoginPageResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	ReturnURL     string `json:"returnUrl,omitempty"`
	Notice        string `json:"notice,omitempty"`
}
