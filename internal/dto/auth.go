package dto

// ── autenticación ──

// LoginRequest credenciales; email se compara sin distinguir mayúsculas
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

// LoginResponse token y datos básicos de la persona autenticada
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   int     `json:"expires_in"` // segundos
	Nombre      string  `json:"nombre"`
	Correo      *string `json:"correo"`
	Rol         *string `json:"rol"`
	IDPersona   int64   `json:"id_persona"`
}
