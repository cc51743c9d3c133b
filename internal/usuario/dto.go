package usuario

// LoginRequest se usa en POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CrearUsuarioRequest se usa en POST /usuarios
type CrearUsuarioRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	IsAdmin  bool   `json:"isAdmin"`
}
