package models

// LoginDTO son las credenciales de inicio de sesión.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse trae el token y el usuario que se guardan en la sesión local.
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        Usuario `json:"user"`
}

// RegisterDTO crea una cuenta con su rol.
type RegisterDTO struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}
