package handler

// --- Request types ---

// registerRequest caps raw field sizes; the domain owns the real rules.
type registerRequest struct {
	Name     string `json:"name"     validate:"max=512"`
	Email    string `json:"email"    validate:"max=512"`
	Password string `json:"password" validate:"max=512"`
	Role     string `json:"role"     validate:"max=32"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,max=512"`
	Password string `json:"password" validate:"required,max=512"`
}

type userPathRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

// --- Response types ---

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type capabilitiesResponse struct {
	Role            string   `json:"role"`
	Permissions     []string `json:"permissions"`
	CanRegisterTime bool     `json:"can_register_time"`
	CanApproveTime  bool     `json:"can_approve_time"`
}
