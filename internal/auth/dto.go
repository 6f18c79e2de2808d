// AngelaMos | 2026
// dto.go

package auth

type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,max=255"`
	Password  string `json:"password"   validate:"required,min=6,max=128"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name"  validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type AuthResponse struct {
	Success bool  `json:"success"`
	UserID  int64 `json:"user_id"`
}
