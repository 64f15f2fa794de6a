package dto

type LoginRequest struct {
	ID string `json:"id"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserPayload struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsOnboarded bool   `json:"is_onboarded"`
}

type LoginResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	User         UserPayload `json:"user"`
}

type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
