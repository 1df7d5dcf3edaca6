package response

type AuthResponse struct {
	User UserResponse `json:"user"`
}
