package user

type ClaimUsernameRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
}
