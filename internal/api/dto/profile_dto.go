package dto

// UpdateNameRequest payload for renaming the profile.
type UpdateNameRequest struct {
	Name string `json:"name"`
}

// ChangePasswordRequest payload for the password form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
