package domain

// Profile is the signed-in user's personal data.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	JoinDate   string `json:"join_date"`
}

// ProfileDocument is a file listed on the profile page. No file is stored.
type ProfileDocument struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	UploadDate string `json:"upload_date"`
	Size       string `json:"size"`
}
