package dto

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50" example:"jdoe"`
	Password  string `json:"password" binding:"required,min=6" example:"password"`
	Email     string `json:"email" binding:"omitempty,email" example:"jdoe@university.edu"`
	Role      string `json:"role" binding:"omitempty" example:"Student"`
	StudentID *int64 `json:"studentId,omitempty" example:"1"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// AccountResponse describes a user account without its credentials.
type AccountResponse struct {
	ID           int64  `json:"id" example:"1"`
	Username     string `json:"username" example:"jdoe"`
	Email        string `json:"email,omitempty" example:"jdoe@university.edu"`
	Role         string `json:"role" example:"STUDENT"`
	StudentID    *int64 `json:"studentId,omitempty" example:"1"`
	InstructorID *int64 `json:"instructorId,omitempty"`
}
