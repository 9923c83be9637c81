package response

import (
	"time"

	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/auth"
)

// User represents a user in API responses. The password hash never
// crosses this boundary.
type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	IsGuest          bool      `json:"is_guest"`
	CreatedAt        time.Time `json:"created_at"`
	TotalGamesPlayed int       `json:"total_games_played"`
	TotalScore       int       `json:"total_score"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:               string(u.ID),
		Username:         u.Username,
		Email:            u.Email,
		IsGuest:          u.IsGuest(),
		CreatedAt:        u.CreatedAt,
		TotalGamesPlayed: u.TotalGamesPlayed,
		TotalScore:       u.TotalScore,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}
