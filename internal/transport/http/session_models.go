package http

import "github.com/njprem/VisitEgypt_BackEnd/internal/domain"

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"page not found"`
}

// SessionUser is the user representation returned by session endpoints.
type SessionUser struct {
	ID    string `json:"id" example:"42"`
	Name  string `json:"name" example:"Layla Hassan"`
	Email string `json:"email" example:"layla@example.com"`
}

// LoginRequest carries the user to sign in. It is stored as given.
type LoginRequest struct {
	ID    string `json:"id" form:"id" example:"42"`
	Name  string `json:"name" form:"name" example:"Layla Hassan"`
	Email string `json:"email" form:"email" example:"layla@example.com"`
}

func (r LoginRequest) toDomain() domain.User {
	return domain.User{ID: r.ID, Name: r.Name, Email: r.Email}
}

// SessionResponse reports the current session state.
type SessionResponse struct {
	Authenticated bool         `json:"authenticated" example:"true"`
	User          *SessionUser `json:"user"`
}

// LogoutResponse tells the client where to go after logging out.
type LogoutResponse struct {
	Redirect string `json:"redirect" example:"/login"`
}

// ActivationResponse is returned when a card is activated.
type ActivationResponse struct {
	Route       string `json:"route" example:"/heritage/pyramids"`
	Placeholder bool   `json:"placeholder" example:"false"`
}

func toSessionUser(user domain.User) *SessionUser {
	return &SessionUser{ID: user.ID, Name: user.Name, Email: user.Email}
}
