package http

import (
	"ai-task-planner/internal/auth"
	"ai-task-planner/pkg/response"
)

type registerReq struct {
	Email    string `json:"email"    binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name"     binding:"required,notblank,max=120"`
	Timezone string `json:"timezone" binding:"omitempty,timezone"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{Email: r.Email, Password: r.Password, Name: r.Name, Timezone: r.Timezone}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type userResp struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Timezone  string            `json:"timezone"`
	CreatedAt response.DateTime `json:"created_at"`
}

type authResp struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        userResp `json:"user"`
}

func (h *handler) newAuthResp(out auth.AuthOutput) authResp {
	return authResp{
		AccessToken: out.AccessToken,
		TokenType:   "Bearer",
		User: userResp{
			ID:        out.User.ID,
			Email:     out.User.Email,
			Name:      out.User.Name,
			Timezone:  out.User.Timezone,
			CreatedAt: response.DateTime(out.User.CreatedAt),
		},
	}
}
