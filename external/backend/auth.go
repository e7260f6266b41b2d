package backend

import (
	"context"
	"net/http"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, email, password string) (string, model.User, error) {
	var out loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &out, false)
	if err != nil {
		return "", model.User{}, err
	}
	return out.Token, out.User, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// Register creates an account. The backend sends the verification mail.
func (c *Client) Register(ctx context.Context, name, email, mobile, password string) error {
	req := registerRequest{Name: name, Email: email, Mobile: mobile, Password: password}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, nil, false)
}

// SendVerification asks the backend to re-send the verification mail.
func (c *Client) SendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/send-verification", body, nil, false)
}

// ForgotPassword starts a password reset for the given account.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/forgot-password", body, nil, false)
}

// ResetPassword completes a reset using the token from the reset mail.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"password": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password/"+resetToken, body, nil, false)
}
