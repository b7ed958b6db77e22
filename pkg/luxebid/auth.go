package luxebid

import (
	"context"

	"github.com/luxebid/luxebid/pkg/model"
)

// LoginResult is the payload returned on a successful login.
type LoginResult struct {
	User    model.User `json:"user"`
	Token   string     `json:"access"`
	Refresh string     `json:"refresh"`
}

// Login authenticates with email and password. Invalid credentials and
// unverified accounts come back as field-free *model.APIError values;
// per-field validation failures carry field messages.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result LoginResult
	if err := c.post(ctx, "/users/login/", body, &result); err != nil {
		return nil, wrap("login", err)
	}
	return &result, nil
}

// RegisterRequest carries the fields of the registration form.
type RegisterRequest struct {
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            model.Role `json:"role"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirmPassword"`
}

// Register creates a new account. A password/confirmPassword mismatch
// is rejected locally with a field error on confirmPassword before any
// request is sent.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, wrap("register", model.NewValidationError("confirmPassword", "passwords do not match"))
	}

	var user model.User
	if err := c.post(ctx, "/users/register/", req, &user); err != nil {
		return nil, wrap("register", err)
	}
	return &user, nil
}

// VerifyOTP confirms the one-time code mailed to a freshly registered
// account.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "otp": code}
	return wrap("verify otp", c.post(ctx, "/users/verify-otp/", body, nil))
}

// ResendOTP requests a new one-time code for an unverified account.
func (c *Client) ResendOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return wrap("resend otp", c.post(ctx, "/users/resend-otp/", body, nil))
}

// ForgotPassword starts the password-reset flow by mailing a one-time
// code to the account.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return wrap("forgot password", c.post(ctx, "/users/forgot-password/", body, nil))
}

// ResetPassword completes the password-reset flow with the mailed code.
func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	body := map[string]string{
		"email":        email,
		"otp":          code,
		"new_password": newPassword,
	}
	return wrap("reset password", c.post(ctx, "/users/reset-password/", body, nil))
}

// ChangePassword changes the password of the authenticated account.
// The backend invalidates all sessions on success; callers must wipe
// local session state and send the user back through login.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if c.token() == "" {
		return wrap("change password", ErrNotAuthenticated)
	}
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return wrap("change password", c.post(ctx, "/users/change-password/", body, nil))
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/users/profile/", &user); err != nil {
		return nil, wrap("profile", err)
	}
	return &user, nil
}

// UpdateProfile updates the authenticated user's display name.
func (c *Client) UpdateProfile(ctx context.Context, name string) (*model.User, error) {
	body := map[string]string{"name": name}

	var user model.User
	if err := c.put(ctx, "/users/profile/", body, &user); err != nil {
		return nil, wrap("update profile", err)
	}
	return &user, nil
}
