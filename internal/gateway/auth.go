package gateway

import (
	"context"

	"skillhub/internal/models"
)

// CheckAuth validates the session cookie and returns the current user's
// identity. A 401 means there is no usable session and the caller must
// navigate to the login flow.
func (c *Client) CheckAuth(ctx context.Context) (*models.AuthCheck, error) {
	const op = "auth check"

	var check models.AuthCheck
	resp, err := c.newRequest(ctx).
		SetResult(&check).
		Get("/skill-posts/auth/check")
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &check, nil
}

// GetProfile fetches the stored profile record for an email. A 404 is not a
// failure of the page: the caller falls back to auth-derived defaults.
func (c *Client) GetProfile(ctx context.Context, email string) (*models.UserProfile, error) {
	const op = "get profile"

	var profile models.UserProfile
	resp, err := c.newRequest(ctx).
		SetResult(&profile).
		Get("/users/" + email)
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &profile, nil
}

// UpdateProfile stores the editable profile fields and returns the updated
// profile record.
func (c *Client) UpdateProfile(ctx context.Context, email string, profile *models.UserProfile) (*models.UserProfile, error) {
	const op = "update profile"

	var updated models.UserProfile
	resp, err := c.newRequest(ctx).
		SetBody(profile).
		SetResult(&updated).
		Put("/users/" + email)
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &updated, nil
}
