package gateway

import (
	"context"

	"skillhub/internal/models"
)

// ListProgress fetches the full learning progress collection.
func (c *Client) ListProgress(ctx context.Context) ([]*models.LearningProgress, error) {
	const op = "list progress"

	var updates []*models.LearningProgress
	resp, err := c.newRequest(ctx).
		SetResult(&updates).
		Get("/learning-progress")
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return updates, nil
}

// CreateProgress publishes a new progress update.
func (c *Client) CreateProgress(ctx context.Context, form *models.ProgressForm) (*models.LearningProgress, error) {
	const op = "create progress"

	var created models.LearningProgress
	resp, err := c.newRequest(ctx).
		SetBody(form).
		SetResult(&created).
		Post("/learning-progress")
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &created, nil
}

// UpdateProgress applies the edit dialog form to an existing update.
func (c *Client) UpdateProgress(ctx context.Context, id string, form *models.ProgressForm) (*models.LearningProgress, error) {
	const op = "update progress"

	var updated models.LearningProgress
	resp, err := c.newRequest(ctx).
		SetBody(form).
		SetResult(&updated).
		Put("/learning-progress/" + id)
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &updated, nil
}

// DeleteProgress removes a progress update.
func (c *Client) DeleteProgress(ctx context.Context, id string) error {
	const op = "delete progress"

	resp, err := c.newRequest(ctx).Delete("/learning-progress/" + id)
	return c.checked(op, resp, err)
}
