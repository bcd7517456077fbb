package gateway

import (
	"context"

	"skillhub/internal/models"
)

// ListPlans fetches the full learning plan collection.
func (c *Client) ListPlans(ctx context.Context) ([]*models.LearningPlan, error) {
	const op = "list plans"

	var plans []*models.LearningPlan
	resp, err := c.newRequest(ctx).
		SetResult(&plans).
		Get("/learning-plans")
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return plans, nil
}

// CreatePlan publishes a new learning plan.
func (c *Client) CreatePlan(ctx context.Context, form *models.PlanForm) (*models.LearningPlan, error) {
	const op = "create plan"

	var created models.LearningPlan
	resp, err := c.newRequest(ctx).
		SetBody(form).
		SetResult(&created).
		Post("/learning-plans")
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &created, nil
}

// UpdatePlan applies the edit dialog form to an existing plan.
func (c *Client) UpdatePlan(ctx context.Context, id string, form *models.PlanForm) (*models.LearningPlan, error) {
	const op = "update plan"

	var updated models.LearningPlan
	resp, err := c.newRequest(ctx).
		SetBody(form).
		SetResult(&updated).
		Put("/learning-plans/" + id)
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &updated, nil
}

// DeletePlan removes a learning plan.
func (c *Client) DeletePlan(ctx context.Context, id string) error {
	const op = "delete plan"

	resp, err := c.newRequest(ctx).Delete("/learning-plans/" + id)
	return c.checked(op, resp, err)
}
