package gateway

import (
	"context"

	"skillhub/internal/models"
)

// ListComments fetches the comment list for one post.
func (c *Client) ListComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	const op = "list comments"

	var comments []*models.Comment
	resp, err := c.newRequest(ctx).
		SetResult(&comments).
		Get("/comments/post/" + postID)
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return comments, nil
}

// AddComment creates a comment under a post and returns it with its
// server-assigned id and author.
func (c *Client) AddComment(ctx context.Context, postID string, form *models.CommentForm) (*models.Comment, error) {
	const op = "add comment"

	var created models.Comment
	resp, err := c.newRequest(ctx).
		SetBody(form).
		SetResult(&created).
		Post("/comments/post/" + postID)
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &created, nil
}

// UpdateComment edits a comment's content. The gateway answers 403 when the
// caller is not the comment's owner.
func (c *Client) UpdateComment(ctx context.Context, commentID string, form *models.CommentForm) (*models.Comment, error) {
	const op = "update comment"

	var updated models.Comment
	resp, err := c.newRequest(ctx).
		SetBody(form).
		SetResult(&updated).
		Put("/comments/" + commentID)
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &updated, nil
}

// DeleteComment removes a comment. The gateway answers 403 when the caller
// is not the comment's owner.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	const op = "delete comment"

	resp, err := c.newRequest(ctx).Delete("/comments/" + commentID)
	return c.checked(op, resp, err)
}
