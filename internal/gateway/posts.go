package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"skillhub/internal/models"
)

// ListPosts fetches the full skill post collection.
func (c *Client) ListPosts(ctx context.Context) ([]*models.SkillPost, error) {
	const op = "list posts"

	var posts []*models.SkillPost
	resp, err := c.newRequest(ctx).
		SetResult(&posts).
		Get("/skill-posts")
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return posts, nil
}

// CreatePost creates a post from the dialog form. The gateway expects a
// multipart body with the post fields as a JSON field named "post" plus an
// optional "image" file part.
func (c *Client) CreatePost(ctx context.Context, form *models.PostForm, image io.Reader, imageName string) (*models.SkillPost, error) {
	const op = "create post"

	payload, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("gateway: encode post form: %w", err)
	}

	var created models.SkillPost
	req := c.newRequest(ctx).
		SetMultipartField("post", "", "application/json", bytes.NewReader(payload)).
		SetResult(&created)
	if image != nil {
		req.SetFileReader("image", imageName, image)
	}

	resp, rerr := req.Post("/skill-posts")
	if cerr := c.checked(op, resp, rerr); cerr != nil {
		return nil, cerr
	}
	return &created, nil
}

// UpdatePost applies the edit dialog form to an existing post and returns
// the updated post.
func (c *Client) UpdatePost(ctx context.Context, id string, form *models.PostForm) (*models.SkillPost, error) {
	const op = "update post"

	var updated models.SkillPost
	resp, err := c.newRequest(ctx).
		SetBody(form).
		SetResult(&updated).
		Put("/skill-posts/" + id)
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &updated, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	const op = "delete post"

	resp, err := c.newRequest(ctx).Delete("/skill-posts/" + id)
	return c.checked(op, resp, err)
}

// ToggleLike flips the current user's membership in a post's likedBy set and
// returns the authoritative set from the server. The server is the single
// source of truth for membership; callers replace, never merge.
func (c *Client) ToggleLike(ctx context.Context, postID string) (*models.LikeResponse, error) {
	const op = "toggle like"

	var like models.LikeResponse
	resp, err := c.newRequest(ctx).
		SetResult(&like).
		Post("/skill-posts/" + postID + "/like")
	if cerr := c.checked(op, resp, err); cerr != nil {
		return nil, cerr
	}
	return &like, nil
}
