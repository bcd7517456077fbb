// Package dispatch orchestrates every mutation the client performs:
// validate what the form layer hands over, issue the gateway request, and on
// success patch the entity, comment, and view-state stores in one step. On
// failure the stores are left untouched, the user gets a notification, and
// nothing is retried.
package dispatch

// Notification wording matches the platform's established toasts.
const (
	msgPostCreated   = "Post created successfully!"
	msgPostUpdated   = "Post updated successfully!"
	msgPostDeleted   = "Post deleted successfully!"
	msgPostCreateErr = "Failed to create post. Please try again."
	msgPostUpdateErr = "Failed to update post. Please try again."
	msgPostDeleteErr = "Failed to delete post. Please try again."
	msgPostLoadErr   = "Failed to load posts. Please try again."
	msgLikeErr       = "Failed to update like. Please try again."

	msgCommentAdded       = "Comment added!"
	msgCommentUpdated     = "Comment updated!"
	msgCommentDeleted     = "Comment deleted!"
	msgCommentEmpty       = "Comment cannot be empty."
	msgCommentAddErr      = "Failed to add comment. Please try again."
	msgCommentUpdateErr   = "Failed to update comment. Please try again."
	msgCommentDeleteErr   = "Failed to delete comment. Please try again."
	msgCommentEditDenied  = "You are not authorized to edit this comment."
	msgCommentDropDenied  = "You are not authorized to delete this comment."

	msgPlanCreated   = "Learning plan created successfully!"
	msgPlanUpdated   = "Learning plan updated successfully!"
	msgPlanDeleted   = "Learning plan deleted successfully!"
	msgPlanCreateErr = "Failed to create learning plan. Please try again."
	msgPlanUpdateErr = "Failed to update learning plan. Please try again."
	msgPlanDeleteErr = "Failed to delete learning plan. Please try again."
	msgPlanLoadErr   = "Failed to load learning plans. Please try again."

	msgProgressCreated   = "Progress update added successfully!"
	msgProgressUpdated   = "Progress update updated successfully!"
	msgProgressDeleted   = "Progress update deleted successfully!"
	msgProgressCreateErr = "Failed to add progress update. Please try again."
	msgProgressUpdateErr = "Failed to update progress update. Please try again."
	msgProgressDeleteErr = "Failed to delete progress update. Please try again."
	msgProgressLoadErr   = "Failed to load progress updates. Please try again."

	msgProfileUpdated   = "Profile updated successfully!"
	msgProfileUpdateErr = "Failed to update profile. Please try again."
)
