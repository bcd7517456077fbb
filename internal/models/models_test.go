package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikedByUser(t *testing.T) {
	post := &SkillPost{LikedBy: []string{"u1", "u2"}}

	assert.True(t, post.LikedByUser("u1"))
	assert.False(t, post.LikedByUser("u3"))
	assert.Equal(t, 2, post.LikeCount())
}

func TestPostFormValidation(t *testing.T) {
	form := &PostForm{
		Title:       "Intro to Testing",
		Description: "A practical walkthrough of unit testing.",
		Category:    "Programming",
		Visibility:  VisibilityPublic,
	}
	assert.False(t, Validate(form).HasErrors())
}

func TestPostFormRejectsShortTitle(t *testing.T) {
	form := &PostForm{
		Title:       "Hi",
		Description: "A practical walkthrough of unit testing.",
		Category:    "Programming",
		Visibility:  VisibilityPublic,
	}

	errs := Validate(form)
	require.True(t, errs.HasErrors())
	assert.NotEmpty(t, errs.GetField("title"))
}

func TestPostFormRejectsUnknownVisibility(t *testing.T) {
	form := &PostForm{
		Title:       "Intro to Testing",
		Description: "A practical walkthrough of unit testing.",
		Category:    "Programming",
		Visibility:  "everyone",
	}

	errs := Validate(form)
	require.True(t, errs.HasErrors())
	assert.NotEmpty(t, errs.GetField("visibility"))
}

func TestProgressFormPercentBounds(t *testing.T) {
	base := ProgressForm{
		Title:       "Go generics course",
		Description: "Working through the standard course material.",
		Template:    TemplateCourse,
	}

	valid := base
	valid.ProgressPercent = 100
	assert.False(t, Validate(&valid).HasErrors())

	over := base
	over.ProgressPercent = 101
	errs := Validate(&over)
	require.True(t, errs.HasErrors())
	assert.NotEmpty(t, errs.GetField("progresspercent"))
}

func TestProgressFormEvidenceLinkShape(t *testing.T) {
	form := &ProgressForm{
		Title:           "Go generics course",
		Description:     "Working through the standard course material.",
		Template:        TemplateCourse,
		ProgressPercent: 40,
		EvidenceLink:    "not a url",
	}

	errs := Validate(form)
	require.True(t, errs.HasErrors())
	assert.NotEmpty(t, errs.GetField("evidencelink"))

	form.EvidenceLink = "https://example.com/certificate"
	assert.False(t, Validate(form).HasErrors())
}

func TestCommentFormRequiresContent(t *testing.T) {
	errs := Validate(&CommentForm{})
	require.True(t, errs.HasErrors())

	assert.False(t, Validate(&CommentForm{Content: "nice write-up"}).HasErrors())
}

func TestPlanFormDifficultyEnum(t *testing.T) {
	form := &PlanForm{
		Title:       "Backend fundamentals",
		Description: "From HTTP basics to production deployment.",
		Duration:    "8 weeks",
		Difficulty:  DifficultyIntermediate,
	}
	assert.False(t, Validate(form).HasErrors())

	form.Difficulty = "Impossible"
	assert.True(t, Validate(form).HasErrors())
}
