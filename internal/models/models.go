package models

import (
	"time"
)

// ===============================
// CORE ENTITIES
// ===============================

// Visibility controls who can see a skill post.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityFollowers Visibility = "followers"
	VisibilityPrivate   Visibility = "private"
)

// Difficulty grades a learning plan.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ProgressTemplate names the kind of progress update being shared.
type ProgressTemplate string

const (
	TemplateCourse  ProgressTemplate = "course"
	TemplateProject ProgressTemplate = "project"
	TemplateSkill   ProgressTemplate = "skill"
)

// Author is the denormalized copy of the posting user embedded in every
// entity at creation time. It is never fetched on its own.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// SkillPost represents a shared skill post. All identifiers are opaque
// strings assigned by the gateway; the client never generates them.
type SkillPost struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Author        Author     `json:"author"`
	LikedBy       []string   `json:"likedBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	Image         string     `json:"image,omitempty"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags,omitempty"`
	AllowComments bool       `json:"allowComments"`
	Visibility    Visibility `json:"visibility"`
}

// LikedByUser reports whether userID is a member of the post's likedBy set.
func (p *SkillPost) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// LikeCount returns the size of the likedBy set.
func (p *SkillPost) LikeCount() int {
	return len(p.LikedBy)
}

// EntityID implements store.Entity.
func (p *SkillPost) EntityID() string { return p.ID }

// Comment represents a comment on a skill post. The owning post is tracked
// by the comment store's key, not on the comment itself.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// LearningPlan represents a published learning plan.
type LearningPlan struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Author        Author     `json:"author"`
	Topics        []string   `json:"topics,omitempty"`
	Duration      string     `json:"duration"`
	Followers     int        `json:"followers"`
	CreatedAt     time.Time  `json:"createdAt"`
	Goals         []string   `json:"goals,omitempty"`
	Resources     []string   `json:"resources,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	Prerequisites string     `json:"prerequisites,omitempty"`
}

// EntityID implements store.Entity.
func (p *LearningPlan) EntityID() string { return p.ID }

// LearningProgress represents a learning progress update.
type LearningProgress struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	ProgressPercent int              `json:"progressPercent"`
	Milestone       string           `json:"milestone"`
	Author          Author           `json:"author"`
	CreatedAt       time.Time        `json:"createdAt"`
	Template        ProgressTemplate `json:"template"`
	SkillsGained    []string         `json:"skillsGained,omitempty"`
	ChallengesFaced string           `json:"challengesFaced,omitempty"`
	NextSteps       string           `json:"nextSteps,omitempty"`
	EvidenceLink    string           `json:"evidenceLink,omitempty"`
}

// EntityID implements store.Entity.
func (p *LearningProgress) EntityID() string { return p.ID }

// ProfileStats carries the aggregate counters shown on the profile page.
type ProfileStats struct {
	Posts     int `json:"posts"`
	Plans     int `json:"plans"`
	Following int `json:"following"`
	Followers int `json:"followers"`
}

// UserProfile is hydrated from two sources: the auth/session check (name,
// email, avatar) and an optional profile record (bio, skills, links).
// Absence of the profile record falls back to auth-derived defaults.
type UserProfile struct {
	Name     string       `json:"name"`
	Avatar   string       `json:"avatar"`
	Email    string       `json:"email"`
	Title    string       `json:"title,omitempty"`
	Location string       `json:"location,omitempty"`
	Bio      string       `json:"bio,omitempty"`
	Skills   []string     `json:"skills,omitempty"`
	GitHub   string       `json:"github,omitempty"`
	LinkedIn string       `json:"linkedin,omitempty"`
	Stats    ProfileStats `json:"stats"`
}

// AuthCheck is the gateway's auth/session check response.
type AuthCheck struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Sub     string `json:"sub"`
	Picture string `json:"picture"`
}

// LikeResponse is the authoritative likedBy set returned by a like toggle.
type LikeResponse struct {
	LikedBy []string `json:"likedBy"`
}

// ===============================
// FORM SCHEMAS
// ===============================
//
// The create/edit dialogs validate these before any dispatch happens; the
// dispatchers trust them but still run the cheap tag check at the boundary.

// PostForm carries the fields of a post create/edit dialog.
type PostForm struct {
	Title         string     `json:"title" validate:"required,min=5,max=100"`
	Description   string     `json:"description" validate:"required,min=10,max=500"`
	Category      string     `json:"category" validate:"required"`
	Tags          []string   `json:"tags,omitempty"`
	AllowComments bool       `json:"allowComments"`
	Visibility    Visibility `json:"visibility" validate:"required,oneof=public followers private"`
}

// PlanForm carries the fields of a plan create/edit dialog.
type PlanForm struct {
	Title         string     `json:"title" validate:"required,min=5,max=100"`
	Description   string     `json:"description" validate:"required,min=10,max=500"`
	Topics        []string   `json:"topics,omitempty"`
	Duration      string     `json:"duration" validate:"required"`
	Goals         []string   `json:"goals,omitempty"`
	Resources     []string   `json:"resources,omitempty"`
	Difficulty    Difficulty `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	Prerequisites string     `json:"prerequisites,omitempty"`
}

// ProgressForm carries the fields of a progress create/edit dialog.
type ProgressForm struct {
	Title           string           `json:"title" validate:"required,min=5,max=100"`
	Description     string           `json:"description" validate:"required,min=10,max=500"`
	ProgressPercent int              `json:"progressPercent" validate:"min=0,max=100"`
	Milestone       string           `json:"milestone,omitempty"`
	Template        ProgressTemplate `json:"template" validate:"required,oneof=course project skill"`
	SkillsGained    []string         `json:"skillsGained,omitempty"`
	ChallengesFaced string           `json:"challengesFaced,omitempty"`
	NextSteps       string           `json:"nextSteps,omitempty"`
	EvidenceLink    string           `json:"evidenceLink,omitempty" validate:"omitempty,url"`
}

// CommentForm carries the content of a comment create/edit input.
type CommentForm struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// ProfileForm carries the editable profile fields.
type ProfileForm struct {
	Title    string   `json:"title,omitempty" validate:"omitempty,max=150"`
	Location string   `json:"location,omitempty" validate:"omitempty,max=150"`
	Bio      string   `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Skills   []string `json:"skills,omitempty"`
	GitHub   string   `json:"github,omitempty" validate:"omitempty,max=100"`
	LinkedIn string   `json:"linkedin,omitempty" validate:"omitempty,max=100"`
}
