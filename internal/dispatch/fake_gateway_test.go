package dispatch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"skillhub/internal/gateway"
	"skillhub/internal/models"
)

// fakeGateway is an in-memory stand-in for the remote entity gateway. It
// keeps server-side state so tests can assert that the dispatchers treat the
// server's responses as the trusted update source.
type fakeGateway struct {
	mu sync.Mutex

	posts     map[string]*models.SkillPost
	postOrder []string
	comments  map[string][]*models.Comment
	plans     map[string]*models.LearningPlan
	planOrder []string
	progress  map[string]*models.LearningProgress
	progOrder []string
	profiles  map[string]*models.UserProfile

	// currentUser is the like-toggling identity; currentName is the author
	// name stamped on created entities and checked for comment ownership.
	currentUser string
	currentName string

	// failAll forces a 500 on every route, for transport-independent
	// failure-path tests.
	failAll bool

	nextID int
	srv    *httptest.Server
}

func newFakeGateway(t *testing.T) (*fakeGateway, *gateway.Client) {
	t.Helper()
	f := &fakeGateway{
		posts:       make(map[string]*models.SkillPost),
		comments:    make(map[string][]*models.Comment),
		plans:       make(map[string]*models.LearningPlan),
		progress:    make(map[string]*models.LearningProgress),
		profiles:    make(map[string]*models.UserProfile),
		currentUser: "u1",
		currentName: "Ada",
	}
	f.srv = httptest.NewServer(f.router())
	t.Cleanup(f.srv.Close)
	return f, gateway.NewClientWithHTTP(f.srv.URL, f.srv.Client(), nil)
}

func (f *fakeGateway) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s%d", prefix, f.nextID)
}

func (f *fakeGateway) author() models.Author {
	return models.Author{Name: f.currentName}
}

// seedPost installs a post with a known id and likedBy set.
func (f *fakeGateway) seedPost(id, title, authorName string, likedBy ...string) *models.SkillPost {
	f.mu.Lock()
	defer f.mu.Unlock()
	post := &models.SkillPost{
		ID:            id,
		Title:         title,
		Description:   "seeded for testing",
		Author:        models.Author{Name: authorName},
		LikedBy:       likedBy,
		Category:      "Programming",
		AllowComments: true,
		Visibility:    models.VisibilityPublic,
		CreatedAt:     time.Now().UTC(),
	}
	f.posts[id] = post
	f.postOrder = append(f.postOrder, id)
	return post
}

// seedComment installs a comment owned by authorName on the given post.
func (f *fakeGateway) seedComment(postID, commentID, content, authorName string) *models.Comment {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &models.Comment{
		ID:        commentID,
		Content:   content,
		Author:    models.Author{Name: authorName},
		CreatedAt: time.Now().UTC(),
	}
	f.comments[postID] = append(f.comments[postID], c)
	return c
}

func (f *fakeGateway) seedPlan(id, title, authorName string) *models.LearningPlan {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan := &models.LearningPlan{
		ID:         id,
		Title:      title,
		Author:     models.Author{Name: authorName},
		Duration:   "4 weeks",
		Difficulty: models.DifficultyBeginner,
		CreatedAt:  time.Now().UTC(),
	}
	f.plans[id] = plan
	f.planOrder = append(f.planOrder, id)
	return plan
}

func (f *fakeGateway) seedProgress(id, title, authorName string, percent int) *models.LearningProgress {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &models.LearningProgress{
		ID:              id,
		Title:           title,
		Author:          models.Author{Name: authorName},
		ProgressPercent: percent,
		Template:        models.TemplateCourse,
		CreatedAt:       time.Now().UTC(),
	}
	f.progress[id] = p
	f.progOrder = append(f.progOrder, id)
	return p
}

func (f *fakeGateway) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			fail := f.failAll
			f.mu.Unlock()
			if fail {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/skill-posts", f.handleListPosts)
	r.Post("/skill-posts", f.handleCreatePost)
	r.Put("/skill-posts/{id}", f.handleUpdatePost)
	r.Delete("/skill-posts/{id}", f.handleDeletePost)
	r.Post("/skill-posts/{id}/like", f.handleToggleLike)

	r.Get("/comments/post/{postID}", f.handleListComments)
	r.Post("/comments/post/{postID}", f.handleAddComment)
	r.Put("/comments/{id}", f.handleUpdateComment)
	r.Delete("/comments/{id}", f.handleDeleteComment)

	r.Get("/learning-plans", f.handleListPlans)
	r.Post("/learning-plans", f.handleCreatePlan)
	r.Put("/learning-plans/{id}", f.handleUpdatePlan)
	r.Delete("/learning-plans/{id}", f.handleDeletePlan)

	r.Get("/learning-progress", f.handleListProgress)
	r.Post("/learning-progress", f.handleCreateProgress)
	r.Put("/learning-progress/{id}", f.handleUpdateProgress)
	r.Delete("/learning-progress/{id}", f.handleDeleteProgress)

	r.Get("/users/{email}", f.handleGetProfile)
	r.Put("/users/{email}", f.handleUpdateProfile)

	return r
}

func respond(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// ===============================
// POSTS
// ===============================

func (f *fakeGateway) handleListPosts(w http.ResponseWriter, req *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.SkillPost, 0, len(f.postOrder))
	for _, id := range f.postOrder {
		out = append(out, f.posts[id])
	}
	respond(w, out)
}

func (f *fakeGateway) handleCreatePost(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseMultipartForm(8 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var form models.PostForm
	if err := json.Unmarshal([]byte(req.FormValue("post")), &form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	post := &models.SkillPost{
		ID:            f.id("p"),
		Title:         form.Title,
		Description:   form.Description,
		Author:        f.author(),
		LikedBy:       []string{},
		Category:      form.Category,
		Tags:          form.Tags,
		AllowComments: form.AllowComments,
		Visibility:    form.Visibility,
		CreatedAt:     time.Now().UTC(),
	}
	if _, header, err := req.FormFile("image"); err == nil {
		post.Image = "/uploads/" + header.Filename
	}
	f.posts[post.ID] = post
	f.postOrder = append(f.postOrder, post.ID)
	respond(w, post)
}

func (f *fakeGateway) handleUpdatePost(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	var form models.PostForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		http.NotFound(w, req)
		return
	}
	post.Title = form.Title
	post.Description = form.Description
	post.Category = form.Category
	post.Visibility = form.Visibility
	respond(w, post)
}

func (f *fakeGateway) handleDeletePost(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		http.NotFound(w, req)
		return
	}
	delete(f.posts, id)
	delete(f.comments, id)
	for i, pid := range f.postOrder {
		if pid == id {
			f.postOrder = append(f.postOrder[:i], f.postOrder[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeGateway) handleToggleLike(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		http.NotFound(w, req)
		return
	}
	found := false
	next := post.LikedBy[:0:0]
	for _, uid := range post.LikedBy {
		if uid == f.currentUser {
			found = true
			continue
		}
		next = append(next, uid)
	}
	if !found {
		next = append(next, f.currentUser)
	}
	post.LikedBy = next
	respond(w, &models.LikeResponse{LikedBy: post.LikedBy})
}

// ===============================
// COMMENTS
// ===============================

func (f *fakeGateway) handleListComments(w http.ResponseWriter, req *http.Request) {
	postID := chi.URLParam(req, "postID")
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.comments[postID]
	if list == nil {
		list = []*models.Comment{}
	}
	respond(w, list)
}

func (f *fakeGateway) handleAddComment(w http.ResponseWriter, req *http.Request) {
	postID := chi.URLParam(req, "postID")
	var form models.CommentForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	c := &models.Comment{
		ID:        f.id("c"),
		Content:   form.Content,
		Author:    f.author(),
		CreatedAt: time.Now().UTC(),
	}
	f.comments[postID] = append(f.comments[postID], c)
	respond(w, c)
}

func (f *fakeGateway) findComment(id string) (string, *models.Comment) {
	for postID, list := range f.comments {
		for _, c := range list {
			if c.ID == id {
				return postID, c
			}
		}
	}
	return "", nil
}

func (f *fakeGateway) handleUpdateComment(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	var form models.CommentForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	_, c := f.findComment(id)
	if c == nil {
		http.NotFound(w, req)
		return
	}
	if c.Author.Name != f.currentName {
		http.Error(w, "not the comment owner", http.StatusForbidden)
		return
	}
	c.Content = form.Content
	respond(w, c)
}

func (f *fakeGateway) handleDeleteComment(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	postID, c := f.findComment(id)
	if c == nil {
		http.NotFound(w, req)
		return
	}
	if c.Author.Name != f.currentName {
		http.Error(w, "not the comment owner", http.StatusForbidden)
		return
	}
	list := f.comments[postID]
	for i, cc := range list {
		if cc.ID == id {
			f.comments[postID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// ===============================
// PLANS
// ===============================

func (f *fakeGateway) handleListPlans(w http.ResponseWriter, req *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.LearningPlan, 0, len(f.planOrder))
	for _, id := range f.planOrder {
		out = append(out, f.plans[id])
	}
	respond(w, out)
}

func (f *fakeGateway) handleCreatePlan(w http.ResponseWriter, req *http.Request) {
	var form models.PlanForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	plan := &models.LearningPlan{
		ID:          f.id("pl"),
		Title:       form.Title,
		Description: form.Description,
		Author:      f.author(),
		Duration:    form.Duration,
		Difficulty:  form.Difficulty,
		Topics:      form.Topics,
		CreatedAt:   time.Now().UTC(),
	}
	f.plans[plan.ID] = plan
	f.planOrder = append(f.planOrder, plan.ID)
	respond(w, plan)
}

func (f *fakeGateway) handleUpdatePlan(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	var form models.PlanForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	plan, ok := f.plans[id]
	if !ok {
		http.NotFound(w, req)
		return
	}
	plan.Title = form.Title
	plan.Description = form.Description
	plan.Duration = form.Duration
	plan.Difficulty = form.Difficulty
	respond(w, plan)
}

func (f *fakeGateway) handleDeletePlan(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.plans[id]; !ok {
		http.NotFound(w, req)
		return
	}
	delete(f.plans, id)
	for i, pid := range f.planOrder {
		if pid == id {
			f.planOrder = append(f.planOrder[:i], f.planOrder[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// ===============================
// PROGRESS
// ===============================

func (f *fakeGateway) handleListProgress(w http.ResponseWriter, req *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.LearningProgress, 0, len(f.progOrder))
	for _, id := range f.progOrder {
		out = append(out, f.progress[id])
	}
	respond(w, out)
}

func (f *fakeGateway) handleCreateProgress(w http.ResponseWriter, req *http.Request) {
	var form models.ProgressForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p := &models.LearningProgress{
		ID:              f.id("pr"),
		Title:           form.Title,
		Description:     form.Description,
		Author:          f.author(),
		ProgressPercent: form.ProgressPercent,
		Template:        form.Template,
		Milestone:       form.Milestone,
		EvidenceLink:    form.EvidenceLink,
		CreatedAt:       time.Now().UTC(),
	}
	f.progress[p.ID] = p
	f.progOrder = append(f.progOrder, p.ID)
	respond(w, p)
}

func (f *fakeGateway) handleUpdateProgress(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	var form models.ProgressForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.progress[id]
	if !ok {
		http.NotFound(w, req)
		return
	}
	p.Title = form.Title
	p.Description = form.Description
	p.ProgressPercent = form.ProgressPercent
	p.Milestone = form.Milestone
	p.EvidenceLink = form.EvidenceLink
	respond(w, p)
}

func (f *fakeGateway) handleDeleteProgress(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.progress[id]; !ok {
		http.NotFound(w, req)
		return
	}
	delete(f.progress, id)
	for i, pid := range f.progOrder {
		if pid == id {
			f.progOrder = append(f.progOrder[:i], f.progOrder[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// ===============================
// PROFILES
// ===============================

func (f *fakeGateway) handleGetProfile(w http.ResponseWriter, req *http.Request) {
	email := chi.URLParam(req, "email")
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[email]
	if !ok {
		http.NotFound(w, req)
		return
	}
	respond(w, profile)
}

func (f *fakeGateway) handleUpdateProfile(w http.ResponseWriter, req *http.Request) {
	email := chi.URLParam(req, "email")
	var profile models.UserProfile
	if err := json.NewDecoder(req.Body).Decode(&profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[email] = &profile
	respond(w, &profile)
}

func (f *fakeGateway) setFailAll(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAll = fail
}

func (f *fakeGateway) setCurrentUser(userID, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentUser = userID
	f.currentName = name
}
