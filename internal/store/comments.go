package store

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"skillhub/internal/models"
)

// CommentStore maps an entity id to its ordered comment list, fetched lazily
// per entity. It implements Companion so the owning collection clears a
// comment list in the same step that deletes the parent entity; an id that
// is later reused starts with an empty list, not the old one.
type CommentStore struct {
	mu       sync.RWMutex
	comments map[string][]*models.Comment
	logger   *zap.Logger
}

// NewCommentStore creates an empty comment store.
func NewCommentStore(logger *zap.Logger) *CommentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentStore{
		comments: make(map[string][]*models.Comment),
		logger:   logger,
	}
}

// LoadFor sets or overwrites the comment list for one entity.
func (s *CommentStore) LoadFor(entityID string, comments []*models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*models.Comment, len(comments))
	copy(list, comments)
	s.comments[entityID] = list
}

// AppendFor adds one comment at the end, so comments render oldest-first as
// returned plus newest-last for additions made in-session.
func (s *CommentStore) AppendFor(entityID string, comment *models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments[entityID] = append(s.comments[entityID], comment)
}

// ReplaceIn substitutes an edited comment in place. A missing comment id is
// an error, never a silent insert.
func (s *CommentStore) ReplaceIn(entityID, commentID string, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.comments[entityID]
	for i, c := range list {
		if c.ID == commentID {
			list[i] = comment
			return nil
		}
	}
	s.logger.Error("replace of unknown comment",
		zap.String("entity_id", entityID),
		zap.String("comment_id", commentID),
	)
	return fmt.Errorf("store: comment %q not found under entity %q", commentID, entityID)
}

// RemoveFrom deletes one comment from an entity's list.
func (s *CommentStore) RemoveFrom(entityID, commentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.comments[entityID]
	for i, c := range list {
		if c.ID == commentID {
			s.comments[entityID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// ClearFor drops an entity's comment list entirely, so no orphaned list is
// retained after the parent entity is deleted.
func (s *CommentStore) ClearFor(entityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.comments, entityID)
}

// For returns a copy of the ordered comment list for one entity.
func (s *CommentStore) For(entityID string) []*models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.comments[entityID]
	out := make([]*models.Comment, len(list))
	copy(out, list)
	return out
}

// CountFor returns the number of comments held for one entity.
func (s *CommentStore) CountFor(entityID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comments[entityID])
}

// Has reports whether a comment list has been loaded for the entity.
func (s *CommentStore) Has(entityID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.comments[entityID]
	return ok
}

// InitEntity implements Companion. Lists load lazily, so a new entity just
// has no entry yet.
func (s *CommentStore) InitEntity(id string) {}

// DropEntity implements Companion.
func (s *CommentStore) DropEntity(id string) {
	s.ClearFor(id)
}
