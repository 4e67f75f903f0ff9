package src

import (
	"time"

	"github.com/google/uuid"
)

type MessageService struct {
	repository MessageRepository
	now        func() time.Time
	newID      func() uuid.UUID
}

func NewMessageService(repository MessageRepository) *MessageService {
	return &MessageService{
		repository: repository,
		now:        now,
		newID:      uuid.New,
	}
}

// microsecond precision is the finest every supported dialect stores
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *MessageService) Create(req MessageRequest) (*Message, error) {
	timestamp := s.now()
	m := &Message{
		ID:        s.newID(),
		Author:    req.Author,
		Content:   req.Content,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
		LikeCount: 0,
	}
	if err := s.repository.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MessageService) Get(id uuid.UUID) (*Message, error) {
	return s.repository.FindByID(id)
}

// Update replaces the content of an existing message.
// The request must carry the same id as the target, author and like count are kept.
func (s *MessageService) Update(id uuid.UUID, req MessageRequest) (*Message, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.ID == nil || *req.ID != m.ID {
		return nil, ErrMessageIDMismatch
	}

	m.Content = req.Content
	m.UpdatedAt = s.now()
	if m.UpdatedAt.Before(m.CreatedAt) {
		m.UpdatedAt = m.CreatedAt
	}
	if err := s.repository.UpdateContent(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MessageService) Like(id uuid.UUID) (*Message, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.repository.IncrementLikes(id); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *MessageService) Delete(id uuid.UUID) (bool, error) {
	m, err := s.Get(id)
	if err != nil {
		return false, err
	}
	if err := s.repository.Delete(m); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MessageService) List(p PageRequest) (*Page, error) {
	return s.repository.List(p)
}
