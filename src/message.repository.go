//go:generate go run go.uber.org/mock/mockgen -source=message.repository.go -destination=mock_message_repository_test.go -package=src
package src

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type MessageRepository interface {
	Save(m *Message) error
	FindByID(id uuid.UUID) (*Message, error)
	Delete(m *Message) error
	List(p PageRequest) (*Page, error)
	UpdateContent(m *Message) error
	IncrementLikes(id uuid.UUID) error
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Save inserts the message, or updates every column when the id already exists.
// Timestamps are written as set on m, gorm must not stamp updated_at itself.
func (r *GormMessageRepository) Save(m *Message) error {
	if err := r.db.Set("gorm:update_column", true).Save(m).Error; err != nil {
		return errors.Wrap(err, "error saving message")
	}
	return nil
}

func (r *GormMessageRepository) FindByID(id uuid.UUID) (*Message, error) {
	m := Message{}
	err := r.db.Where("id = ?", id.String()).First(&m).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "error finding message")
	}
	return &m, nil
}

func (r *GormMessageRepository) Delete(m *Message) error {
	res := r.db.Where("id = ?", m.ID.String()).Delete(&Message{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "error deleting message")
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// List returns a page of messages, newest first
func (r *GormMessageRepository) List(p PageRequest) (*Page, error) {
	var total int64
	if err := r.db.Model(&Message{}).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "error counting messages")
	}
	if p.Beyond(total) {
		return NewPage(nil, p, total), nil
	}

	messages := []Message{}
	err := r.db.
		Order("created_at desc").
		Order("id desc").
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "error listing messages")
	}

	return NewPage(messages, p, total), nil
}

// UpdateContent writes content and updated_at only, like_count is left to IncrementLikes.
// RowsAffected is not checked: mysql reports 0 for a row whose values did not change.
func (r *GormMessageRepository) UpdateContent(m *Message) error {
	err := r.db.Model(&Message{}).
		Where("id = ?", m.ID.String()).
		UpdateColumns(map[string]interface{}{
			"content":    m.Content,
			"updated_at": m.UpdatedAt,
		}).Error
	if err != nil {
		return errors.Wrap(err, "error updating message")
	}
	return nil
}

// IncrementLikes adds one like in a single statement so concurrent likes are never lost
func (r *GormMessageRepository) IncrementLikes(id uuid.UUID) error {
	res := r.db.Model(&Message{}).
		Where("id = ?", id.String()).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
	if res.Error != nil {
		return errors.Wrap(res.Error, "error incrementing likes")
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
