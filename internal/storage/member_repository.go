package storage

import (
	"tg-pingbot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberRepository handles database operations for ChatMember sightings
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// MigrateTable ensures the ChatMember table exists with the right schema
func (r *MemberRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.ChatMember{})
}

// UpsertIfAbsent records a sighting unless the (user, chat) pair is already
// stored. The conflict clause makes duplicate observations no-ops, so
// concurrent inserts of the same pair serialize in the store and the
// first-seen names are retained.
func (r *MemberRepository) UpsertIfAbsent(member *models.ChatMember) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "chat_id"}},
		DoNothing: true,
	}).Create(member).Error
}

// ListByChat returns all stored sightings for a chat in first-seen order.
func (r *MemberRepository) ListByChat(chatID int64) ([]models.ChatMember, error) {
	var members []models.ChatMember
	result := r.db.Where("chat_id = ?", chatID).Order("id ASC").Find(&members)
	return members, result.Error
}

// CountByChat returns the number of stored sightings for a chat.
func (r *MemberRepository) CountByChat(chatID int64) (int64, error) {
	var count int64
	result := r.db.Model(&models.ChatMember{}).Where("chat_id = ?", chatID).Count(&count)
	return count, result.Error
}
