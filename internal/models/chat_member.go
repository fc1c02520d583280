package models

import "time"

// ChatMember is one observed (user, chat) sighting. Rows are written with
// insert-if-absent semantics: the first observation wins and later sightings
// of the same pair are no-ops, so Username/FirstName hold first-seen values.
type ChatMember struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	UserID    int64  `gorm:"index:idx_user_chat,unique;not null"`
	ChatID    int64  `gorm:"index:idx_user_chat,unique;not null"`
	Username  string `gorm:"size:64"`
	FirstName string `gorm:"size:128"`
}

// DisplayLabel returns the best available human-readable label.
func (m *ChatMember) DisplayLabel() string {
	if m.Username != "" {
		return "@" + m.Username
	}
	return m.FirstName
}
