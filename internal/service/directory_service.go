package service

import (
	"fmt"

	"github.com/mymmrac/telego"

	"tg-pingbot/internal/logger"
	"tg-pingbot/internal/models"
	"tg-pingbot/internal/ping"
)

// RecordSighting stores a (user, chat) pair on first observation. Later
// sightings of the same pair are no-ops, so the directory keeps the
// first-seen username and display name.
func RecordSighting(chatID int64, user telego.User) {
	if memberRepository == nil {
		return
	}
	member := &models.ChatMember{
		UserID:    user.ID,
		ChatID:    chatID,
		Username:  user.Username,
		FirstName: user.FirstName,
	}
	if err := memberRepository.UpsertIfAbsent(member); err != nil {
		logger.Warningf("Error recording member sighting for user %d in chat %d: %v", user.ID, chatID, err)
		return
	}
	logger.Debugf("Observed user %d in chat %d", user.ID, chatID)
}

// directoryReader adapts the member repository to the broadcast engine.
type directoryReader struct{}

func (directoryReader) ListByChat(chatID int64) ([]ping.Recipient, error) {
	if memberRepository == nil {
		return nil, fmt.Errorf("member directory is disabled")
	}
	rows, err := memberRepository.ListByChat(chatID)
	if err != nil {
		return nil, err
	}
	recipients := make([]ping.Recipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, ping.Recipient{
			ID:        row.UserID,
			Username:  row.Username,
			FirstName: row.FirstName,
		})
	}
	return recipients, nil
}

// Directory returns the stored-sightings reader, or nil when the database
// is disabled.
func Directory() ping.Directory {
	if memberRepository == nil {
		return nil
	}
	return directoryReader{}
}
