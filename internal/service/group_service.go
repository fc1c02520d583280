package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mymmrac/telego"

	"tg-pingbot/internal/logger"
	"tg-pingbot/internal/models"
)

// GetGroupInfo gets group display info from cache, fetching it from Telegram
// on first sight of the chat.
func GetGroupInfo(ctx context.Context, bot *telego.Bot, chatID int64) *models.GroupInfo {
	groupInfo := groupInfoManager.GetGroupInfo(chatID)
	if groupInfo != nil {
		return groupInfo
	}

	groupInfo = &models.GroupInfo{GroupID: chatID}
	groupInfo.GroupName, groupInfo.GroupLink = GetGroupName(ctx, bot, chatID)
	groupInfoManager.AddGroupInfo(groupInfo)
	return groupInfo
}

// GetGroupName fetches a chat's title and t.me link.
func GetGroupName(ctx context.Context, bot *telego.Bot, chatID int64) (string, string) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	chatInfo, err := bot.GetChat(ctx, &telego.GetChatParams{
		ChatID: telego.ChatID{ID: chatID},
	})
	if err != nil {
		logger.Warningf("Error getting chat info: %v", err)
		return "", ""
	}

	var groupLink string
	if chatInfo.Username != "" {
		groupLink = fmt.Sprintf("https://t.me/%s", chatInfo.Username)
	} else {
		groupIDForLink := chatID
		if groupIDForLink < -1000000000000 {
			// Telegram requires removing the -100 prefix from supergroup IDs for links
			groupIDForLink = -groupIDForLink - 1000000000000
		}
		groupLink = fmt.Sprintf("https://t.me/c/%d", groupIDForLink)
	}

	return chatInfo.Title, groupLink
}
