package handler

import (
	"github.com/mymmrac/telego"

	"tg-pingbot/internal/service"
)

// handleIncomingMessage records the sender of a group message in the member
// directory. This is the only way the bot learns members on platforms where
// the full listing is unavailable.
func handleIncomingMessage(message telego.Message) {
	if message.From == nil || message.From.IsBot {
		return
	}
	if !isGroupChat(message.Chat.Type) {
		return
	}
	if globalConfig.Bot.GroupID != -1 && message.Chat.ID != globalConfig.Bot.GroupID {
		return
	}

	incrementCounter(&totalMessagesObserved)
	service.RecordSighting(message.Chat.ID, *message.From)
}
