package bot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoapi"

	"tg-pingbot/internal/ping"
)

// PlatformClient adapts telego and the raw Bot API to the interfaces the
// broadcast engine consumes.
type PlatformClient struct {
	bot     *telego.Bot
	token   string
	apiBase string
	client  *http.Client
}

func NewPlatformClient(bot *telego.Bot, token string) *PlatformClient {
	return &PlatformClient{
		bot:     bot,
		token:   token,
		apiBase: "https://api.telegram.org",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts one chunk message with HTML mentions and no link preview.
func (c *PlatformClient) Send(ctx context.Context, chatID int64, text string) error {
	_, err := c.bot.SendMessage(ctx, &telego.SendMessageParams{
		ChatID:             telego.ChatID{ID: chatID},
		Text:               text,
		ParseMode:          "HTML",
		LinkPreviewOptions: &telego.LinkPreviewOptions{IsDisabled: true},
	})
	return err
}

// ListAdministrators queries the full administrator list in one call.
func (c *PlatformClient) ListAdministrators(ctx context.Context, chatID int64) ([]ping.Member, error) {
	admins, err := c.bot.GetChatAdministrators(ctx, &telego.GetChatAdministratorsParams{
		ChatID: telego.ChatID{ID: chatID},
	})
	if err != nil {
		return nil, err
	}

	members := make([]ping.Member, 0, len(admins))
	for _, admin := range admins {
		user := admin.MemberUser()
		members = append(members, ping.Member{
			ID:        user.ID,
			Username:  user.Username,
			FirstName: user.FirstName,
			IsBot:     user.IsBot,
		})
	}
	return members, nil
}

// ListMembers fetches one page of the chat member listing. telego has no
// binding for this endpoint, so the call goes straight to the Bot API.
func (c *PlatformClient) ListMembers(ctx context.Context, chatID int64, offset, limit int) ([]ping.Member, error) {
	query := url.Values{}
	query.Set("chat_id", strconv.FormatInt(chatID, 10))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	apiURL := fmt.Sprintf("%s/bot%s/getChatMembers?%s", c.apiBase, c.token, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling getChatMembers: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
		ErrorCode   int    `json:"error_code"`
		Result      []struct {
			Status string      `json:"status"`
			User   telego.User `json:"user"`
		} `json:"result"`
	}
	if err := decodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("decoding getChatMembers response: %w", err)
	}
	if !out.OK {
		return nil, fmt.Errorf("getChatMembers: %w", &telegoapi.Error{
			Description: out.Description,
			ErrorCode:   out.ErrorCode,
		})
	}

	members := make([]ping.Member, 0, len(out.Result))
	for _, row := range out.Result {
		members = append(members, ping.Member{
			ID:        row.User.ID,
			Username:  row.User.Username,
			FirstName: row.User.FirstName,
			IsBot:     row.User.IsBot,
		})
	}
	return members, nil
}
