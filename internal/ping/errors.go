package ping

import (
	"errors"
	"net/http"

	"github.com/mymmrac/telego/telegoapi"
)

// SendOutcome classifies a delivery result into the closed set the
// broadcaster acts on. Nothing outside this package inspects platform
// error types.
type SendOutcome int

const (
	SendOK SendOutcome = iota
	// SendForbidden: the chat or a recipient blocked the bot; the chunk is
	// skipped and the broadcast continues.
	SendForbidden
	// SendRateLimited: Telegram asked the bot to back off; the remaining
	// chunks are dropped.
	SendRateLimited
	// SendFailed: any other delivery error; the remaining chunks are dropped
	// and the error text is surfaced.
	SendFailed
)

// ErrRateLimited is returned by Broadcaster.Run when Telegram rejects a
// chunk with 429 Too Many Requests.
var ErrRateLimited = errors.New("telegram rate limit hit")

// ClassifySend maps a send error onto the outcome set.
func ClassifySend(err error) SendOutcome {
	if err == nil {
		return SendOK
	}
	var apiErr *telegoapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode {
		case http.StatusForbidden:
			return SendForbidden
		case http.StatusTooManyRequests:
			return SendRateLimited
		}
	}
	return SendFailed
}
