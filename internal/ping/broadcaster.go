package ping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tg-pingbot/internal/logger"
)

const leadIn = "Ping! "

// Sender posts one HTML-formatted message with link previews disabled.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// Broadcaster partitions recipients into consecutive chunks and delivers one
// message per chunk, pacing sends through a token bucket sized to the
// configured delay. Telegram's flood limit is global per bot account, so
// chunks are never sent in parallel.
type Broadcaster struct {
	sender      Sender
	chunkSize   int
	delay       time.Duration
	placeholder string
}

func NewBroadcaster(sender Sender, chunkSize int, delay time.Duration, placeholder string) *Broadcaster {
	if chunkSize <= 0 {
		chunkSize = 30
	}
	if placeholder == "" {
		placeholder = "User"
	}
	return &Broadcaster{
		sender:      sender,
		chunkSize:   chunkSize,
		delay:       delay,
		placeholder: placeholder,
	}
}

// Run delivers the broadcast and returns how many recipients were part of
// successfully sent chunks. Forbidden chunks are skipped and logged; a rate
// limit or any other send failure aborts the remaining chunks.
func (b *Broadcaster) Run(ctx context.Context, chatID int64, recipients []Recipient) (int, error) {
	// Wait suspends only this goroutine and honors context cancellation.
	// Burst 1 lets the first chunk go out immediately.
	limiter := rate.NewLimiter(rate.Every(b.delay), 1)

	sent := 0
	for start := 0; start < len(recipients); start += b.chunkSize {
		end := start + b.chunkSize
		if end > len(recipients) {
			end = len(recipients)
		}
		chunk := recipients[start:end]

		if err := limiter.Wait(ctx); err != nil {
			return sent, err
		}

		err := b.sender.Send(ctx, chatID, b.renderChunk(chunk))
		switch ClassifySend(err) {
		case SendOK:
			sent += len(chunk)
		case SendForbidden:
			logger.Warningf("Chunk of %d skipped in chat %d: %v", len(chunk), chatID, err)
		case SendRateLimited:
			logger.Warningf("Broadcast aborted in chat %d after %d mentions: %v", chatID, sent, err)
			return sent, ErrRateLimited
		default:
			return sent, fmt.Errorf("sending mentions: %w", err)
		}
	}
	return sent, nil
}

func (b *Broadcaster) renderChunk(chunk []Recipient) string {
	mentions := make([]string, 0, len(chunk))
	for _, r := range chunk {
		mentions = append(mentions, r.Mention(b.placeholder))
	}
	return leadIn + strings.Join(mentions, " ")
}
