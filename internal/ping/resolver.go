package ping

import (
	"context"
	"fmt"
)

// Source selects where a broadcast's recipients come from.
type Source int

const (
	// SourceAll pages through the live member listing.
	SourceAll Source = iota
	// SourceAdministrators queries the administrator list in one call.
	SourceAdministrators
	// SourceDirectory reads previously observed members from storage.
	SourceDirectory
)

func (s Source) String() string {
	switch s {
	case SourceAll:
		return "all-members"
	case SourceAdministrators:
		return "administrators"
	case SourceDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Member is one row of a live member listing.
type Member struct {
	ID        int64
	Username  string
	FirstName string
	IsBot     bool
}

// MemberSource is the live platform query surface.
type MemberSource interface {
	// ListMembers returns one page of members; an empty page ends the listing.
	ListMembers(ctx context.Context, chatID int64, offset, limit int) ([]Member, error)
	ListAdministrators(ctx context.Context, chatID int64) ([]Member, error)
}

// Directory reads stored member sightings for a chat.
type Directory interface {
	ListByChat(chatID int64) ([]Recipient, error)
}

// Resolve produces the ordered recipient set for a broadcast. Any query
// failure aborts and discards the partial accumulation.
func Resolve(ctx context.Context, src MemberSource, dir Directory, mode Source, chatID int64, pageSize int) ([]Recipient, error) {
	switch mode {
	case SourceAll:
		return resolveAllMembers(ctx, src, chatID, pageSize)
	case SourceAdministrators:
		members, err := src.ListAdministrators(ctx, chatID)
		if err != nil {
			return nil, fmt.Errorf("listing administrators: %w", err)
		}
		return fromMembers(members), nil
	case SourceDirectory:
		if dir == nil {
			return nil, fmt.Errorf("member directory is not available")
		}
		recipients, err := dir.ListByChat(chatID)
		if err != nil {
			return nil, fmt.Errorf("reading member directory: %w", err)
		}
		return recipients, nil
	default:
		return nil, fmt.Errorf("unknown recipient source %d", mode)
	}
}

func resolveAllMembers(ctx context.Context, src MemberSource, chatID int64, pageSize int) ([]Recipient, error) {
	if pageSize <= 0 {
		pageSize = 200
	}
	var recipients []Recipient
	for offset := 0; ; offset += pageSize {
		page, err := src.ListMembers(ctx, chatID, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("listing members at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}
		recipients = append(recipients, fromMembers(page)...)
	}
	return recipients, nil
}

// fromMembers converts listing rows to recipients, dropping automated accounts.
func fromMembers(members []Member) []Recipient {
	recipients := make([]Recipient, 0, len(members))
	for _, m := range members {
		if m.IsBot {
			continue
		}
		recipients = append(recipients, Recipient{ID: m.ID, Username: m.Username, FirstName: m.FirstName})
	}
	return recipients
}
