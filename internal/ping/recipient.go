package ping

import "fmt"

// Recipient is one target of a mention broadcast. Recipients are derived
// fresh per invocation from a live query or the directory and never
// persisted themselves.
type Recipient struct {
	ID        int64
	Username  string
	FirstName string
}

// Mention renders the recipient as a clickable HTML reference. The deep link
// always targets the numeric ID; the visible label prefers the @username,
// then the first name, then the placeholder.
func (r Recipient) Mention(placeholder string) string {
	label := placeholder
	if r.Username != "" {
		label = "@" + r.Username
	} else if r.FirstName != "" {
		label = r.FirstName
	}
	return fmt.Sprintf("<a href=\"tg://user?id=%d\">%s</a>", r.ID, label)
}
