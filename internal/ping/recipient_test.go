package ping

import "testing"

func TestRecipientMention(t *testing.T) {
	tests := []struct {
		name        string
		recipient   Recipient
		placeholder string
		want        string
	}{
		{
			name:        "username preferred",
			recipient:   Recipient{ID: 1, Username: "alice", FirstName: "Alice"},
			placeholder: "User",
			want:        `<a href="tg://user?id=1">@alice</a>`,
		},
		{
			name:        "first name fallback",
			recipient:   Recipient{ID: 2, FirstName: "Bob"},
			placeholder: "User",
			want:        `<a href="tg://user?id=2">Bob</a>`,
		},
		{
			name:        "placeholder fallback",
			recipient:   Recipient{ID: 3},
			placeholder: "User",
			want:        `<a href="tg://user?id=3">User</a>`,
		},
		{
			name:        "admin placeholder",
			recipient:   Recipient{ID: 4},
			placeholder: "Admin",
			want:        `<a href="tg://user?id=4">Admin</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.recipient.Mention(tt.placeholder)
			if got != tt.want {
				t.Errorf("Mention() = %q, want %q", got, tt.want)
			}
		})
	}
}
