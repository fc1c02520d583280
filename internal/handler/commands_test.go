package handler

import (
	"testing"
	"time"

	"github.com/mymmrac/telego"
)

func TestCommandName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/ping", "ping"},
		{"/ping@SomePingBot", "ping"},
		{"/ping extra args", "ping"},
		{"/pingadmins@SomePingBot now", "pingadmins"},
		{"/status", "status"},
		{"plain text", "plain"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := commandName(tt.text); got != tt.want {
			t.Errorf("commandName(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestIsStale(t *testing.T) {
	now := time.Unix(10_000, 0)
	maxAge := 300 * time.Second

	tests := []struct {
		name string
		date int64
		want bool
	}{
		{"fresh", 10_000 - 10, false},
		{"exactly at threshold", 10_000 - 300, false},
		{"one second past", 10_000 - 301, true},
		{"very old", 10_000 - 86_400, true},
		{"future date", 10_000 + 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isStale(tt.date, now, maxAge); got != tt.want {
				t.Errorf("isStale(%d) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsGroupChat(t *testing.T) {
	tests := []struct {
		chatType string
		want     bool
	}{
		{telego.ChatTypeGroup, true},
		{telego.ChatTypeSupergroup, true},
		{telego.ChatTypePrivate, false},
		{telego.ChatTypeChannel, false},
	}

	for _, tt := range tests {
		if got := isGroupChat(tt.chatType); got != tt.want {
			t.Errorf("isGroupChat(%q) = %v, want %v", tt.chatType, got, tt.want)
		}
	}
}
