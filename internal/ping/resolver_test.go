package ping

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeMemberSource serves canned member pages keyed by offset.
type fakeMemberSource struct {
	pages     map[int][]Member
	pageErr   map[int]error
	admins    []Member
	adminsErr error
	offsets   []int
}

func (f *fakeMemberSource) ListMembers(_ context.Context, _ int64, offset, _ int) ([]Member, error) {
	f.offsets = append(f.offsets, offset)
	if err, ok := f.pageErr[offset]; ok {
		return nil, err
	}
	return f.pages[offset], nil
}

func (f *fakeMemberSource) ListAdministrators(_ context.Context, _ int64) ([]Member, error) {
	return f.admins, f.adminsErr
}

type fakeDirectory struct {
	recipients []Recipient
	err        error
}

func (f *fakeDirectory) ListByChat(int64) ([]Recipient, error) {
	return f.recipients, f.err
}

func TestResolveAllMembersPagination(t *testing.T) {
	src := &fakeMemberSource{pages: map[int][]Member{
		0:   {{ID: 1}, {ID: 2}},
		200: {{ID: 3}},
	}}

	got, err := Resolve(context.Background(), src, nil, SourceAll, 100, 200)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d recipients, want 3", len(got))
	}
	for i, want := range []int64{1, 2, 3} {
		if got[i].ID != want {
			t.Errorf("recipient %d has ID %d, want %d", i, got[i].ID, want)
		}
	}

	// Listing stops after the first empty page.
	wantOffsets := []int{0, 200, 400}
	if len(src.offsets) != len(wantOffsets) {
		t.Fatalf("offsets = %v, want %v", src.offsets, wantOffsets)
	}
	for i, want := range wantOffsets {
		if src.offsets[i] != want {
			t.Errorf("offset %d = %d, want %d", i, src.offsets[i], want)
		}
	}
}

func TestResolveAllMembersSkipsBots(t *testing.T) {
	src := &fakeMemberSource{pages: map[int][]Member{
		0: {{ID: 1}, {ID: 2, IsBot: true}, {ID: 3}},
	}}

	got, err := Resolve(context.Background(), src, nil, SourceAll, 100, 200)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d recipients, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("recipients = %v, want IDs 1 and 3", got)
	}
}

func TestResolveAllMembersPageErrorAborts(t *testing.T) {
	src := &fakeMemberSource{
		pages:   map[int][]Member{0: {{ID: 1}}},
		pageErr: map[int]error{200: errors.New("chat not found")},
	}

	got, err := Resolve(context.Background(), src, nil, SourceAll, 100, 200)
	if err == nil {
		t.Fatal("expected error from failing page")
	}
	if !strings.Contains(err.Error(), "offset 200") {
		t.Errorf("err = %v, want failing offset in message", err)
	}
	if got != nil {
		t.Errorf("partial accumulation returned: %v, want nil", got)
	}
}

func TestResolveAdministrators(t *testing.T) {
	src := &fakeMemberSource{admins: []Member{
		{ID: 1, Username: "owner"},
		{ID: 2, IsBot: true},
		{ID: 3, FirstName: "Mod"},
	}}

	got, err := Resolve(context.Background(), src, nil, SourceAdministrators, 100, 200)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d recipients, want 2 (bot excluded)", len(got))
	}
}

func TestResolveAdministratorsError(t *testing.T) {
	src := &fakeMemberSource{adminsErr: errors.New("not enough rights")}

	if _, err := Resolve(context.Background(), src, nil, SourceAdministrators, 100, 200); err == nil {
		t.Fatal("expected error")
	}
}

func TestResolveDirectory(t *testing.T) {
	dir := &fakeDirectory{recipients: []Recipient{{ID: 7, Username: "seen"}}}

	got, err := Resolve(context.Background(), nil, dir, SourceDirectory, 100, 200)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 {
		t.Errorf("recipients = %v, want one with ID 7", got)
	}
}

func TestResolveDirectoryUnavailable(t *testing.T) {
	if _, err := Resolve(context.Background(), nil, nil, SourceDirectory, 100, 200); err == nil {
		t.Fatal("expected error when directory is nil")
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		source Source
		want   string
	}{
		{SourceAll, "all-members"},
		{SourceAdministrators, "administrators"},
		{SourceDirectory, "directory"},
		{Source(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.source, got, tt.want)
		}
	}
}
