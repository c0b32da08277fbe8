package moderation

import (
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/google/go-cmp/cmp"
)

func fieldNames(e discord.Embed) (names []string) {
	for _, f := range e.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestTargets(t *testing.T) {
	author := discord.User{ID: 1, Username: "mod"}
	self := discord.UserID(2)

	m := discord.Message{
		Author: author,
		Mentions: []discord.GuildUser{
			{User: discord.User{ID: 3}},
			{User: author},
			{User: discord.User{ID: self}},
			{User: discord.User{ID: 4}},
			{User: discord.User{ID: 3}},
		},
	}

	got := targets(m, self)
	if diff := cmp.Diff([]discord.UserID{3, 4}, got); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}

	if got := targets(discord.Message{Author: author}, self); len(got) != 0 {
		t.Errorf("targets() = %v, want none", got)
	}
}

func TestAuditReason(t *testing.T) {
	mod := discord.User{ID: 10, Username: "mod", Discriminator: "0001"}
	if got := auditReason("Banned", mod); got != "Banned by mod#0001 (10)" {
		t.Errorf("auditReason() = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	for _, s := range []string{"2", "50", "100"} {
		if _, err := parseAmount(s); err != nil {
			t.Errorf("parseAmount(%q) returned error: %v", s, err)
		}
	}
	for _, s := range []string{"1", "101", "-5", "ten", ""} {
		if n, err := parseAmount(s); err == nil {
			t.Errorf("parseAmount(%q) = %v, want error", s, n)
		}
	}
}

func TestDeletable(t *testing.T) {
	now := time.Now()
	recent := discord.MessageID(discord.NewSnowflake(now.Add(-time.Hour)))
	old := discord.MessageID(discord.NewSnowflake(now.Add(-15 * 24 * time.Hour)))

	got := deletable([]discord.Message{{ID: recent}, {ID: old}}, now)
	if diff := cmp.Diff([]discord.MessageID{recent}, got); diff != "" {
		t.Errorf("deletable mismatch (-want +got):\n%s", diff)
	}
}

func TestUserEmbedNonMember(t *testing.T) {
	u := discord.User{ID: 100, Username: "someone", Discriminator: "1234"}

	e := userEmbed(u, nil, 0)
	if e.Title != "someone#1234" {
		t.Errorf("title = %q", e.Title)
	}
	if diff := cmp.Diff([]string{"Bot", "Created at", "Member"}, fieldNames(e)); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestUserEmbedMember(t *testing.T) {
	u := discord.User{ID: 100, Username: "someone", Discriminator: "1234"}
	m := &discord.Member{
		User:    u,
		Nick:    "nick",
		RoleIDs: []discord.RoleID{5, 6},
		Joined:  discord.NewTimestamp(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	e := userEmbed(u, m, discord.PermissionKickMembers|discord.PermissionBanMembers)

	want := []string{"Bot", "Created at", "Nickname", "Member since", "Roles (2)", "Key permissions"}
	if diff := cmp.Diff(want, fieldNames(e)); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if got := e.Fields[4].Value; got != "<@&5> <@&6>" {
		t.Errorf("roles = %q", got)
	}
	if got := e.Fields[5].Value; got != "Ban Members, Kick Members" {
		t.Errorf("permissions = %q", got)
	}
}

func TestGuildEmbed(t *testing.T) {
	g := discord.Guild{
		ID:                 200,
		Name:               "Server",
		OwnerID:            1,
		ApproximateMembers: 1500,
		Roles:              make([]discord.Role, 3),
	}

	e := guildEmbed(g)
	if e.Title != "Server" {
		t.Errorf("title = %q", e.Title)
	}
	if e.Thumbnail != nil {
		t.Errorf("guild without an icon has a thumbnail")
	}
	if got := e.Fields[2].Value; got != "1,500" {
		t.Errorf("members = %q", got)
	}
	if got := e.Fields[3].Value; got != "3" {
		t.Errorf("roles = %q", got)
	}
}
