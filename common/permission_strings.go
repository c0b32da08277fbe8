package common

import "github.com/diamondburned/arikawa/v3/discord"

// Perm is a single permission
type Perm struct {
	Permission discord.Permissions
	Name       string
}

// PermissionModerateMembers is missing from arikawa
const PermissionModerateMembers discord.Permissions = 1 << 40

// KeyPerms are the permissions shown in user info.
var KeyPerms = []Perm{
	{discord.PermissionAdministrator, "Administrator"},
	{discord.PermissionManageGuild, "Manage Server"},
	{discord.PermissionManageRoles, "Manage Roles"},
	{discord.PermissionManageChannels, "Manage Channels"},
	{discord.PermissionManageMessages, "Manage Messages"},
	{discord.PermissionManageWebhooks, "Manage Webhooks"},
	{discord.PermissionManageNicknames, "Manage Nicknames"},
	{discord.PermissionBanMembers, "Ban Members"},
	{discord.PermissionKickMembers, "Kick Members"},
	{PermissionModerateMembers, "Timeout Members"},
	{discord.PermissionMentionEveryone, "Mention Everyone"},
	{discord.PermissionViewAuditLog, "View Audit Log"},
	{discord.PermissionMuteMembers, "Voice Mute Members"},
	{discord.PermissionDeafenMembers, "Voice Deafen Members"},
	{discord.PermissionMoveMembers, "Voice Move Members"},
}

// PermStrings names the key permissions in p.
// Administrator implies everything else, so it's returned on its own.
func PermStrings(p discord.Permissions) []string {
	if p.Has(discord.PermissionAdministrator) {
		return []string{"Administrator"}
	}

	var out []string
	for _, perm := range KeyPerms {
		if p&perm.Permission == perm.Permission {
			out = append(out, perm.Name)
		}
	}
	return out
}
