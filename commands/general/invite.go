package general

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

const invitePerms = discord.PermissionViewChannel |
	discord.PermissionReadMessageHistory |
	discord.PermissionSendMessages |
	discord.PermissionEmbedLinks |
	discord.PermissionAttachFiles |
	discord.PermissionManageMessages |
	discord.PermissionKickMembers |
	discord.PermissionBanMembers

func inviteURL(id discord.UserID) string {
	return fmt.Sprintf("https://discord.com/api/oauth2/authorize?client_id=%v&permissions=%v&scope=bot", id, uint64(invitePerms))
}

func (bot *Bot) invite(ctx *bcr.Context) (err error) {
	return ctx.SendX("", discord.Embed{
		Title: "Invite me",
		URL:   inviteURL(ctx.Bot.ID),
		Color: bcr.ColourPurple,
	})
}
