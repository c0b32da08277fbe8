package common

import "github.com/diamondburned/arikawa/v3/discord"

// Embed colours
const (
	ColourBlurple discord.Color = 0x5865F2
	ColourRed     discord.Color = 0xDD1100
	ColourGreen   discord.Color = 0x3BA55C

	ColourAniList  discord.Color = 0x2B2D42
	ColourVNDB     discord.Color = 0x071C42
	ColourOsu      discord.Color = 0xF06EAA
	ColourMangaDex discord.Color = 0xF68328
	ColourCharades discord.Color = 0xE59400
)
