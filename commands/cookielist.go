package commands

import (
	"fmt"

	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// CookieListCommand handles the /cookielist command.
type CookieListCommand struct {
	Store interfaces.BankStore
	Log   interfaces.Logger
}

func (c *CookieListCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "cookielist",
		Description: "ユーザーのクッキー残高を確認します",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "残高を確認する対象ユーザー",
				Required:    true,
			},
		},
	}
}

func (c *CookieListCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := i.ApplicationCommandData().Options[0].UserValue(s)

	if !c.Store.HasAccount(target.ID) {
		sendErrorResponse(s, i, fmt.Sprintf("%s はCBD口座を持っていません。", target.Username))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🍪 %s のクッキー残高", target.Username),
		Description: fmt.Sprintf("現在の残高: **%d** 枚", c.Store.GetBalance(target.ID)),
		Color:       0x3498db, // Blue
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: target.AvatarURL(""),
		},
	}
	sendEmbedResponse(s, i, embed)
}
