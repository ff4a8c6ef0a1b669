package commands

import (
	"fmt"

	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// ResetCookieCommand handles the /resetcookie command.
type ResetCookieCommand struct {
	Store           interfaces.BankStore
	Log             interfaces.Logger
	CommanderRoleID string
}

func (c *ResetCookieCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "resetcookie",
		Description: "ユーザーのクッキー残高を0にリセットします",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "リセットする対象ユーザー",
				Required:    true,
			},
		},
	}
}

func (c *ResetCookieCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !hasRole(i.Member, c.CommanderRoleID) {
		sendErrorResponse(s, i, "あなたは Cookie Commander ではありません。")
		return
	}

	target := i.ApplicationCommandData().Options[0].UserValue(s)

	if !c.Store.HasAccount(target.ID) {
		sendErrorResponse(s, i, fmt.Sprintf("%s はCBD口座を持っていません。", target.Username))
		return
	}

	if _, err := c.Store.SetBalance(target.ID, 0); err != nil {
		c.Log.Error("残高のリセットに失敗", "error", err, "user", target.ID)
		sendErrorResponse(s, i, "エラーが発生しました。後でもう一度お試しください。")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🍪 残高リセット",
		Description: fmt.Sprintf("**%s** のクッキーを **0** 枚にリセットしました。", target.Username),
		Color:       0x99aab5, // Gray
	}
	sendEmbedResponse(s, i, embed)
}
