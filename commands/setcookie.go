package commands

import (
	"fmt"

	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// SetCookieCommand handles the /setcookie command.
type SetCookieCommand struct {
	Store           interfaces.BankStore
	Log             interfaces.Logger
	CommanderRoleID string
}

func (c *SetCookieCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "setcookie",
		Description: "ユーザーのクッキー残高を設定します",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "残高を設定する対象ユーザー",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "新しいクッキーの枚数",
				Required:    true,
			},
		},
	}
}

func (c *SetCookieCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !hasRole(i.Member, c.CommanderRoleID) {
		sendErrorResponse(s, i, "あなたは Cookie Commander ではありません。")
		return
	}

	target := i.ApplicationCommandData().Options[0].UserValue(s)
	amount := i.ApplicationCommandData().Options[1].IntValue()

	if !c.Store.HasAccount(target.ID) {
		sendErrorResponse(s, i, fmt.Sprintf("%s はCBD口座を持っていません。", target.Username))
		return
	}

	// 負の値はストア側で0に切り上げられる
	balance, err := c.Store.SetBalance(target.ID, amount)
	if err != nil {
		c.Log.Error("残高の設定に失敗", "error", err, "user", target.ID)
		sendErrorResponse(s, i, "エラーが発生しました。後でもう一度お試しください。")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🍪 残高設定",
		Description: fmt.Sprintf("**%s** のクッキーを **%d** 枚に設定しました。", target.Username, balance),
		Color:       0x3498db, // Blue
	}
	sendEmbedResponse(s, i, embed)
}
