package commands

import (
	"fmt"

	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// RemoveCookieCommand handles the /removecookie command.
type RemoveCookieCommand struct {
	Store           interfaces.BankStore
	Log             interfaces.Logger
	CommanderRoleID string
}

func (c *RemoveCookieCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "removecookie",
		Description: "ユーザーからクッキーを没収します",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "没収する対象ユーザー",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "没収するクッキーの枚数",
				Required:    true,
			},
		},
	}
}

func (c *RemoveCookieCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	// 残高を下回る没収は0で止まる
	balance, err := c.Store.Mutate(target.ID, func(b int64) int64 { return b - amount })
	if err != nil {
		c.Log.Error("クッキーの没収に失敗", "error", err, "user", target.ID)
		sendErrorResponse(s, i, "エラーが発生しました。後でもう一度お試しください。")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🍪 クッキー没収",
		Description: fmt.Sprintf("**%s** から **%d** 枚のクッキーを没収しました。\n現在の残高: **%d** 枚", target.Username, amount, balance),
		Color:       0xe74c3c, // Red
	}
	sendEmbedResponse(s, i, embed)
}
