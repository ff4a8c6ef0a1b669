package commands

import (
	"fmt"

	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// 一度に召喚できるクッキーの上限
const maxSummonAmount = 32767

// SummonCookieCommand handles the /summoncookie command.
type SummonCookieCommand struct {
	Store           interfaces.BankStore
	Log             interfaces.Logger
	CommanderRoleID string
}

func (c *SummonCookieCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "summoncookie",
		Description: "自分の口座にクッキーを召喚します",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: fmt.Sprintf("召喚するクッキーの枚数 (0-%d)", maxSummonAmount),
				Required:    true,
				MinValue:    &[]float64{0}[0],
				MaxValue:    maxSummonAmount,
			},
		},
	}
}

func (c *SummonCookieCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !hasRole(i.Member, c.CommanderRoleID) {
		sendErrorResponse(s, i, "あなたは Cookie Commander ではありません。")
		return
	}

	userID := i.Member.User.ID
	if !c.Store.HasAccount(userID) {
		sendErrorResponse(s, i, "CBD口座がありません。先に `/make-cbd-account` で開設してください。")
		return
	}

	// Discord側でも制約しているが、念のためここでも範囲内に収める
	amount := clampSummonAmount(i.ApplicationCommandData().Options[0].IntValue())

	balance, err := c.Store.Mutate(userID, func(b int64) int64 { return b + amount })
	if err != nil {
		c.Log.Error("クッキーの召喚に失敗", "error", err, "user", userID)
		sendErrorResponse(s, i, "エラーが発生しました。後でもう一度お試しください。")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "✨ クッキー召喚",
		Description: fmt.Sprintf("**%d** 枚のクッキーを召喚しました。\n現在の残高: **%d** 枚", amount, balance),
		Color:       0xf1c40f, // Yellow
	}
	sendEmbedResponse(s, i, embed)
}

// clampSummonAmount は召喚枚数を [0, maxSummonAmount] に収めます。
func clampSummonAmount(amount int64) int64 {
	if amount < 0 {
		return 0
	}
	if amount > maxSummonAmount {
		return maxSummonAmount
	}
	return amount
}
