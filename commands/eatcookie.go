package commands

import (
	"fmt"

	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// EatCookieCommand handles the /eatcookie command.
type EatCookieCommand struct {
	Store interfaces.BankStore
	Log   interfaces.Logger
}

func (c *EatCookieCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "eatcookie",
		Description: "口座のクッキーを食べます",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "食べるクッキーの枚数",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
		},
	}
}

func (c *EatCookieCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID
	if !c.Store.HasAccount(userID) {
		sendErrorResponse(s, i, "CBD口座がありません。先に `/make-cbd-account` で開設してください。")
		return
	}

	amount := i.ApplicationCommandData().Options[0].IntValue()
	if c.Store.GetBalance(userID) < amount {
		sendErrorResponse(s, i, "クッキーが足りません。")
		return
	}

	balance, err := c.Store.Mutate(userID, func(b int64) int64 { return b - amount })
	if err != nil {
		c.Log.Error("クッキーの消費に失敗", "error", err, "user", userID)
		sendErrorResponse(s, i, "エラーが発生しました。後でもう一度お試しください。")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🍪 いただきます！",
		Description: fmt.Sprintf("**%d** 枚のクッキーを食べました。\n残りの残高: **%d** 枚", amount, balance),
		Color:       0xe67e22, // Orange
	}
	sendEmbedResponse(s, i, embed)
}
