package commands

import (
	"fmt"

	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// GiveCookieCommand handles the /givecookie command.
type GiveCookieCommand struct {
	Store interfaces.BankStore
	Log   interfaces.Logger
}

func (c *GiveCookieCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "givecookie",
		Description: "他のユーザーにクッキーを渡します",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "クッキーを渡す相手",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "渡すクッキーの枚数",
				Required:    true,
			},
		},
	}
}

func (c *GiveCookieCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	senderID := i.Member.User.ID
	if !c.Store.HasAccount(senderID) {
		sendErrorResponse(s, i, "CBD口座がありません。先に `/make-cbd-account` で開設してください。")
		return
	}

	target := i.ApplicationCommandData().Options[0].UserValue(s)
	amount := i.ApplicationCommandData().Options[1].IntValue()

	if !c.Store.HasAccount(target.ID) {
		sendErrorResponse(s, i, fmt.Sprintf("%s はCBD口座を持っていません。", target.Username))
		return
	}
	if amount <= 0 {
		sendErrorResponse(s, i, "枚数は1以上を指定してください。")
		return
	}
	if c.Store.GetBalance(senderID) < amount {
		sendErrorResponse(s, i, "クッキーが足りません。")
		return
	}

	// 両口座の更新は1つのロック区間で行われる
	balance, err := c.Store.Transfer(senderID, target.ID, amount)
	if err != nil {
		c.Log.Error("クッキーの送付に失敗", "error", err, "from", senderID, "to", target.ID)
		sendErrorResponse(s, i, "エラーが発生しました。後でもう一度お試しください。")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎁 クッキーを渡しました",
		Description: fmt.Sprintf("**%s** に **%d** 枚のクッキーを渡しました。\nあなたの残高: **%d** 枚", target.Username, amount, balance),
		Color:       0x2ecc71, // Green
	}
	sendEmbedResponse(s, i, embed)
}
