package commands

import (
	"fmt"
	"math/rand"

	"github.com/bwmarrin/discordgo"
)

// IQCommand handles the /iq command.
type IQCommand struct{}

func (c *IQCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "iq",
		Description: "ランダムなIQ診断を受けます",
	}
}

func (c *IQCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	iq := rand.Intn(251) // 0〜250の一様乱数
	sendTextResponse(s, i, fmt.Sprintf("あなたのIQは %d。つまり%sです。", iq, iqLabel(iq)))
}

// iqLabel はIQ値を3段階に分類します。
func iqLabel(iq int) string {
	switch {
	case iq < 85:
		return "おバカ"
	case iq < 135:
		return "ふつう"
	default:
		return "天才"
	}
}
