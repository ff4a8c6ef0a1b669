package commands

import (
	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// MakeAccountCommand handles the /make-cbd-account command.
type MakeAccountCommand struct {
	Store      interfaces.BankStore
	Log        interfaces.Logger
	BankRoleID string
}

func (c *MakeAccountCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "make-cbd-account",
		Description: "Cookie Bank of Discord の口座を開設します",
	}
}

func (c *MakeAccountCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// 口座保有者ロールの有無が口座開設済みかどうかの判定になる
	if hasRole(i.Member, c.BankRoleID) {
		sendErrorResponse(s, i, "既に口座を持っています。")
		return
	}

	userID := i.Member.User.ID
	if err := c.Store.OpenAccount(userID); err != nil {
		c.Log.Error("口座の作成に失敗", "error", err, "user", userID)
		sendErrorResponse(s, i, "エラーが発生しました。後でもう一度お試しください。")
		return
	}

	role := findGuildRole(s, i.GuildID, c.BankRoleID)
	if role == nil {
		c.Log.Error("口座保有者ロールが見つかりません", "role", c.BankRoleID, "guild", i.GuildID)
		sendErrorResponse(s, i, "エラー: 口座保有者ロールが見つかりません。ロールIDの設定を確認してください。")
		return
	}

	if err := s.GuildMemberRoleAdd(i.GuildID, userID, c.BankRoleID); err != nil {
		c.Log.Error("ロールの付与に失敗", "error", err, "user", userID, "role", c.BankRoleID)
		sendErrorResponse(s, i, "ロールを付与できませんでした。Botに「ロールの管理」権限があり、Botのロールが対象ロールより上にあるか確認してください。")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏦 口座開設完了",
		Description: "Cookie Bank of Discord へようこそ！",
		Color:       0x2ecc71, // Green
	}
	sendEmbedResponse(s, i, embed)
}

// findGuildRole はギルドのロール一覧から指定IDのロールを探します。
func findGuildRole(s *discordgo.Session, guildID, roleID string) *discordgo.Role {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return nil
	}
	for _, r := range roles {
		if r.ID == roleID {
			return r
		}
	}
	return nil
}
