package commands

import (
	"cookiebank/interfaces"

	"github.com/bwmarrin/discordgo"
)

// SyncCommand handles the /sync command.
type SyncCommand struct {
	Log  interfaces.Logger
	Sync func() error
}

func (c *SyncCommand) GetCommandDef() *discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)
	return &discordgo.ApplicationCommand{
		Name:                     "sync",
		Description:              "コマンド定義を手動で再同期します（管理者専用）",
		DefaultMemberPermissions: &adminOnly,
	}
}

func (c *SyncCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !isAdministrator(i.Member) {
		sendErrorResponse(s, i, "このコマンドは管理者のみ使用できます。")
		return
	}

	if err := c.Sync(); err != nil {
		c.Log.Error("コマンドの再登録に失敗", "error", err)
		sendErrorResponse(s, i, "コマンドの同期に失敗しました。")
		return
	}

	sendEphemeralResponse(s, i, "コマンドを同期しました。")
}
