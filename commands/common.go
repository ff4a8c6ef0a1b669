package commands

import (
	"slices"

	"github.com/bwmarrin/discordgo"
)

// hasRole は、メンバーが指定ロールを持っているかを返します。
func hasRole(member *discordgo.Member, roleID string) bool {
	if member == nil || roleID == "" {
		return false
	}
	return slices.Contains(member.Roles, roleID)
}

// isAdministrator は、メンバーが管理者権限を持っているかを返します。
func isAdministrator(member *discordgo.Member) bool {
	return member != nil && member.Permissions&discordgo.PermissionAdministrator != 0
}

// sendEmbedResponse は、公開のEmbedメッセージで応答します。
func sendEmbedResponse(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// sendTextResponse は、公開のテキストメッセージで応答します。
func sendTextResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

// sendEphemeralResponse は、本人にのみ見えるメッセージで応答します。
func sendEphemeralResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// sendErrorResponse は、本人にのみ見えるエラーメッセージで応答します。
// 認可エラー・前提条件エラーはすべてこの形式で返し、残高には触れません。
func sendErrorResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	sendEphemeralResponse(s, i, content)
}
