package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestIQLabel(t *testing.T) {
	tests := []struct {
		iq   int
		want string
	}{
		{0, "おバカ"},
		{84, "おバカ"},
		{85, "ふつう"},
		{134, "ふつう"},
		{135, "天才"},
		{250, "天才"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, iqLabel(tt.iq), "iq=%d", tt.iq)
	}
}

func TestClampSummonAmount(t *testing.T) {
	assert.EqualValues(t, 0, clampSummonAmount(-1))
	assert.EqualValues(t, 0, clampSummonAmount(0))
	assert.EqualValues(t, 100, clampSummonAmount(100))
	assert.EqualValues(t, maxSummonAmount, clampSummonAmount(maxSummonAmount))
	assert.EqualValues(t, maxSummonAmount, clampSummonAmount(maxSummonAmount+1))
}

func TestHasRole(t *testing.T) {
	member := &discordgo.Member{Roles: []string{"111", "222"}}

	assert.True(t, hasRole(member, "111"))
	assert.False(t, hasRole(member, "333"))
	assert.False(t, hasRole(member, ""))
	assert.False(t, hasRole(nil, "111"))
}

func TestIsAdministrator(t *testing.T) {
	admin := &discordgo.Member{Permissions: discordgo.PermissionAdministrator}
	user := &discordgo.Member{Permissions: discordgo.PermissionSendMessages}

	assert.True(t, isAdministrator(admin))
	assert.False(t, isAdministrator(user))
	assert.False(t, isAdministrator(nil))
}

// コマンド定義がスラッシュコマンドの仕様どおりに組まれているかを確認する
func TestRegisterAllCommands(t *testing.T) {
	appCtx := &AppContext{
		BankRoleID:      "111",
		CommanderRoleID: "222",
		Sync:            func() error { return nil },
	}
	cmds := RegisterAllCommands(appCtx)
	assert.Len(t, cmds, 10)

	byName := make(map[string]*discordgo.ApplicationCommand)
	for _, c := range cmds {
		def := c.GetCommandDef()
		assert.NotContains(t, byName, def.Name)
		byName[def.Name] = def
	}

	for _, name := range []string{
		"sync", "iq", "make-cbd-account", "summoncookie", "setcookie",
		"removecookie", "resetcookie", "givecookie", "cookielist", "eatcookie",
	} {
		assert.Contains(t, byName, name)
	}

	summon := byName["summoncookie"].Options[0]
	assert.EqualValues(t, 0, *summon.MinValue)
	assert.EqualValues(t, maxSummonAmount, summon.MaxValue)

	eat := byName["eatcookie"].Options[0]
	assert.EqualValues(t, 1, *eat.MinValue)
}
