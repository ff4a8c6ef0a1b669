package commands

import (
	"cookiebank/interfaces"
)

// AppContext provides dependencies to commands.
type AppContext struct {
	Log             interfaces.Logger
	Store           interfaces.BankStore
	BankRoleID      string       // CBD口座保有者ロール
	CommanderRoleID string       // Cookie Commanderロール
	Sync            func() error // コマンド定義を再登録するクロージャ
}

// RegisterAllCommands initializes and returns all command handlers.
func RegisterAllCommands(appCtx *AppContext) []interfaces.CommandHandler {
	// To add a new command, simply add it to this list.
	return []interfaces.CommandHandler{
		&SyncCommand{Log: appCtx.Log, Sync: appCtx.Sync},
		&IQCommand{},
		&MakeAccountCommand{Store: appCtx.Store, Log: appCtx.Log, BankRoleID: appCtx.BankRoleID},
		&SummonCookieCommand{Store: appCtx.Store, Log: appCtx.Log, CommanderRoleID: appCtx.CommanderRoleID},
		&SetCookieCommand{Store: appCtx.Store, Log: appCtx.Log, CommanderRoleID: appCtx.CommanderRoleID},
		&RemoveCookieCommand{Store: appCtx.Store, Log: appCtx.Log, CommanderRoleID: appCtx.CommanderRoleID},
		&ResetCookieCommand{Store: appCtx.Store, Log: appCtx.Log, CommanderRoleID: appCtx.CommanderRoleID},
		&GiveCookieCommand{Store: appCtx.Store, Log: appCtx.Log},
		&CookieListCommand{Store: appCtx.Store, Log: appCtx.Log},
		&EatCookieCommand{Store: appCtx.Store, Log: appCtx.Log},
	}
}
