package interfaces

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

// Logger は、アプリケーション全体で使用されるロガーのインターフェースを定義します。
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
}

// BankStore は、クッキー残高の読み書きと永続化のインターフェースを定義します。
type BankStore interface {
	HasAccount(userID string) bool
	GetBalance(userID string) int64
	OpenAccount(userID string) error
	SetBalance(userID string, amount int64) (int64, error)
	Mutate(userID string, f func(int64) int64) (int64, error)
	Transfer(fromID, toID string, amount int64) (int64, error)
	Balances() map[string]int64
	Backup(dir string) error
}

// Scheduler は、タスクのスケジューリング機能のインターフェースを定義します。
type Scheduler interface {
	Start()
	Stop() context.Context
	AddFunc(spec string, cmd func()) (cron.EntryID, error)
}

// CommandHandler は、すべてのスラッシュコマンドが実装すべきインターフェースを定義します。
type CommandHandler interface {
	GetCommandDef() *discordgo.ApplicationCommand
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate)
}
