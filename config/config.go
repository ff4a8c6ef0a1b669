package config

import (
	"fmt"

	"github.com/spf13/viper"

	"cookiebank/interfaces"
)

// Config はアプリケーションの設定を保持します。
type Config struct {
	Discord struct {
		Token   string // Botトークン（必須）
		AppID   string // アプリケーションID（必須）
		GuildID string // 開発用サーバーID（空ならグローバル登録）
	}
	Roles struct {
		BankHolder string // CBD口座保有者ロール
		Commander  string // Cookie Commanderロール
	}
	Bank struct {
		File       string // 残高を保存するJSONファイル
		BackupCron string // バックアップのcronスケジュール（空なら無効）
		BackupDir  string
	}
	Web struct {
		Addr string // ステータスAPIの待ち受けアドレス（空なら無効）
	}
}

var Cfg *Config

// LoadConfig は環境変数（および任意の .env ファイル）から設定を読み込みます。
func LoadConfig(log interfaces.Logger) error {
	viper.AutomaticEnv()
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	// .env が無くても環境変数だけで動かせるようにエラーは無視する
	_ = viper.ReadInConfig()

	viper.SetDefault("COOKIE_BANK_FILE", "cookie_bank.json")
	viper.SetDefault("BANK_BACKUP_DIR", "backups")

	cfg := &Config{}
	cfg.Discord.Token = viper.GetString("DISCORD_BOT_TOKEN")
	cfg.Discord.AppID = viper.GetString("DISCORD_APP_ID")
	cfg.Discord.GuildID = viper.GetString("DISCORD_GUILD_ID")
	cfg.Roles.BankHolder = viper.GetString("COOKIE_BANK_ROLE_ID")
	cfg.Roles.Commander = viper.GetString("COOKIE_COMMANDER_ROLE_ID")
	cfg.Bank.File = viper.GetString("COOKIE_BANK_FILE")
	cfg.Bank.BackupCron = viper.GetString("BANK_BACKUP_CRON")
	cfg.Bank.BackupDir = viper.GetString("BANK_BACKUP_DIR")
	cfg.Web.Addr = viper.GetString("WEB_ADDR")

	if cfg.Discord.Token == "" {
		return fmt.Errorf("DISCORD_BOT_TOKEN が設定されていません")
	}
	if cfg.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID が設定されていません")
	}

	Cfg = cfg
	log.Info("設定を正常に読み込みました。")
	return nil
}
