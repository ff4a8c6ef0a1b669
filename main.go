package main

import (
	"cookiebank/bot"
	"cookiebank/config"
	"cookiebank/logger"
	"cookiebank/storage"
)

func main() {
	logger.Init()
	log := logger.Std{}

	if err := config.LoadConfig(log); err != nil {
		logger.Fatal("設定の読み込みに失敗しました", "error", err)
	}

	// 銀行ファイルが壊れている場合はここで起動を中止する
	store, err := storage.NewBankStore(config.Cfg.Bank.File)
	if err != nil {
		logger.Fatal("銀行ファイルの読み込みに失敗しました", "error", err)
	}

	b, err := bot.New(log, store)
	if err != nil {
		logger.Fatal("Discordセッションの作成中にエラーが発生しました", "error", err)
	}

	if err := b.Start(); err != nil {
		logger.Fatal("Discordへの接続中にエラーが発生しました", "error", err)
	}
}
