package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// シングルトンとしてロガーを保持
var logger *slog.Logger

func Init() {
	// ログローテーションの設定
	logFile := &lumberjack.Logger{
		Filename:   "cookiebank.log", // ログファイル名
		MaxSize:    10,               // 1ファイルあたりの最大サイズ (MB)
		MaxBackups: 5,                // 保持する古いログの最大数
		MaxAge:     30,               // 古いログを保持する最大日数
		Compress:   true,             // 古いログをgzipで圧縮
	}

	// ログの出力先を「標準出力（コンソール）」と「ファイル」の両方に設定
	multiWriter := io.MultiWriter(os.Stdout, logFile)

	logger = slog.New(slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	}))
}

// Infoレベルのログを出力
// 例: logger.Info("Botが起動しました", "version", "1.2.3")
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warnレベルのログを出力
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Errorレベルのログを出力
// 例: logger.Error("コマンドの実行に失敗", "error", err, "command", "iq")
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// Fatalレベルのログを出力（出力後にプログラムを終了）
func Fatal(msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(1)
}

// Std は interfaces.Logger を満たすパッケージロガーのラッパーです。
type Std struct{}

func (Std) Info(msg string, args ...any)  { Info(msg, args...) }
func (Std) Warn(msg string, args ...any)  { Warn(msg, args...) }
func (Std) Error(msg string, args ...any) { Error(msg, args...) }
func (Std) Fatal(msg string, args ...any) { Fatal(msg, args...) }
