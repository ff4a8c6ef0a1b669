package bot

import (
	"os"
	"os/signal"
	"syscall"

	"cookiebank/commands"
	"cookiebank/config"
	"cookiebank/interfaces"
	"cookiebank/servers"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

// Bot はDiscordボットのコアな状態とロジックを管理します。
type Bot struct {
	Session         *discordgo.Session
	store           interfaces.BankStore
	log             interfaces.Logger
	scheduler       interfaces.Scheduler
	servers         *servers.Manager
	commandHandlers map[string]interfaces.CommandHandler
}

// New は新しいBotインスタンスを作成します。
func New(log interfaces.Logger, store interfaces.BankStore) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Cfg.Discord.Token)
	if err != nil {
		return nil, err
	}

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	return &Bot{
		Session:         dg,
		store:           store,
		log:             log,
		scheduler:       cron.New(),
		servers:         servers.NewManager(log),
		commandHandlers: make(map[string]interfaces.CommandHandler),
	}, nil
}

// Start はBotを起動し、Discordに接続します。シグナルを受け取るまでブロックします。
func (b *Bot) Start() error {
	b.registerCommands()

	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return err
	}
	defer b.Session.Close()

	if config.Cfg.Discord.GuildID != "" {
		b.log.Info("開発モード: コマンドをギルドに登録します", "guild", config.Cfg.Discord.GuildID)
	} else {
		b.log.Info("本番モード: コマンドをグローバルに登録します")
	}
	// 登録失敗は致命的にはしない（/sync で再試行できる）
	if err := b.syncCommands(); err != nil {
		b.log.Error("コマンドの登録に失敗しました", "error", err)
	}

	if spec := config.Cfg.Bank.BackupCron; spec != "" {
		_, err := b.scheduler.AddFunc(spec, func() {
			if err := b.store.Backup(config.Cfg.Bank.BackupDir); err != nil {
				b.log.Error("銀行ファイルのバックアップに失敗", "error", err)
			}
		})
		if err != nil {
			b.log.Error("バックアップスケジュールの登録に失敗", "error", err, "spec", spec)
		} else {
			b.scheduler.Start()
			defer b.scheduler.Stop()
		}
	}

	if addr := config.Cfg.Web.Addr; addr != "" {
		b.servers.AddServer(servers.NewWebServer(addr, b.log, b.store))
		b.servers.StartAll()
		defer b.servers.StopAll()
	}

	b.log.Info("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	b.log.Info("Botをシャットダウンします...")
	return nil
}

func (b *Bot) registerCommands() {
	appCtx := &commands.AppContext{
		Log:             b.log,
		Store:           b.store,
		BankRoleID:      config.Cfg.Roles.BankHolder,
		CommanderRoleID: config.Cfg.Roles.Commander,
		Sync:            b.syncCommands,
	}
	for _, cmd := range commands.RegisterAllCommands(appCtx) {
		b.commandHandlers[cmd.GetCommandDef().Name] = cmd
	}
}

// syncCommands は全コマンド定義を一括で登録し直します。
// config.Cfg.Discord.GuildID が空の場合はグローバル登録になります。
func (b *Bot) syncCommands() error {
	defs := make([]*discordgo.ApplicationCommand, 0, len(b.commandHandlers))
	for _, h := range b.commandHandlers {
		defs = append(defs, h.GetCommandDef())
	}

	_, err := b.Session.ApplicationCommandBulkOverwrite(
		config.Cfg.Discord.AppID, config.Cfg.Discord.GuildID, defs)
	return err
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("ログインしました", "user", r.User.Username, "id", r.User.ID)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commandHandlers[name]
	if !ok {
		return
	}

	if i.Member == nil {
		// DMからの実行はロール判定ができない
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "このコマンドはサーバー内で実行してください。",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	// ハンドラ内のpanicで他の呼び出しを巻き込まないようにする
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("コマンド処理中に予期しないエラー", "command", name, "panic", r)
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: "予期しないエラーが発生しました。",
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		}
	}()

	h.Handle(s, i)
}
