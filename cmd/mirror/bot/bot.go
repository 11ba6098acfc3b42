// Package bot wires the state mirror and event handler to a live gateway
// connection.
package bot

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v2"

	"github.com/starshine-sys/mirror/common/log"
	"github.com/starshine-sys/mirror/events"
	"github.com/starshine-sys/mirror/state"
)

const Intents = gateway.IntentGuilds |
	gateway.IntentGuildMembers |
	gateway.IntentGuildBans |
	gateway.IntentGuildEmojis |
	gateway.IntentGuildIntegrations |
	gateway.IntentGuildWebhooks |
	gateway.IntentGuildInvites |
	gateway.IntentGuildVoiceStates |
	gateway.IntentGuildPresences |
	gateway.IntentGuildMessages |
	gateway.IntentGuildMessageReactions |
	gateway.IntentGuildMessageTyping |
	gateway.IntentDirectMessages |
	gateway.IntentDirectMessageReactions |
	gateway.IntentDirectMessageTyping

var Command = &cli.Command{
	Name:  "bot",
	Usage: "Run the gateway ingester",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "config.toml",
			Usage:   "Config file path",
		},
	},
	Action: run,
}

func run(c *cli.Context) error {
	ws.WSDebug = log.Debug
	ws.WSError = func(err error) {
		log.Error("ws error: ", err)
	}

	cfg, err := ReadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.Auth.Discord == "" {
		return errors.New("no token given in config file or $TOKEN")
	}

	if cfg.Auth.Sentry != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn: cfg.Auth.Sentry,
		})
		if err != nil {
			return errors.Wrap(err, "initializing sentry")
		}
	}

	s := state.New(state.Options{
		Cache:         cfg.Cache,
		MaxMessages:   cfg.Bot.MaxMessages,
		TypingTimeout: cfg.Bot.TypingTimeout(),
		REST:          api.NewClient("Bot " + cfg.Auth.Discord),
	})
	h := events.New(s, cfg.Bot.BridgeTimeout())

	h.AddHandler(func(ev *events.ReadyEvent) {
		log.Infof("Shard %d is ready, %d guilds", ev.ShardID, ev.Guilds.Len())
	})
	h.AddHandler(func(ev *events.GuildCreateEvent) {
		log.Infof("Joined guild %v (%v)", ev.Guild.Name, ev.Guild.ID)
	})
	h.AddHandler(func(ev *events.GuildDeleteEvent) {
		log.Infof("Left guild %v (%v)", ev.Guild.Name, ev.Guild.ID)
	})

	mgr, err := shard.NewManager("Bot "+cfg.Auth.Discord,
		shard.NewSessionShard(func(m *shard.Manager, sess *session.Session) {
			sess.AddIntents(Intents)

			shardID := 0
			sess.AddHandler(func(ev interface{}) {
				if r, ok := ev.(*gateway.ReadyEvent); ok && r.Shard != nil {
					shardID = r.Shard.ShardID()
				}
				h.Dispatch(shardID, ev)
			})
		}))
	if err != nil {
		return errors.Wrap(err, "creating shard manager")
	}

	if err := mgr.Open(context.Background()); err != nil {
		return errors.Wrap(err, "connecting to the gateway")
	}
	log.Info("Connected to the gateway")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Interrupt received, closing")
	return mgr.Close()
}
