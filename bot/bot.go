package bot

import (
	"context"
	"sync"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/clients/anilist"
	"github.com/tracreed/ebina/clients/mangadex"
	"github.com/tracreed/ebina/clients/osu"
	"github.com/tracreed/ebina/clients/saucenao"
	"github.com/tracreed/ebina/clients/vndb"
	"github.com/tracreed/ebina/clients/weather"
	"github.com/tracreed/ebina/clients/wolfram"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/common/log"
	"github.com/tracreed/ebina/db"
	"github.com/tracreed/ebina/metrics"
	"github.com/tracreed/ebina/options"
	"github.com/tracreed/ebina/store"
	"github.com/tracreed/ebina/store/memory"
	"github.com/tracreed/ebina/store/redis"
)

const Intents = gateway.IntentGuilds |
	gateway.IntentGuildMembers |
	gateway.IntentGuildMessages |
	gateway.IntentDirectMessages

type Bot struct {
	Router *bcr.Router
	DB     *db.DB

	Config  Config
	Metrics *metrics.Metrics
	Start   time.Time

	// Prefixes caches guild prefixes in front of the database.
	Prefixes store.PrefixStore

	AniList  *anilist.Client
	VNDB     *vndb.Client
	MangaDex *mangadex.Client
	// These are nil if their API key isn't configured.
	Osu      *osu.Client
	SauceNAO *saucenao.Client
	Weather  *weather.Client
	Wolfram  *wolfram.Client

	urlHandlers map[string]URLHandler

	mu   sync.RWMutex
	ctx  context.Context
	stop context.CancelFunc
}

// New creates a new Bot.
func New(c Config) (*Bot, error) {
	// set up debug logging
	ws.WSDebug = log.Named("ws").Debug
	ws.WSError = func(err error) {
		log.SugaredLogger.Error("ws error: ", err)
	}

	r, err := bcr.NewWithIntents(c.Auth.Discord, c.Bot.Owners, c.Bot.Prefixes, Intents)
	if err != nil {
		return nil, errors.Wrap(err, "creating router")
	}
	r.EmbedColor = bcr.ColourPurple

	bot := &Bot{
		Router:  r,
		Config:  c,
		Metrics: metrics.New(),
		Start:   time.Now(),

		// AniList allows 90 requests a minute, VNDB 200 every 5 minutes
		AniList:  anilist.New(clients.Limited(clients.DefaultClient, clients.Every(700*time.Millisecond, 10))),
		VNDB:     vndb.New(clients.Limited(clients.DefaultClient, clients.Every(1500*time.Millisecond, 10))),
		MangaDex: mangadex.New(clients.DefaultClient),
	}

	// setup database
	bot.DB, err = db.New(c.Auth.Postgres, !c.Bot.NoAutoMigrate)
	if err != nil {
		return nil, errors.Wrap(err, "creating database")
	}
	bot.DB.Counter = bot.Metrics

	// redis is optional, fall back to an in-memory cache
	if c.Auth.Redis != "" {
		bot.Prefixes, err = redis.New(c.Auth.Redis, c.Bot.CacheTTL())
		if err != nil {
			return nil, errors.Wrap(err, "creating redis store")
		}
	} else {
		log.Debug("no redis address set, caching prefixes in memory")
		bot.Prefixes = memory.New(c.Bot.CacheTTL())
	}

	if c.Auth.Osu.ClientID != "" {
		bot.Osu = osu.New(context.Background(), c.Auth.Osu.ClientID, c.Auth.Osu.ClientSecret)
	}
	if c.Auth.SauceNAO != "" {
		// free accounts get 4 searches every 30 seconds
		bot.SauceNAO = saucenao.New(clients.Limited(clients.DefaultClient, clients.Every(7500*time.Millisecond, 4)), c.Auth.SauceNAO)
	}
	if c.Auth.OpenWeather != "" {
		bot.Weather = weather.New(clients.DefaultClient, c.Auth.OpenWeather)
	}
	if c.Auth.Wolfram != "" {
		bot.Wolfram = wolfram.New(clients.DefaultClient, c.Auth.Wolfram)
	}

	r.AddHandler(bot.messageCreate)
	r.AddHandler(bot.watchURLs)
	r.AddHandler(bot.ready)
	r.AddHandler(bot.guildCreate)
	r.AddHandler(bot.guildDelete)

	return bot, nil
}

// Open connects to Discord and blocks until ctx is cancelled or Stop is called.
func (bot *Bot) Open(ctx context.Context) error {
	bot.mu.Lock()
	ctx, bot.stop = context.WithCancel(ctx)
	bot.ctx = ctx
	bot.mu.Unlock()

	log.Debug("opening gateway connection")
	err := bot.Router.ShardManager.Open(ctx)
	if err != nil {
		return errors.Wrap(err, "opening gateway connection")
	}

	s, _ := bot.Router.StateFromGuildID(0)
	me, err := s.Me()
	if err != nil {
		return errors.Wrap(err, "fetching bot user")
	}
	bot.Router.Bot = me
	// mentions work as a prefix too
	bot.Router.Prefixes = append(bot.Router.Prefixes, "<@"+me.ID.String()+">", "<@!"+me.ID.String()+">")
	log.Infof("Connected to Discord as %v (%v)", me.Tag(), me.ID)

	go bot.statusLoop(ctx)

	if bot.Config.Auth.Influx.URL != "" {
		go bot.Metrics.Submit(ctx, bot.Config.Auth.Influx)
	}

	<-ctx.Done()
	return nil
}

// Stop makes Open return.
func (bot *Bot) Stop() {
	bot.mu.RLock()
	defer bot.mu.RUnlock()

	if bot.stop != nil {
		bot.stop()
	}
}

// Context is done once the bot is stopping.
// Commands pass it to anything that waits, so pending option lists are cleaned up on shutdown.
func (bot *Bot) Context() context.Context {
	bot.mu.RLock()
	defer bot.mu.RUnlock()

	if bot.ctx == nil {
		return context.Background()
	}
	return bot.ctx
}

// Close disconnects from Discord and closes the database and cache.
func (bot *Bot) Close() error {
	err := bot.Router.ShardManager.Close()

	bot.DB.Close()
	if c, ok := bot.Prefixes.(interface{ Close() error }); ok {
		err = errors.Append(err, c.Close())
	}
	return err
}

// Session returns an option list session for the state a command was run on.
func (bot *Bot) Session(s *state.State) *options.Session {
	return options.NewSession(s, bot.Config.Bot.Timeout())
}

// Track wraps a command so it's counted in metrics.
func (bot *Bot) Track(name string, fn func(*bcr.Context) error) func(*bcr.Context) error {
	return func(ctx *bcr.Context) error {
		bot.Metrics.IncCommand(name)
		return fn(ctx)
	}
}

// IsOwner returns true if id is one of the bot's owners.
func (bot *Bot) IsOwner(id discord.UserID) bool {
	return common.Contains(bot.Config.Bot.Owners, id)
}
