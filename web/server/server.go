// Package server is the bot's stats service: a small JSON API about the guilds the bot is in
// and the commands it has run, plus Prometheus metrics.
package server

import (
	"context"
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/tracreed/ebina/common/log"
	"github.com/tracreed/ebina/metrics"
)

// GuildCacheTTL is how long the guild list is cached.
const GuildCacheTTL = 30 * time.Second

// Source is where guild information comes from, usually the bot's gateway state.
type Source interface {
	Guilds() ([]discord.Guild, error)
	Guild(discord.GuildID) (*discord.Guild, error)
}

// Server serves the stats API.
type Server struct {
	Name    string
	Source  Source
	Metrics *metrics.Metrics
	Start   time.Time

	mux    chi.Router
	guilds *ttlcache.Cache
	index  []byte
}

// New returns a Server for the bot called name.
func New(name string, src Source, m *metrics.Metrics, start time.Time) *Server {
	s := &Server{
		Name:    name,
		Source:  src,
		Metrics: m,
		Start:   start,
		guilds:  ttlcache.NewCache(),
		index:   renderIndex(name),
	}
	_ = s.guilds.SetTTL(GuildCacheTTL)
	s.guilds.SkipTTLExtensionOnHit(true)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/status", s.handleStatus)
		r.Get("/guilds", s.handleGuilds)
		r.Get("/guild/{id}", s.handleGuild)
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	s.mux = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Infof("Stats server listening on %v", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serving stats")
	}
	return s.guilds.Close()
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		t := time.Now()

		next.ServeHTTP(ww, r)

		log.Debugf("%v %v -> %v (%v)", r.Method, r.URL.Path, ww.Status(), time.Since(t).Round(time.Microsecond))
	})
}
