package server

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tracreed/ebina/common/log"
	"github.com/tracreed/ebina/metrics"
)

const guildsKey = "guilds"

// Status is returned by /api/status.
type Status struct {
	Name          string          `json:"name"`
	Guilds        int             `json:"guilds"`
	Commands      []metrics.Count `json:"commands"`
	Uptime        string          `json:"uptime"`
	UptimeSeconds int64           `json:"uptime_seconds"`
}

// Guild is the public information about a guild.
type Guild struct {
	ID      discord.GuildID `json:"id"`
	Name    string          `json:"name"`
	Icon    string          `json:"icon,omitempty"`
	Members uint64          `json:"members,omitempty"`
}

func newGuild(g discord.Guild) Guild {
	return Guild{
		ID:      g.ID,
		Name:    g.Name,
		Icon:    g.IconURL(),
		Members: uint64(g.ApproximateMembers),
	}
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, apiError{Code: code, Message: msg})
}

// guildList returns the sorted guild list, from the cache if possible.
func (s *Server) guildList() ([]Guild, error) {
	if v, err := s.guilds.Get(guildsKey); err == nil {
		if gs, ok := v.([]Guild); ok {
			return gs, nil
		}
	}

	src, err := s.Source.Guilds()
	if err != nil {
		return nil, err
	}

	gs := make([]Guild, len(src))
	for i := range src {
		gs[i] = newGuild(src[i])
	}
	sort.Slice(gs, func(i, j int) bool { return gs[i].ID < gs[j].ID })

	_ = s.guilds.Set(guildsKey, gs)
	return gs, nil
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	gs, err := s.guildList()
	if err != nil {
		log.Errorf("Error getting guilds: %v", err)
		respondError(w, r, http.StatusInternalServerError, "couldn't get guilds")
		return
	}

	uptime := time.Since(s.Start)
	render.JSON(w, r, Status{
		Name:          s.Name,
		Guilds:        len(gs),
		Commands:      s.Metrics.Commands(),
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime / time.Second),
	})
}

func (s *Server) handleGuilds(w http.ResponseWriter, r *http.Request) {
	gs, err := s.guildList()
	if err != nil {
		log.Errorf("Error getting guilds: %v", err)
		respondError(w, r, http.StatusInternalServerError, "couldn't get guilds")
		return
	}

	render.JSON(w, r, gs)
}

func (s *Server) handleGuild(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		respondError(w, r, http.StatusBadRequest, "invalid guild ID")
		return
	}

	g, err := s.Source.Guild(discord.GuildID(id))
	if err != nil || g == nil {
		respondError(w, r, http.StatusNotFound, "guild not found")
		return
	}

	render.JSON(w, r, newGuild(*g))
}
