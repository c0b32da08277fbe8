package server

import (
	"fmt"
	"net/http"

	"github.com/russross/blackfriday/v2"
)

const indexMarkdown = `# %v

This is the stats service for %v, a Discord bot for looking up anime, manga, visual novels and osu! players.

## Endpoints

- [/api/status](/api/status): bot name, server count, command usage and uptime
- [/api/guilds](/api/guilds): the servers the bot is in
- /api/guild/{id}: a single server
- [/metrics](/metrics): Prometheus metrics
`

const pageTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%v</title></head>
<body>
%s</body>
</html>
`

func renderIndex(name string) []byte {
	body := blackfriday.Run(
		[]byte(fmt.Sprintf(indexMarkdown, name, name)),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Autolink),
	)
	return []byte(fmt.Sprintf(pageTemplate, name, body))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.index)
}
