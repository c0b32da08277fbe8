// Package vndb is a client for the VNDB HTTP API (kana).
package vndb

import (
	"context"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"emperror.dev/errors"
	"github.com/tracreed/ebina/clients"
)

// Endpoint is the kana API base URL.
const Endpoint = "https://api.vndb.org/kana"

const vnFields = "title, alttitle, aliases, description, image.url, image.sexual, released, length, length_minutes, " +
	"rating, votecount, languages, platforms, developers.id, developers.name, tags.name, tags.rating, tags.spoiler"

// Client queries VNDB.
type Client struct {
	HTTP     *http.Client
	Endpoint string
}

// New returns a client for the public VNDB API.
func New(c *http.Client) *Client {
	return &Client{HTTP: c, Endpoint: Endpoint}
}

type Image struct {
	URL    string  `json:"url"`
	Sexual float64 `json:"sexual"`
}

type Producer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Spoiler int     `json:"spoiler"`
}

// VN is a visual novel.
type VN struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	AltTitle      string     `json:"alttitle"`
	Aliases       []string   `json:"aliases"`
	Description   string     `json:"description"`
	Image         *Image     `json:"image"`
	Released      string     `json:"released"`
	Length        int        `json:"length"`
	LengthMinutes int        `json:"length_minutes"`
	Rating        float64    `json:"rating"`
	VoteCount     int        `json:"votecount"`
	Languages     []string   `json:"languages"`
	Platforms     []string   `json:"platforms"`
	Developers    []Producer `json:"developers"`
	Tags          []Tag      `json:"tags"`
}

// URL is the VN's page on vndb.org.
func (vn VN) URL() string {
	return "https://vndb.org/" + vn.ID
}

var lengths = []string{
	1: "Very Short (< 2 hours)",
	2: "Short (2 - 10 hours)",
	3: "Medium (10 - 30 hours)",
	4: "Long (30 - 50 hours)",
	5: "Very Long (> 50 hours)",
}

// LengthString describes the VN's length category, or "" if unknown.
func (vn VN) LengthString() string {
	if vn.Length < 1 || vn.Length >= len(lengths) {
		return ""
	}
	return lengths[vn.Length]
}

// TopTags returns up to n non-spoiler tag names, highest rated first.
func (vn VN) TopTags(n int) []string {
	tags := make([]Tag, 0, len(vn.Tags))
	for _, t := range vn.Tags {
		if t.Spoiler == 0 {
			tags = append(tags, t)
		}
	}
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Rating > tags[j].Rating })

	if len(tags) > n {
		tags = tags[:n]
	}

	names := make([]string, len(tags))
	for i := range tags {
		names[i] = tags[i].Name
	}
	return names
}

type query struct {
	Filters []any  `json:"filters"`
	Fields  string `json:"fields"`
	Sort    string `json:"sort,omitempty"`
	Reverse bool   `json:"reverse,omitempty"`
	Results int    `json:"results"`
}

type response struct {
	Results []VN `json:"results"`
	More    bool `json:"more"`
}

func (c *Client) vn(ctx context.Context, q query) ([]VN, error) {
	var resp response
	err := clients.PostJSON(ctx, c.HTTP, c.Endpoint+"/vn", q, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "querying vndb")
	}

	if len(resp.Results) == 0 {
		return nil, clients.ErrNoResults
	}
	return resp.Results, nil
}

// Search finds up to 5 VNs by title, best match first.
func (c *Client) Search(ctx context.Context, title string) ([]VN, error) {
	return c.vn(ctx, query{
		Filters: []any{"search", "=", title},
		Fields:  vnFields,
		Sort:    "searchrank",
		Results: 5,
	})
}

// Get returns a VN by ID, e.g. "v17".
func (c *Client) Get(ctx context.Context, id string) (*VN, error) {
	vns, err := c.vn(ctx, query{
		Filters: []any{"id", "=", id},
		Fields:  vnFields,
		Results: 1,
	})
	if err != nil {
		return nil, err
	}
	return &vns[0], nil
}

var (
	bbURL     = regexp.MustCompile(`(?s)\[url=(.*?)\](.*?)\[/url\]`)
	bbSpoiler = regexp.MustCompile(`(?s)\[spoiler\](.*?)\[/spoiler\]`)
	bbTag     = regexp.MustCompile(`\[/?(b|i|u|s|raw|quote|code)\]`)
)

// FormatDescription converts VNDB's BBCode to Discord markdown.
func FormatDescription(s string) string {
	s = bbSpoiler.ReplaceAllString(s, "||$1||")
	s = bbTag.ReplaceAllString(s, "")
	s = bbURL.ReplaceAllStringFunc(s, func(m string) string {
		sub := bbURL.FindStringSubmatch(m)
		link := sub[1]
		if strings.HasPrefix(link, "/") {
			link = "https://vndb.org" + link
		}
		return "[" + sub[2] + "](" + link + ")"
	})
	return strings.TrimSpace(s)
}
