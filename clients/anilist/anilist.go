// Package anilist is a client for the AniList GraphQL API.
package anilist

import (
	"context"
	"net/http"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/tracreed/ebina/clients"
)

// Endpoint is AniList's GraphQL endpoint.
const Endpoint = "https://graphql.anilist.co"

// Client queries AniList. The zero value is not usable, use New.
type Client struct {
	HTTP     *http.Client
	Endpoint string
}

// New returns a client for the public AniList API.
func New(c *http.Client) *Client {
	return &Client{HTTP: c, Endpoint: Endpoint}
}

// MediaType is either anime or manga.
type MediaType string

const (
	AnyType MediaType = ""
	Anime   MediaType = "ANIME"
	Manga   MediaType = "MANGA"
)

type Title struct {
	Romaji        string `json:"romaji"`
	English       string `json:"english"`
	Native        string `json:"native"`
	UserPreferred string `json:"userPreferred"`
}

// Best returns the most readable title.
func (t Title) Best() string {
	if t.English != "" {
		return t.English
	}
	if t.UserPreferred != "" {
		return t.UserPreferred
	}
	if t.Romaji != "" {
		return t.Romaji
	}
	return t.Native
}

// FuzzyDate is a date with possibly unknown parts.
type FuzzyDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d FuzzyDate) String() string {
	if d.Year == 0 {
		return ""
	}
	if d.Month == 0 {
		return time.Date(d.Year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
	}
	if d.Day == 0 {
		return time.Date(d.Year, time.Month(d.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Format("January 2, 2006")
}

type CoverImage struct {
	ExtraLarge string `json:"extraLarge"`
	Large      string `json:"large"`
	Color      string `json:"color"`
}

type Tag struct {
	Name      string `json:"name"`
	Rank      int    `json:"rank"`
	IsSpoiler bool   `json:"isMediaSpoiler"`
}

type Media struct {
	ID           int        `json:"id"`
	Type         MediaType  `json:"type"`
	Format       string     `json:"format"`
	Status       string     `json:"status"`
	Title        Title      `json:"title"`
	Description  string     `json:"description"`
	Episodes     int        `json:"episodes"`
	Duration     int        `json:"duration"`
	Chapters     int        `json:"chapters"`
	Volumes      int        `json:"volumes"`
	Genres       []string   `json:"genres"`
	Tags         []Tag      `json:"tags"`
	AverageScore int        `json:"averageScore"`
	MeanScore    int        `json:"meanScore"`
	Popularity   int        `json:"popularity"`
	IsAdult      bool       `json:"isAdult"`
	Season       string     `json:"season"`
	SeasonYear   int        `json:"seasonYear"`
	Source       string     `json:"source"`
	SiteURL      string     `json:"siteUrl"`
	CoverImage   CoverImage `json:"coverImage"`
	StartDate    FuzzyDate  `json:"startDate"`
	EndDate      FuzzyDate  `json:"endDate"`
}

// AiringSchedule is a single episode airing.
type AiringSchedule struct {
	Episode  int   `json:"episode"`
	AiringAt int64 `json:"airingAt"`
	Media    struct {
		ID      int    `json:"id"`
		Title   Title  `json:"title"`
		SiteURL string `json:"siteUrl"`
		IsAdult bool   `json:"isAdult"`
	} `json:"media"`
}

// Time returns when the episode airs.
func (s AiringSchedule) Time() time.Time {
	return time.Unix(s.AiringAt, 0).UTC()
}

const mediaFragment = `fragment media on Media {
	id type format status episodes duration chapters volumes genres
	averageScore meanScore popularity isAdult season seasonYear source siteUrl
	description(asHtml: false)
	title { romaji english native userPreferred }
	coverImage { extraLarge large color }
	startDate { year month day }
	endDate { year month day }
	tags { name rank isMediaSpoiler }
}`

const searchQuery = `query ($search: String, $type: MediaType, $isAdult: Boolean) {
	Page(page: 1, perPage: 10) {
		media(search: $search, type: $type, isAdult: $isAdult, sort: SEARCH_MATCH) { ...media }
	}
}
` + mediaFragment

const mediaQuery = `query ($id: Int) {
	Media(id: $id) { ...media }
}
` + mediaFragment

const scheduleQuery = `query ($from: Int, $to: Int, $page: Int) {
	Page(page: $page, perPage: 50) {
		pageInfo { hasNextPage }
		airingSchedules(airingAt_greater: $from, airingAt_lesser: $to, sort: TIME) {
			episode airingAt
			media { id siteUrl isAdult title { romaji english native userPreferred } }
		}
	}
}`

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// query runs a GraphQL query, decoding "data" into v.
func (c *Client) query(ctx context.Context, q string, vars map[string]any, v any) error {
	var resp struct {
		Data   any        `json:"data"`
		Errors []gqlError `json:"errors"`
	}
	resp.Data = v

	err := clients.PostJSON(ctx, c.HTTP, c.Endpoint, request{Query: q, Variables: vars}, &resp)
	if err != nil {
		return errors.Wrap(err, "querying anilist")
	}

	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return errors.Errorf("anilist: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// Search finds media by title. typ may be AnyType.
func (c *Client) Search(ctx context.Context, title string, typ MediaType, adult bool) ([]Media, error) {
	vars := map[string]any{"search": title}
	if typ != AnyType {
		vars["type"] = typ
	}
	if !adult {
		vars["isAdult"] = false
	}

	var data struct {
		Page struct {
			Media []Media `json:"media"`
		} `json:"Page"`
	}
	if err := c.query(ctx, searchQuery, vars, &data); err != nil {
		return nil, err
	}

	if len(data.Page.Media) == 0 {
		return nil, clients.ErrNoResults
	}
	return data.Page.Media, nil
}

// Media returns a single entry by ID.
func (c *Client) Media(ctx context.Context, id int) (*Media, error) {
	var data struct {
		Media *Media `json:"Media"`
	}

	err := c.query(ctx, mediaQuery, map[string]any{"id": id}, &data)
	if err != nil {
		if clients.IsStatus(err, http.StatusNotFound) {
			return nil, clients.ErrNoResults
		}
		return nil, err
	}

	if data.Media == nil {
		return nil, clients.ErrNoResults
	}
	return data.Media, nil
}

// maxSchedulePages stops runaway pagination.
const maxSchedulePages = 5

// Schedule returns episodes airing between from and to, in airing order.
func (c *Client) Schedule(ctx context.Context, from, to time.Time) ([]AiringSchedule, error) {
	var out []AiringSchedule

	for page := 1; page <= maxSchedulePages; page++ {
		var data struct {
			Page struct {
				PageInfo struct {
					HasNextPage bool `json:"hasNextPage"`
				} `json:"pageInfo"`
				AiringSchedules []AiringSchedule `json:"airingSchedules"`
			} `json:"Page"`
		}

		err := c.query(ctx, scheduleQuery, map[string]any{
			"from": from.Unix(),
			"to":   to.Unix(),
			"page": page,
		}, &data)
		if err != nil {
			return nil, err
		}

		out = append(out, data.Page.AiringSchedules...)
		if !data.Page.PageInfo.HasNextPage {
			break
		}
	}

	return out, nil
}
