// Package mangadex is a client for the MangaDex API.
package mangadex

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"emperror.dev/errors"
	"github.com/google/uuid"
	"github.com/tracreed/ebina/clients"
)

const (
	BaseURL   = "https://api.mangadex.org"
	UploadURL = "https://uploads.mangadex.org"
	SiteURL   = "https://mangadex.org"
)

// Client queries MangaDex.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New returns a client for the public MangaDex API.
func New(c *http.Client) *Client {
	return &Client{HTTP: c, BaseURL: BaseURL}
}

// LocalizedString maps language codes to text.
type LocalizedString map[string]string

// Get returns the English text, falling back to Japanese romanization and then any language.
func (l LocalizedString) Get() string {
	for _, lang := range []string{"en", "ja-ro", "ja"} {
		if s := l[lang]; s != "" {
			return s
		}
	}

	// map order is random, pick the same fallback every time
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if l[k] != "" {
			return l[k]
		}
	}
	return ""
}

type Tag struct {
	Attributes struct {
		Name  LocalizedString `json:"name"`
		Group string          `json:"group"`
	} `json:"attributes"`
}

type MangaAttributes struct {
	Title                  LocalizedString   `json:"title"`
	AltTitles              []LocalizedString `json:"altTitles"`
	Description            LocalizedString   `json:"description"`
	OriginalLanguage       string            `json:"originalLanguage"`
	LastVolume             string            `json:"lastVolume"`
	LastChapter            string            `json:"lastChapter"`
	PublicationDemographic string            `json:"publicationDemographic"`
	Status                 string            `json:"status"`
	Year                   int               `json:"year"`
	ContentRating          string            `json:"contentRating"`
	Tags                   []Tag             `json:"tags"`
}

// Relationship links a manga to its authors, artists and cover.
// Attributes are only present for types requested with includes[].
type Relationship struct {
	ID         string                  `json:"id"`
	Type       string                  `json:"type"`
	Attributes *RelationshipAttributes `json:"attributes"`
}

// RelationshipAttributes holds the fields used from people and cover art.
type RelationshipAttributes struct {
	Name     string `json:"name"`
	FileName string `json:"fileName"`
}

type Manga struct {
	ID            string          `json:"id"`
	Attributes    MangaAttributes `json:"attributes"`
	Relationships []Relationship  `json:"relationships"`
}

// Title returns the manga's display title.
func (m Manga) Title() string {
	if t := m.Attributes.Title.Get(); t != "" {
		return t
	}
	for _, alt := range m.Attributes.AltTitles {
		if t := alt.Get(); t != "" {
			return t
		}
	}
	return m.ID
}

// URL is the manga's page on mangadex.org.
func (m Manga) URL() string {
	return SiteURL + "/title/" + m.ID
}

// Names returns the names of related people of type typ ("author" or "artist").
func (m Manga) Names(typ string) []string {
	var names []string
	for _, r := range m.Relationships {
		if r.Type == typ && r.Attributes != nil && r.Attributes.Name != "" {
			names = append(names, r.Attributes.Name)
		}
	}
	return names
}

// CoverURL returns a 256px thumbnail of the cover, or "" if the cover wasn't included.
func (m Manga) CoverURL() string {
	for _, r := range m.Relationships {
		if r.Type == "cover_art" && r.Attributes != nil && r.Attributes.FileName != "" {
			return UploadURL + "/covers/" + m.ID + "/" + r.Attributes.FileName + ".256.jpg"
		}
	}
	return ""
}

// TagNames returns the English names of the manga's genre and theme tags.
func (m Manga) TagNames() []string {
	var names []string
	for _, t := range m.Attributes.Tags {
		if n := t.Attributes.Name.Get(); n != "" {
			names = append(names, n)
		}
	}
	return names
}

var includes = []string{"author", "artist", "cover_art"}

// Search finds up to limit manga by title.
func (c *Client) Search(ctx context.Context, title string, limit int) ([]Manga, error) {
	v := url.Values{
		"title":            {title},
		"limit":            {strconv.Itoa(limit)},
		"includes[]":       includes,
		"contentRating[]":  {"safe", "suggestive"},
		"order[relevance]": {"desc"},
	}

	var resp struct {
		Result string  `json:"result"`
		Data   []Manga `json:"data"`
	}
	err := clients.GetJSON(ctx, c.HTTP, c.BaseURL+"/manga?"+v.Encode(), &resp)
	if err != nil {
		return nil, errors.Wrap(err, "searching manga")
	}

	if len(resp.Data) == 0 {
		return nil, clients.ErrNoResults
	}
	return resp.Data, nil
}

// Manga returns a single manga by ID.
func (c *Client) Manga(ctx context.Context, id string) (*Manga, error) {
	if !IsID(id) {
		return nil, errors.Errorf("%q is not a valid manga ID", id)
	}

	v := url.Values{"includes[]": includes}

	var resp struct {
		Data Manga `json:"data"`
	}
	err := clients.GetJSON(ctx, c.HTTP, c.BaseURL+"/manga/"+id+"?"+v.Encode(), &resp)
	if err != nil {
		if clients.IsStatus(err, http.StatusNotFound) {
			return nil, clients.ErrNoResults
		}
		return nil, errors.Wrap(err, "getting manga")
	}
	return &resp.Data, nil
}

// IsID returns true if s is a MangaDex ID, a hyphenated UUID.
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil && len(s) == 36
}
