// Package osu is a client for the osu! API v2, authenticated with client credentials.
package osu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"emperror.dev/errors"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/common"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	BaseURL  = "https://osu.ppy.sh"
	TokenURL = BaseURL + "/oauth/token"
)

// Modes are the valid game modes.
var Modes = []string{"osu", "taiko", "fruits", "mania"}

// ValidMode returns true if mode is a game mode the API knows.
func ValidMode(mode string) bool {
	return common.Contains(Modes, mode)
}

// Client queries the osu! API.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New returns a client that fetches and refreshes its own token.
func New(ctx context.Context, clientID, clientSecret string) *Client {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     TokenURL,
		Scopes:       []string{"public"},
	}

	return &Client{HTTP: cfg.Client(ctx), BaseURL: BaseURL}
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Flag returns the Discord emoji for the country.
func (c Country) Flag() string {
	if c.Code == "" {
		return ""
	}
	return ":flag_" + strings.ToLower(c.Code) + ":"
}

type Level struct {
	Current  int `json:"current"`
	Progress int `json:"progress"`
}

type Statistics struct {
	GlobalRank  int     `json:"global_rank"`
	CountryRank int     `json:"country_rank"`
	PP          float64 `json:"pp"`
	HitAccuracy float64 `json:"hit_accuracy"`
	PlayCount   int     `json:"play_count"`
	PlayTime    int64   `json:"play_time"`
	RankedScore int64   `json:"ranked_score"`
	TotalScore  int64   `json:"total_score"`
	TotalHits   int64   `json:"total_hits"`
	Level       Level   `json:"level"`
}

// User is a full user profile in a mode.
type User struct {
	ID            int        `json:"id"`
	Username      string     `json:"username"`
	AvatarURL     string     `json:"avatar_url"`
	ProfileColour string     `json:"profile_colour"`
	Playmode      string     `json:"playmode"`
	Country       Country    `json:"country"`
	Statistics    Statistics `json:"statistics"`
}

// URL is the user's profile page in mode.
func (u User) URL(mode string) string {
	return fmt.Sprintf("%s/users/%d/%s", BaseURL, u.ID, mode)
}

// Avatar returns an absolute avatar URL.
func (u User) Avatar() string {
	if strings.HasPrefix(u.AvatarURL, "/") {
		return BaseURL + u.AvatarURL
	}
	return u.AvatarURL
}

// UserCompact is a search result.
type UserCompact struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	CountryCode string `json:"country_code"`
}

// SearchUsers finds users by name.
func (c *Client) SearchUsers(ctx context.Context, name string) ([]UserCompact, error) {
	v := url.Values{"mode": {"user"}, "query": {name}}

	var resp struct {
		User struct {
			Data  []UserCompact `json:"data"`
			Total int           `json:"total"`
		} `json:"user"`
	}
	err := clients.GetJSON(ctx, c.HTTP, c.BaseURL+"/api/v2/search?"+v.Encode(), &resp)
	if err != nil {
		return nil, errors.Wrap(err, "searching users")
	}

	if len(resp.User.Data) == 0 {
		return nil, clients.ErrNoResults
	}
	return resp.User.Data, nil
}

// User returns a user's profile in mode.
func (c *Client) User(ctx context.Context, id int, mode string) (*User, error) {
	if !ValidMode(mode) {
		return nil, errors.Errorf("invalid mode %q", mode)
	}

	var u User
	err := clients.GetJSON(ctx, c.HTTP, fmt.Sprintf("%s/api/v2/users/%d/%s", c.BaseURL, id, mode), &u)
	if err != nil {
		if clients.IsStatus(err, http.StatusNotFound) {
			return nil, clients.ErrNoResults
		}
		return nil, errors.Wrap(err, "getting user")
	}
	return &u, nil
}
