// Package weather is a client for OpenWeather's current weather API.
package weather

import (
	"context"
	"net/http"
	"net/url"

	"emperror.dev/errors"
	"github.com/tracreed/ebina/clients"
)

const Endpoint = "https://api.openweathermap.org/data/2.5/weather"

// Client queries OpenWeather.
type Client struct {
	HTTP     *http.Client
	Endpoint string
	APIKey   string
}

// New returns a client using apiKey.
func New(c *http.Client, apiKey string) *Client {
	return &Client{HTTP: c, Endpoint: Endpoint, APIKey: apiKey}
}

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Current is the current weather in a city, in metric units.
type Current struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []Condition `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Condition returns the first reported condition.
func (c Current) Condition() Condition {
	if len(c.Weather) == 0 {
		return Condition{}
	}
	return c.Weather[0]
}

// IconURL returns the image for the current condition.
func (c Current) IconURL() string {
	if icon := c.Condition().Icon; icon != "" {
		return "https://openweathermap.org/img/wn/" + icon + "@2x.png"
	}
	return ""
}

// Current returns the weather in city.
func (c *Client) Current(ctx context.Context, city string) (*Current, error) {
	v := url.Values{
		"q":     {city},
		"units": {"metric"},
		"lang":  {"en"},
		"appid": {c.APIKey},
	}

	var w Current
	err := clients.GetJSON(ctx, c.HTTP, c.Endpoint+"?"+v.Encode(), &w)
	if err != nil {
		if clients.IsStatus(err, http.StatusNotFound) {
			return nil, clients.ErrNoResults
		}
		return nil, errors.Wrap(err, "getting weather")
	}
	return &w, nil
}
