// Package saucenao is a client for SauceNAO's reverse image search.
package saucenao

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"emperror.dev/errors"
	"github.com/tracreed/ebina/clients"
)

const Endpoint = "https://saucenao.com/search.php"

// MinSimilarity is the lowest similarity worth showing.
const MinSimilarity = 45.0

// Client queries SauceNAO.
type Client struct {
	HTTP     *http.Client
	Endpoint string
	APIKey   string
}

// New returns a client using apiKey.
func New(c *http.Client, apiKey string) *Client {
	return &Client{HTTP: c, Endpoint: Endpoint, APIKey: apiKey}
}

// Names is a list of names that SauceNAO sends as either a string or an array.
type Names []string

func (n *Names) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s == "" {
			*n = nil
		} else {
			*n = Names{s}
		}
		return nil
	}

	var ss []string
	if err := json.Unmarshal(b, &ss); err != nil {
		return errors.Wrap(err, "names are neither a string nor a list")
	}
	*n = ss
	return nil
}

type ResultHeader struct {
	Similarity string `json:"similarity"`
	Thumbnail  string `json:"thumbnail"`
	IndexName  string `json:"index_name"`
}

type ResultData struct {
	ExtURLs    []string `json:"ext_urls"`
	Title      string   `json:"title"`
	Source     string   `json:"source"`
	Creator    Names    `json:"creator"`
	MemberName string   `json:"member_name"`
	AuthorName string   `json:"author_name"`
	Material   string   `json:"material"`
	Characters string   `json:"characters"`
	EngName    string   `json:"eng_name"`
	Part       string   `json:"part"`
}

type Result struct {
	Header ResultHeader `json:"header"`
	Data   ResultData   `json:"data"`
}

// Similarity returns the parsed similarity percentage.
func (r Result) Similarity() float64 {
	f, _ := strconv.ParseFloat(r.Header.Similarity, 64)
	return f
}

// Creators returns everyone credited for the image.
func (r Result) Creators() []string {
	var out []string
	out = append(out, r.Data.Creator...)
	for _, n := range []string{r.Data.MemberName, r.Data.AuthorName} {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

type response struct {
	Header struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"header"`
	Results []Result `json:"results"`
}

// Search looks up imageURL and returns results above MinSimilarity, best first.
func (c *Client) Search(ctx context.Context, imageURL string) ([]Result, error) {
	v := url.Values{
		"output_type": {"2"},
		"numres":      {"5"},
		"api_key":     {c.APIKey},
		"url":         {imageURL},
	}

	var resp response
	err := clients.GetJSON(ctx, c.HTTP, c.Endpoint+"?"+v.Encode(), &resp)
	if err != nil {
		return nil, errors.Wrap(err, "searching saucenao")
	}

	if resp.Header.Status < 0 || (resp.Header.Status > 0 && len(resp.Results) == 0) {
		return nil, errors.Errorf("saucenao: %s", resp.Header.Message)
	}

	var out []Result
	for _, r := range resp.Results {
		if r.Similarity() >= MinSimilarity {
			out = append(out, r)
		}
	}

	if len(out) == 0 {
		return nil, clients.ErrNoResults
	}
	return out, nil
}
