// Package wolfram is a client for the Wolfram|Alpha full results API.
package wolfram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"emperror.dev/errors"
	"github.com/tracreed/ebina/clients"
)

const Endpoint = "https://api.wolframalpha.com/v2/query"

// ErrRateLimited is returned when Wolfram|Alpha refuses to parse the query at all.
const ErrRateLimited = errors.Sentinel("wolfram|alpha rate limit reached")

// Client queries Wolfram|Alpha.
type Client struct {
	HTTP     *http.Client
	Endpoint string
	AppID    string
}

// New returns a client using appID.
func New(c *http.Client, appID string) *Client {
	return &Client{HTTP: c, Endpoint: Endpoint, AppID: appID}
}

type Subpod struct {
	Title     string `json:"title"`
	Plaintext string `json:"plaintext"`
}

type Pod struct {
	Title   string   `json:"title"`
	ID      string   `json:"id"`
	Primary bool     `json:"primary"`
	Subpods []Subpod `json:"subpods"`
}

// Text joins the pod's non-empty subpod texts.
func (p Pod) Text() string {
	var b bytes.Buffer
	for _, s := range p.Subpods {
		if s.Plaintext == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.Plaintext)
	}
	return b.String()
}

type queryResult struct {
	Success     bool            `json:"success"`
	Error       json.RawMessage `json:"error"`
	ParseTiming float64         `json:"parsetiming"`
	Pods        []Pod           `json:"pods"`
}

// Query asks Wolfram|Alpha input and returns the pods with plain text answers.
func (c *Client) Query(ctx context.Context, input string) ([]Pod, error) {
	v := url.Values{
		"input":  {input},
		"appid":  {c.AppID},
		"output": {"json"},
		"format": {"plaintext"},
	}

	var resp struct {
		QueryResult queryResult `json:"queryresult"`
	}
	err := clients.GetJSON(ctx, c.HTTP, c.Endpoint+"?"+v.Encode(), &resp)
	if err != nil {
		return nil, errors.Wrap(err, "querying wolfram|alpha")
	}
	qr := resp.QueryResult

	if len(qr.Error) > 0 && !bytes.Equal(qr.Error, []byte("false")) {
		var e struct {
			Msg string `json:"msg"`
		}
		_ = json.Unmarshal(qr.Error, &e)
		return nil, errors.Errorf("wolfram|alpha: %s", e.Msg)
	}

	if !qr.Success || len(qr.Pods) == 0 {
		if qr.ParseTiming == 0 {
			return nil, ErrRateLimited
		}
		return nil, clients.ErrNoResults
	}

	var pods []Pod
	for _, p := range qr.Pods {
		if p.Text() != "" {
			pods = append(pods, p)
		}
	}
	if len(pods) == 0 {
		return nil, clients.ErrNoResults
	}
	return pods, nil
}
