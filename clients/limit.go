package clients

import (
	"net/http"
	"time"

	"emperror.dev/errors"
	"golang.org/x/time/rate"
)

// Limited returns a copy of c that waits for l before every request.
func Limited(c *http.Client, l *rate.Limiter) *http.Client {
	if c == nil {
		c = DefaultClient
	}

	cp := *c
	next := cp.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	cp.Transport = &limitedTransport{next: next, limiter: l}
	return &cp
}

// Every returns a limiter allowing one request per interval, with bursts of up to burst requests.
func Every(interval time.Duration, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(interval), burst)
}

type limitedTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, errors.Wrap(err, "waiting for rate limit")
	}
	return t.next.RoundTrip(req)
}
