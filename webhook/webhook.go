// Package webhook receives push webhooks from the git host and redeploys the bot.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"emperror.dev/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/tracreed/ebina/common/log"
)

// SignatureHeader holds the hex encoded HMAC-SHA256 of the request body.
const SignatureHeader = "X-Gitea-Signature"

const maxBodySize = 5 << 20

// Handler serves the redeploy endpoint.
type Handler struct {
	secret []byte
	branch string
	steps  []Step
	runner Runner

	mux     chi.Router
	running atomic.Bool
	wg      sync.WaitGroup
}

// New returns a Handler that runs steps with r when branch is pushed to.
func New(secret, branch string, steps []Step, r Runner) *Handler {
	h := &Handler{
		secret: []byte(secret),
		branch: branch,
		steps:  steps,
		runner: r,
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)
	mux.Post("/rb", h.redeploy)
	h.mux = mux

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Wait blocks until a running deploy is finished.
func (h *Handler) Wait() {
	h.wg.Wait()
}

// Run listens on addr until ctx is cancelled, then waits for a running deploy.
func (h *Handler) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Infof("Webhook listening on %v", addr)
	err := srv.ListenAndServe()
	h.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serving webhook")
	}
	return nil
}

// Sign returns the signature the git host sends for body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (h *Handler) validSignature(sig string, body []byte) bool {
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

type push struct {
	Ref   string `json:"ref"`
	After string `json:"after"`
}

type response struct {
	Status string `json:"status"`
}

func respond(w http.ResponseWriter, r *http.Request, code int, status string) {
	render.Status(r, code)
	render.JSON(w, r, response{Status: status})
}

func (h *Handler) redeploy(w http.ResponseWriter, r *http.Request) {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "application/json" {
		respond(w, r, http.StatusUnsupportedMediaType, "unsupported media type")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		respond(w, r, http.StatusBadRequest, "couldn't read body")
		return
	}

	if !h.validSignature(r.Header.Get(SignatureHeader), body) {
		log.Infof("Rejected webhook from %v with an invalid signature", r.RemoteAddr)
		respond(w, r, http.StatusUnauthorized, "invalid signature")
		return
	}

	var p push
	if err := render.DecodeJSON(bytes.NewReader(body), &p); err != nil {
		respond(w, r, http.StatusBadRequest, "invalid payload")
		return
	}

	if p.Ref != h.branch {
		log.Debugf("Ignoring push to %v", p.Ref)
		respond(w, r, http.StatusAccepted, "ignored")
		return
	}

	if !h.running.CompareAndSwap(false, true) {
		respond(w, r, http.StatusConflict, "deploy already running")
		return
	}

	log.Infof("Deploying %v (%v)", p.Ref, p.After)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer h.running.Store(false)

		if err := Deploy(context.Background(), h.runner, h.steps); err != nil {
			log.Errorf("Deploy failed: %v", err)
			return
		}
		log.Infof("Deployed %v", p.After)
	}()

	respond(w, r, http.StatusAccepted, "deploying")
}
