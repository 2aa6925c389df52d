// Package api exposes the comment fetcher over HTTP for browser-facing
// callers that cannot fetch the platforms directly.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"github.com/metrue/discussing/pkg/fetcher"
	"github.com/metrue/discussing/pkg/models"
)

type API struct {
	ServiceName string

	r    *mux.Router
	opts *models.Options
	kw   *kafka.Writer
}

// New creates the proxy API. opts applies to every fetch the proxy
// performs; kafkaWriter is optional and enables access-log shipping when
// set.
func New(name string, opts *models.Options, kafkaWriter *kafka.Writer) *API {
	api := API{
		ServiceName: name,
		r:           mux.NewRouter(),
		opts:        opts,
		kw:          kafkaWriter,
	}
	api.endpoints()

	return &api
}

func (api *API) Router() *mux.Router {
	return api.r
}

func (api *API) endpoints() {
	api.r.Use(api.requestIDMiddleware)
	api.r.Use(api.headerMiddleware)

	if api.kw != nil {
		api.r.Use(api.loggingMiddleware(api.kw))
	}

	api.r.HandleFunc("/comments", api.commentsHandler).Methods(http.MethodGet)
}

func (api *API) commentsHandler(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	sID := shorten(reqID)

	platform := r.URL.Query().Get("platform")
	if !fetcher.KnownPlatform(platform) {
		writeError(w, "unknown platform", http.StatusBadRequest)
		log.Debugf("[commentsHandler][%s] request with unknown platform %q", sID, platform)
		return
	}

	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, "empty url parameter", http.StatusBadRequest)
		log.Debugf("[commentsHandler][%s] request with empty url parameter", sID)
		return
	}

	d := models.Discussion{Platform: platform, URL: rawURL}
	comments := fetcher.FetchComments(r.Context(), d, api.opts)

	o := api.opts.WithDefaults()
	if o.CacheTimeout > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", o.CacheTimeout))
	}

	if err := json.NewEncoder(w).Encode(CommentsResponse{Comments: comments}); err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		log.Errorf("[commentsHandler][%s] failed to encode response data: %v", sID, err)
		return
	}

	log.Debugf("[commentsHandler][%s] %d %s comments sent to: %v", sID, len(comments), platform, r.RemoteAddr)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// shorten truncates a string to 6 characters if it is longer than 6, appends '...' at the end,
// otherwise it returns the string unchanged.
func shorten(s string) string {
	if len(s) > 6 {
		return s[:6] + "..."
	}
	return s
}
