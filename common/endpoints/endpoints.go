// Package endpoints serves the twitter-server style admin paths for a
// harvest binary.
package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/twitter/harvest/common/stats"
)

// StatusFunc returns a json-marshalable view of the scheduler.
type StatusFunc func() interface{}

func NewAdminServer(addr string, stats stats.StatsReceiver, status StatusFunc) *AdminServer {
	s := &AdminServer{
		Addr:   addr,
		Stats:  stats,
		Status: status,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", helpHandler)
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/admin/metrics.json", s.statsHandler)
	mux.HandleFunc("/admin/targets.json", s.targetsHandler)
	s.server = &http.Server{Addr: addr, Handler: mux}
	return s
}

type AdminServer struct {
	Addr   string
	Stats  stats.StatsReceiver
	Status StatusFunc

	server *http.Server
}

// Handler is the mux behind Serve.
func (s *AdminServer) Handler() http.Handler {
	return s.server.Handler
}

// Serve blocks until the server fails or ctx is done.
func (s *AdminServer) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.server.Close()
	}()
	log.Info("Serving http & stats on ", s.Addr)
	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func helpHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Error(w, "Common paths: '/health', '/admin/metrics.json', '/admin/targets.json'", http.StatusNotImplemented)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "ok")
}

const contentTypeHdr = "Content-Type"
const contentTypeVal = "application/json; charset=utf-8"

func (s *AdminServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(contentTypeHdr, contentTypeVal)

	pretty := r.URL.Query().Get("pretty") == "true"
	str := s.Stats.Render(pretty)
	if _, err := io.Copy(w, bytes.NewBuffer(str)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *AdminServer) targetsHandler(w http.ResponseWriter, r *http.Request) {
	if s.Status == nil {
		http.Error(w, "no scheduler status", http.StatusNotFound)
		return
	}
	w.Header().Set(contentTypeHdr, contentTypeVal)
	enc := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s.Status()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
