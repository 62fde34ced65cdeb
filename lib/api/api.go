package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/learnopengl/learnopengl/lib/config"
	"github.com/learnopengl/learnopengl/lib/log"
	"github.com/learnopengl/learnopengl/lib/metrics"
	"github.com/learnopengl/learnopengl/lib/stats"
)

// Controller is the part of the frame loop the API may poke from its own
// goroutines.
type Controller interface {
	RequestShutdown()
}

type Api struct {
	srv  http.Server
	mux  *http.ServeMux
	cfg  *config.ApiCfg
	ctrl Controller

	Stats *stats.Stats

	// StatsInterval is how often websocket clients get a stats update
	StatsInterval time.Duration

	wsClients      map[*websocket.Conn]bool
	wsClientsMutex sync.Mutex
}

func New(cfg *config.ApiCfg, ctrl Controller, st *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.ctrl = ctrl
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.Stats = st
	a.StatsInterval = 2 * time.Second

	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	err := a.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

func (a *Api) suicide(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "Invalid method, only POST supported", http.StatusMethodNotAllowed)
		return
	}
	log.Module("api").Info("shutting down as per api request")
	a.ctrl.RequestShutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		log.Module("api").Warn("could not write response", "err", err)
		return
	}
}

func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// ServeInBackground starts the API if cfg is set and returns nil otherwise.
func ServeInBackground(cfg *config.ApiCfg, ctrl Controller, st *stats.Stats) *Api {
	if cfg == nil {
		return nil
	}
	theApi := New(cfg, ctrl, st)

	logger := log.Module("api")
	logger.Info("starting web server", "bind", cfg.Bind)
	go func() {
		err := theApi.Serve()
		if err != nil {
			logger.Error("web server stopped", "err", err)
		}
	}()
	return theApi
}
