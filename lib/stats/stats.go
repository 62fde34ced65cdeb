package stats

import (
	"sync"
	"time"
)

// Report is what the API hands out.
type Report struct {
	Uptime    float64 `json:"uptime"`
	FPS       uint64  `json:"fps"`
	Frames    uint64  `json:"frames"`
	State     string  `json:"state"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	WsClients int     `json:"ws_clients"`
}

type Stats struct {
	report Report

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time

	mu sync.Mutex
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update is called once per presented frame.
func (s *Stats) Update(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report.Frames++
	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.report.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.report.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
	s.report.State = state
}

func (s *Stats) SetState(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.State = state
}

func (s *Stats) SetViewport(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.Width = width
	s.report.Height = height
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.WsClients = n
}

func (s *Stats) Snapshot() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}
