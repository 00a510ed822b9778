package controller

import (
	"context"
	"time"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps every store method with call latency and failure
// metrics.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snakebattle",
			Subsystem: "store",
			Name:      "call_seconds",
			Help:      "Latency of store calls.",
		},
		[]string{"method"},
	)
	storeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snakebattle",
			Subsystem: "store",
			Name:      "failures_total",
			Help:      "Store calls that failed, missing games excluded.",
		},
		[]string{"method"},
	)
	framesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snakebattle",
			Subsystem: "store",
			Name:      "frames_total",
			Help:      "Frames written to the store.",
		},
	)
)

func init() {
	prometheus.MustRegister(storeCalls, storeFailures, framesRecorded)
}

// observe records one call that started at start.
func observe(method string, start time.Time, err error) {
	storeCalls.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil && err != ErrNotFound {
		storeFailures.WithLabelValues(method).Inc()
	}
}

type metrics struct{ s Store }

func (m *metrics) SetGameStatus(c context.Context, id string, status rules.GameStatus) error {
	start := time.Now()
	err := m.s.SetGameStatus(c, id, status)
	observe("SetGameStatus", start, err)
	return err
}

func (m *metrics) CreateGame(c context.Context, g *pb.Game, frames []*pb.GameFrame) error {
	start := time.Now()
	err := m.s.CreateGame(c, g, frames)
	observe("CreateGame", start, err)
	if err == nil {
		framesRecorded.Add(float64(len(frames)))
	}
	return err
}

func (m *metrics) PushGameFrame(c context.Context, id string, f *pb.GameFrame) error {
	start := time.Now()
	err := m.s.PushGameFrame(c, id, f)
	observe("PushGameFrame", start, err)
	if err == nil {
		framesRecorded.Inc()
	}
	return err
}

func (m *metrics) ListGameFrames(c context.Context, id string, limit, offset int) ([]*pb.GameFrame, error) {
	start := time.Now()
	frames, err := m.s.ListGameFrames(c, id, limit, offset)
	observe("ListGameFrames", start, err)
	return frames, err
}

func (m *metrics) GetGame(c context.Context, id string) (*pb.Game, error) {
	start := time.Now()
	g, err := m.s.GetGame(c, id)
	observe("GetGame", start, err)
	return g, err
}

func (m *metrics) ListGames(c context.Context, limit int) ([]*pb.Game, error) {
	start := time.Now()
	games, err := m.s.ListGames(c, limit)
	observe("ListGames", start, err)
	return games, err
}
