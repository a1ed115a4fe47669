package engine

import (
	"barista/internal/core/domain/model/station"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	pickUpResultRemoved  = "removed"
	pickUpResultNotFound = "not_found"
)

// Metrics exposes the engine state to Prometheus. A nil *Metrics records nothing.
type Metrics struct {
	ordersQueued        prometheus.Gauge
	ordersReady         prometheus.Gauge
	stationBusy         prometheus.Gauge
	preparationProgress prometheus.Gauge
	ordersPlaced        prometheus.Counter
	ordersCompleted     prometheus.Counter
	ordersPickedUp      *prometheus.CounterVec
}

// NewMetrics creates the engine collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ordersQueued: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "barista_orders_queued",
			Help: "Number of orders waiting for the station.",
		}),
		ordersReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "barista_orders_ready",
			Help: "Number of orders waiting to be picked up.",
		}),
		stationBusy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "barista_station_busy",
			Help: "1 while an order is being prepared, 0 otherwise.",
		}),
		preparationProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "barista_preparation_progress",
			Help: "Completion fraction of the order being prepared.",
		}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "barista_orders_placed_total",
			Help: "Total number of orders placed.",
		}),
		ordersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "barista_orders_completed_total",
			Help: "Total number of orders that finished preparation.",
		}),
		ordersPickedUp: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "barista_orders_picked_up_total",
				Help: "Total number of pickup attempts by result.",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.ordersQueued,
		m.ordersReady,
		m.stationBusy,
		m.preparationProgress,
		m.ordersPlaced,
		m.ordersCompleted,
		m.ordersPickedUp,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(s *station.Station) {
	if m == nil {
		return
	}

	counts := s.Counts()
	busy := 0
	if !s.IsIdle() {
		busy = 1
	}

	m.ordersQueued.Set(float64(counts.Pending - busy))
	m.ordersReady.Set(float64(counts.Pickup))
	m.stationBusy.Set(float64(busy))
	m.preparationProgress.Set(s.Progress())
}

func (m *Metrics) orderPlaced() {
	if m != nil {
		m.ordersPlaced.Inc()
	}
}

func (m *Metrics) orderCompleted() {
	if m != nil {
		m.ordersCompleted.Inc()
	}
}

func (m *Metrics) orderPickedUp(removed bool) {
	if m == nil {
		return
	}
	result := pickUpResultNotFound
	if removed {
		result = pickUpResultRemoved
	}
	m.ordersPickedUp.WithLabelValues(result).Inc()
}
