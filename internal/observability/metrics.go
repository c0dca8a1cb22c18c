package observability

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
)

// Lookup outcomes used as metric labels.
const (
	OutcomeFound     = "found"
	OutcomeNotFound  = "not_found"
	OutcomeMalformed = "malformed"
	OutcomeTransport = "transport"
)

// appMetrics names the families Snapshot reports.
var appMetrics = map[string]bool{
	"weatherApiCallsTotal":      true,
	"weatherApiDurationSeconds": true,
	"weatherLookupsTotal":       true,
	"weatherLookupsStaleTotal":  true,
	"temperatureTogglesTotal":   true,
}

var (
	registry *prometheus.Registry

	// Provider call rate per outcome. Watch for: not_found vs transport ratio.
	WeatherAPICallsTotal *prometheus.CounterVec

	// Provider latency per call.
	WeatherAPIDuration *prometheus.HistogramVec

	// Lookups started by the view (initial load, city change, refresh).
	WeatherLookupsTotal prometheus.Counter

	// Results dropped because a newer lookup had already started.
	WeatherLookupsStaleTotal prometheus.Counter

	// Unit toggles, labelled by the unit switched to.
	TemperatureTogglesTotal *prometheus.CounterVec
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
	)

	WeatherAPICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherApiCallsTotal",
			Help: "Total number of OpenWeatherMap API calls",
		},
		[]string{"outcome"},
	)
	WeatherAPIDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weatherApiDurationSeconds",
			Help:    "OpenWeatherMap API latency in seconds (per request)",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"},
	)
	WeatherLookupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "weatherLookupsTotal",
			Help: "Total number of weather lookups started",
		},
	)
	WeatherLookupsStaleTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "weatherLookupsStaleTotal",
			Help: "Lookup results discarded because a newer lookup was started",
		},
	)
	TemperatureTogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temperatureTogglesTotal",
			Help: "Temperature unit toggles by target unit",
		},
		[]string{"unit"},
	)

	registry.MustRegister(
		WeatherAPICallsTotal, WeatherAPIDuration,
		WeatherLookupsTotal, WeatherLookupsStaleTotal,
		TemperatureTogglesTotal,
	)
}

// RecordAPICall records one provider call.
func RecordAPICall(outcome string, seconds float64) {
	WeatherAPICallsTotal.WithLabelValues(outcome).Inc()
	WeatherAPIDuration.WithLabelValues(outcome).Observe(seconds)
}

// Snapshot returns the current value of every app metric keyed by "name"
// or "name{v1,v2}" with the label values ordered by label name. Histograms
// report their sample count. Runtime collectors are left out.
func Snapshot() (map[string]float64, error) {
	families, err := registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		if !appMetrics[name] {
			continue
		}
		for _, m := range mf.GetMetric() {
			key := metricKey(name, m.GetLabel())
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				out[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

func metricKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	values := make([]string, len(labels))
	for i, l := range labels {
		values[i] = l.GetValue()
	}
	return name + "{" + strings.Join(values, ",") + "}"
}
