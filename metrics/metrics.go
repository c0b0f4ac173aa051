package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// CocktailsCreated zählt über die API angelegte Cocktails.
	CocktailsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cocktails_created_total",
			Help: "Total number of cocktails created through the API.",
		},
	)

	// CocktailsSeeded zählt beim Seeding angelegte Cocktails.
	CocktailsSeeded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cocktails_seeded_total",
			Help: "Total number of cocktails inserted by the startup seed.",
		},
	)

	// CatalogExports zählt Export-Läufe nach Ergebnis ("success", "error").
	CatalogExports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_exports_total",
			Help: "Total number of catalog export runs by result.",
		},
		[]string{"result"},
	)

	// HTTPRequestDuration misst die Antwortzeit pro Route.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(CocktailsCreated, CocktailsSeeded, CatalogExports, HTTPRequestDuration)
}
