package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ItemsFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_sync_items_fetched_total",
			Help: "Listados recibidos del proveedor",
		},
	)
	SourceFetchErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_sync_source_errors_total",
			Help: "Consultas por source code que fallaron",
		},
	)
	ProductsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_sync_products_created_total",
			Help: "Productos nuevos creados por el sync",
		},
	)
	ProductsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_sync_products_updated_total",
			Help: "Productos existentes con precio actualizado",
		},
	)
	ReconcileFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_sync_reconcile_failures_total",
			Help: "SKUs que fallaron contra el store",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(
		ItemsFetched,
		SourceFetchErrors,
		ProductsCreated,
		ProductsUpdated,
		ReconcileFailures,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
