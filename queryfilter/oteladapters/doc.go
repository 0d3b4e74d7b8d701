// Package oteladapters provides OpenTelemetry implementations of the queryfilter observability interfaces.
//
// It lives in its own module so that the core queryfilter module stays free of OpenTelemetry dependencies.
// Wire the adapters into an entity store with the usual options:
//
//	store, err := postgresengine.NewEntityStoreFromPGXPool(pool, "books",
//		postgresengine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("bookcatalog")),
//		postgresengine.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter("bookcatalog"))),
//		postgresengine.WithTracing(oteladapters.NewTracingCollector(otel.Tracer("bookcatalog"))),
//	)
package oteladapters
