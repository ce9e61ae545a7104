// Package services implements the business logic between the HTTP handlers
// and the storage layer. DatasetService owns the in-memory dataset, runs the
// ingestion pipeline on uploads, persists accepted datasets wholesale, and
// answers the aggregation queries behind the dashboard cards and charts.
//
// Services accept their dependencies as interfaces so handlers and tests can
// substitute them, propagate context.Context through blocking operations,
// and never touch the HTTP layer directly.
package services
