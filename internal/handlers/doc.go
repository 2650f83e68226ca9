// Package handlers implements the HTTP API layer of the bootstrap agent.
//
// Handlers delegate business logic to the services layer and focus on
// request validation, error mapping and model-to-API conversion.
//
// Host endpoints (hosts.go):
//
//	┌────────┬────────────────────────┬────────────────────────────────────┐
//	│ Method │ Endpoint               │ Description                        │
//	├────────┼────────────────────────┼────────────────────────────────────┤
//	│ GET    │ /hosts                 │ List registered hosts              │
//	│ GET    │ /host/:address         │ Get one host                       │
//	│ PUT    │ /host/:address         │ Register a host, start bootstrap   │
//	│ DELETE │ /host/:address         │ Remove a host                      │
//	│ GET    │ /host/:address/status  │ Stored + live pipeline state       │
//	│ GET    │ /host/:address/facts   │ Normalized facts                   │
//	└────────┴────────────────────────┴────────────────────────────────────┘
//
// Cluster endpoints (clusters.go):
//
//	┌────────┬────────────────┬──────────────────────────────────────┐
//	│ Method │ Endpoint       │ Description                          │
//	├────────┼────────────────┼──────────────────────────────────────┤
//	│ GET    │ /clusters      │ List clusters                        │
//	│ GET    │ /cluster/:name │ Get one cluster                      │
//	│ PUT    │ /cluster/:name │ Create or replace a cluster          │
//	│ DELETE │ /cluster/:name │ Delete, disassociating member hosts  │
//	└────────┴────────────────┴──────────────────────────────────────┘
//
// Network endpoints (networks.go) mirror the cluster endpoints under
// /network(s). The status endpoint (status.go) serves GET /status with a
// registry summary.
//
// Error mapping:
//
//	┌──────────────────────────┬─────┐
//	│ ResourceNotFoundError    │ 404 │
//	│ BootstrapInProgressError │ 409 │
//	│ ConfigurationError       │ 400 │
//	│ UnsupportedOSError       │ 400 │
//	│ anything else            │ 500 │
//	└──────────────────────────┴─────┘
package handlers
