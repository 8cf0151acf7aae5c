// Package middleware groups the Fiber middleware used by the embedded server.
//
//   - auth: API key enforcement via the X-API-Key header.
//   - rayid: assigns a ray id (request id) to every request so log lines can
//     be correlated through logger.WithRayID.
package middleware
