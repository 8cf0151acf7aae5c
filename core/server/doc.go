// Package server holds the configuration of the embedded HTTP server.
//
// The Config struct defines the HTTP port and the API key guarding the
// snapshot endpoints. The server itself is assembled in the serve command,
// where features register their routes through the loader.
package server
