// Package server exposes the summarization backend over HTTP: POST /summary
// and POST /translate, as consumed by the gateway package, plus GET /health.
package server
