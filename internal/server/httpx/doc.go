// Package httpx exposes the JSON API over HTTP: registration and login,
// the recipe endpoints, the bearer-token gate and the Prometheus /metrics
// endpoint. Routing is done with gorilla/mux.
package httpx
