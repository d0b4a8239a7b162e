// Package cli provides the interactive RecipeKeeper command-line client.
//
// App reads commands from stdin and forwards them to a client.Client. The
// access token lives only in memory for the lifetime of the process. A
// background watcher pings the server's gRPC health endpoint and shows
// online or offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
