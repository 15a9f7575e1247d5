package server

// Server is the lifecycle of the HTTP server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
	// gracefully. It blocks until the server has stopped.
	RunServer()

	// Shutdown stops the server, waiting a bounded time for in-flight requests.
	Shutdown()
}
