// Package shutdown provides graceful shutdown for gitops-demo.
//
// A Handler collects cleanup hooks and runs them in reverse registration
// order, bounded by a timeout, once the process receives SIGINT or SIGTERM
// or shutdown is triggered in code.
//
// Usage:
//
//	h := shutdown.NewHandler(30 * time.Second)
//	h.OnShutdown(server.Shutdown)
//	err := h.Wait(ctx)
package shutdown
