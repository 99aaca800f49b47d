// Package httpserver runs an http.Handler with configured timeouts and
// shuts it down gracefully on context cancellation, SIGINT or SIGTERM.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
