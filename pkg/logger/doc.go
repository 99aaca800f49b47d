// Package logger builds *slog.Logger instances with environment presets,
// static attributes and attributes extracted from the request context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "numvalid"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "batch checked", logger.Profile("money"), logger.Count(12))
//
// Production and staging presets emit JSON at INFO; development emits text at
// DEBUG. Context extractors run on every record, so request-scoped values are
// never stale.
package logger
