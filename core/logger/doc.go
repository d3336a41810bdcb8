// Package logger provides slog attribute helpers shared across the SDK.
// Helpers return an empty Attr for zero inputs, so call sites never need nil
// checks:
//
//	log.Info("request finished",
//		logger.Component("client"),
//		logger.StatusCode(resp.StatusCode),
//		logger.Error(err), // safe when err is nil
//	)
package logger
