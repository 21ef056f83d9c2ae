// Package logging provides the logging facade used by the clamav bindings.
//
// The Logger interface wraps a subset of log/slog so that applications can
// plug in their own sink. Two implementations ship with the package:
//
//	// slog, defaulting to slog.Default()
//	logger := logging.New(nil)
//
//	// zap
//	z, _ := zap.NewDevelopment()
//	logger = logging.NewZap(z)
//
//	clamav.SetLogger(logger)
//
// The bindings log handle lifecycle events at debug level. Messages emitted
// by libclamav itself are forwarded with a source=libclamav attribute and
// mapped by severity: verbose messages to Debug, warnings to Warn and errors
// to Error.
package logging
