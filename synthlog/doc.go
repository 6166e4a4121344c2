// Package synthlog wraps zerolog behind the small logging surface the rest
// of this module actually needs: structured key/value fields and leveled
// Info/Debug/Warn/Error calls, with a no-op implementation for callers
// (mainly tests) that don't want log output at all.
package synthlog
