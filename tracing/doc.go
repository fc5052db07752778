// Package tracing wraps OpenTelemetry so that task manager operations can be
// recorded as spans without callers importing the upstream packages.
// Until Init or InitWithExporter is called the global no-op provider is used.
package tracing
