// Package ropotel records results on OpenTelemetry spans.
package ropotel
