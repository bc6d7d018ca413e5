// Package ropprom counts result outcomes with Prometheus counters.
package ropprom
