// Package ropzap logs reasons and results with go.uber.org/zap.
package ropzap
