// Package ropzerolog logs reasons and results with github.com/rs/zerolog.
package ropzerolog
