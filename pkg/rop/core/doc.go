// Package core contains pipeline plumbing utilities: channel helpers, worker
// and logger configuration via context, the locomotive that drives stages,
// and the cancellation handlers that drain a canceled pipeline. It does not
// define business logic; package lite builds its stages on top of it.
package core
