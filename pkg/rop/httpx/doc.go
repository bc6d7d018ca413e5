// Package httpx writes results as JSON HTTP responses. A YAML Config names
// the service namespace, the reason tags exposed to clients and the default
// failure status; an error may pick its own status through a tag.
package httpx
