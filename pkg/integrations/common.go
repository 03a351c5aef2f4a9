package integrations

import "net/http"

// NewHTTPClient creates the HTTP client used for registry requests.
// It sets no timeout: a lookup runs until the transport succeeds or fails,
// or until the request context is cancelled.
func NewHTTPClient() *http.Client {
	return &http.Client{}
}
