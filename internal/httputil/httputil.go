// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned by Do when the server responds with a status
// outside the 2xx range. The response body has already been drained and
// closed.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
}

// Do executes an HTTP request and verifies a 2xx response. Transport
// failures and non-2xx statuses both come back as errors so callers can
// treat every unreachable-service condition uniformly. Each call is a
// single attempt: the search stage makes one fresh request per
// invocation, with no retries, backoff, or caching.
func Do(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := client.Do(req.Clone(ctx))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	return resp, nil
}
