// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package http

import (
	"fmt"
	"io"
	"net/http"
)

// ProxyClient sends image chunks to the transfer proxy.  The connection
// is owned by a single upload and is not shared across invocations.
type ProxyClient struct {
	client *http.Client
}

// NewProxyClient builds the proxy connection with the same trust
// settings used for the engine: CA bundle from the caller-supplied
// path, or no verification at all when insecureSkipTLSVerify is set.
func NewProxyClient(caFile string, insecureSkipTLSVerify bool) (*ProxyClient, error) {
	client, err := NewTLSClient(caFile, insecureSkipTLSVerify)
	if err != nil {
		return nil, err
	}
	return &ProxyClient{client: client}, nil
}

// PutChunk PUTs one chunk of an image to the proxy URL.  start and end
// are 0-based and inclusive, per the Content-Range grammar.  The signed
// ticket authorizes the request.  The HTTP status code is returned so
// the caller can decide whether the transfer must be abandoned.
func (p *ProxyClient) PutChunk(URL string, payload io.Reader, ticket string, start int64, end int64, total int64) (int, error) {
	req, err := http.NewRequest("PUT", URL, payload)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Authorization", "Bearer "+ticket)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, total))
	req.Header.Set("Cache-Control", "no-cache")
	req.ContentLength = end - start + 1

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	if resp == nil {
		return 0, fmt.Errorf("HTTP PUT to %s returned a nil response", URL)
	}
	defer resp.Body.Close()

	// Drain the body so the connection can be reused for the next chunk
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// Close tears down the proxy connection.
func (p *ProxyClient) Close() {
	p.client.CloseIdleConnections()
}
