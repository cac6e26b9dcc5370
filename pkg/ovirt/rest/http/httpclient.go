// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package http

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Ensure REST implements the SPI interface
var _ HeaderAdder = &REST{}

type TokenResetter interface {
	ClearAccessToken()
}

type HeaderAdder interface {
	HeaderAcceptJSON(header *http.Header)
	HeaderContentJSON(header *http.Header)
	HeaderUrlEncoded(header *http.Header)
	HeaderBearerToken(header *http.Header, token string)
}

type REST struct {
	endpointURL   string
	client        *http.Client
	tokenResetter TokenResetter
}

// NewRestClient returns a REST client for the engine endpoint.  The
// trust anchors are loaded from caFile when one is given; setting
// insecureSkipTLSVerify disables certificate and hostname checking
// entirely.
func NewRestClient(resetter TokenResetter, endpointURL string, caFile string, insecureSkipTLSVerify bool) (*REST, error) {
	client, err := NewTLSClient(caFile, insecureSkipTLSVerify)
	if err != nil {
		return nil, err
	}
	return &REST{
		endpointURL:   endpointURL,
		client:        client,
		tokenResetter: resetter,
	}, nil
}

// NewTLSClient builds an HTTP client honoring the given trust settings.
// It is shared by the engine REST client and the image transfer proxy
// connection.
func NewTLSClient(caFile string, insecureSkipTLSVerify bool) (*http.Client, error) {
	tlsConfig := &tls.Config{}
	if insecureSkipTLSVerify {
		tlsConfig.InsecureSkipVerify = true
	} else if caFile != "" {
		pool, err := rootCertPool(caFile)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = pool
	}

	tr := &http.Transport{
		TLSClientConfig:       tlsConfig,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: tr}, nil
}

// Close releases the idle connections held by the underlying client.
func (r REST) Close() {
	r.client.CloseIdleConnections()
}

func (r REST) HeaderAcceptJSON(header *http.Header) {
	header.Set("Accept", "application/json")
}
func (r REST) HeaderContentJSON(header *http.Header) {
	header.Set("Content-Type", "application/json")
}
func (r REST) HeaderUrlEncoded(header *http.Header) {
	header.Set("Content-Type", "application/x-www-form-urlencoded")
}
func (r REST) HeaderBearerToken(header *http.Header, token string) {
	header.Set("Authorization", "Bearer "+token)
}

// rootCertPool loads the PEM bundle at the path the caller supplied.
func rootCertPool(caFile string) (*x509.CertPool, error) {
	caData, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("could not read CA file %s: %v", caFile, err)
	}
	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(caData) {
		return nil, fmt.Errorf("CA file %s contains no usable certificates", caFile)
	}
	return certPool, nil
}

func resolveURL(endpoint string, path string) string {
	var URL string
	if strings.HasPrefix(endpoint, "https://") {
		URL = fmt.Sprintf("%s%s", endpoint, path)
	} else {
		URL = fmt.Sprintf("https://%s%s", endpoint, path)
	}
	URL = strings.TrimSuffix(URL, "/")
	return URL
}
