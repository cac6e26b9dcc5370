// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package ovclient

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/ovirt-tools/ovdisk/pkg/config/types"
	"github.com/ovirt-tools/ovdisk/pkg/constants"
	ovhttp "github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/http"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/json"
)

type Credentials struct {
	// Username is the OAuth2 username
	Username string

	// Password is the OAuth2 user password
	Password string

	// Scope is the OAuth2 scope
	Scope string
}

type AuthData struct {
	AccessToken string `json:"access_token"`
}

type Client struct {
	// AccessToken is the REST bearer token
	AccessToken string

	// ApiServerURL is the endpoint to the oVirt API server
	ApiServerURL string

	// CAFile is the path to the PEM bundle trusted for this endpoint
	CAFile string

	// REST is the HTTP REST client used for the oVirt REST API
	*ovhttp.REST

	*Credentials

	InsecureSkipTLSVerify bool
}

// GetOVClient authenticates against the configured engine and returns a
// client holding a validated bearer token.
func GetOVClient(api types.OVirtAPI) (*Client, error) {
	creds, err := getCredentials()
	if err != nil {
		return nil, err
	}

	ovcli := &Client{
		ApiServerURL:          api.ServerURL,
		CAFile:                api.CAFile,
		Credentials:           creds,
		InsecureSkipTLSVerify: api.InsecureSkipTLSVerify,
	}

	if err := ovcli.ensureAccessToken(); err != nil {
		return nil, err
	}

	// Validate the token by getting system information
	const path = "/api"
	body, err := ovcli.REST.Get(ovcli.AccessToken, path)
	if err != nil {
		err = fmt.Errorf("Error calling HTTP GET for URL %s: %v", ovcli.ApiServerURL, err)
		log.Error(err)
		return nil, err
	}
	if len(body) == 0 {
		err = fmt.Errorf("No system data found at %v", ovcli.ApiServerURL)
		log.Error(err)
		return nil, err
	}

	return ovcli, nil
}

// ensureAccessToken ensures that the access token exists
func (o *Client) ensureAccessToken() error {
	const tokenPath = "/sso/oauth/token"

	if o.AccessToken != "" {
		return nil
	}

	rest, err := ovhttp.NewRestClient(o, o.ApiServerURL, o.CAFile, o.InsecureSkipTLSVerify)
	if err != nil {
		return err
	}
	o.REST = rest

	// create the payload to send using POST
	d := url.Values{}
	d.Set("username", o.Credentials.Username)
	d.Set("password", o.Credentials.Password)
	d.Set("scope", o.Credentials.Scope)
	d.Set("grant_type", "password")

	// call the server to get the access token
	h := &http.Header{}
	o.REST.HeaderUrlEncoded(h)
	o.REST.HeaderAcceptJSON(h)
	body, _, err := o.REST.Post(tokenPath, strings.NewReader(d.Encode()), h)
	if err != nil {
		err = fmt.Errorf("Error doing HTTP POST to oVirt server: %v", err)
		log.Error(err)
		return err
	}
	if len(body) == 0 {
		err = fmt.Errorf("Error doing HTTP POST to create access token.  No body returned by server")
		log.Error(err)
		return err
	}

	// extract access token from results
	ad := &AuthData{}
	if err = json.Unmarshal(body, ad); err != nil {
		err = fmt.Errorf("Error UnMarshalling JSON for credentials: %v", err)
		log.Error(err)
		return err
	}

	o.AccessToken = ad.AccessToken
	if o.AccessToken == "" {
		err = fmt.Errorf("Access token missing from body returned by POST")
		log.Error(err)
		return err
	}

	return nil
}

// ClearAccessToken is called when there is a REST HTTP error
func (o *Client) ClearAccessToken() {
	o.AccessToken = ""
}

// Close releases the connection owned by this client.  The engine
// session is left alone so the token survives for other invocations.
func (o *Client) Close() {
	if o.REST != nil {
		o.REST.Close()
	}
}

func getCredentials() (*Credentials, error) {
	c := Credentials{}

	c.Username = os.Getenv(constants.EnvUsername)
	if c.Username == "" {
		return nil, fmt.Errorf("Missing environment variable %s used to specify the oVirt username", constants.EnvUsername)
	}
	c.Password = os.Getenv(constants.EnvPassword)
	if c.Password == "" {
		return nil, fmt.Errorf("Missing environment variable %s used to specify the oVirt password", constants.EnvPassword)
	}
	c.Scope = os.Getenv(constants.EnvScope)
	if c.Scope == "" {
		c.Scope = constants.DefaultScope
	}

	return &c, nil
}
