package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// TokenType is the Authorization scheme Zoho APIs expect instead of
// the usual "Bearer".
const TokenType = "Zoho-oauthtoken"

// tokenResp is the raw JSON response from the Zoho accounts token
// endpoint. Zoho reports errors in-band with a 200 status, so Error is
// checked alongside AccessToken.
type tokenResp struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	APIDomain   string `json:"api_domain"`
	Error       string `json:"error"`
}

// AcquireToken exchanges a long-lived refresh token for a short-lived
// access token via the refresh_token grant. A single attempt is made;
// any failure is returned to the caller, which is expected to abort
// the run (the external scheduler retries on the next cycle).
//
// The returned token carries the Zoho Authorization scheme in its
// TokenType so oauth2.Token.SetAuthHeader produces the header the
// Projects API expects.
func (c *Client) AcquireToken(ctx context.Context, clientID, clientSecret, refreshToken string) (*oauth2.Token, error) {
	form := url.Values{
		"refresh_token": {refreshToken},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"grant_type":    {"refresh_token"},
	}

	endpoint := c.authBaseURL + "/oauth/v2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	var tr tokenResp
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if tr.AccessToken == "" {
		// Surface the whole response: Zoho's in-band errors
		// ("invalid_code", "invalid_client", ...) are only diagnosable
		// from the body.
		return nil, fmt.Errorf("no access token in response: %s", strings.TrimSpace(string(body)))
	}

	tok := &oauth2.Token{
		AccessToken: tr.AccessToken,
		TokenType:   TokenType,
	}
	if tr.ExpiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return tok, nil
}
