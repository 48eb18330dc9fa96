/*
 * Copyright 2023 Pius Alfred <me.pius1102@gmail.com>
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of this software
 * and associated documentation files (the “Software”), to deal in the Software without restriction,
 * including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
 * and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all copies or substantial
 * portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT
 * LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
 * WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package webhooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type (
	// CallbackBootstrapRequest describes the one-time subscription call a
	// process makes on startup so Meta knows where to POST updates (§4.F
	// Callback-URL bootstrap). AppAccessToken is the already-obtained app
	// access token (typically "<app_id>|<app_secret>" or a token minted via
	// auth.Client.GenerateAccessToken); this package does not mint it.
	CallbackBootstrapRequest struct {
		AppID          string
		AppAccessToken string
		CallbackURL    string
		VerifyToken    string
		Fields         []string
		// Delay is how long Bootstrap waits before issuing the POST, giving
		// the embedded HTTP server time to come up and start answering the
		// GET challenge Meta issues right after this call succeeds.
		Delay time.Duration
	}

	// CallbackBootstrapResponse mirrors the subscriptions endpoint's
	// {success:true} shape.
	CallbackBootstrapResponse struct {
		Success bool `json:"success"`
	}
)

// Bootstrap registers callback URL as the webhook endpoint for AppID,
// subscribing to Fields, via POST /<api_version>/<app_id>/subscriptions.
// Callers normally invoke this once at startup after WebhookChallengeDelay
// has elapsed, or supply req.Delay and let Bootstrap sleep internally.
func Bootstrap(
	ctx context.Context,
	client *http.Client,
	baseURL, apiVersion string,
	req *CallbackBootstrapRequest,
) (*CallbackBootstrapResponse, error) {
	if req.Delay > 0 {
		timer := time.NewTimer(req.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	reqURL, err := url.JoinPath(baseURL, apiVersion, req.AppID, "subscriptions")
	if err != nil {
		return nil, fmt.Errorf("whatsapp: failed to create bootstrap request url: %w", err)
	}

	form := url.Values{}
	form.Set("object", "whatsapp_business_account")
	form.Set("callback_url", req.CallbackURL)
	form.Set("verify_token", req.VerifyToken)
	form.Set("fields", strings.Join(req.Fields, ","))
	form.Set("access_token", req.AppAccessToken)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("whatsapp: failed to create bootstrap request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: failed to bootstrap subscription: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("whatsapp: failed to read bootstrap response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("whatsapp: failed to bootstrap subscription: %s: %s", resp.Status, string(bodyBytes))
	}

	var response CallbackBootstrapResponse
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return nil, fmt.Errorf("whatsapp: failed to unmarshal bootstrap response: %w", err)
	}

	return &response, nil
}
