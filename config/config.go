/*
 *  Copyright 2023 Pius Alfred <me.pius1102@gmail.com>
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy of this software
 *  and associated documentation files (the “Software”), to deal in the Software without restriction,
 *  including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense,
 *  and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so,
 *  subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all copies or substantial
 *  portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT
 *  LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 *  IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
 *  WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 *  SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kanzihq/whatsapp-go"
)

type (
	Config struct {
		BaseURL           string
		APIVersion        string
		AccessToken       string
		PhoneNumberID     string
		BusinessAccountID string
		AppSecret         string
		AppID             string
		SecureRequests    bool
		DebugLogLevel     string

		// VerifyToken is compared against hub.verify_token on the webhook
		// challenge GET (§6 External interfaces).
		VerifyToken string
		// WebhookEndpoint is this process's local path the POST/GET above
		// are served on, used only to document/validate CallbackURL.
		WebhookEndpoint string
		// CallbackURL is the public URL Meta is told to POST updates to
		// during the subscription bootstrap (§4.F).
		CallbackURL string
		// WebhookFields lists the subscription fields requested during
		// bootstrap, e.g. "messages", "message_template_status_update".
		WebhookFields []string
		// BusinessPrivateKey is the PEM-encoded RSA private key used to
		// unwrap a Flow request's AES key (§4.A). May be password
		// protected; see BusinessPrivateKeyPassword.
		BusinessPrivateKey string
		// BusinessPrivateKeyPassword decrypts BusinessPrivateKey when it is
		// an encrypted PEM/PKCS8 block.
		BusinessPrivateKeyPassword string
		// FilterUpdates drops inbound "messages" changes whose
		// phone_number_id differs from PhoneNumberID (§4.C Phone-ID
		// filter) when true.
		FilterUpdates bool
		// ContinueHandling lets every matching handler run instead of
		// stopping at the first one whose filters pass (§4.D).
		ContinueHandling bool
		// SkipDuplicateUpdates enables the in-memory dedupe set (§4.F
		// step 3).
		SkipDuplicateUpdates bool
		// ValidateUpdates enables HMAC signature verification on inbound
		// webhook POSTs (§4.F step 1).
		ValidateUpdates bool
		// WebhookChallengeDelay is how long the bootstrap routine waits
		// before POSTing the subscription request, so the webhook HTTP
		// listener is already accepting Meta's challenge GET (§4.F).
		WebhookChallengeDelay time.Duration
	}

	Reader interface {
		Read(ctx context.Context) (*Config, error)
	}

	ReaderFunc func(ctx context.Context) (*Config, error)
)

func (fn ReaderFunc) Read(ctx context.Context) (*Config, error) {
	return fn(ctx)
}

const ErrInvalidConfig = whatsapp.Error("invalid config")

func Validate(conf *Config) error {
	errs := make([]error, 0)
	if !whatsapp.IsCorrectAPIVersion(conf.APIVersion) {
		errVersion := fmt.Errorf("invalid API version: %s,lowest supported version is :%s",
			conf.APIVersion, whatsapp.LowestSupportedAPIVersion)

		errs = append(errs, errVersion)
	}

	if conf.SecureRequests && conf.AppSecret == "" {
		errs = append(errs, errors.New("app secret is required for secure requests"))
	}

	return errors.Join(errs...)
}

func ReadValidate(ctx context.Context, reader Reader) (*Config, error) {
	conf, err := reader.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read config: %w", ErrInvalidConfig, err)
	}

	return conf, Validate(conf)
}
