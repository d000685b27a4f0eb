// Gameshelf
// Copyright (c) 2026 The Gameshelf Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Gameshelf.
//
// Gameshelf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gameshelf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gameshelf.  If not, see <http://www.gnu.org/licenses/>.

// Package steamweb queries the Steam Web API for friends, presence and
// workshop content. Every call needs a Web API key. Without one, or when
// the request fails, calls return empty results and log a warning.
package steamweb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gameshelf/gameshelf/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sonh/qs"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.steampowered.com"

	// RequestsPerMinute and BurstSize pace outgoing calls so a large
	// friends list or workshop page does not trip the API's own limits.
	RequestsPerMinute = 60
	BurstSize         = 10
)

var ErrCredentialMissing = errors.New("steam web api key not configured")

type Client struct {
	http    *httpclient.Client
	enc     *qs.Encoder
	limiter *rate.Limiter
	baseURL string
	apiKey  string
}

type Option func(*Client)

// WithBaseURL points the client at another API host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithHTTPClient(h *httpclient.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithRateLimiter replaces the default request pacing.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: DefaultBaseURL,
		http:    httpclient.DefaultClient,
		enc:     qs.NewEncoder(),
		limiter: rate.NewLimiter(rate.Limit(float64(RequestsPerMinute)/60.0), BurstSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasCredential reports whether an API key is configured.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

func (c *Client) checkCredential(op string) bool {
	if c.HasCredential() {
		return true
	}
	log.Warn().Err(ErrCredentialMissing).Str("op", op).Msg("skipping Steam Web API request")
	return false
}

// get encodes params as the query string of endpoint and decodes the JSON
// response into out.
func (c *Client) get(ctx context.Context, endpoint string, params any, out any) error {
	values, err := c.enc.Values(params)
	if err != nil {
		return fmt.Errorf("encode query: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limit: %w", endpoint, err)
	}

	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(values) > 0 {
		u += "?" + values.Encode()
	}

	if err := c.http.GetJSON(ctx, u, out); err != nil {
		return fmt.Errorf("%s: %w", endpoint, redact(err, c.apiKey))
	}
	return nil
}

// redact keeps the API key out of errors that embed the request URL.
func redact(err error, key string) error {
	if key == "" {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, key, "REDACTED")
	}
	return err
}
