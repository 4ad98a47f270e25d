// Package cloudflare implements store subdomain provisioning against the
// Cloudflare DNS records API.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"rocktea/config"
	domainerrors "rocktea/internal/domain/errors"
	"rocktea/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// Provider implements service.DNSProvider against the Cloudflare API. In
// local mode every call is a logged no-op so development machines do not need
// zone credentials.
type Provider struct {
	baseURL      string
	apiToken     string
	zoneID       string
	targetDomain string
	targetHost   string
	localMode    bool
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewProvider is the constructor for the Cloudflare DNS provider.
func NewProvider(cfg *config.Config, logger *slog.Logger) service.DNSProvider {
	timeout := cfg.Cloudflare.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Provider{
		baseURL:      "https://api.cloudflare.com/client/v4",
		apiToken:     cfg.Cloudflare.APIToken,
		zoneID:       cfg.Cloudflare.ZoneID,
		targetDomain: cfg.Cloudflare.TargetDomain,
		targetHost:   cfg.Cloudflare.TargetHost,
		localMode:    cfg.Cloudflare.LocalMode,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger,
	}
}

// dnsRecord is the subset of Cloudflare's record resource this provider uses.
type dnsRecord struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Proxied bool   `json:"proxied"`
	TTL     int    `json:"ttl"`
}

// UpsertRecord binds slug.<target domain> as a CNAME to the target host.
// Create-or-replace, so retrying after a failure never duplicates the record.
func (p *Provider) UpsertRecord(ctx context.Context, slug string) error {
	name := p.recordName(slug)
	if p.localMode {
		p.logger.InfoContext(ctx, "local mode, skipping dns upsert", slog.String("record", name))

		return nil
	}

	record := dnsRecord{
		Type:    "CNAME",
		Name:    name,
		Content: p.targetHost,
		Proxied: true,
		TTL:     1, // Automatic.
	}

	existing, err := p.findRecord(ctx, name)
	if err != nil {
		return err
	}

	if existing == nil {
		return p.do(ctx, http.MethodPost, fmt.Sprintf("/zones/%s/dns_records", p.zoneID), &record)
	}

	return p.do(ctx, http.MethodPut, fmt.Sprintf("/zones/%s/dns_records/%s", p.zoneID, existing.ID), &record)
}

// DeleteRecord removes the CNAME for a slug. A record that does not exist is
// already deleted, not an error.
func (p *Provider) DeleteRecord(ctx context.Context, slug string) error {
	name := p.recordName(slug)
	if p.localMode {
		p.logger.InfoContext(ctx, "local mode, skipping dns delete", slog.String("record", name))

		return nil
	}

	existing, err := p.findRecord(ctx, name)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	return p.do(ctx, http.MethodDelete, fmt.Sprintf("/zones/%s/dns_records/%s", p.zoneID, existing.ID), nil)
}

func (p *Provider) recordName(slug string) string {
	return slug + "." + p.targetDomain
}

func (p *Provider) findRecord(ctx context.Context, name string) (*dnsRecord, error) {
	path := fmt.Sprintf("/zones/%s/dns_records?type=CNAME&name=%s", p.zoneID, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build cloudflare request")
	}
	p.setHeaders(req)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cloudflare response")
	}

	var decoded struct {
		Success bool        `json:"success"`
		Result  []dnsRecord `json:"result"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.Wrapf(err, "failed to decode cloudflare response (http %d)", resp.StatusCode)
	}
	if !decoded.Success {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage(
			fmt.Sprintf("cloudflare record lookup rejected: http %d", resp.StatusCode))
	}
	if len(decoded.Result) == 0 {
		return nil, nil
	}

	return &decoded.Result[0], nil
}

func (p *Provider) do(ctx context.Context, method, path string, record *dnsRecord) error {
	var body io.Reader
	if record != nil {
		payload, err := json.Marshal(record)
		if err != nil {
			return errors.Wrap(err, "failed to encode dns record")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build cloudflare request")
	}
	p.setHeaders(req)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrProviderUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read cloudflare response")
	}

	var decoded struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return errors.Wrapf(err, "failed to decode cloudflare response (http %d)", resp.StatusCode)
	}
	if !decoded.Success {
		return domainerrors.ErrProviderUnavailable.WrapMessage(
			fmt.Sprintf("cloudflare %s %s rejected: http %d", method, path, resp.StatusCode))
	}

	return nil
}

func (p *Provider) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+p.apiToken)
	req.Header.Set("Content-Type", "application/json")
}
