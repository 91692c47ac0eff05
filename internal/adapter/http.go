// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	bindPath             = "/api/device/bind"
	deviceInfoPath       = "/api/device/info"
	trackingPath         = "/api/device/tracking"
	resourceManifestPath = "/api/device/resources/manifest"
	accountManifestPath  = "/api/device/account/manifest"
	firmwarePath         = "/api/device/firmware"

	deviceIDHeader  = "X-Device-ID"
	sessionIDHeader = "X-Session-ID"
)

type httpCloudAdapter struct {
	client   *utils.HTTPClient
	deviceID string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCloudAdapter constructs an HTTP/JSON implementation of [CloudAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and the device id header sent with every request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCloudAdapter(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (CloudAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetHeader(deviceIDHeader, appCfg.DeviceID).
		OnBeforeRequest(setSessionID)

	return &httpCloudAdapter{client: client, deviceID: appCfg.DeviceID, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [CloudAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpCloudAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [CloudAdapter].
func (h *httpCloudAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Bind implements [CloudAdapter]. It POSTs req to POST /api/device/bind. The
// account id is read from the response body and, when the body omits it,
// from the subject of the returned device token.
func (h *httpCloudAdapter) Bind(ctx context.Context, req models.BindRequest) (models.BindResponse, error) {
	var bound models.BindResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&bound).
		Post(bindPath)
	if err != nil {
		return models.BindResponse{}, fmt.Errorf("%w: bind: %w", ErrRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() == http.StatusConflict {
			return models.BindResponse{}, fmt.Errorf("%w: %w", ErrAlreadyBound, err)
		}
		return models.BindResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.BindResponse{}, fmt.Errorf("%w: bind parse bearer token: %w", ErrDecodeResponse, err)
	}

	claims, err := utils.ParseDeviceToken(token)
	if err != nil {
		return models.BindResponse{}, fmt.Errorf("%w: bind parse device token: %w", ErrDecodeResponse, err)
	}
	if bound.AccountID == "" {
		bound.AccountID = claims.AccountID
	}
	bound.DeviceToken = token

	h.SetToken(token)
	h.logger.Info().
		Str("func", "httpCloudAdapter.Bind").
		Str("account_id", bound.AccountID).
		Time("token_expires_at", claims.ExpiresAt).
		Msg("device bound")

	return bound, nil
}

// UploadDeviceInfo implements [CloudAdapter]. POST /api/device/info.
func (h *httpCloudAdapter) UploadDeviceInfo(ctx context.Context, info models.DeviceInfo) error {
	if info.DeviceID == "" {
		info.DeviceID = h.deviceID
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(info).
		Post(deviceInfoPath)
	if err != nil {
		return fmt.Errorf("%w: upload device info: %w", ErrRequest, err)
	}

	return mapHTTPError(resp)
}

// UploadTracking implements [CloudAdapter]. It sets upload.Length and POSTs
// the batch to POST /api/device/tracking.
func (h *httpCloudAdapter) UploadTracking(ctx context.Context, upload models.TrackingUpload) error {
	if upload.DeviceID == "" {
		upload.DeviceID = h.deviceID
	}
	upload.Length = len(upload.Records)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(upload).
		Post(trackingPath)
	if err != nil {
		return fmt.Errorf("%w: upload tracking: %w", ErrRequest, err)
	}

	return mapHTTPError(resp)
}

// FetchResourceManifest implements [CloudAdapter]. The raw body is returned
// along with the decoded document so the caller can persist it unchanged.
func (h *httpCloudAdapter) FetchResourceManifest(ctx context.Context, firmwareVersion string) (models.ResourceManifestInfo, error) {
	req := h.authedRequest(ctx)
	if firmwareVersion != "" {
		req.SetQueryParam("firmware", firmwareVersion)
	}

	raw, err := h.fetch(req, resourceManifestPath)
	if err != nil {
		return models.ResourceManifestInfo{}, err
	}

	var doc models.ResourceManifestDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return models.ResourceManifestInfo{}, fmt.Errorf("%w: resource manifest: %w", ErrDecodeResponse, err)
	}

	return models.ResourceManifestInfo{Raw: raw, Document: doc}, nil
}

// FetchAccountManifest implements [CloudAdapter].
func (h *httpCloudAdapter) FetchAccountManifest(ctx context.Context) (models.AccountManifestInfo, error) {
	raw, err := h.fetch(h.authedRequest(ctx), accountManifestPath)
	if err != nil {
		return models.AccountManifestInfo{}, err
	}

	var doc models.AccountManifestDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return models.AccountManifestInfo{}, fmt.Errorf("%w: account manifest: %w", ErrDecodeResponse, err)
	}

	return models.AccountManifestInfo{Raw: raw, Document: doc}, nil
}

// FetchFirmwareInfo implements [CloudAdapter].
func (h *httpCloudAdapter) FetchFirmwareInfo(ctx context.Context) (models.FirmwareInfo, error) {
	raw, err := h.fetch(h.authedRequest(ctx), firmwarePath)
	if err != nil {
		return models.FirmwareInfo{}, err
	}

	var info models.FirmwareInfo
	if err = json.Unmarshal(raw, &info); err != nil {
		return models.FirmwareInfo{}, fmt.Errorf("%w: firmware info: %w", ErrDecodeResponse, err)
	}

	return info, nil
}

func (h *httpCloudAdapter) fetch(req *resty.Request, path string) ([]byte, error) {
	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrRequest, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// setSessionID tags requests made on behalf of a sync session.
func setSessionID(_ *resty.Client, r *resty.Request) error {
	if id, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		r.SetHeader(sessionIDHeader, id)
	}
	return nil
}

func (h *httpCloudAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
