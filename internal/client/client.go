package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trends/trends_api/internal/api/dto"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/logging"
	"github.com/trends/trends_api/internal/models"
)

const (
	apiPrefix            = "/api/v1"
	trendsEndpoint       = apiPrefix + "/trends"
	healthEndpoint       = apiPrefix + "/health"
	clientRequestTimeout = time.Second * 10
	clientSystem         = "client"
)

type Client struct {
	logger *logging.Logger
	c      *http.Client
	host   string
}

func New(host string, log *logging.Logger) *Client {
	return &Client{
		c:      &http.Client{Timeout: clientRequestTimeout},
		host:   strings.TrimRight(host, "/"),
		logger: log.WithClientTag(),
	}
}

type errorResponse struct {
	Message string         `json:"message"`
	System  string         `json:"system"`
	Details map[string]any `json:"details"`
}

func (c *Client) Health(ctx context.Context) (bool, error) {
	var healthy bool
	err := c.do(ctx, http.MethodGet, healthEndpoint, nil, &healthy)
	return healthy, err
}

func (c *Client) ListTrends(ctx context.Context, limit, offset int) (*dto.TrendListResponse, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	path := trendsEndpoint
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp := new(dto.TrendListResponse)
	if err := c.do(ctx, http.MethodGet, path, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateTrend(ctx context.Context, req dto.CreateTrendRequest) (*models.Trend, error) {
	trend := new(models.Trend)
	if err := c.do(ctx, http.MethodPost, trendsEndpoint, req, trend); err != nil {
		return nil, err
	}
	return trend, nil
}

func (c *Client) GetTrend(ctx context.Context, id uuid.UUID) (*models.Trend, error) {
	trend := new(models.Trend)
	if err := c.do(ctx, http.MethodGet, trendsEndpoint+"/"+id.String(), nil, trend); err != nil {
		return nil, err
	}
	return trend, nil
}

func (c *Client) GetTrendByName(ctx context.Context, name string) (*models.Trend, error) {
	trend := new(models.Trend)
	path := trendsEndpoint + "/by-name/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, trend); err != nil {
		return nil, err
	}
	return trend, nil
}

func (c *Client) UpdateTrendScore(ctx context.Context, id uuid.UUID, score float64) error {
	return c.do(ctx, http.MethodPatch, trendsEndpoint+"/"+id.String()+"/score",
		dto.UpdateScoreRequest{Score: &score}, nil)
}

func (c *Client) DeleteTrend(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, trendsEndpoint+"/"+id.String(), nil, nil)
}

// ImportTrends creates all trends in one request. The server writes none of
// them if any record is rejected.
func (c *Client) ImportTrends(ctx context.Context, trends []dto.CreateTrendRequest) (*dto.ImportTrendsResponse, error) {
	resp := new(dto.ImportTrendsResponse)
	if err := c.do(ctx, http.MethodPost, trendsEndpoint+"/import",
		dto.ImportTrendsRequest{Trends: trends}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) PurgeTrends(ctx context.Context) (int64, error) {
	var resp dto.PurgeTrendsResponse
	if err := c.do(ctx, http.MethodDelete, trendsEndpoint, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errlocal.NewErrBadRequest("failed to encode request", err.Error(), nil)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, body)
	if err != nil {
		return errlocal.NewErrInternal("failed to build request", err.Error(),
			map[string]any{"path": path})
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.WithField("method", method).WithField("path", path).Debug("sending request")

	resp, err := c.c.Do(req)
	if err != nil {
		return errlocal.NewErrInternal("failed to reach server", err.Error(),
			map[string]any{"host": c.host})
	}
	defer func() { _ = resp.Body.Close() }()

	decoder := json.NewDecoder(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := parseErrorResponse(decoder, resp.StatusCode)
		c.logger.WithLocalError(err).WithField("status", resp.StatusCode).Debug("request failed")
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := decoder.Decode(out); err != nil {
		return errlocal.NewErrInternal("failed to decode response", err.Error(),
			map[string]any{"path": path})
	}
	return nil
}

// parseErrorResponse turns an error status back into the errlocal kind the
// server classified it as. The server's message is kept as is.
func parseErrorResponse(decoder *json.Decoder, code int) error {
	var errResp errorResponse
	msg := http.StatusText(code)
	if err := decoder.Decode(&errResp); err == nil {
		msg = errResp.Message
	}
	system := errResp.System
	if system == "" {
		system = fmt.Sprintf("%s: status %d", clientSystem, code)
	}

	switch code {
	case http.StatusNotFound:
		return errlocal.NewErrNotFound(msg, system, errResp.Details)
	case http.StatusBadRequest:
		return errlocal.NewErrBadRequest(msg, system, errResp.Details)
	case http.StatusConflict:
		return errlocal.NewErrConflict(msg, system, errResp.Details)
	case http.StatusTooManyRequests:
		return errlocal.NewErrTooManyRequests(msg)
	default:
	}

	return errlocal.NewErrInternal(msg, system, errResp.Details)
}
