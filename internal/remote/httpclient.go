package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "shopsync/pkg/errors"
	"shopsync/pkg/models"
)

// HTTPClient is a thin JSON-over-HTTP implementation of Store. It owns the
// transport concerns the engine deliberately stays out of: authentication
// headers, status-code classification and payload encoding. It is stateless
// and safe for concurrent use.
type HTTPClient struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewHTTPClient creates a store client for the given API endpoint.
func NewHTTPClient(endpoint, token string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *HTTPClient) FetchSnapshot(ctx context.Context) (*models.RemoteSnapshot, error) {
	var snapshot models.RemoteSnapshot
	if err := c.do(ctx, http.MethodGet, "/configuration", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *HTTPClient) CreateEntity(ctx context.Context, section Section, payload interface{}) (*Entity, error) {
	var entity Entity
	path := fmt.Sprintf("/%s", section)
	if err := c.do(ctx, http.MethodPost, path, payload, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (c *HTTPClient) UpdateEntity(ctx context.Context, section Section, id string, patch interface{}) (*Entity, error) {
	var entity Entity
	path := fmt.Sprintf("/%s/%s", section, url.PathEscape(id))
	if err := c.do(ctx, http.MethodPatch, path, patch, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (c *HTTPClient) FindAttributesByName(ctx context.Context, names []string, kind models.AttributeKind) ([]models.RemoteAttribute, error) {
	request := struct {
		Names []string             `json:"names"`
		Kind  models.AttributeKind `json:"kind"`
	}{Names: names, Kind: kind}

	var attrs []models.RemoteAttribute
	if err := c.do(ctx, http.MethodPost, "/attributes/search", request, &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

func (c *HTTPClient) CreateAttribute(ctx context.Context, def models.AttributeInput, kind models.AttributeKind) (*models.RemoteAttribute, error) {
	request := struct {
		models.AttributeInput
		Kind models.AttributeKind `json:"kind"`
	}{AttributeInput: def, Kind: kind}

	var attr models.RemoteAttribute
	if err := c.do(ctx, http.MethodPost, "/attributes", request, &attr); err != nil {
		return nil, err
	}
	return &attr, nil
}

func (c *HTTPClient) AppendAttributeValues(ctx context.Context, attributeID string, values []string) error {
	request := struct {
		Values []string `json:"values"`
	}{Values: values}
	path := fmt.Sprintf("/attributes/%s/values", url.PathEscape(attributeID))
	return c.do(ctx, http.MethodPost, path, request, nil)
}

func (c *HTTPClient) AssignAttributes(ctx context.Context, ownerID string, attributeIDs []string, role AttributeRole) error {
	request := struct {
		AttributeIDs []string      `json:"attributeIds"`
		Role         AttributeRole `json:"role"`
	}{AttributeIDs: attributeIDs, Role: role}
	path := fmt.Sprintf("/owners/%s/attributes", url.PathEscape(ownerID))
	return c.do(ctx, http.MethodPost, path, request, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to encode request payload")
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.ConnectionError(fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return apperrors.AuthError(fmt.Sprintf("request to %s was rejected (%d)", path, resp.StatusCode), nil)
	case resp.StatusCode >= 400:
		return apperrors.New(apperrors.ErrCodeRemoteRejected,
			fmt.Sprintf("request to %s failed with status %d", path, resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeRemoteRejected,
			fmt.Sprintf("failed to decode response from %s", path))
	}
	return nil
}
