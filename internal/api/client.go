// Package api is a client for the backend's pet storage endpoints.
package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/datagotchi/datagotchi/internal/config"
)

const DefaultLimit = 20

type Client struct {
	httpClient *resty.Client
}

// NewClient creates a client for cfg.BaseURL. Requests go to <base>/api/v1.
func NewClient(cfg config.APIConfig) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/api/v1")
	client.SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}
	if cfg.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}
	return &Client{httpClient: client}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// CreateInstance stores new content for a pet.
func (c *Client) CreateInstance(ctx context.Context, petID string, request CreateInstanceRequest) (*DataInstance, error) {
	var instance DataInstance
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("petId", petID).
		SetBody(request).
		SetResult(&instance).
		Post("/storage/pets/{petId}/instances")
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	if response.IsError() {
		return nil, NewError(response.StatusCode(), []byte(response.String()))
	}
	return &instance, nil
}

func (c *Client) ListKnowledge(ctx context.Context, petID string, limit int) ([]Knowledge, error) {
	knowledge := []Knowledge{}
	if err := c.list(ctx, "/storage/pets/{petId}/knowledge", petID, map[string]string{
		"limit": strconv.Itoa(orDefault(limit)),
	}, &knowledge); err != nil {
		return nil, fmt.Errorf("list knowledge: %w", err)
	}
	return knowledge, nil
}

func (c *Client) ListInstances(ctx context.Context, petID string, limit int) ([]DataInstance, error) {
	instances := []DataInstance{}
	if err := c.list(ctx, "/storage/pets/{petId}/instances", petID, map[string]string{
		"limit": strconv.Itoa(orDefault(limit)),
	}, &instances); err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	return instances, nil
}

// SemanticSearch returns the pet's knowledge ranked by similarity to params.Query.
func (c *Client) SemanticSearch(ctx context.Context, petID string, params SearchParams) ([]Knowledge, error) {
	query := map[string]string{
		"q":     params.Query,
		"limit": strconv.Itoa(orDefault(params.Limit)),
	}
	if params.SimilarityThreshold > 0 {
		query["similarity_threshold"] = strconv.FormatFloat(params.SimilarityThreshold, 'f', -1, 64)
	}

	results := []Knowledge{}
	if err := c.list(ctx, "/storage/pets/{petId}/semantic/search", petID, query, &results); err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}
	return results, nil
}

func (c *Client) list(ctx context.Context, path, petID string, query map[string]string, result any) error {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("petId", petID).
		SetQueryParams(query).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}
	if response.IsError() {
		return NewError(response.StatusCode(), []byte(response.String()))
	}
	return nil
}

func orDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
