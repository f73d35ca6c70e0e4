package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hexlevel-io/testlab/internal/http"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// EnvironmentCatalogClient implements testlab.EnvironmentCatalogClient.
type EnvironmentCatalogClient struct {
	httpClient *http.Client
}

// NewEnvironmentCatalogClient creates a new environment catalog client.
func NewEnvironmentCatalogClient(httpClient *http.Client) *EnvironmentCatalogClient {
	return &EnvironmentCatalogClient{httpClient: httpClient}
}

// Get implements testlab.EnvironmentCatalogClient.Get.
func (c *EnvironmentCatalogClient) Get(ctx context.Context, environmentType string, opts ...testlab.CallOption) (*testlab.TestEnvironmentCatalog, error) {
	if environmentType == "" {
		return nil, testlab.ErrEnvironmentTypeRequired
	}

	options := testlab.NewCallOptions(opts...)

	query := url.Values{}
	if options.ProjectID != "" {
		query.Set("projectId", options.ProjectID)
	}

	var result testlab.TestEnvironmentCatalog

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "GET",
		Path:     fmt.Sprintf("/v1/testEnvironmentCatalog/%s", environmentType),
		Query:    query,
		Params:   options.Params,
		Reserved: []string{"environmentType", "projectId"},
		Scopes:   options.Scopes,
		CallID:   "testEnvironmentCatalog.get",
		Delegate: options.Delegate,
		Result:   &result,
	})
	if err != nil {
		return nil, fmt.Errorf("getting test environment catalog: %w", err)
	}

	return &result, nil
}
