package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/hexlevel-io/testlab/internal/constants"
	"github.com/hexlevel-io/testlab/internal/http"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// TestMatricesClient implements testlab.TestMatricesClient.
type TestMatricesClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewTestMatricesClient creates a new test matrices client.
func NewTestMatricesClient(httpClient *http.Client) *TestMatricesClient {
	return &TestMatricesClient{
		httpClient:   httpClient,
		pollInterval: constants.DefaultPollInterval,
		pollTimeout:  constants.DefaultPollTimeout,
	}
}

// Create implements testlab.TestMatricesClient.Create.
func (c *TestMatricesClient) Create(ctx context.Context, projectID string, matrix *testlab.TestMatrix, opts ...testlab.CallOption) (*testlab.TestMatrix, error) {
	if projectID == "" {
		return nil, testlab.ErrProjectIDRequired
	}

	if matrix == nil {
		return nil, testlab.ErrMatrixRequired
	}

	options := testlab.NewCallOptions(opts...)

	query := url.Values{}
	if options.RequestID != "" {
		query.Set("requestId", options.RequestID)
	}

	var result testlab.TestMatrix

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "POST",
		Path:     fmt.Sprintf("/v1/projects/%s/testMatrices", projectID),
		Query:    query,
		Params:   options.Params,
		Reserved: []string{"projectId", "requestId"},
		Body:     matrix,
		Scopes:   options.Scopes,
		CallID:   "projects.testMatrices.create",
		Delegate: options.Delegate,
		Result:   &result,
	})
	if err != nil {
		return nil, fmt.Errorf("creating test matrix: %w", err)
	}

	return &result, nil
}

// Get implements testlab.TestMatricesClient.Get.
func (c *TestMatricesClient) Get(ctx context.Context, projectID, matrixID string, opts ...testlab.CallOption) (*testlab.TestMatrix, error) {
	if projectID == "" {
		return nil, testlab.ErrProjectIDRequired
	}

	if matrixID == "" {
		return nil, testlab.ErrMatrixIDRequired
	}

	options := testlab.NewCallOptions(opts...)

	var result testlab.TestMatrix

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "GET",
		Path:     fmt.Sprintf("/v1/projects/%s/testMatrices/%s", projectID, matrixID),
		Params:   options.Params,
		Reserved: []string{"projectId", "testMatrixId"},
		Scopes:   options.Scopes,
		CallID:   "projects.testMatrices.get",
		Delegate: options.Delegate,
		Result:   &result,
	})
	if err != nil {
		return nil, fmt.Errorf("getting test matrix: %w", err)
	}

	return &result, nil
}

// Cancel implements testlab.TestMatricesClient.Cancel.
func (c *TestMatricesClient) Cancel(ctx context.Context, projectID, matrixID string, opts ...testlab.CallOption) (*testlab.CancelTestMatrixResponse, error) {
	if projectID == "" {
		return nil, testlab.ErrProjectIDRequired
	}

	if matrixID == "" {
		return nil, testlab.ErrMatrixIDRequired
	}

	options := testlab.NewCallOptions(opts...)

	var result testlab.CancelTestMatrixResponse

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "POST",
		Path:     fmt.Sprintf("/v1/projects/%s/testMatrices/%s:cancel", projectID, matrixID),
		Params:   options.Params,
		Reserved: []string{"projectId", "testMatrixId"},
		Scopes:   options.Scopes,
		CallID:   "projects.testMatrices.cancel",
		Delegate: options.Delegate,
		Result:   &result,
	})
	if err != nil {
		return nil, fmt.Errorf("cancelling test matrix: %w", err)
	}

	return &result, nil
}

// WaitUntilFinal implements testlab.TestMatricesClient.WaitUntilFinal. It
// polls the matrix until its state is terminal or the timeout elapses. The
// last observed matrix is returned alongside timeout errors.
func (c *TestMatricesClient) WaitUntilFinal(ctx context.Context, projectID, matrixID string) (*testlab.TestMatrix, error) {
	ctx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	var lastMatrix *testlab.TestMatrix

	for {
		matrix, err := c.Get(ctx, projectID, matrixID)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return lastMatrix, fmt.Errorf("%w: %w", testlab.ErrPollTimeout, err)
			}

			return lastMatrix, err
		}

		lastMatrix = matrix

		if testlab.IsFinalMatrixState(matrix.State) {
			return matrix, nil
		}

		select {
		case <-ctx.Done():
			return lastMatrix, fmt.Errorf("%w: %w", testlab.ErrPollTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}
