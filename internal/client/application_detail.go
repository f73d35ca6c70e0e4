package client

import (
	"context"
	"fmt"

	"github.com/hexlevel-io/testlab/internal/http"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// ApplicationDetailClient implements testlab.ApplicationDetailClient.
type ApplicationDetailClient struct {
	httpClient *http.Client
}

// NewApplicationDetailClient creates a new application detail client.
func NewApplicationDetailClient(httpClient *http.Client) *ApplicationDetailClient {
	return &ApplicationDetailClient{httpClient: httpClient}
}

// GetApkDetails implements testlab.ApplicationDetailClient.GetApkDetails.
func (c *ApplicationDetailClient) GetApkDetails(ctx context.Context, file *testlab.FileReference, opts ...testlab.CallOption) (*testlab.GetApkDetailsResponse, error) {
	if file == nil {
		return nil, testlab.ErrFileReferenceRequired
	}

	options := testlab.NewCallOptions(opts...)

	var result testlab.GetApkDetailsResponse

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "POST",
		Path:     "/v1/applicationDetailService/getApkDetails",
		Params:   options.Params,
		Body:     file,
		Scopes:   options.Scopes,
		CallID:   "applicationDetailService.getApkDetails",
		Delegate: options.Delegate,
		Result:   &result,
	})
	if err != nil {
		return nil, fmt.Errorf("getting apk details: %w", err)
	}

	return &result, nil
}
