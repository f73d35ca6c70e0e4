package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/hexlevel-io/testlab/internal/http"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

func TestApplicationDetailClient_GetApkDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/applicationDetailService/getApkDetails", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body testlab.FileReference

		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "gs://bucket/app.apk", body.GCSPath)

		response := testlab.GetApkDetailsResponse{
			ApkDetail: &testlab.ApkDetail{
				ApkManifest: &testlab.ApkManifest{
					PackageName:      "com.example.app",
					ApplicationLabel: "Example",
					MinSdkVersion:    21,
					TargetSdkVersion: 33,
					UsesPermission: []string{
						"android.permission.INTERNET",
					},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := &Client{httpClient: internalhttp.NewClient(server.URL, nil)}
	details := NewApplicationDetailClient(client.httpClient)

	response, err := details.GetApkDetails(context.Background(), &testlab.FileReference{
		GCSPath: "gs://bucket/app.apk",
	})
	require.NoError(t, err)
	require.NotNil(t, response.ApkDetail)
	require.NotNil(t, response.ApkDetail.ApkManifest)
	assert.Equal(t, "com.example.app", response.ApkDetail.ApkManifest.PackageName)
	assert.Equal(t, 21, response.ApkDetail.ApkManifest.MinSdkVersion)
	assert.Equal(t, []string{"android.permission.INTERNET"}, response.ApkDetail.ApkManifest.UsesPermission)
}

func TestApplicationDetailClient_GetApkDetails_Validation(t *testing.T) {
	details := NewApplicationDetailClient(nil)

	_, err := details.GetApkDetails(context.Background(), nil)
	require.ErrorIs(t, err, testlab.ErrFileReferenceRequired)
}
