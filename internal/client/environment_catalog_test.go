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

func TestEnvironmentCatalogClient_Get_Android(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/testEnvironmentCatalog/ANDROID", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "demo-project", r.URL.Query().Get("projectId"))

		catalog := testlab.TestEnvironmentCatalog{
			AndroidDeviceCatalog: &testlab.AndroidDeviceCatalog{
				Models: []testlab.AndroidModel{
					{
						ID:           "oriole",
						Brand:        "Google",
						Manufacturer: "Google",
						Name:         "Pixel 6",
						Form:         "PHYSICAL",
						SupportedVersionIDs: []string{
							"31", "32", "33",
						},
					},
				},
				Versions: []testlab.AndroidVersion{
					{ID: "33", VersionString: "13", APILevel: 33},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog)
	}))
	defer server.Close()

	client := &Client{httpClient: internalhttp.NewClient(server.URL, nil)}
	catalogs := NewEnvironmentCatalogClient(client.httpClient)

	catalog, err := catalogs.Get(context.Background(), testlab.EnvironmentTypeAndroid,
		testlab.WithProjectID("demo-project"))
	require.NoError(t, err)
	require.NotNil(t, catalog.AndroidDeviceCatalog)
	assert.Len(t, catalog.AndroidDeviceCatalog.Models, 1)
	assert.Equal(t, "oriole", catalog.AndroidDeviceCatalog.Models[0].ID)
	assert.Equal(t, "Pixel 6", catalog.AndroidDeviceCatalog.Models[0].Name)
	assert.Len(t, catalog.AndroidDeviceCatalog.Versions, 1)
	assert.Equal(t, 33, catalog.AndroidDeviceCatalog.Versions[0].APILevel)
}

func TestEnvironmentCatalogClient_Get_NetworkConfiguration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/testEnvironmentCatalog/NETWORK_CONFIGURATION", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("projectId"))

		catalog := testlab.TestEnvironmentCatalog{
			NetworkConfigurationCatalog: &testlab.NetworkConfigurationCatalog{
				Configurations: []testlab.NetworkConfiguration{
					{
						ID:     "LTE",
						UpRule: &testlab.TrafficRule{Bandwidth: 50, Delay: "0.050s"},
					},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog)
	}))
	defer server.Close()

	client := &Client{httpClient: internalhttp.NewClient(server.URL, nil)}
	catalogs := NewEnvironmentCatalogClient(client.httpClient)

	catalog, err := catalogs.Get(context.Background(), testlab.EnvironmentTypeNetworkConfiguration)
	require.NoError(t, err)
	require.NotNil(t, catalog.NetworkConfigurationCatalog)
	assert.Equal(t, "LTE", catalog.NetworkConfigurationCatalog.Configurations[0].ID)
}

func TestEnvironmentCatalogClient_Get_Validation(t *testing.T) {
	catalogs := NewEnvironmentCatalogClient(nil)

	_, err := catalogs.Get(context.Background(), "")
	require.ErrorIs(t, err, testlab.ErrEnvironmentTypeRequired)
}
