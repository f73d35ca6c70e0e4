package testlab_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlevel-io/testlab/pkg/testlab"
)

func TestIsFinalMatrixState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state string
		final bool
	}{
		{testlab.MatrixStateUnspecified, false},
		{testlab.MatrixStateValidating, false},
		{testlab.MatrixStatePending, false},
		{testlab.MatrixStateRunning, false},
		{testlab.MatrixStateFinished, true},
		{testlab.MatrixStateError, true},
		{testlab.MatrixStateUnsupportedEnvironment, true},
		{testlab.MatrixStateIncompatibleEnvironment, true},
		{testlab.MatrixStateIncompatibleArchitecture, true},
		{testlab.MatrixStateCancelled, true},
		{testlab.MatrixStateInvalid, true},
		{"", false},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.final, testlab.IsFinalMatrixState(testCase.state),
			"state %q", testCase.state)
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTestMatrix_JSON(t *testing.T) {
	t.Parallel()

	matrix := testlab.TestMatrix{
		TestMatrixID: "matrix-1",
		ProjectID:    "demo-project",
		State:        testlab.MatrixStateFinished,
		FailFast:     true,
		ClientInfo: &testlab.ClientInfo{
			Name: "testlab-go",
			ClientInfoDetails: []testlab.ClientInfoDetail{
				{Key: "version", Value: "1.0"},
			},
		},
		TestSpecification: &testlab.TestSpecification{
			TestTimeout: "900s",
			TestSetup: &testlab.TestSetup{
				Account: &testlab.Account{GoogleAuto: &testlab.GoogleAuto{}},
				EnvironmentVariables: []testlab.EnvironmentVariable{
					{Key: "coverage", Value: "true"},
				},
				DirectoriesToPull: []string{"/sdcard/results"},
			},
			AndroidInstrumentationTest: &testlab.AndroidInstrumentationTest{
				AppApk:          &testlab.FileReference{GCSPath: "gs://bucket/app.apk"},
				TestApk:         &testlab.FileReference{GCSPath: "gs://bucket/test.apk"},
				TestRunnerClass: "androidx.test.runner.AndroidJUnitRunner",
				ShardingOption: &testlab.ShardingOption{
					UniformSharding: &testlab.UniformSharding{NumShards: 4},
				},
			},
		},
		EnvironmentMatrix: &testlab.EnvironmentMatrix{
			AndroidMatrix: &testlab.AndroidMatrix{
				AndroidModelIDs:   []string{"oriole"},
				AndroidVersionIDs: []string{"33"},
				Locales:           []string{"en_US"},
				Orientations:      []string{"portrait"},
			},
		},
		ResultStorage: &testlab.ResultStorage{
			GoogleCloudStorage: &testlab.GoogleCloudStorage{GCSPath: "gs://bucket/results"},
			ToolResultsHistory: &testlab.ToolResultsHistory{ProjectID: "demo-project"},
		},
	}

	data, err := json.Marshal(matrix)
	require.NoError(t, err)

	// Wire names are camelCase.
	assert.Contains(t, string(data), `"testMatrixId":"matrix-1"`)
	assert.Contains(t, string(data), `"projectId":"demo-project"`)
	assert.Contains(t, string(data), `"gcsPath":"gs://bucket/app.apk"`)
	assert.Contains(t, string(data), `"numShards":4`)

	var decoded testlab.TestMatrix

	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, matrix, decoded)
}

func TestTestMatrix_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(testlab.TestMatrix{TestMatrixID: "matrix-1"})
	require.NoError(t, err)
	assert.Equal(t, `{"testMatrixId":"matrix-1"}`, string(data))
}

func TestEnvironmentCatalog_JSON(t *testing.T) {
	t.Parallel()

	payload := `{
		"androidDeviceCatalog": {
			"models": [{"id": "oriole", "name": "Pixel 6", "supportedVersionIds": ["33"]}],
			"versions": [{"id": "33", "apiLevel": 33, "distribution": {"marketShare": 0.1}}],
			"runtimeConfiguration": {
				"locales": [{"id": "en_US", "name": "English"}],
				"orientations": [{"id": "portrait", "name": "portrait", "tags": ["default"]}]
			}
		}
	}`

	var catalog testlab.TestEnvironmentCatalog

	err := json.Unmarshal([]byte(payload), &catalog)
	require.NoError(t, err)
	require.NotNil(t, catalog.AndroidDeviceCatalog)
	assert.Equal(t, "oriole", catalog.AndroidDeviceCatalog.Models[0].ID)
	assert.Equal(t, 33, catalog.AndroidDeviceCatalog.Versions[0].APILevel)
	assert.InDelta(t, 0.1, catalog.AndroidDeviceCatalog.Versions[0].Distribution.MarketShare, 0.0001)
	assert.Equal(t, []string{"default"}, catalog.AndroidDeviceCatalog.RuntimeConfiguration.Orientations[0].Tags)
}
