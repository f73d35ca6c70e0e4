package testlab

// Test matrix states.
const (
	MatrixStateUnspecified              = "TEST_STATE_UNSPECIFIED"
	MatrixStateValidating               = "VALIDATING"
	MatrixStatePending                  = "PENDING"
	MatrixStateRunning                  = "RUNNING"
	MatrixStateFinished                 = "FINISHED"
	MatrixStateError                    = "ERROR"
	MatrixStateUnsupportedEnvironment   = "UNSUPPORTED_ENVIRONMENT"
	MatrixStateIncompatibleEnvironment  = "INCOMPATIBLE_ENVIRONMENT"
	MatrixStateIncompatibleArchitecture = "INCOMPATIBLE_ARCHITECTURE"
	MatrixStateCancelled                = "CANCELLED"
	MatrixStateInvalid                  = "INVALID"
)

// IsFinalMatrixState reports whether a matrix state is terminal.
func IsFinalMatrixState(state string) bool {
	switch state {
	case MatrixStateFinished, MatrixStateError, MatrixStateUnsupportedEnvironment,
		MatrixStateIncompatibleEnvironment, MatrixStateIncompatibleArchitecture,
		MatrixStateCancelled, MatrixStateInvalid:
		return true
	default:
		return false
	}
}

// TestMatrix captures all details about a test: environment configuration,
// test specification, executions, and overall state and outcome.
type TestMatrix struct {
	ClientInfo           *ClientInfo        `json:"clientInfo,omitempty"           yaml:"clientInfo,omitempty"`
	EnvironmentMatrix    *EnvironmentMatrix `json:"environmentMatrix,omitempty"    yaml:"environmentMatrix,omitempty"`
	FailFast             bool               `json:"failFast,omitempty"             yaml:"failFast,omitempty"`
	FlakyTestAttempts    int                `json:"flakyTestAttempts,omitempty"    yaml:"flakyTestAttempts,omitempty"`
	InvalidMatrixDetails string             `json:"invalidMatrixDetails,omitempty" yaml:"invalidMatrixDetails,omitempty"`
	OutcomeSummary       string             `json:"outcomeSummary,omitempty"       yaml:"outcomeSummary,omitempty"`
	ProjectID            string             `json:"projectId,omitempty"            yaml:"projectId,omitempty"`
	ResultStorage        *ResultStorage     `json:"resultStorage,omitempty"        yaml:"resultStorage,omitempty"`
	State                string             `json:"state,omitempty"                yaml:"state,omitempty"`
	TestExecutions       []TestExecution    `json:"testExecutions,omitempty"       yaml:"testExecutions,omitempty"`
	TestMatrixID         string             `json:"testMatrixId,omitempty"         yaml:"testMatrixId,omitempty"`
	TestSpecification    *TestSpecification `json:"testSpecification,omitempty"    yaml:"testSpecification,omitempty"`
	Timestamp            string             `json:"timestamp,omitempty"            yaml:"timestamp,omitempty"`
}

// CancelTestMatrixResponse reports the rolled-up state of a matrix after a
// cancel request. If the state is already final the request has no effect.
type CancelTestMatrixResponse struct {
	TestState string `json:"testState,omitempty" yaml:"testState,omitempty"`
}

// ClientInfo describes the client which invoked the test.
type ClientInfo struct {
	ClientInfoDetails []ClientInfoDetail `json:"clientInfoDetails,omitempty" yaml:"clientInfoDetails,omitempty"`
	Name              string             `json:"name,omitempty"              yaml:"name,omitempty"`
}

// ClientInfoDetail is a key-value pair of detailed client information.
type ClientInfoDetail struct {
	Key   string `json:"key,omitempty"   yaml:"key,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// TestSpecification describes how to run the test.
type TestSpecification struct {
	AndroidInstrumentationTest *AndroidInstrumentationTest `json:"androidInstrumentationTest,omitempty" yaml:"androidInstrumentationTest,omitempty"`
	AndroidRoboTest            *AndroidRoboTest            `json:"androidRoboTest,omitempty"            yaml:"androidRoboTest,omitempty"`
	AndroidTestLoop            *AndroidTestLoop            `json:"androidTestLoop,omitempty"            yaml:"androidTestLoop,omitempty"`
	DisablePerformanceMetrics  bool                        `json:"disablePerformanceMetrics,omitempty"  yaml:"disablePerformanceMetrics,omitempty"`
	DisableVideoRecording      bool                        `json:"disableVideoRecording,omitempty"      yaml:"disableVideoRecording,omitempty"`
	IosTestLoop                *IosTestLoop                `json:"iosTestLoop,omitempty"                yaml:"iosTestLoop,omitempty"`
	IosTestSetup               *IosTestSetup               `json:"iosTestSetup,omitempty"               yaml:"iosTestSetup,omitempty"`
	IosXcTest                  *IosXcTest                  `json:"iosXcTest,omitempty"                  yaml:"iosXcTest,omitempty"`
	TestSetup                  *TestSetup                  `json:"testSetup,omitempty"                  yaml:"testSetup,omitempty"`
	TestTimeout                string                      `json:"testTimeout,omitempty"                yaml:"testTimeout,omitempty"`
}

// TestSetup describes how to set up an Android device prior to the test.
type TestSetup struct {
	Account                  *Account              `json:"account,omitempty"                  yaml:"account,omitempty"`
	AdditionalApks           []Apk                 `json:"additionalApks,omitempty"           yaml:"additionalApks,omitempty"`
	DirectoriesToPull        []string              `json:"directoriesToPull,omitempty"        yaml:"directoriesToPull,omitempty"`
	DontAutograntPermissions bool                  `json:"dontAutograntPermissions,omitempty" yaml:"dontAutograntPermissions,omitempty"`
	EnvironmentVariables     []EnvironmentVariable `json:"environmentVariables,omitempty"     yaml:"environmentVariables,omitempty"`
	FilesToPush              []DeviceFile          `json:"filesToPush,omitempty"              yaml:"filesToPush,omitempty"`
	NetworkProfile           string                `json:"networkProfile,omitempty"           yaml:"networkProfile,omitempty"`
	Systrace                 *SystraceSetup        `json:"systrace,omitempty"                 yaml:"systrace,omitempty"`
}

// Account enables device account configuration for the test.
type Account struct {
	GoogleAuto *GoogleAuto `json:"googleAuto,omitempty" yaml:"googleAuto,omitempty"`
}

// GoogleAuto enables automatic Google account login. The service generates a
// test account and adds it to the device before executing the test.
type GoogleAuto struct{}

// Apk is an Android package file to install.
type Apk struct {
	Location    *FileReference `json:"location,omitempty"    yaml:"location,omitempty"`
	PackageName string         `json:"packageName,omitempty" yaml:"packageName,omitempty"`
}

// EnvironmentVariable is a key-value pair passed to the test.
type EnvironmentVariable struct {
	Key   string `json:"key,omitempty"   yaml:"key,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// DeviceFile is a single device file description.
type DeviceFile struct {
	ObbFile     *ObbFile     `json:"obbFile,omitempty"     yaml:"obbFile,omitempty"`
	RegularFile *RegularFile `json:"regularFile,omitempty" yaml:"regularFile,omitempty"`
}

// ObbFile is an opaque binary blob file to install before the test starts.
type ObbFile struct {
	Obb         *FileReference `json:"obb,omitempty"         yaml:"obb,omitempty"`
	ObbFileName string         `json:"obbFileName,omitempty" yaml:"obbFileName,omitempty"`
}

// RegularFile is a file to install on the device before the test starts.
type RegularFile struct {
	Content    *FileReference `json:"content,omitempty"    yaml:"content,omitempty"`
	DevicePath string         `json:"devicePath,omitempty" yaml:"devicePath,omitempty"`
}

// SystraceSetup configures systrace capture for the run.
//
// Deprecated: Systrace support may stop at any time.
type SystraceSetup struct {
	DurationSeconds int `json:"durationSeconds,omitempty" yaml:"durationSeconds,omitempty"`
}

// EnvironmentMatrix is the matrix of environments the test executes in.
type EnvironmentMatrix struct {
	AndroidDeviceList *AndroidDeviceList `json:"androidDeviceList,omitempty" yaml:"androidDeviceList,omitempty"`
	AndroidMatrix     *AndroidMatrix     `json:"androidMatrix,omitempty"     yaml:"androidMatrix,omitempty"`
	IosDeviceList     *IosDeviceList     `json:"iosDeviceList,omitempty"     yaml:"iosDeviceList,omitempty"`
}

// Environment is the environment in which a single test runs.
type Environment struct {
	AndroidDevice *AndroidDevice `json:"androidDevice,omitempty" yaml:"androidDevice,omitempty"`
	IosDevice     *IosDevice     `json:"iosDevice,omitempty"     yaml:"iosDevice,omitempty"`
}

// TestExecution is a single test executed in a single environment.
type TestExecution struct {
	Environment       *Environment       `json:"environment,omitempty"       yaml:"environment,omitempty"`
	ID                string             `json:"id,omitempty"                yaml:"id,omitempty"`
	MatrixID          string             `json:"matrixId,omitempty"          yaml:"matrixId,omitempty"`
	ProjectID         string             `json:"projectId,omitempty"         yaml:"projectId,omitempty"`
	Shard             *Shard             `json:"shard,omitempty"             yaml:"shard,omitempty"`
	State             string             `json:"state,omitempty"             yaml:"state,omitempty"`
	TestDetails       *TestDetails       `json:"testDetails,omitempty"       yaml:"testDetails,omitempty"`
	TestSpecification *TestSpecification `json:"testSpecification,omitempty" yaml:"testSpecification,omitempty"`
	Timestamp         string             `json:"timestamp,omitempty"         yaml:"timestamp,omitempty"`
	ToolResultsStep   *ToolResultsStep   `json:"toolResultsStep,omitempty"   yaml:"toolResultsStep,omitempty"`
}

// TestDetails holds additional details about the progress of a running test.
type TestDetails struct {
	ErrorMessage     string   `json:"errorMessage,omitempty"     yaml:"errorMessage,omitempty"`
	ProgressMessages []string `json:"progressMessages,omitempty" yaml:"progressMessages,omitempty"`
}

// ResultStorage names the locations where test results are stored.
type ResultStorage struct {
	GoogleCloudStorage   *GoogleCloudStorage   `json:"googleCloudStorage,omitempty"   yaml:"googleCloudStorage,omitempty"`
	ResultsURL           string                `json:"resultsUrl,omitempty"           yaml:"resultsUrl,omitempty"`
	ToolResultsExecution *ToolResultsExecution `json:"toolResultsExecution,omitempty" yaml:"toolResultsExecution,omitempty"`
	ToolResultsHistory   *ToolResultsHistory   `json:"toolResultsHistory,omitempty"   yaml:"toolResultsHistory,omitempty"`
}

// GoogleCloudStorage is a storage location within Google Cloud Storage.
type GoogleCloudStorage struct {
	GCSPath string `json:"gcsPath,omitempty" yaml:"gcsPath,omitempty"`
}

// ToolResultsExecution holds the results of a TestMatrix.
type ToolResultsExecution struct {
	ExecutionID string `json:"executionId,omitempty" yaml:"executionId,omitempty"`
	HistoryID   string `json:"historyId,omitempty"   yaml:"historyId,omitempty"`
	ProjectID   string `json:"projectId,omitempty"   yaml:"projectId,omitempty"`
}

// ToolResultsHistory names the history that receives tool results.
type ToolResultsHistory struct {
	HistoryID string `json:"historyId,omitempty" yaml:"historyId,omitempty"`
	ProjectID string `json:"projectId,omitempty" yaml:"projectId,omitempty"`
}

// ToolResultsStep holds the results of a TestExecution.
type ToolResultsStep struct {
	ExecutionID string `json:"executionId,omitempty" yaml:"executionId,omitempty"`
	HistoryID   string `json:"historyId,omitempty"   yaml:"historyId,omitempty"`
	ProjectID   string `json:"projectId,omitempty"   yaml:"projectId,omitempty"`
	StepID      string `json:"stepId,omitempty"      yaml:"stepId,omitempty"`
}

// Shard holds details about one shard of a sharded test.
type Shard struct {
	NumShards           int                  `json:"numShards,omitempty"           yaml:"numShards,omitempty"`
	ShardIndex          int                  `json:"shardIndex,omitempty"          yaml:"shardIndex,omitempty"`
	TestTargetsForShard *TestTargetsForShard `json:"testTargetsForShard,omitempty" yaml:"testTargetsForShard,omitempty"`
}

// ShardingOption selects a sharding mechanism.
type ShardingOption struct {
	ManualSharding  *ManualSharding  `json:"manualSharding,omitempty"  yaml:"manualSharding,omitempty"`
	UniformSharding *UniformSharding `json:"uniformSharding,omitempty" yaml:"uniformSharding,omitempty"`
}

// ManualSharding shards test cases into explicit groups of packages,
// classes, and methods.
type ManualSharding struct {
	TestTargetsForShard []TestTargetsForShard `json:"testTargetsForShard,omitempty" yaml:"testTargetsForShard,omitempty"`
}

// UniformSharding shards test cases given a total number of shards.
type UniformSharding struct {
	NumShards int `json:"numShards,omitempty" yaml:"numShards,omitempty"`
}

// TestTargetsForShard lists the test targets run by one shard.
type TestTargetsForShard struct {
	TestTargets []string `json:"testTargets,omitempty" yaml:"testTargets,omitempty"`
}
