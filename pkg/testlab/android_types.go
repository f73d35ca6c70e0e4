package testlab

// AndroidDevice is a single Android device.
type AndroidDevice struct {
	AndroidModelID   string `json:"androidModelId,omitempty"   yaml:"androidModelId,omitempty"`
	AndroidVersionID string `json:"androidVersionId,omitempty" yaml:"androidVersionId,omitempty"`
	Locale           string `json:"locale,omitempty"           yaml:"locale,omitempty"`
	Orientation      string `json:"orientation,omitempty"      yaml:"orientation,omitempty"`
}

// AndroidDeviceList is an explicit list of Android device configurations in
// which the test runs.
type AndroidDeviceList struct {
	AndroidDevices []AndroidDevice `json:"androidDevices,omitempty" yaml:"androidDevices,omitempty"`
}

// AndroidMatrix defines device permutations as the cross-product of the
// given axes. Invalid permutations are ignored.
type AndroidMatrix struct {
	AndroidModelIDs   []string `json:"androidModelIds,omitempty"   yaml:"androidModelIds,omitempty"`
	AndroidVersionIDs []string `json:"androidVersionIds,omitempty" yaml:"androidVersionIds,omitempty"`
	Locales           []string `json:"locales,omitempty"           yaml:"locales,omitempty"`
	Orientations      []string `json:"orientations,omitempty"      yaml:"orientations,omitempty"`
}

// AndroidInstrumentationTest runs an application APK and test APK inside the
// same process on a virtual or physical Android device.
type AndroidInstrumentationTest struct {
	AppApk             *FileReference  `json:"appApk,omitempty"             yaml:"appApk,omitempty"`
	AppBundle          *AppBundle      `json:"appBundle,omitempty"          yaml:"appBundle,omitempty"`
	AppPackageID       string          `json:"appPackageId,omitempty"       yaml:"appPackageId,omitempty"`
	OrchestratorOption string          `json:"orchestratorOption,omitempty" yaml:"orchestratorOption,omitempty"`
	ShardingOption     *ShardingOption `json:"shardingOption,omitempty"     yaml:"shardingOption,omitempty"`
	TestApk            *FileReference  `json:"testApk,omitempty"            yaml:"testApk,omitempty"`
	TestPackageID      string          `json:"testPackageId,omitempty"      yaml:"testPackageId,omitempty"`
	TestRunnerClass    string          `json:"testRunnerClass,omitempty"    yaml:"testRunnerClass,omitempty"`
	TestTargets        []string        `json:"testTargets,omitempty"        yaml:"testTargets,omitempty"`
}

// AndroidRoboTest explores the application on a virtual or physical Android
// device, finding culprits and crashes as it goes.
type AndroidRoboTest struct {
	AppApk             *FileReference       `json:"appApk,omitempty"             yaml:"appApk,omitempty"`
	AppBundle          *AppBundle           `json:"appBundle,omitempty"          yaml:"appBundle,omitempty"`
	AppInitialActivity string               `json:"appInitialActivity,omitempty" yaml:"appInitialActivity,omitempty"`
	AppPackageID       string               `json:"appPackageId,omitempty"       yaml:"appPackageId,omitempty"`
	RoboDirectives     []RoboDirective      `json:"roboDirectives,omitempty"     yaml:"roboDirectives,omitempty"`
	RoboMode           string               `json:"roboMode,omitempty"           yaml:"roboMode,omitempty"`
	RoboScript         *FileReference       `json:"roboScript,omitempty"         yaml:"roboScript,omitempty"`
	StartingIntents    []RoboStartingIntent `json:"startingIntents,omitempty"    yaml:"startingIntents,omitempty"`
}

// RoboDirective directs Robo to interact with a specific UI element.
type RoboDirective struct {
	ActionType   string `json:"actionType,omitempty"   yaml:"actionType,omitempty"`
	InputText    string `json:"inputText,omitempty"    yaml:"inputText,omitempty"`
	ResourceName string `json:"resourceName,omitempty" yaml:"resourceName,omitempty"`
}

// RoboStartingIntent specifies a start activity for the crawl.
type RoboStartingIntent struct {
	LauncherActivity *LauncherActivityIntent `json:"launcherActivity,omitempty" yaml:"launcherActivity,omitempty"`
	StartActivity    *StartActivityIntent    `json:"startActivity,omitempty"    yaml:"startActivity,omitempty"`
	Timeout          string                  `json:"timeout,omitempty"          yaml:"timeout,omitempty"`
}

// LauncherActivityIntent starts the main launcher activity.
type LauncherActivityIntent struct{}

// StartActivityIntent is a starting intent specified by an action, uri, and
// categories.
type StartActivityIntent struct {
	Action     string   `json:"action,omitempty"     yaml:"action,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	URI        string   `json:"uri,omitempty"        yaml:"uri,omitempty"`
}

// AndroidTestLoop is a test of an Android application with a test loop.
type AndroidTestLoop struct {
	AppApk         *FileReference `json:"appApk,omitempty"         yaml:"appApk,omitempty"`
	AppBundle      *AppBundle     `json:"appBundle,omitempty"      yaml:"appBundle,omitempty"`
	AppPackageID   string         `json:"appPackageId,omitempty"   yaml:"appPackageId,omitempty"`
	ScenarioLabels []string       `json:"scenarioLabels,omitempty" yaml:"scenarioLabels,omitempty"`
	Scenarios      []int          `json:"scenarios,omitempty"      yaml:"scenarios,omitempty"`
}

// AppBundle is an Android App Bundle file format containing a
// BundleConfig.pb file, a base module directory, and zero or more dynamic
// feature module directories.
type AppBundle struct {
	BundleLocation *FileReference `json:"bundleLocation,omitempty" yaml:"bundleLocation,omitempty"`
}

// AndroidModel describes an Android device tests may run on.
type AndroidModel struct {
	Brand                string   `json:"brand,omitempty"                yaml:"brand,omitempty"`
	Codename             string   `json:"codename,omitempty"             yaml:"codename,omitempty"`
	Form                 string   `json:"form,omitempty"                 yaml:"form,omitempty"`
	FormFactor           string   `json:"formFactor,omitempty"           yaml:"formFactor,omitempty"`
	ID                   string   `json:"id,omitempty"                   yaml:"id,omitempty"`
	LowFpsVideoRecording bool     `json:"lowFpsVideoRecording,omitempty" yaml:"lowFpsVideoRecording,omitempty"`
	Manufacturer         string   `json:"manufacturer,omitempty"         yaml:"manufacturer,omitempty"`
	Name                 string   `json:"name,omitempty"                 yaml:"name,omitempty"`
	ScreenDensity        int      `json:"screenDensity,omitempty"        yaml:"screenDensity,omitempty"`
	ScreenX              int      `json:"screenX,omitempty"              yaml:"screenX,omitempty"`
	ScreenY              int      `json:"screenY,omitempty"              yaml:"screenY,omitempty"`
	SupportedAbis        []string `json:"supportedAbis,omitempty"        yaml:"supportedAbis,omitempty"`
	SupportedVersionIDs  []string `json:"supportedVersionIds,omitempty"  yaml:"supportedVersionIds,omitempty"`
	Tags                 []string `json:"tags,omitempty"                 yaml:"tags,omitempty"`
	ThumbnailURL         string   `json:"thumbnailUrl,omitempty"         yaml:"thumbnailUrl,omitempty"`
}

// AndroidVersion is a version of the Android OS.
type AndroidVersion struct {
	APILevel      int           `json:"apiLevel,omitempty"      yaml:"apiLevel,omitempty"`
	CodeName      string        `json:"codeName,omitempty"      yaml:"codeName,omitempty"`
	Distribution  *Distribution `json:"distribution,omitempty"  yaml:"distribution,omitempty"`
	ID            string        `json:"id,omitempty"            yaml:"id,omitempty"`
	ReleaseDate   *Date         `json:"releaseDate,omitempty"   yaml:"releaseDate,omitempty"`
	Tags          []string      `json:"tags,omitempty"          yaml:"tags,omitempty"`
	VersionString string        `json:"versionString,omitempty" yaml:"versionString,omitempty"`
}

// AndroidDeviceCatalog lists the currently supported Android devices.
type AndroidDeviceCatalog struct {
	Models               []AndroidModel               `json:"models,omitempty"               yaml:"models,omitempty"`
	RuntimeConfiguration *AndroidRuntimeConfiguration `json:"runtimeConfiguration,omitempty" yaml:"runtimeConfiguration,omitempty"`
	Versions             []AndroidVersion             `json:"versions,omitempty"             yaml:"versions,omitempty"`
}

// AndroidRuntimeConfiguration is the Android configuration selectable when a
// test is run.
type AndroidRuntimeConfiguration struct {
	Locales      []Locale      `json:"locales,omitempty"      yaml:"locales,omitempty"`
	Orientations []Orientation `json:"orientations,omitempty" yaml:"orientations,omitempty"`
}
