package testlab

// IosDevice is a single iOS device.
type IosDevice struct {
	IosModelID   string `json:"iosModelId,omitempty"   yaml:"iosModelId,omitempty"`
	IosVersionID string `json:"iosVersionId,omitempty" yaml:"iosVersionId,omitempty"`
	Locale       string `json:"locale,omitempty"       yaml:"locale,omitempty"`
	Orientation  string `json:"orientation,omitempty"  yaml:"orientation,omitempty"`
}

// IosDeviceList is a list of iOS device configurations in which the test
// runs.
type IosDeviceList struct {
	IosDevices []IosDevice `json:"iosDevices,omitempty" yaml:"iosDevices,omitempty"`
}

// IosModel describes an iOS device tests may run on.
type IosModel struct {
	DeviceCapabilities  []string `json:"deviceCapabilities,omitempty"  yaml:"deviceCapabilities,omitempty"`
	FormFactor          string   `json:"formFactor,omitempty"          yaml:"formFactor,omitempty"`
	ID                  string   `json:"id,omitempty"                  yaml:"id,omitempty"`
	Name                string   `json:"name,omitempty"                yaml:"name,omitempty"`
	ScreenDensity       int      `json:"screenDensity,omitempty"       yaml:"screenDensity,omitempty"`
	ScreenX             int      `json:"screenX,omitempty"             yaml:"screenX,omitempty"`
	ScreenY             int      `json:"screenY,omitempty"             yaml:"screenY,omitempty"`
	SupportedVersionIDs []string `json:"supportedVersionIds,omitempty" yaml:"supportedVersionIds,omitempty"`
	Tags                []string `json:"tags,omitempty"                yaml:"tags,omitempty"`
}

// IosVersion is an iOS version.
type IosVersion struct {
	ID                       string   `json:"id,omitempty"                       yaml:"id,omitempty"`
	MajorVersion             int      `json:"majorVersion,omitempty"             yaml:"majorVersion,omitempty"`
	MinorVersion             int      `json:"minorVersion,omitempty"             yaml:"minorVersion,omitempty"`
	SupportedXcodeVersionIDs []string `json:"supportedXcodeVersionIds,omitempty" yaml:"supportedXcodeVersionIds,omitempty"`
	Tags                     []string `json:"tags,omitempty"                     yaml:"tags,omitempty"`
}

// XcodeVersion is an Xcode version that an iOS version is compatible with.
type XcodeVersion struct {
	Tags    []string `json:"tags,omitempty"    yaml:"tags,omitempty"`
	Version string   `json:"version,omitempty" yaml:"version,omitempty"`
}

// IosDeviceCatalog lists the currently supported iOS devices.
type IosDeviceCatalog struct {
	Models               []IosModel               `json:"models,omitempty"               yaml:"models,omitempty"`
	RuntimeConfiguration *IosRuntimeConfiguration `json:"runtimeConfiguration,omitempty" yaml:"runtimeConfiguration,omitempty"`
	Versions             []IosVersion             `json:"versions,omitempty"             yaml:"versions,omitempty"`
	XcodeVersions        []XcodeVersion           `json:"xcodeVersions,omitempty"        yaml:"xcodeVersions,omitempty"`
}

// IosRuntimeConfiguration is the iOS configuration selectable when a test is
// run.
type IosRuntimeConfiguration struct {
	Locales      []Locale      `json:"locales,omitempty"      yaml:"locales,omitempty"`
	Orientations []Orientation `json:"orientations,omitempty" yaml:"orientations,omitempty"`
}

// IosTestLoop is a test of an iOS application that implements one or more
// game loop scenarios, accepting an archived application (.ipa file).
type IosTestLoop struct {
	AppBundleID string         `json:"appBundleId,omitempty" yaml:"appBundleId,omitempty"`
	AppIpa      *FileReference `json:"appIpa,omitempty"      yaml:"appIpa,omitempty"`
	Scenarios   []int          `json:"scenarios,omitempty"   yaml:"scenarios,omitempty"`
}

// IosTestSetup describes how to set up an iOS device prior to the test.
type IosTestSetup struct {
	AdditionalIpas  []FileReference `json:"additionalIpas,omitempty"  yaml:"additionalIpas,omitempty"`
	NetworkProfile  string          `json:"networkProfile,omitempty"  yaml:"networkProfile,omitempty"`
	PullDirectories []IosDeviceFile `json:"pullDirectories,omitempty" yaml:"pullDirectories,omitempty"`
	PushFiles       []IosDeviceFile `json:"pushFiles,omitempty"       yaml:"pushFiles,omitempty"`
}

// IosDeviceFile is a file or directory to install on the device before the
// test starts.
type IosDeviceFile struct {
	BundleID   string         `json:"bundleId,omitempty"   yaml:"bundleId,omitempty"`
	Content    *FileReference `json:"content,omitempty"    yaml:"content,omitempty"`
	DevicePath string         `json:"devicePath,omitempty" yaml:"devicePath,omitempty"`
}

// IosXcTest is a test of an iOS application that uses the XCTest framework,
// accepting a zip of the .xctestrun file and Build/Products directory.
type IosXcTest struct {
	AppBundleID             string         `json:"appBundleId,omitempty"             yaml:"appBundleId,omitempty"`
	TestSpecialEntitlements bool           `json:"testSpecialEntitlements,omitempty" yaml:"testSpecialEntitlements,omitempty"`
	TestsZip                *FileReference `json:"testsZip,omitempty"                yaml:"testsZip,omitempty"`
	XcodeVersion            string         `json:"xcodeVersion,omitempty"            yaml:"xcodeVersion,omitempty"`
	Xctestrun               *FileReference `json:"xctestrun,omitempty"               yaml:"xctestrun,omitempty"`
}
