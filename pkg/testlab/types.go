package testlab

// FileReference is a reference to a file in Google Cloud Storage, used for
// user inputs. Paths are expected to be percent encoded.
type FileReference struct {
	GCSPath string `json:"gcsPath,omitempty" yaml:"gcsPath,omitempty"`
}

// GetApkDetailsResponse contains the details of an Android application APK.
type GetApkDetailsResponse struct {
	ApkDetail *ApkDetail `json:"apkDetail,omitempty" yaml:"apkDetail,omitempty"`
}

// ApkDetail holds Android application details based on the application
// manifest and apk archive contents.
type ApkDetail struct {
	ApkManifest *ApkManifest `json:"apkManifest,omitempty" yaml:"apkManifest,omitempty"`
}

// ApkManifest describes an Android app manifest.
type ApkManifest struct {
	ApplicationLabel string         `json:"applicationLabel,omitempty" yaml:"applicationLabel,omitempty"`
	IntentFilters    []IntentFilter `json:"intentFilters,omitempty"    yaml:"intentFilters,omitempty"`
	MaxSdkVersion    int            `json:"maxSdkVersion,omitempty"    yaml:"maxSdkVersion,omitempty"`
	MinSdkVersion    int            `json:"minSdkVersion,omitempty"    yaml:"minSdkVersion,omitempty"`
	PackageName      string         `json:"packageName,omitempty"      yaml:"packageName,omitempty"`
	TargetSdkVersion int            `json:"targetSdkVersion,omitempty" yaml:"targetSdkVersion,omitempty"`
	UsesPermission   []string       `json:"usesPermission,omitempty"   yaml:"usesPermission,omitempty"`
}

// IntentFilter describes the intent-filter section of an app manifest.
type IntentFilter struct {
	ActionNames   []string `json:"actionNames,omitempty"   yaml:"actionNames,omitempty"`
	CategoryNames []string `json:"categoryNames,omitempty" yaml:"categoryNames,omitempty"`
	MimeType      string   `json:"mimeType,omitempty"      yaml:"mimeType,omitempty"`
}
