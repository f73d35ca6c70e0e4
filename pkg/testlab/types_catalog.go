package testlab

// Environment catalog types accepted by EnvironmentCatalogClient.Get.
const (
	EnvironmentTypeAndroid              = "ANDROID"
	EnvironmentTypeIos                  = "IOS"
	EnvironmentTypeNetworkConfiguration = "NETWORK_CONFIGURATION"
	EnvironmentTypeProvidedSoftware     = "PROVIDED_SOFTWARE"
	EnvironmentTypeDeviceIPBlocks       = "DEVICE_IP_BLOCKS"
)

// TestEnvironmentCatalog describes a test environment.
type TestEnvironmentCatalog struct {
	AndroidDeviceCatalog        *AndroidDeviceCatalog        `json:"androidDeviceCatalog,omitempty"        yaml:"androidDeviceCatalog,omitempty"`
	DeviceIPBlockCatalog        *DeviceIPBlockCatalog        `json:"deviceIpBlockCatalog,omitempty"        yaml:"deviceIpBlockCatalog,omitempty"`
	IosDeviceCatalog            *IosDeviceCatalog            `json:"iosDeviceCatalog,omitempty"            yaml:"iosDeviceCatalog,omitempty"`
	NetworkConfigurationCatalog *NetworkConfigurationCatalog `json:"networkConfigurationCatalog,omitempty" yaml:"networkConfigurationCatalog,omitempty"`
	SoftwareCatalog             *ProvidedSoftwareCatalog     `json:"softwareCatalog,omitempty"             yaml:"softwareCatalog,omitempty"`
}

// DeviceIPBlock is a single device IP block.
type DeviceIPBlock struct {
	AddedDate *Date  `json:"addedDate,omitempty" yaml:"addedDate,omitempty"`
	Block     string `json:"block,omitempty"     yaml:"block,omitempty"`
	Form      string `json:"form,omitempty"      yaml:"form,omitempty"`
}

// DeviceIPBlockCatalog lists the IP blocks used by test devices.
type DeviceIPBlockCatalog struct {
	IPBlocks []DeviceIPBlock `json:"ipBlocks,omitempty" yaml:"ipBlocks,omitempty"`
}

// NetworkConfiguration is a network traffic configuration.
type NetworkConfiguration struct {
	DownRule *TrafficRule `json:"downRule,omitempty" yaml:"downRule,omitempty"`
	ID       string       `json:"id,omitempty"       yaml:"id,omitempty"`
	UpRule   *TrafficRule `json:"upRule,omitempty"   yaml:"upRule,omitempty"`
}

// NetworkConfigurationCatalog lists supported network configurations.
type NetworkConfigurationCatalog struct {
	Configurations []NetworkConfiguration `json:"configurations,omitempty" yaml:"configurations,omitempty"`
}

// TrafficRule holds network emulation parameters.
type TrafficRule struct {
	Bandwidth              float64 `json:"bandwidth,omitempty"              yaml:"bandwidth,omitempty"`
	Burst                  float64 `json:"burst,omitempty"                  yaml:"burst,omitempty"`
	Delay                  string  `json:"delay,omitempty"                  yaml:"delay,omitempty"`
	PacketDuplicationRatio float64 `json:"packetDuplicationRatio,omitempty" yaml:"packetDuplicationRatio,omitempty"`
	PacketLossRatio        float64 `json:"packetLossRatio,omitempty"        yaml:"packetLossRatio,omitempty"`
}

// ProvidedSoftwareCatalog describes the software environment provided on the
// devices under test.
type ProvidedSoftwareCatalog struct {
	AndroidxOrchestratorVersion string `json:"androidxOrchestratorVersion,omitempty" yaml:"androidxOrchestratorVersion,omitempty"`
	OrchestratorVersion         string `json:"orchestratorVersion,omitempty"         yaml:"orchestratorVersion,omitempty"`
}

// Locale is a location/region designation for language.
type Locale struct {
	ID     string   `json:"id,omitempty"     yaml:"id,omitempty"`
	Name   string   `json:"name,omitempty"   yaml:"name,omitempty"`
	Region string   `json:"region,omitempty" yaml:"region,omitempty"`
	Tags   []string `json:"tags,omitempty"   yaml:"tags,omitempty"`
}

// Orientation is a screen orientation of the device.
type Orientation struct {
	ID   string   `json:"id,omitempty"   yaml:"id,omitempty"`
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Date is a whole or partial calendar date. Zero components are not
// significant.
type Date struct {
	Day   int `json:"day,omitempty"   yaml:"day,omitempty"`
	Month int `json:"month,omitempty" yaml:"month,omitempty"`
	Year  int `json:"year,omitempty"  yaml:"year,omitempty"`
}

// Distribution holds data about the relative number of devices running a
// given configuration of the Android platform.
type Distribution struct {
	MarketShare     float64 `json:"marketShare,omitempty"     yaml:"marketShare,omitempty"`
	MeasurementTime string  `json:"measurementTime,omitempty" yaml:"measurementTime,omitempty"`
}
