package src

// SystemStruct : Contains System Information
type SystemStruct struct {
	AppName string
	Name    string
	Version string
	Build   string
	Dev     bool

	Folder struct {
		Config string
		Temp   string
	}

	File struct {
		Settings string
	}

	Flag struct {
		Debug int
		Info  bool
	}
}

// SettingsStruct : Content of settings.json
type SettingsStruct struct {
	GuideVisibleHours int    `json:"guide.visible.hours"`
	GuideSlotMinutes  int    `json:"guide.slot.minutes"`
	LogEntriesRAM     int    `json:"log.entries.ram"`
	OtelExporter      string `json:"otel.exporter"`
	OtelEndpoint      string `json:"otel.endpoint"`
	OtelServiceName   string `json:"otel.service.name"`
}

// ScreenLogStruct : In-RAM Log for the UI collaborator
type ScreenLogStruct struct {
	Log      []string `json:"log"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
}

// Notification : Transient advisory for the UI layer (e.g. rejected navigation)
type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	New     bool   `json:"new"`
}

var System SystemStruct
var Settings SettingsStruct

// WebScreenLog : Log Entries for the UI collaborator
var WebScreenLog ScreenLogStruct

// SystemFiles : All Files created by the guide core
var SystemFiles = []string{"settings.json"}

func init() {
	System.AppName = "tvguide"
	System.Name = "tvGuide"
	System.Version = "0.1.0"
	System.Build = "dev"

	Settings.GuideVisibleHours = defaultVisibleHours
	Settings.GuideSlotMinutes = defaultSlotMinutes
	Settings.LogEntriesRAM = 500
	Settings.OtelExporter = "none"
	Settings.OtelServiceName = System.AppName
}
