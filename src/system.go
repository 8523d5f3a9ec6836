package src

import (
	"encoding/json"
	"os"
	"strconv"
)

const defaultSlotMinutes = 30
const defaultVisibleHours = 4

// Create all System Files
func createSystemFiles() (err error) {
	var debug string
	for _, file := range SystemFiles {
		var filename = getPlatformFile(System.Folder.Config + file)

		err = checkVFSFile(filename, settingsVFS)
		if err != nil {
			// File does not exist, will be created now
			err = checkVFSFolder(filename, settingsVFS)
			if err != nil {
				return
			}

			err = saveMapToJSONFile(filename, make(map[string]any))
			if err != nil {
				return
			}
			debug = "Create File:" + filename
			showDebug(debug, 1)
		}

		switch file {
		case "settings.json":
			System.File.Settings = filename
		}
	}
	return
}

// Load Settings and set Default Values (tvGuide)
func loadSettings() (settings SettingsStruct, err error) {
	settingsMap, err := loadJSONFileToMap(System.File.Settings)
	if err != nil {
		return
	}

	// Set Default Values
	var defaults = make(map[string]any)

	defaults["guide.visible.hours"] = defaultVisibleHours
	defaults["guide.slot.minutes"] = defaultSlotMinutes
	defaults["log.entries.ram"] = 500
	defaults["otel.exporter"] = "none"
	defaults["otel.endpoint"] = ""
	defaults["otel.service.name"] = System.AppName

	for key, value := range defaults {
		if _, ok := settingsMap[key]; !ok {
			settingsMap[key] = value
		}
	}

	err = json.Unmarshal([]byte(mapToJSON(settingsMap)), &settings)
	if err != nil {
		return
	}

	// Override the guide span from the environment if set
	if envVal := os.Getenv("TVGUIDE_VISIBLE_HOURS"); envVal != "" {
		if val, err := strconv.Atoi(envVal); err == nil && val > 0 {
			settings.GuideVisibleHours = val
		}
	}

	err = saveSettings(settings)
	return
}

// Save Settings (tvGuide)
func saveSettings(settings SettingsStruct) (err error) {
	if settings.LogEntriesRAM <= 0 {
		settings.LogEntriesRAM = 500
	}

	if settings.GuideSlotMinutes <= 0 || settings.GuideSlotMinutes > 240 {
		settings.GuideSlotMinutes = defaultSlotMinutes
	}

	if settings.GuideVisibleHours <= 0 {
		settings.GuideVisibleHours = defaultVisibleHours
	}

	err = writeByteToFile(System.File.Settings, []byte(mapToJSON(settings)))
	if err != nil {
		return
	}

	Settings = settings
	return
}
