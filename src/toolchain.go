package src

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/avfs/avfs"
	"github.com/avfs/avfs/vfs/memfs"
	"github.com/avfs/avfs/vfs/osfs"
)

// settingsVFS : Filesystem for the settings file. A virtual filesystem keeps
// the core free of on-disk state when the embedding process asks for it.
var settingsVFS avfs.VFS = osfs.New()

// initSettingsVFS : Selects the filesystem for the settings file
func initSettingsVFS(virtual bool) {
	if virtual {
		settingsVFS = memfs.New()
	} else {
		settingsVFS = osfs.New()
	}
}

// --- System Tools ---

// Checks whether the Folder exists, if not, the Folder is created
func checkVFSFolder(path string, vfs avfs.VFS) (err error) {
	var debug string
	_, err = vfs.Stat(filepath.Dir(path))

	if fsIsNotExistErr(err) {
		// Folder does not exist, will now be created
		err = vfs.MkdirAll(getPlatformPath(path), 0755)
		if err == nil {
			debug = fmt.Sprintf("Create Folder:%s", path)
			showDebug(debug, 1)
		} else {
			return err
		}
		return nil
	}
	return nil
}

// fsIsNotExistErr : Returns true whether the <err> is known to report that a file or directory
// does not exist, including virtual file system errors
func fsIsNotExistErr(err error) bool {
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, avfs.ErrWinPathNotFound) ||
		errors.Is(err, avfs.ErrNoSuchFileOrDir) ||
		errors.Is(err, avfs.ErrWinFileNotFound) {
		return true
	}
	return false
}

// Checks whether the File exists in the Filesystem
func checkVFSFile(filename string, vfs avfs.VFS) (err error) {
	var file = getPlatformFile(filename)

	fi, err := vfs.Stat(file)
	if err != nil {
		return err
	}

	if fi.Mode().IsDir() {
		err = fmt.Errorf("%s: %s", file, getErrMsg(1004))
	}
	return
}

// Generate folder path for the running OS
func getPlatformPath(path string) string {
	return filepath.Dir(path) + string(os.PathSeparator)
}

// Generate File Path for the running OS
func getPlatformFile(filename string) (osFilePath string) {
	path, file := filepath.Split(filename)
	var newPath = filepath.Dir(path)
	osFilePath = newPath + string(os.PathSeparator) + file
	return
}

// Output Filenames from the File Path
func getFilenameFromPath(path string) (file string) {
	return filepath.Base(path)
}

// JSON
func mapToJSON(tmpMap any) string {
	jsonString, err := json.MarshalIndent(tmpMap, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(jsonString)
}

func saveMapToJSONFile(file string, tmpMap any) error {
	var filename = getPlatformFile(file)
	jsonString, err := json.MarshalIndent(tmpMap, "", "  ")
	if err != nil {
		return err
	}

	err = settingsVFS.WriteFile(filename, []byte(jsonString), 0644)
	if err != nil {
		return err
	}
	return nil
}

func loadJSONFileToMap(file string) (tmpMap map[string]any, err error) {
	f, err := settingsVFS.Open(getPlatformFile(file))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err == nil {
		err = json.Unmarshal(content, &tmpMap)
	}
	return
}

// Binary
func writeByteToFile(file string, data []byte) (err error) {
	var filename = getPlatformFile(file)
	err = settingsVFS.WriteFile(filename, data, 0644)
	return
}

func readStringFromFile(file string) (str string, err error) {
	var filename = getPlatformFile(file)

	err = checkVFSFile(filename, settingsVFS)
	if err != nil {
		return
	}

	content, err := settingsVFS.ReadFile(filename)
	if err != nil {
		ShowError(err, 1004)
		return
	}

	str = string(content)
	return
}
