package src

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync"
	"time"
)

var screenLogMutex sync.Mutex

var notificationMutex sync.Mutex
var notifications = make(map[string]Notification)

// Error messages for the log. Codes below 2000 are errors, 2xxx warnings,
// 3xxx transient advisories.
func getErrMsg(errCode int) (errMsg string) {
	switch errCode {
	case 0:
		break
	case 1001:
		errMsg = "Invalid channel list, an extended M3U playlist is required"
	case 1004:
		errMsg = "File could not be read"
	case 1010:
		errMsg = "Invalid settings file"
	case 1011:
		errMsg = "Unknown telemetry exporter, telemetry is disabled"
	case 1015:
		errMsg = "Temp folder could not be created"
	case 2301:
		errMsg = "Guide feed could not be parsed, schedule is empty"
	case 2302:
		errMsg = "Programme entry skipped, invalid start or stop timestamp"
	case 2303:
		errMsg = "No guide data for any active channel"
	case 3001:
		errMsg = "Navigation outside the allowed time range"
	default:
		errMsg = fmt.Sprintf("Unknown error code: %d", errCode)
	}
	return
}

func showInfo(str string) {
	if System.Flag.Info {
		return
	}

	var max = 23
	var msg = strings.SplitN(str, ":", 2)
	var length = len(msg[0])
	var space string

	if len(msg) == 2 {
		for i := length; i < max; i++ {
			space = space + " "
		}

		msg[0] = msg[0] + ":" + space

		var logMsg = fmt.Sprintf("[%s] %s%s", System.Name, msg[0], msg[1])

		printLogOnScreen(logMsg, "info")

		screenLogMutex.Lock()
		WebScreenLog.Log = append(WebScreenLog.Log, time.Now().Format("2006-01-02 15:04:05")+" "+logMsg)
		logCleanUp()
		screenLogMutex.Unlock()
	}
}

func showDebug(str string, level int) {
	if System.Flag.Debug < level {
		return
	}

	var max = 23
	var msg = strings.SplitN(str, ":", 2)
	var length = len(msg[0])
	var space string

	if len(msg) == 2 {
		for i := length; i < max; i++ {
			space = space + " "
		}
		msg[0] = msg[0] + ":" + space

		var logMsg = fmt.Sprintf("[DEBUG] %s%s", msg[0], msg[1])

		printLogOnScreen(logMsg, "debug")

		screenLogMutex.Lock()
		WebScreenLog.Log = append(WebScreenLog.Log, time.Now().Format("2006-01-02 15:04:05")+" "+logMsg)
		logCleanUp()
		screenLogMutex.Unlock()
	}
}

func showWarning(errCode int) {
	var errMsg = getErrMsg(errCode)
	var logMsg = fmt.Sprintf("[%s] [WARNING] %s", System.Name, errMsg)

	printLogOnScreen(logMsg, "warning")

	screenLogMutex.Lock()
	WebScreenLog.Log = append(WebScreenLog.Log, time.Now().Format("2006-01-02 15:04:05")+" "+logMsg)
	WebScreenLog.Warnings++
	screenLogMutex.Unlock()
}

// ShowError : Shows the Error Messages in the Console
func ShowError(err error, errCode int) {
	var errMsg = getErrMsg(errCode)
	var logMsg = fmt.Sprintf("[%s] [ERROR] %s (%s) - EC: %d", System.Name, err, errMsg, errCode)

	printLogOnScreen(logMsg, "error")

	screenLogMutex.Lock()
	WebScreenLog.Log = append(WebScreenLog.Log, time.Now().Format("2006-01-02 15:04:05")+" "+logMsg)
	WebScreenLog.Errors++
	screenLogMutex.Unlock()
}

func printLogOnScreen(logMsg string, logType string) {
	var color string

	switch logType {
	case "info":
		color = "\033[0m"
	case "debug":
		color = "\033[35m"
	case "warning":
		color = "\033[33m"
	case "error":
		color = "\033[31m"
	}

	switch runtime.GOOS {
	case "windows":
		log.Println(logMsg)
	default:
		fmt.Print(color)
		log.Println(logMsg)
		fmt.Print("\033[0m")
	}
}

func logCleanUp() {
	var logEntriesRAM = Settings.LogEntriesRAM
	var logs = WebScreenLog.Log

	WebScreenLog.Warnings = 0
	WebScreenLog.Errors = 0

	if len(logs) > logEntriesRAM {
		logs = logs[len(logs)-logEntriesRAM:]
	}

	for _, l := range logs {
		if strings.Contains(l, "WARNING") {
			WebScreenLog.Warnings++
		}

		if strings.Contains(l, "ERROR") {
			WebScreenLog.Errors++
		}
	}
	WebScreenLog.Log = logs
}

// addNotification : Queues a transient advisory for the UI collaborator
func addNotification(notification Notification) {
	notification.New = true

	notificationMutex.Lock()
	notifications[notification.Type] = notification
	notificationMutex.Unlock()
}

// getNotifications : Hands the queued advisories to the UI collaborator and clears them
func getNotifications() (list []Notification) {
	notificationMutex.Lock()
	defer notificationMutex.Unlock()

	for key, n := range notifications {
		list = append(list, n)
		delete(notifications, key)
	}
	return
}
