package config

import "strings"

// AppVersion is the version of the application, stamped at build time.
var AppVersion string

// AppName is the name of the application.
const AppName = "Backdrop"

// AppID is the unique Fyne application ID, also used to scope preferences.
const AppID = "com.dixieflatline76.backdrop"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultLongPressDelayMs is how long the backdrop must be held before the
// change picture dialog opens.
const DefaultLongPressDelayMs = 600

// minLongPressDelayMs keeps a long press distinguishable from a tap.
const minLongPressDelayMs = 150
