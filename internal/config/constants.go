// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "FitTrack"
	AppVersion = "1.2.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultEntryListLimit = 90
	DefaultIntervalWeeks  = 2
	DefaultAccessTokenTTL = 24 * time.Hour
	DefaultMailerType     = "log"
)
