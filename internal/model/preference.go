// internal/model/preference.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 計測間隔 (週) の許容範囲とデフォルト値
const (
	MinIntervalWeeks     = 1
	MaxIntervalWeeks     = 4
	DefaultIntervalWeeks = 2
)

// MeasurementPreference は計測リズムの設定を表します。
// テナントごとに1件で、存在しない場合はデフォルト値で遅延作成されます。
type MeasurementPreference struct {
	PreferenceID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"preference_id"`
	TenantID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	IntervalWeeks int       `gorm:"not null;default:2" json:"interval_weeks"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (MeasurementPreference) TableName() string {
	return "measurement_preferences"
}

// IsValidIntervalWeeks は間隔が許容集合 {1,2,3,4} に含まれるか判定します
func IsValidIntervalWeeks(v int) bool {
	return v >= MinIntervalWeeks && v <= MaxIntervalWeeks
}

// CoerceIntervalWeeks は許容外の値をデフォルトに矯正します。
// スケジューラ側は正当な値を前提とするため、呼び出し側はこの関数を通してから渡します。
func CoerceIntervalWeeks(v int) int {
	if !IsValidIntervalWeeks(v) {
		return DefaultIntervalWeeks
	}
	return v
}

// UpdatePreferenceRequest は計測間隔更新のリクエストDTO
type UpdatePreferenceRequest struct {
	IntervalWeeks int `json:"interval_weeks" validate:"required,min=1,max=4"`
}
