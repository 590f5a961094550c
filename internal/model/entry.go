// internal/model/entry.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 計測値の入力元
const (
	EntrySourceManual = "manual"
	EntrySourceScale  = "scale"
	EntrySourceCoach  = "coach"
)

// ProgressEntry は1暦日分の計測記録です。
// 計測項目は任意入力のため、文字列キーのマップではなく項目ごとの
// Optionalなフィールドで表し、欠損チェックを型で網羅できるようにしています。
// recorded_on はテナント内で自然キーとして扱い、複合ユニーク制約で
// 1日1件を保証します (同日の再送信は既存行の更新になる)。
type ProgressEntry struct {
	EntryID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"entry_id"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index:idx_tenant_recorded,unique" json:"-"`
	RecordedOn Date      `gorm:"not null;index:idx_tenant_recorded,unique" json:"recorded_on"`

	WeightKg *float64 `json:"weight_kg,omitempty"`

	// 周囲径 (cm)
	WaistCm *float64 `json:"waist_cm,omitempty"`
	HipCm   *float64 `json:"hip_cm,omitempty"`
	NeckCm  *float64 `json:"neck_cm,omitempty"`
	ChestCm *float64 `json:"chest_cm,omitempty"`
	ArmCm   *float64 `json:"arm_cm,omitempty"`
	ThighCm *float64 `json:"thigh_cm,omitempty"`
	GluteCm *float64 `json:"glute_cm,omitempty"`

	// 体組成 (%)。手入力と推定値は同じカラムに入る (出所の区別は持たない)
	FatPercent    *float64 `json:"fat_percent,omitempty"`
	MusclePercent *float64 `json:"muscle_percent,omitempty"`
	WaterPercent  *float64 `json:"water_percent,omitempty"`

	Notes  string `json:"notes,omitempty"`
	Source string `gorm:"type:varchar(20);default:manual" json:"source"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}

// PostEntryRequest は計測記録作成のリクエストDTO
type PostEntryRequest struct {
	RecordedOn Date `json:"recorded_on" validate:"required"`

	WeightKg *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=500"`

	WaistCm *float64 `json:"waist_cm,omitempty" validate:"omitempty,gt=0,lte=300"`
	HipCm   *float64 `json:"hip_cm,omitempty" validate:"omitempty,gt=0,lte=300"`
	NeckCm  *float64 `json:"neck_cm,omitempty" validate:"omitempty,gt=0,lte=100"`
	ChestCm *float64 `json:"chest_cm,omitempty" validate:"omitempty,gt=0,lte=300"`
	ArmCm   *float64 `json:"arm_cm,omitempty" validate:"omitempty,gt=0,lte=150"`
	ThighCm *float64 `json:"thigh_cm,omitempty" validate:"omitempty,gt=0,lte=200"`
	GluteCm *float64 `json:"glute_cm,omitempty" validate:"omitempty,gt=0,lte=300"`

	FatPercent    *float64 `json:"fat_percent,omitempty" validate:"omitempty,gt=0,lt=100"`
	MusclePercent *float64 `json:"muscle_percent,omitempty" validate:"omitempty,gt=0,lt=100"`
	WaterPercent  *float64 `json:"water_percent,omitempty" validate:"omitempty,gt=0,lt=100"`

	Notes  string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Source string `json:"source,omitempty" validate:"omitempty,oneof=manual scale coach"`
}

// PatchEntryRequest は計測記録の部分更新リクエストDTO
type PatchEntryRequest struct {
	WeightKg *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=500"`

	WaistCm *float64 `json:"waist_cm,omitempty" validate:"omitempty,gt=0,lte=300"`
	HipCm   *float64 `json:"hip_cm,omitempty" validate:"omitempty,gt=0,lte=300"`
	NeckCm  *float64 `json:"neck_cm,omitempty" validate:"omitempty,gt=0,lte=100"`
	ChestCm *float64 `json:"chest_cm,omitempty" validate:"omitempty,gt=0,lte=300"`
	ArmCm   *float64 `json:"arm_cm,omitempty" validate:"omitempty,gt=0,lte=150"`
	ThighCm *float64 `json:"thigh_cm,omitempty" validate:"omitempty,gt=0,lte=200"`
	GluteCm *float64 `json:"glute_cm,omitempty" validate:"omitempty,gt=0,lte=300"`

	FatPercent    *float64 `json:"fat_percent,omitempty" validate:"omitempty,gt=0,lt=100"`
	MusclePercent *float64 `json:"muscle_percent,omitempty" validate:"omitempty,gt=0,lt=100"`
	WaterPercent  *float64 `json:"water_percent,omitempty" validate:"omitempty,gt=0,lt=100"`

	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// IsEmpty は更新対象フィールドが1つも指定されていないか判定します
func (r *PatchEntryRequest) IsEmpty() bool {
	return r.WeightKg == nil && r.WaistCm == nil && r.HipCm == nil && r.NeckCm == nil &&
		r.ChestCm == nil && r.ArmCm == nil && r.ThighCm == nil && r.GluteCm == nil &&
		r.FatPercent == nil && r.MusclePercent == nil && r.WaterPercent == nil && r.Notes == nil
}
