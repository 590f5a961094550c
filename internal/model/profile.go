// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// BodyProfile は体組成推定の入力となる身体プロファイルです。
// テナントごとに1件で、推定ロジックからは読み取り専用の入力として扱われます。
type BodyProfile struct {
	ProfileID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Sex          Sex       `gorm:"type:varchar(10);not null" json:"sex"`
	HeightCm     float64   `gorm:"not null" json:"height_cm"`
	LastWeightKg *float64  `json:"last_weight_kg,omitempty"` // 直近の体重 (任意)
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (BodyProfile) TableName() string {
	return "body_profiles"
}

// PutProfileRequest は身体プロファイル登録・更新のリクエストDTO
type PutProfileRequest struct {
	Sex          Sex      `json:"sex" validate:"required,oneof=male female"`
	HeightCm     float64  `json:"height_cm" validate:"required,gt=0,lte=300"`
	LastWeightKg *float64 `json:"last_weight_kg,omitempty" validate:"omitempty,gt=0,lte=500"`
}
