// internal/composition/composition_test.go
package composition

import (
	"testing"

	"fittrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return &v
}

func TestEstimate_Male(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantFat float64
	}{
		{
			name: "正常系: 標準的な男性の計測値",
			input: Input{
				Sex:      model.SexMale,
				HeightCm: f(180),
				NeckCm:   f(38),
				WaistCm:  f(85),
			},
			wantFat: 16.2,
		},
		{
			name: "正常系: 極端な入力は上限60.0にクリップ",
			input: Input{
				Sex:      model.SexMale,
				HeightCm: f(160),
				NeckCm:   f(30),
				WaistCm:  f(200),
			},
			wantFat: 60.0,
		},
		{
			name: "正常系: ウエスト≦首でも失敗せず下限にクリップ",
			input: Input{
				Sex:      model.SexMale,
				HeightCm: f(180),
				NeckCm:   f(40),
				WaistCm:  f(39),
			},
			wantFat: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Estimate(tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantFat, result.FatPercent)
			assert.GreaterOrEqual(t, result.FatPercent, 3.0)
			assert.LessOrEqual(t, result.FatPercent, 60.0)
			// 体重なしでは導出値は未計算 (ゼロではなく nil)
			assert.Nil(t, result.WaterPercent)
			assert.Nil(t, result.MusclePercent)
		})
	}
}

func TestEstimate_Female(t *testing.T) {
	result, err := Estimate(Input{
		Sex:      model.SexFemale,
		HeightCm: f(165),
		NeckCm:   f(32),
		WaistCm:  f(70),
		HipCm:    f(95),
	})
	require.NoError(t, err)
	assert.Equal(t, 25.1, result.FatPercent)
}

func TestEstimate_MissingFields(t *testing.T) {
	tests := []struct {
		name        string
		input       Input
		wantMissing []string
	}{
		{
			name: "異常系: ウエスト欠損",
			input: Input{
				Sex:      model.SexMale,
				HeightCm: f(180),
				NeckCm:   f(38),
			},
			wantMissing: []string{"waist_cm"},
		},
		{
			name: "異常系: 女性はヒップも必須",
			input: Input{
				Sex:      model.SexFemale,
				HeightCm: f(165),
				NeckCm:   f(32),
				WaistCm:  f(70),
			},
			wantMissing: []string{"hip_cm"},
		},
		{
			name:        "異常系: 全項目欠損はまとめて報告",
			input:       Input{Sex: model.SexFemale},
			wantMissing: []string{"height_cm", "neck_cm", "waist_cm", "hip_cm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Estimate(tt.input)
			require.Error(t, err)
			// エラー時に部分的な結果は返さない
			assert.Nil(t, result)

			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "MISSING_MEASUREMENTS", appErr.Detail.Code)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Len(t, appErr.Detail.Fields, len(tt.wantMissing))
			for _, field := range tt.wantMissing {
				assert.Contains(t, appErr.Detail.Fields, field)
			}
		})
	}
}

func TestEstimate_DerivedPercentages(t *testing.T) {
	t.Run("正常系: 体重ありで水分・筋肉率を導出", func(t *testing.T) {
		result, err := Estimate(Input{
			Sex:      model.SexMale,
			HeightCm: f(180),
			NeckCm:   f(38),
			WaistCm:  f(85),
			WeightKg: f(80),
		})
		require.NoError(t, err)
		require.NotNil(t, result.WaterPercent)
		require.NotNil(t, result.MusclePercent)
		// fat=16.2 → FFM=67.04kg → water=61.2%, muscle=43.6%
		assert.Equal(t, 61.2, *result.WaterPercent)
		assert.Equal(t, 43.6, *result.MusclePercent)
		assert.Greater(t, *result.WaterPercent, 0.0)
		assert.Less(t, *result.WaterPercent, 100.0)
		assert.Greater(t, *result.MusclePercent, 0.0)
		assert.Less(t, *result.MusclePercent, 100.0)
	})

	t.Run("正常系: 体重ゼロ以下では導出しない", func(t *testing.T) {
		result, err := Estimate(Input{
			Sex:      model.SexMale,
			HeightCm: f(180),
			NeckCm:   f(38),
			WaistCm:  f(85),
			WeightKg: f(0),
		})
		require.NoError(t, err)
		assert.Nil(t, result.WaterPercent)
		assert.Nil(t, result.MusclePercent)
	})
}
