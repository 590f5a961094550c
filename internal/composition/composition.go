// internal/composition/composition.go
package composition

import (
	"math"

	"fittrack/internal/model"
)

// 米海軍式の体脂肪率推定と、除脂肪体重からの水分・筋肉量の概算。
// 係数はインチ単位で定義された原式のものをそのまま使う。
const (
	cmPerInch = 2.54

	// 体脂肪率の生理的に妥当な範囲。範囲外は拒否せずクリップする
	minFatPercent = 3.0
	maxFatPercent = 60.0

	// 除脂肪体重に対する水分・骨格筋の概算比率
	waterFFMRatio  = 0.73
	muscleFFMRatio = 0.52
)

// Input は推定に使う計測値です。周囲径・身長はcm、体重はkg。
// HipCm は女性の場合のみ必須、WeightKg は任意 (水分・筋肉率の導出に使用)。
type Input struct {
	Sex      model.Sex
	HeightCm *float64
	NeckCm   *float64
	WaistCm  *float64
	HipCm    *float64
	WeightKg *float64
}

// Result は推定結果です。WaterPercent / MusclePercent は体重が
// 与えられた場合のみ設定されます (未計算とゼロを区別するため nil を使う)。
type Result struct {
	FatPercent    float64
	WaterPercent  *float64
	MusclePercent *float64
}

// Estimate は周囲径から体脂肪率を推定し、体重があれば水分・筋肉率も導出します。
// 必須項目 (身長・首・ウエスト、女性は加えてヒップ) の欠損は全件まとめて
// 報告し、1件でも欠けていれば計算は行いません。
func Estimate(in Input) (*Result, error) {
	missing := map[string]string{}
	if in.HeightCm == nil {
		missing["height_cm"] = "身長が未入力です。"
	}
	if in.NeckCm == nil {
		missing["neck_cm"] = "首回りが未入力です。"
	}
	if in.WaistCm == nil {
		missing["waist_cm"] = "ウエストが未入力です。"
	}
	if in.Sex == model.SexFemale && in.HipCm == nil {
		missing["hip_cm"] = "ヒップが未入力です。"
	}
	if len(missing) > 0 {
		return nil, model.NewFieldsAppError(
			"MISSING_MEASUREMENTS",
			"体組成の推定に必要な計測値が不足しています。",
			missing,
			model.ErrInvalidInput,
		)
	}

	// 原式はインチ単位
	heightIn := *in.HeightCm / cmPerInch
	neckIn := *in.NeckCm / cmPerInch
	waistIn := *in.WaistCm / cmPerInch

	var fat float64
	if in.Sex == model.SexFemale {
		hipIn := *in.HipCm / cmPerInch
		fat = 163.205*math.Log10(waistIn+hipIn-neckIn) - 97.684*math.Log10(heightIn) - 78.387
	} else {
		fat = 86.010*math.Log10(waistIn-neckIn) - 70.041*math.Log10(heightIn) + 36.760
	}

	fat = clamp(round1(fat))
	result := &Result{FatPercent: fat}

	// 体重がある場合のみ除脂肪体重ベースの導出値を計算する
	if in.WeightKg != nil && *in.WeightKg > 0 {
		weight := *in.WeightKg
		fatMassKg := weight * fat / 100
		fatFreeMassKg := weight - fatMassKg

		waterPct := round1(fatFreeMassKg * waterFFMRatio / weight * 100)
		musclePct := round1(fatFreeMassKg * muscleFFMRatio / weight * 100)
		result.WaterPercent = &waterPct
		result.MusclePercent = &musclePct
	}

	return result, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// clamp は [3.0, 60.0] にクリップします。NaN (周囲径の組み合わせが
// 対数の定義域を外れた場合) も下限に落とし、エラーにはしません。
func clamp(v float64) float64 {
	if !(v >= minFatPercent) {
		return minFatPercent
	}
	if v > maxFatPercent {
		return maxFatPercent
	}
	return v
}
