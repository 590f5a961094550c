// internal/schedule/schedule.go
package schedule

import (
	"fmt"
	"math"

	"fittrack/internal/model"
)

// 候補日生成のパラメータ。約60日分を遡りつつ、間隔が短い場合でも
// チップが増えすぎないよう後方ステップ数には上限を設ける。
const (
	lookBackDays     = 60
	minBackwardSteps = 2
	maxBackwardSteps = 6
	forwardSteps     = 4 // アンカー自身を含む
)

// backwardSteps は後方に生成するステップ数を返します
func backwardSteps(intervalWeeks int) int {
	steps := int(math.Round(lookBackDays / float64(intervalWeeks*7)))
	if steps < minBackwardSteps {
		steps = minBackwardSteps
	}
	if steps > maxBackwardSteps {
		steps = maxBackwardSteps
	}
	return steps
}

// SuggestedDates はアンカー日と計測間隔から候補日の列を生成します。
// 後方 (アンカーに向かって昇順)、続いて前方 (アンカー自身を含み昇順) の順で、
// 全体の再ソートは行いません。now は過去/未来の区分にのみ使われ、
// 同一入力に対して常に同一の列を返します。
//
// intervalWeeks は {1,2,3,4} が前提条件で、呼び出し側が
// model.CoerceIntervalWeeks で矯正してから渡します。
func SuggestedDates(anchor model.Date, intervalWeeks int, now model.Date) []model.Date {
	stepDays := intervalWeeks * 7
	back := backwardSteps(intervalWeeks)

	dates := make([]model.Date, 0, back+forwardSteps)
	for i := back; i >= 1; i-- {
		dates = append(dates, anchor.AddDays(-i*stepDays))
	}
	for i := 0; i < forwardSteps; i++ {
		dates = append(dates, anchor.AddDays(i*stepDays))
	}
	return dates
}

// Classify は候補日を表示区分 (past / suggested) に分類します。
// 今日当日は suggested 扱いです。
func Classify(d, now model.Date) string {
	if d.Before(now) {
		return model.SuggestionStatusPast
	}
	return model.SuggestionStatusSuggested
}

// ValidateNewEntryDate は新規記録日が最低間隔を満たすか検証します。
//
//   - previous が nil またはゼロ値 (日付が壊れている場合の安全側の扱い) なら無条件で許可
//   - candidate が previous より前 (過去の記録の修正・補完) なら間隔ルールの対象外
//   - candidate が previous 以降で間隔未満なら「N週間あけてください」エラー
func ValidateNewEntryDate(candidate model.Date, previous *model.Date, intervalWeeks int) error {
	if previous == nil || previous.IsZero() {
		return nil
	}

	diffDays := candidate.DiffDays(*previous)
	if diffDays < 0 {
		// 過去方向の修正入力は前向きの間隔ルールでブロックしない
		return nil
	}
	if diffDays < intervalWeeks*7 {
		return model.NewAppError(
			"ENTRY_TOO_SOON",
			fmt.Sprintf("前回の記録から%d週間以上あけてください。", intervalWeeks),
			"recorded_on",
			model.ErrInvalidInput,
		)
	}
	return nil
}

// NextSuggested は今日以降で最初の候補日を返します。
// 全候補が過去 (記録が滞っている状態) の場合は ok=false を返し、日付を捏造しません。
func NextSuggested(dates []model.Date, now model.Date) (model.Date, bool) {
	var next model.Date
	found := false
	for _, d := range dates {
		if d.Before(now) {
			continue
		}
		if !found || d.Before(next) {
			next = d
			found = true
		}
	}
	return next, found
}

// Contains は候補集合に日付が含まれるか判定します。
// 呼び出し側は「候補に含まれる」または「既存記録と同日」のいずれかのみを
// 選択可能な日付として扱います。
func Contains(dates []model.Date, d model.Date) bool {
	for _, v := range dates {
		if v.Equal(d) {
			return true
		}
	}
	return false
}
