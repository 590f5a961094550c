// internal/model/schedule.go
package model

// 提案日の表示区分
const (
	SuggestionStatusPast      = "past"      // 今日より前
	SuggestionStatusSuggested = "suggested" // 今日以降
)

// SuggestedDateResponse はカレンダー表示用の候補日1件分のDTO
type SuggestedDateResponse struct {
	Date   Date   `json:"date"`
	Status string `json:"status"`
}

// ScheduleResponse は計測スケジュール提案のレスポンスDTO
type ScheduleResponse struct {
	IntervalWeeks int                     `json:"interval_weeks"`
	AnchorDate    Date                    `json:"anchor_date"`
	Dates         []SuggestedDateResponse `json:"dates"`
	// NextDate は今日以降で最初の候補日。全候補が過去の場合は null
	NextDate *Date `json:"next_date,omitempty"`
}
