package toeicv1

type GetStreaksRequest struct {
	UserID int64 `json:"user_id" validate:"gt=0"`
}

type StreakSummary struct {
	Current         int `json:"current"`
	Longest         int `json:"longest"`
	TotalActiveDays int `json:"total_active_days"`
}
