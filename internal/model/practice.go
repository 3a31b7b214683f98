// internal/model/practice.go
package model

import "github.com/google/uuid"

// PracticeItemResponse は出題リストの要素のレスポンスDTO
type PracticeItemResponse struct {
	WordPairID  uuid.UUID `json:"word_pair_id"`
	Direction   int       `json:"direction"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"` // 正解表示用に含める
	Explanation string    `json:"explanation,omitempty"`
	Strength    int       `json:"strength"`
}

// PracticeCountResponse は今日の出題数のレスポンスDTO
type PracticeCountResponse struct {
	Count int `json:"count"`
}

// SubmitAnswerRequest は回答送信リクエストのDTO
type SubmitAnswerRequest struct {
	Direction int   `json:"direction" validate:"required,oneof=1 2"`
	Answer    *bool `json:"answer" validate:"required"`
}

// ReviewStateResponse は回答反映後の状態のレスポンスDTO
type ReviewStateResponse struct {
	WordPairID uuid.UUID `json:"word_pair_id"`
	Direction  int       `json:"direction"`
	Strength   int       `json:"strength"`
	DueDate    string    `json:"due_date"` // YYYY-MM-DD
	Applied    bool      `json:"applied"`  // false なら既に反映済みだった
}
