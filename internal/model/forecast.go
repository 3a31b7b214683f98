// internal/model/forecast.go
package model

import "github.com/google/uuid"

// ForecastQuery は予測APIのクエリパラメータ
type ForecastQuery struct {
	Days  *int   `json:"days" validate:"omitempty,min=0"`
	Start string `json:"start" validate:"omitempty,datetime=2006-01-02"`
}

// ForecastSeries は辞書ごとの日別出題数
type ForecastSeries struct {
	DictionaryID uuid.UUID `json:"dictionary_id"`
	Name         string    `json:"name"`
	Counts       []int     `json:"counts"`
}

// ForecastResponse は予測APIのレスポンスDTO
type ForecastResponse struct {
	StartDate string           `json:"start_date"`
	Dates     []string         `json:"dates"`
	Series    []ForecastSeries `json:"series"`
	Sum       []int            `json:"sum"`
}
