package srs

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Direction は出題方向です。
type Direction int

const (
	First  Direction = iota + 1 // 言語1 -> 言語2
	Second                      // 言語2 -> 言語1
)

// Directions は全方向を出題順に並べたものです。
var Directions = [2]Direction{First, Second}

// Valid は d が First か Second なら true です。
func (d Direction) Valid() bool {
	return d == First || d == Second
}

func (d Direction) String() string {
	switch d {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection は API やインポート元から来た整数を Direction に変換します。
func ParseDirection(v int) (Direction, error) {
	d := Direction(v)
	if !d.Valid() {
		return 0, fmt.Errorf("direction must be 1 or 2, got %d: %w", v, ErrInvalidArgument)
	}
	return d, nil
}

// ReviewState は1方向分の強さと次回復習日です。
type ReviewState struct {
	Strength int
	DueDate  civil.Date
}

// NewReviewState は作成日に復習可能になる未学習の状態を返します。
func NewReviewState(created civil.Date) ReviewState {
	return ReviewState{Strength: 0, DueDate: created}
}

// ReviewPair は単語ペアの2方向分の状態です。インデックスは Direction-1。
type ReviewPair [2]ReviewState

// Get は d の状態を返します。
func (p ReviewPair) Get(d Direction) ReviewState {
	return p[d-1]
}

// With は d の状態だけを差し替えたコピーを返します。
func (p ReviewPair) With(d Direction, s ReviewState) ReviewPair {
	p[d-1] = s
	return p
}

// Item はエンジンが読む単語ペアの最小インターフェースです。
type Item interface {
	ReviewState(d Direction) ReviewState
	IsDeleted() bool
}
