package srs

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"cloud.google.com/go/civil"
)

// Shuffler は出題順の並べ替えに使う乱数源です。*rand.Rand がそのまま使えます。
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Due は出題対象の (単語ペア, 方向) の組です。
type Due[T Item] struct {
	Item      T
	Direction Direction
}

// Scope は出題対象の範囲です。
type Scope string

const (
	ScopeDue Scope = "due" // 今日までに復習日が来たものだけ
	ScopeAll Scope = "all" // 削除されていないものすべて
)

// ParseScope は空文字を ScopeDue として扱います。
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "", ScopeDue:
		return ScopeDue, nil
	case ScopeAll:
		return ScopeAll, nil
	default:
		return "", fmt.Errorf("unknown practice scope %q: %w", s, ErrInvalidArgument)
	}
}

// SelectDue は今日出題すべき組を入力順に返します。並べ替えはしません。
func SelectDue[T Item](items []T, today civil.Date) []Due[T] {
	return selectScope(items, today, ScopeDue)
}

func selectScope[T Item](items []T, today civil.Date, scope Scope) []Due[T] {
	result := make([]Due[T], 0, len(items))
	for _, item := range items {
		if item.IsDeleted() {
			continue
		}
		for _, d := range Directions {
			if scope == ScopeAll || !item.ReviewState(d).DueDate.After(today) {
				result = append(result, Due[T]{Item: item, Direction: d})
			}
		}
	}
	return result
}

// DueSelector は出題対象を選び、保存順と無関係な順序に並べ替えます。
type DueSelector struct {
	mu   sync.Mutex
	rand Shuffler
}

// NewDueSelector は rnd で並べ替える DueSelector を返します。
// rnd が nil なら時刻で初期化した乱数源を使います。
func NewDueSelector(rnd Shuffler) *DueSelector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DueSelector{rand: rnd}
}

// DueToday は今日出題すべき組をシャッフルして返します。
func DueToday[T Item](s *DueSelector, items []T, today civil.Date) []Due[T] {
	return Select(s, items, today, ScopeDue)
}

// Select は scope に従って組を選び、シャッフルして返します。
func Select[T Item](s *DueSelector, items []T, today civil.Date, scope Scope) []Due[T] {
	result := selectScope(items, today, scope)
	s.shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

func (s *DueSelector) shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	// *rand.Rand は並行利用できない
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rand.Shuffle(n, swap)
}
