package srs

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Group は予測の系列ひとつ分 (辞書とその単語ペア) です。
type Group[K comparable, T Item] struct {
	Key   K
	Items []T
}

// Projection は Forecast の結果です。Counts[k][i] は Dates[i] に k で出題される件数です。
type Projection[K comparable] struct {
	Start       civil.Date
	Dates       []civil.Date
	Collections []K
	Counts      map[K][]int
}

// Count は日付 date の k の件数を返します。予測範囲外や未知の k は 0 です。
func (p *Projection[K]) Count(k K, date civil.Date) int {
	counts, ok := p.Counts[k]
	if !ok {
		return 0
	}
	i := date.DaysSince(p.Start)
	if i < 0 || i >= len(counts) {
		return 0
	}
	return counts[i]
}

// Sum は全系列を日ごとに合計した系列を返します。
func (p *Projection[K]) Sum() []int {
	sum := make([]int, len(p.Dates))
	for _, k := range p.Collections {
		for i, c := range p.Counts[k] {
			sum[i] += c
		}
	}
	return sum
}

// Total は k の予測期間中の件数の合計です。
func (p *Projection[K]) Total(k K) int {
	total := 0
	for _, c := range p.Counts[k] {
		total += c
	}
	return total
}

type bucketKey[K comparable] struct {
	collection K
	date       civil.Date
}

// bucket は (系列, 日付) -> strength -> 件数。1回の Forecast の中だけで使います。
type bucket[K comparable] map[bucketKey[K]]map[int]int

func (b bucket[K]) add(k K, date civil.Date, strength, count int) {
	key := bucketKey[K]{collection: k, date: date}
	byStrength, ok := b[key]
	if !ok {
		byStrength = make(map[int]int)
		b[key] = byStrength
	}
	byStrength[strength] += count
}

func (b bucket[K]) pop(k K, date civil.Date) map[int]int {
	key := bucketKey[K]{collection: k, date: date}
	byStrength := b[key]
	delete(b, key)
	return byStrength
}

// Forecast は start から days 日間、毎日何件の出題があるかを系列ごとに予測します。
//
// すべての出題に正解する (常に Strengthen が適用される) と仮定します。
// 期限切れの状態は start 日にまとめて数えます。
func Forecast[K comparable, T Item](groups []Group[K, T], start civil.Date, days int) (*Projection[K], error) {
	if days < 0 {
		return nil, fmt.Errorf("forecast days must not be negative, got %d: %w", days, ErrInvalidArgument)
	}

	p := &Projection[K]{
		Start:       start,
		Dates:       make([]civil.Date, days),
		Collections: make([]K, 0, len(groups)),
		Counts:      make(map[K][]int, len(groups)),
	}
	for i := range p.Dates {
		p.Dates[i] = start.AddDays(i)
	}

	b := make(bucket[K])
	for _, g := range groups {
		if _, seen := p.Counts[g.Key]; !seen {
			p.Collections = append(p.Collections, g.Key)
			p.Counts[g.Key] = make([]int, days)
		}
		for _, item := range g.Items {
			if item.IsDeleted() {
				continue
			}
			for _, d := range Directions {
				s := item.ReviewState(d)
				due := s.DueDate
				if due.Before(start) {
					due = start
				}
				b.add(g.Key, due, s.Strength, 1)
			}
		}
	}

	for i, date := range p.Dates {
		for _, k := range p.Collections {
			total := 0
			for strength, count := range b.pop(k, date) {
				total += count
				b.add(k, NextDueDate(strength, date), strength+1, count)
			}
			p.Counts[k][i] = total
		}
	}
	return p, nil
}
