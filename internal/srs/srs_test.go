package srs

import (
	"time"

	"cloud.google.com/go/civil"
)

type testItem struct {
	name    string
	pair    ReviewPair
	deleted bool
}

func (i *testItem) ReviewState(d Direction) ReviewState { return i.pair.Get(d) }
func (i *testItem) IsDeleted() bool                     { return i.deleted }

func date(y int, m int, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func newItem(name string, s1 int, d1 civil.Date, s2 int, d2 civil.Date) *testItem {
	return &testItem{
		name: name,
		pair: ReviewPair{{Strength: s1, DueDate: d1}, {Strength: s2, DueDate: d2}},
	}
}
