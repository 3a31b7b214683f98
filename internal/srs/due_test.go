package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reverseShuffler は決定的なテスト用の Shuffler で、要素を逆順に並べます。
type reverseShuffler struct {
	calls int
}

func (r *reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	r.calls++
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func names(dues []Due[*testItem]) []string {
	out := make([]string, len(dues))
	for i, d := range dues {
		out[i] = d.Item.name + "/" + d.Direction.String()
	}
	return out
}

func TestSelectDue(t *testing.T) {
	today := date(2024, 1, 10)
	past := date(2024, 1, 5)
	future := date(2024, 1, 11)

	tests := []struct {
		name  string
		items []*testItem
		want  []string
	}{
		{
			name:  "正常系: 方向1だけ期限",
			items: []*testItem{newItem("a", 0, past, 0, future)},
			want:  []string{"a/first"},
		},
		{
			name:  "正常系: 方向2だけ期限",
			items: []*testItem{newItem("a", 0, future, 0, past)},
			want:  []string{"a/second"},
		},
		{
			name:  "正常系: 両方向とも期限 (当日を含む)",
			items: []*testItem{newItem("a", 0, today, 3, past)},
			want:  []string{"a/first", "a/second"},
		},
		{
			name:  "正常系: どちらも未来",
			items: []*testItem{newItem("a", 0, future, 0, future)},
			want:  []string{},
		},
		{
			name: "正常系: 削除済みは対象外",
			items: []*testItem{
				{name: "deleted", pair: ReviewPair{{DueDate: past}, {DueDate: past}}, deleted: true},
				newItem("b", 1, past, 1, future),
			},
			want: []string{"b/first"},
		},
		{
			name:  "正常系: 入力が空",
			items: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(SelectDue(tt.items, today)))
		})
	}
}

func TestDueToday_Shuffles(t *testing.T) {
	today := date(2024, 1, 10)
	items := []*testItem{
		newItem("a", 0, today, 0, today),
		newItem("b", 0, today, 0, date(2024, 2, 1)),
	}
	shuffler := &reverseShuffler{}
	selector := NewDueSelector(shuffler)

	got := DueToday(selector, items, today)

	assert.Equal(t, 1, shuffler.calls)
	assert.Equal(t, []string{"b/first", "a/second", "a/first"}, names(got))
}

func TestDueToday_DefaultShufflerKeepsSet(t *testing.T) {
	today := date(2024, 1, 10)
	var items []*testItem
	for i := 0; i < 20; i++ {
		items = append(items, newItem(string(rune('a'+i)), 0, today, 0, today))
	}

	got := DueToday(NewDueSelector(nil), items, today)

	require.Len(t, got, 40)
	assert.ElementsMatch(t, names(SelectDue(items, today)), names(got))
}

func TestSelect_ScopeAll(t *testing.T) {
	today := date(2024, 1, 10)
	items := []*testItem{
		newItem("a", 2, date(2024, 3, 1), 0, today),
		{name: "deleted", pair: ReviewPair{{DueDate: today}, {DueDate: today}}, deleted: true},
	}
	selector := NewDueSelector(&reverseShuffler{})

	got := Select(selector, items, today, ScopeAll)

	assert.ElementsMatch(t, []string{"a/first", "a/second"}, names(got))
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeDue, s)

	s, err = ParseScope("all")
	require.NoError(t, err)
	assert.Equal(t, ScopeAll, s)

	_, err = ParseScope("weekly")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
