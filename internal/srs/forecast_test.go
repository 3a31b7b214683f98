package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offsetsWithEvents は counts の中で値が入っている日のオフセットを返します。
func offsetsWithEvents(counts []int) []int {
	var offsets []int
	for i, c := range counts {
		if c > 0 {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

func TestForecast_SingleItem(t *testing.T) {
	start := date(2024, 1, 1)
	// 方向2は予測期間外
	item := newItem("a", 0, start, 0, date(2024, 6, 1))
	groups := []Group[string, *testItem]{{Key: "dict", Items: []*testItem{item}}}

	p, err := Forecast(groups, start, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 0, 1, 0, 0, 0, 1, 0, 0}, p.Counts["dict"])
	require.Len(t, p.Dates, 10)
	assert.Equal(t, start, p.Dates[0])
	assert.Equal(t, date(2024, 1, 10), p.Dates[9])
}

func TestForecast_ExponentialSteps(t *testing.T) {
	start := date(2024, 1, 1)
	item := newItem("a", 0, start, 0, date(2030, 1, 1))
	groups := []Group[string, *testItem]{{Key: "dict", Items: []*testItem{item}}}

	p, err := Forecast(groups, start, 30)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 7, 15}, offsetsWithEvents(p.Counts["dict"]))
	assert.Equal(t, 5, p.Total("dict"))
}

func TestForecast_SameStrengthCombines(t *testing.T) {
	start := date(2024, 1, 1)
	far := date(2030, 1, 1)
	groups := []Group[string, *testItem]{{Key: "dict", Items: []*testItem{
		newItem("a", 0, start, 0, far),
		newItem("b", 0, start, 0, far),
	}}}

	p, err := Forecast(groups, start, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2, 0, 2}, p.Counts["dict"])
}

func TestForecast_OverdueFoldsIntoStart(t *testing.T) {
	start := date(2024, 1, 10)
	groups := []Group[string, *testItem]{{Key: "dict", Items: []*testItem{
		// 両方向とも期限切れ、strength 2 -> 4日後に再出題
		newItem("a", 2, date(2023, 12, 1), 2, date(2024, 1, 9)),
	}}}

	p, err := Forecast(groups, start, 6)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, 0, 0, 2, 0}, p.Counts["dict"])
	assert.Equal(t, 2, p.Count("dict", start))
	assert.Equal(t, 2, p.Count("dict", date(2024, 1, 14)))
}

func TestForecast_NegativeStrengthClamped(t *testing.T) {
	start := date(2024, 1, 1)
	groups := []Group[string, *testItem]{{Key: "dict", Items: []*testItem{
		newItem("a", -3, start, 0, date(2030, 1, 1)),
	}}}

	p, err := Forecast(groups, start, 8)
	require.NoError(t, err)

	// -3 -> 1日, -2 -> 1日, -1 -> 1日, 0 -> 1日, 1 -> 2日, 2 -> 4日
	assert.Equal(t, []int{0, 1, 2, 3, 4, 6}, offsetsWithEvents(p.Counts["dict"]))
}

func TestForecast_MultipleCollectionsAndSum(t *testing.T) {
	start := date(2024, 1, 1)
	far := date(2030, 1, 1)
	groups := []Group[string, *testItem]{
		{Key: "en", Items: []*testItem{newItem("a", 0, start, 0, far)}},
		{Key: "de", Items: []*testItem{
			newItem("b", 1, date(2024, 1, 2), 0, far),
			{name: "deleted", pair: ReviewPair{{DueDate: start}, {DueDate: start}}, deleted: true},
		}},
		{Key: "empty"},
	}

	p, err := Forecast(groups, start, 4)
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "de", "empty"}, p.Collections)
	assert.Equal(t, []int{1, 1, 0, 1}, p.Counts["en"])
	assert.Equal(t, []int{0, 1, 0, 1}, p.Counts["de"])
	assert.Equal(t, []int{0, 0, 0, 0}, p.Counts["empty"])
	assert.Equal(t, []int{1, 2, 0, 2}, p.Sum())
}

func TestForecast_ZeroDays(t *testing.T) {
	start := date(2024, 1, 1)
	groups := []Group[string, *testItem]{
		{Key: "en", Items: []*testItem{newItem("a", 0, start, 0, start)}},
		{Key: "de"},
	}

	p, err := Forecast(groups, start, 0)
	require.NoError(t, err)

	assert.Empty(t, p.Dates)
	require.Len(t, p.Counts, 2)
	for _, k := range []string{"en", "de"} {
		assert.NotNil(t, p.Counts[k])
		assert.Empty(t, p.Counts[k])
	}
	assert.Empty(t, p.Sum())
}

func TestForecast_NegativeDays(t *testing.T) {
	p, err := Forecast[string, *testItem](nil, date(2024, 1, 1), -1)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestProjection_CountOutOfRange(t *testing.T) {
	start := date(2024, 1, 1)
	groups := []Group[string, *testItem]{{Key: "en", Items: []*testItem{newItem("a", 0, start, 0, start)}}}

	p, err := Forecast(groups, start, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Count("en", date(2023, 12, 31)))
	assert.Equal(t, 0, p.Count("en", date(2024, 1, 4)))
	assert.Equal(t, 0, p.Count("unknown", start))
}

func TestForecast_DoesNotMutateInput(t *testing.T) {
	start := date(2024, 1, 1)
	item := newItem("a", 0, start, 1, start)
	before := item.pair

	_, err := Forecast([]Group[string, *testItem]{{Key: "en", Items: []*testItem{item}}}, start, 30)
	require.NoError(t, err)

	assert.Equal(t, before, item.pair)
}

func TestForecast_MatchesSchedulerWalk(t *testing.T) {
	start := date(2024, 5, 1)
	const days = 60
	item := newItem("a", 1, date(2024, 5, 3), 0, date(2099, 1, 1))

	p, err := Forecast([]Group[string, *testItem]{{Key: "en", Items: []*testItem{item}}}, start, days)
	require.NoError(t, err)

	// Strengthen を直接たどった結果と一致する
	want := make([]int, days)
	s := item.ReviewState(First)
	end := start.AddDays(days)
	for s.DueDate.Before(end) {
		want[s.DueDate.DaysSince(start)]++
		s = Strengthen(s, s.DueDate)
	}
	assert.Equal(t, want, p.Counts["en"])
}
