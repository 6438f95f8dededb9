package mapreduce

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtnitsch/theme-analyzer/models"
	"github.com/dtnitsch/theme-analyzer/pkg/analytics"
)

func sportsAndTech() *models.KeywordMap {
	km := models.NewKeywordMap()
	km.Set("sports", []string{"ball", "goal"})
	km.Set("tech", []string{"cpu"})
	return km
}

func TestMapReduce_SportsExample(t *testing.T) {
	stats := Map("the ball hit the goal, what a goal", sportsAndTech(), &analytics.Analytics{}, models.NormalizeLower)
	assert.Equal(t, []models.KeywordStat{
		{Theme: "sports", Keyword: "ball", Count: 1},
		{Theme: "sports", Keyword: "goal", Count: 2},
	}, stats)

	totals := Reduce(stats)
	assert.Equal(t, []models.ThemeTotal{{Theme: "sports", Total: 3}}, totals)

	theme, ok := SelectTheme(totals)
	assert.True(t, ok)
	assert.Equal(t, "sports", theme)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name  string
		stats []models.KeywordStat
		want  []models.ThemeTotal
	}{
		{name: "empty", stats: nil, want: nil},
		{
			name: "sums per theme in first-seen order",
			stats: []models.KeywordStat{
				{Theme: "tech", Keyword: "cpu", Count: 1},
				{Theme: "sports", Keyword: "ball", Count: 2},
				{Theme: "tech", Keyword: "gpu", Count: 4},
			},
			want: []models.ThemeTotal{{Theme: "tech", Total: 5}, {Theme: "sports", Total: 2}},
		},
		{
			name:  "zero counts ignored",
			stats: []models.KeywordStat{{Theme: "art", Keyword: "paint", Count: 0}},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.stats))
		})
	}
}

func TestSelectTheme(t *testing.T) {
	tests := []struct {
		name       string
		totals     []models.ThemeTotal
		wantTheme  string
		wantResult bool
	}{
		{name: "no totals", totals: nil, wantTheme: models.Undetermined, wantResult: false},
		{
			name:       "clear winner",
			totals:     []models.ThemeTotal{{Theme: "tech", Total: 1}, {Theme: "sports", Total: 3}},
			wantTheme:  "sports",
			wantResult: true,
		},
		{
			name:       "tie goes to first",
			totals:     []models.ThemeTotal{{Theme: "tech", Total: 2}, {Theme: "sports", Total: 2}},
			wantTheme:  "tech",
			wantResult: true,
		},
		{
			name:       "tie with later maximum",
			totals:     []models.ThemeTotal{{Theme: "art", Total: 1}, {Theme: "tech", Total: 4}, {Theme: "sports", Total: 4}},
			wantTheme:  "tech",
			wantResult: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, ok := SelectTheme(tt.totals)
			assert.Equal(t, tt.wantTheme, theme)
			assert.Equal(t, tt.wantResult, ok)
		})
	}
}

func TestTieBreakFollowsKeywordSourceOrder(t *testing.T) {
	a := &analytics.Analytics{}
	text := "cpu and ball"

	km := models.NewKeywordMap()
	km.Set("tech", []string{"cpu"})
	km.Set("sports", []string{"ball"})
	theme, _ := SelectTheme(Reduce(Map(text, km, a, models.NormalizeLower)))
	assert.Equal(t, "tech", theme)

	reversed := models.NewKeywordMap()
	reversed.Set("sports", []string{"ball"})
	reversed.Set("tech", []string{"cpu"})
	theme, _ = SelectTheme(Reduce(Map(text, reversed, a, models.NormalizeLower)))
	assert.Equal(t, "sports", theme)
}

func TestTopThemes(t *testing.T) {
	totals := []models.ThemeTotal{
		{Theme: "art", Total: 1},
		{Theme: "tech", Total: 4},
		{Theme: "sports", Total: 4},
		{Theme: "food", Total: 2},
	}

	assert.Equal(t, []string{"tech:4", "sports:4", "food:2", "art:1"}, TopThemes(totals, 0))
	assert.Equal(t, []string{"tech:4", "sports:4"}, TopThemes(totals, 2))
	assert.Empty(t, TopThemes(nil, 5))

	// input untouched
	assert.Equal(t, "art", totals[0].Theme)
}
