package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/theme-analyzer/models"
)

func sportsResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Theme:      "sports",
		Determined: true,
		Stats: []models.KeywordStat{
			{Theme: "sports", Keyword: "ball", Count: 1},
			{Theme: "sports", Keyword: "Goal", Count: 2},
		},
		Totals: []models.ThemeTotal{{Theme: "sports", Total: 3}},
	}
}

func undeterminedResult() *models.AnalysisResult {
	return &models.AnalysisResult{Theme: models.Undetermined}
}

func TestRender(t *testing.T) {
	want := "Результат анализа текста:\n\n" +
		"sports - ball: 1\n" +
		"sports - Goal: 2\n" +
		"\nОпределенная тема: sports"
	assert.Equal(t, want, Render(sportsResult()))
}

func TestRender_Undetermined(t *testing.T) {
	want := "Результат анализа текста:\n\n\nОпределенная тема: Тематика не определена"
	assert.Equal(t, want, Render(undeterminedResult()))
	assert.Equal(t, want, Render(nil))
}

func TestParseFormatType(t *testing.T) {
	tests := []struct {
		in      string
		want    FormatType
		wantErr bool
	}{
		{in: "", want: FormatPlain},
		{in: "plain", want: FormatPlain},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormatType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatPlain).Format(&buf, sportsResult()))
	assert.Equal(t, Render(sportsResult()), buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, sportsResult()))

	var got Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "sports", got.Theme)
	assert.True(t, got.Determined)
	assert.Len(t, got.Stats, 2)
	assert.Equal(t, []string{"sports:3"}, got.Ranking)
}

func TestJSONFormatter_UndeterminedUsesEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, undeterminedResult()))

	assert.Contains(t, buf.String(), `"stats": []`)
	assert.Contains(t, buf.String(), `"totals": []`)
	assert.Contains(t, buf.String(), `"determined": false`)
	assert.Contains(t, buf.String(), models.Undetermined)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, sportsResult()))

	var got Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "sports", got.Theme)
	assert.Equal(t, []models.ThemeTotal{{Theme: "sports", Total: 3}}, got.Totals)
	assert.Equal(t, "Goal", got.Stats[1].Keyword)
}
