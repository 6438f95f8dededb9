package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMap_PreservesThemeOrder(t *testing.T) {
	m := NewKeywordMap()
	m.Set("tech", []string{"cpu"})
	m.Set("sports", []string{"ball", "goal"})
	m.Set("art", []string{"paint"})

	assert.Equal(t, []string{"tech", "sports", "art"}, m.Themes())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 4, m.KeywordCount())
}

func TestKeywordMap_ReplaceKeepsPosition(t *testing.T) {
	m := NewKeywordMap()
	m.Set("tech", []string{"cpu"})
	m.Set("sports", []string{"ball"})
	m.Set("tech", []string{"gpu", "ram"})

	assert.Equal(t, []string{"tech", "sports"}, m.Themes())
	assert.Equal(t, []string{"gpu", "ram"}, m.Keywords("tech"))
}

func TestKeywordMap_CopiesInput(t *testing.T) {
	kw := []string{"Ball"}
	m := NewKeywordMap()
	m.Set("sports", kw)
	kw[0] = "mutated"

	got := m.Keywords("sports")
	assert.Equal(t, []string{"Ball"}, got)

	got[0] = "mutated"
	assert.Equal(t, []string{"Ball"}, m.Keywords("sports"))
}

func TestKeywordMap_NilSafe(t *testing.T) {
	var m *KeywordMap
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Themes())
	assert.Nil(t, m.Keywords("x"))
	assert.True(t, NewKeywordMap().IsEmpty())
}

func TestKeywordMap_ZeroValueUsable(t *testing.T) {
	var km KeywordMap
	km.Set("sports", []string{"ball", "goal"})
	km.Set("tech", []string{"cpu"})

	assert.Equal(t, []string{"sports", "tech"}, km.Themes())
	assert.Equal(t, []string{"ball", "goal"}, km.Keywords("sports"))
	assert.Equal(t, 3, km.KeywordCount())
}
