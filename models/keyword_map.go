package models

// KeywordMap maps theme names to their keyword lists, remembering the order
// in which themes first appeared in the keyword source.
type KeywordMap struct {
	order    []string
	keywords map[string][]string
}

// NewKeywordMap returns an empty KeywordMap. The zero value is also usable.
func NewKeywordMap() *KeywordMap {
	return &KeywordMap{keywords: make(map[string][]string)}
}

// Set stores the keyword list for a theme. A theme that is already present
// has its keywords replaced but keeps its original position.
func (m *KeywordMap) Set(theme string, keywords []string) {
	if m.keywords == nil {
		m.keywords = make(map[string][]string)
	}
	if _, exists := m.keywords[theme]; !exists {
		m.order = append(m.order, theme)
	}
	kw := make([]string, len(keywords))
	copy(kw, keywords)
	m.keywords[theme] = kw
}

// Themes returns theme names in source order.
func (m *KeywordMap) Themes() []string {
	if m == nil {
		return nil
	}
	themes := make([]string, len(m.order))
	copy(themes, m.order)
	return themes
}

// Keywords returns the keywords of a theme with their original casing.
func (m *KeywordMap) Keywords(theme string) []string {
	if m == nil {
		return nil
	}
	kw := m.keywords[theme]
	out := make([]string, len(kw))
	copy(out, kw)
	return out
}

// Len returns the number of themes.
func (m *KeywordMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// IsEmpty reports whether no themes are loaded. Safe on a nil map.
func (m *KeywordMap) IsEmpty() bool {
	return m.Len() == 0
}

// KeywordCount returns the total number of keywords across all themes.
func (m *KeywordMap) KeywordCount() int {
	if m == nil {
		return 0
	}
	total := 0
	for _, kw := range m.keywords {
		total += len(kw)
	}
	return total
}
