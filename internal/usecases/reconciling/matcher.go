package reconciling

import (
	"strings"

	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza o texto para comparação: NFC e minúsculas com regras do russo.
// cases.Caser guarda estado, por isso um novo é criado a cada chamada.
func Fold(s string) string {
	return cases.Lower(language.Russian).String(norm.NFC.String(s))
}

// Vocabulary é uma lista de termos procurados como substring, sem diferenciar maiúsculas
type Vocabulary []string

func NewVocabulary(terms []string) Vocabulary {
	vocabulary := make(Vocabulary, 0, len(terms))
	for _, term := range terms {
		folded := Fold(strings.TrimSpace(term))
		if folded != "" {
			vocabulary = append(vocabulary, folded)
		}
	}
	return vocabulary
}

// Contains indica se o nome contém algum termo do vocabulário
func (v Vocabulary) Contains(name string) bool {
	folded := Fold(name)
	for _, term := range v {
		if strings.Contains(folded, term) {
			return true
		}
	}
	return false
}

type foldedEntry struct {
	entry    domain.CatalogEntry
	product  string
	category string
}

// Matcher associa linhas do ERP ao catálogo. A ordem do catálogo é
// preservada e a primeira entrada compatível vence.
type Matcher struct {
	excluded Vocabulary
	entries  []foldedEntry
}

func NewMatcher(catalog []domain.CatalogEntry, excluded Vocabulary) *Matcher {
	entries := make([]foldedEntry, 0, len(catalog))
	for _, entry := range catalog {
		entries = append(entries, foldedEntry{
			entry:    entry,
			product:  Fold(entry.ProductName),
			category: Fold(entry.Category),
		})
	}

	return &Matcher{excluded: excluded, entries: entries}
}

// Excluded indica que a linha é de consumível e nunca entra na agregação
func (m *Matcher) Excluded(line domain.TurnoverLine) bool {
	return m.excluded.Contains(line.AssortmentName)
}

func (m *Matcher) Match(line domain.TurnoverLine) (domain.CatalogEntry, bool) {
	if m.Excluded(line) {
		return domain.CatalogEntry{}, false
	}

	name := Fold(line.AssortmentName)
	category := Fold(line.CategoryName)

	for _, candidate := range m.entries {
		if !strings.Contains(name, candidate.product) {
			continue
		}
		if categoryMatches(category, candidate.category) {
			return candidate.entry, true
		}
	}

	return domain.CatalogEntry{}, false
}

// categoryMatches aceita categoria vazia no catálogo ou contenção em qualquer direção
func categoryMatches(lineCategory, catalogCategory string) bool {
	if catalogCategory == "" {
		return true
	}
	return strings.Contains(lineCategory, catalogCategory) || strings.Contains(catalogCategory, lineCategory)
}
