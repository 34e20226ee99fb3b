package preference

import (
	"sync"
	"testing"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExtract_Keywords(t *testing.T) {
	tests := []struct {
		text string
		want []domain.Modifier
	}{
		{"", nil},
		{"   ", nil},
		{"something vague", nil},
		{"Modern design with garden", []domain.Modifier{domain.ModGarden, domain.ModModern}},
		{"A HOME OFFICE and a lawn", []domain.Modifier{domain.ModGarden, domain.ModStudy}},
		{"classic look, two-car garage", []domain.Modifier{domain.ModParking, domain.ModTraditional}},
		{"luxury villa with terrace", []domain.Modifier{domain.ModBalcony, domain.ModLuxury}},
		{"Kerala-style roof", []domain.Modifier{domain.ModTraditional}},
	}
	for _, tt := range tests {
		got := Extract(tt.text).Sorted()
		if tt.want == nil {
			assert.Empty(t, got, tt.text)
			continue
		}
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestExtract_WholeWordsOnly(t *testing.T) {
	// "card" and "scar" contain "car"; "studying" contains "study".
	assert.Empty(t, Extract("card table near the scar").Sorted())
	assert.Empty(t, Extract("room for studying").Sorted())
}

func TestExtract_Idempotent(t *testing.T) {
	once := Extract("garden please")
	twice := Extract("garden please, a big garden, GARDEN!")
	assert.Equal(t, once.Sorted(), twice.Sorted())

	texts := []string{"Modern design with garden", "luxury, study, parking", "traditional balcony", ""}
	for _, text := range texts {
		first := Extract(text)
		again := Extract(Describe(first))
		assert.Equal(t, first.Sorted(), again.Sorted(), text)
		assert.Equal(t, again.Sorted(), Extract(Describe(again)).Sorted(), text)
	}
}

func TestNewKeywordExtractor_CustomTable(t *testing.T) {
	e := NewKeywordExtractor([]Keyword{{"Pool", domain.ModLuxury}, {"  ", domain.ModGarden}})
	assert.True(t, e.Extract("a pool out back").Has(domain.ModLuxury))
	assert.Empty(t, e.Extract("garden").Sorted())
}

func TestTierHint(t *testing.T) {
	assert.Equal(t, 0, TierHint(nil))
	assert.Equal(t, 0, TierHint(domain.NewModifierSet(domain.ModModern)))
	assert.Equal(t, 1, TierHint(domain.NewModifierSet(domain.ModLuxury)))
}

func TestExtract_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, Extract("modern garden").Has(domain.ModGarden))
		}()
	}
	wg.Wait()
}
