package advertisement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		name        string
		subCategory string
		category    string
		want        string
	}{
		{"ascii with space", "Beauty Clinic", "", "beauty_clinic"},
		{"already slug", "spa", "", "spa"},
		{"falls back to category", "", "Women", "women"},
		{"mixed punctuation", "Men's Salon!", "", "men_s_salon_"},
		{"digits kept", "salon24", "", "salon24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryKey(tt.subCategory, tt.category))
		})
	}
}

func TestCategoryKeyArabicFolding(t *testing.T) {
	// Hamza variants normalize identically to the bare alef in the same
	// position, and taa marbuta identically to haa.
	assert.Equal(t, CategoryKey("صالون أ", ""), CategoryKey("صالون ا", ""))
	assert.Equal(t, CategoryKey("إستشارة", ""), CategoryKey("استشارة", ""))
	assert.Equal(t, CategoryKey("حجامة", ""), CategoryKey("حجامه", ""))
}

func TestCategoryKeyStable(t *testing.T) {
	// Pure function: repeated calls agree.
	for i := 0; i < 3; i++ {
		assert.Equal(t, "beauty_clinic", CategoryKey("Beauty Clinic", ""))
	}
}
