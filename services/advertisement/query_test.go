package advertisement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		limit     string
		skip      string
		wantLimit int64
		wantSkip  int64
	}{
		{"defaults", "", "", DefaultLimit, DefaultSkip},
		{"explicit values", "10", "20", 10, 20},
		{"non-numeric coerced", "abc", "xyz", DefaultLimit, DefaultSkip},
		{"negative coerced", "-5", "-1", DefaultLimit, DefaultSkip},
		{"zero limit coerced", "0", "0", DefaultLimit, DefaultSkip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, skip := ParsePagination(tt.limit, tt.skip)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantSkip, skip)
		})
	}
}
