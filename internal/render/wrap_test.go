package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{name: "fits", in: "Select all buses", width: 20, want: []string{"Select all buses"}},
		{name: "breaks at space", in: "Select all squares with traffic lights", width: 20, want: []string{"Select all squares", "with traffic lights"}},
		{name: "long word", in: "ABCDEFGHIJ", width: 4, want: []string{"ABCD", "EFGH", "IJ"}},
		{name: "empty", in: "   ", width: 10, want: nil},
		{name: "no width", in: "a  b", width: 0, want: []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.in, tt.width))
		})
	}
}
