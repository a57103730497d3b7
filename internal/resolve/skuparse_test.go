package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompoundSKU(t *testing.T) {
	tests := []struct {
		name string
		sku  string
		want []ComponentRef
	}{
		{
			name: "simple",
			sku:  "MAKDJR186",
			want: []ComponentRef{{Pattern: "MAKDJR186", Quantity: 1}},
		},
		{
			name: "bundle with both quantity shapes",
			sku:  "MAKDJR186+2xBL1850+DC18RC(x3)",
			want: []ComponentRef{
				{Pattern: "MAKDJR186", Quantity: 1},
				{Pattern: "BL1850", Quantity: 2},
				{Pattern: "DC18RC", Quantity: 3},
			},
		},
		{
			name: "slash joiner",
			sku:  "DCB184/DCB115",
			want: []ComponentRef{
				{Pattern: "DCB184", Quantity: 1},
				{Pattern: "DCB115", Quantity: 1},
			},
		},
		{
			name: "uppercase X marker",
			sku:  "3XBL1850",
			want: []ComponentRef{{Pattern: "BL1850", Quantity: 3}},
		},
		{
			name: "whitespace around segments",
			sku:  " DJR186 + 2x BL1850 ",
			want: []ComponentRef{
				{Pattern: "DJR186", Quantity: 1},
				{Pattern: "BL1850", Quantity: 2},
			},
		},
		{
			name: "empty segments dropped",
			sku:  "DJR186++BL1850/",
			want: []ComponentRef{
				{Pattern: "DJR186", Quantity: 1},
				{Pattern: "BL1850", Quantity: 1},
			},
		},
		{
			name: "empty input",
			sku:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			sku:  "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCompoundSKU(tt.sku))
		})
	}
}
