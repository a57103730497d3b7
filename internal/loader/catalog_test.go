package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCostRows(t *testing.T) {
	csvData := strings.Join([]string{
		"Stock-Code,Description,Cost",
		"MAKDJR186Z,Makita DJR186Z Recip Saw,79.95",
		"BL1850,18V 5.0Ah Battery,42.50",
		",No stock code row,9.99",
		"NOCOST,Missing cost value,abc",
	}, "\n")

	components, err := ReadCostRows("MAK", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, components, 3)

	first := components[0]
	assert.Equal(t, "MAKDJR186Z", first.InternalSKU)
	assert.Equal(t, "Makita DJR186Z Recip Saw", first.Description)
	assert.Equal(t, "Makita", first.Brand)
	assert.Equal(t, 7995, first.CostExVATPence)
	assert.True(t, first.IsActive)
	assert.Equal(t, "MAK", first.SourceFile)

	assert.Equal(t, 4250, components[1].CostExVATPence)

	// Unparseable cost degrades to zero, the row is kept.
	assert.Equal(t, "NOCOST", components[2].InternalSKU)
	assert.Equal(t, 0, components[2].CostExVATPence)
}

func TestReadCostRowsHeaderCaseInsensitive(t *testing.T) {
	csvData := "stock-code,DESCRIPTION,cost\nDEWDCB184,Battery,35.00\n"

	components, err := ReadCostRows("DEW", strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "DeWalt", components[0].Brand)
	assert.Equal(t, 3500, components[0].CostExVATPence)
}

func TestReadCostRowsMissingStockCodeColumn(t *testing.T) {
	_, err := ReadCostRows("MAK", strings.NewReader("SKU,Cost\nA,1.00\n"))
	assert.Error(t, err)
}

func TestReadCostRowsEmpty(t *testing.T) {
	components, err := ReadCostRows("MAK", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, components)
}

func TestBrandForPrefix(t *testing.T) {
	assert.Equal(t, "Makita", BrandForPrefix("MAK"))
	assert.Equal(t, "DeWalt", BrandForPrefix("DEW"))
	assert.Equal(t, "TIMCO", BrandForPrefix("TIMCO"))
	assert.Equal(t, "Unknown", BrandForPrefix("BOSCH"))
}
