package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountTableInsertionOrder(t *testing.T) {
	table := NewCountTable()
	table.Add("zebra")
	table.Add("alpha")
	table.Add("zebra")
	table.Add("mike")

	assert.Equal(t, []string{"zebra", "alpha", "mike"}, table.Keys())
	assert.Equal(t, 2, table.Get("zebra"))
	assert.Equal(t, 0, table.Get("missing"))
	assert.Equal(t, 4, table.Total())
	assert.Equal(t, 3, table.Len())
}

func TestCountTableMarshalJSONKeepsOrder(t *testing.T) {
	table := NewCountTable()
	table.Add("zebra")
	table.Add("alpha")
	table.Add("Não Informado")

	data, err := table.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"alpha":1,"Não Informado":1}`, string(data))
}

func TestCountTableMarshalJSONEmpty(t *testing.T) {
	data, err := NewCountTable().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestRecordTextField(t *testing.T) {
	rec := Record{
		Region:   "Sul",
		Stage:    "Compra",
		Product:  "Cabo",
		PONumber: "PO-1",
		Status:   "Aberto",
		Supplier: "Acme",
		Tracking: "BR1",
	}

	for field, want := range map[string]string{
		FieldRegion:   "Sul",
		FieldStage:    "Compra",
		FieldProduct:  "Cabo",
		FieldPONumber: "PO-1",
		FieldStatus:   "Aberto",
		FieldSupplier: "Acme",
		FieldTracking: "BR1",
	} {
		got, ok := rec.TextField(field)
		assert.True(t, ok, field)
		assert.Equal(t, want, got, field)
	}

	for _, field := range []string{FieldCreatedAt, FieldDueDate, FieldLastUpdate, "bogus"} {
		_, ok := rec.TextField(field)
		assert.False(t, ok, field)
	}
}
