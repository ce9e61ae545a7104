package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

func TestMapRowFullRow(t *testing.T) {
	headers := domain.RequiredColumns
	row := []string{
		"Sul", "Entrega", "Cabo de rede", "PO-4711", "25569",
		"Em trânsito", "25600", "Acme Ltda", "BR123456789", "25601",
	}

	rec := MapRow(headers, row)

	assert.Equal(t, "Sul", rec.Region)
	assert.Equal(t, "Entrega", rec.Stage)
	assert.Equal(t, "Cabo de rede", rec.Product)
	assert.Equal(t, "PO-4711", rec.PONumber)
	assert.Equal(t, "Em trânsito", rec.Status)
	assert.Equal(t, "Acme Ltda", rec.Supplier)
	assert.Equal(t, "BR123456789", rec.Tracking)

	require.NotNil(t, rec.CreatedAt)
	assert.True(t, rec.CreatedAt.Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, rec.DueDate)
	require.NotNil(t, rec.LastUpdate)
}

func TestMapRowColumnsInAnyOrder(t *testing.T) {
	headers := []string{"Status", "PO Number", "Região", "Etapa", "Produto", "Data da Criação", "Due Date", "Fornecedor", "Rastreio", "Last Update"}
	row := []string{"Aberto", "PO-1", "Norte"}

	rec := MapRow(headers, row)

	assert.Equal(t, "Aberto", rec.Status)
	assert.Equal(t, "PO-1", rec.PONumber)
	assert.Equal(t, "Norte", rec.Region)
	assert.Equal(t, "", rec.Stage)
}

func TestMapRowShortRow(t *testing.T) {
	rec := MapRow(domain.RequiredColumns, []string{"Sul", "Compra"})

	assert.Equal(t, "Sul", rec.Region)
	assert.Equal(t, "Compra", rec.Stage)
	assert.Equal(t, "", rec.Product)
	assert.Equal(t, "", rec.PONumber)
	assert.Nil(t, rec.CreatedAt)
	assert.Nil(t, rec.DueDate)
	assert.Nil(t, rec.LastUpdate)
}

func TestMapRowEmptyRow(t *testing.T) {
	rec := MapRow(domain.RequiredColumns, nil)

	assert.Equal(t, domain.Record{}, rec)
}

func TestMapRowBadDateDegradesToNil(t *testing.T) {
	headers := domain.RequiredColumns
	row := []string{"Sul", "", "", "PO-2", "amanhã", "Aberto", "???", "", "", "sem data"}

	rec := MapRow(headers, row)

	assert.Nil(t, rec.CreatedAt)
	assert.Nil(t, rec.DueDate)
	assert.Nil(t, rec.LastUpdate)
	assert.Equal(t, "PO-2", rec.PONumber)
	assert.Equal(t, "Aberto", rec.Status)
}

func TestMapRowKeepsRawTextValues(t *testing.T) {
	// Whitespace is preserved here; trimming happens at aggregation and
	// rendering, not at mapping.
	headers := domain.RequiredColumns
	row := []string{" Sul ", "", "", "", "", "  Aberto  ", "", "", "", ""}

	rec := MapRow(headers, row)

	assert.Equal(t, " Sul ", rec.Region)
	assert.Equal(t, "  Aberto  ", rec.Status)
}
