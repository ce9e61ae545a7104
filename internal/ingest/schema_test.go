package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

func TestValidateHeadersAllPresent(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{
			name:    "canonical order",
			headers: domain.RequiredColumns,
		},
		{
			name: "shuffled order",
			headers: []string{
				"Last Update", "Rastreio", "Fornecedor", "Due Date", "Status",
				"Data da Criação", "PO Number", "Produto", "Etapa", "Região",
			},
		},
		{
			name: "extra columns ignored",
			headers: append([]string{"Comentários", "ID Interno"}, domain.RequiredColumns...),
		},
		{
			name: "duplicate columns allowed",
			headers: append([]string{"Status"}, domain.RequiredColumns...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateHeaders(tt.headers))
		})
	}
}

func TestValidateHeadersMissing(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		wantMissing []string
	}{
		{
			name:        "empty header row",
			headers:     nil,
			wantMissing: domain.RequiredColumns,
		},
		{
			name:        "one column missing",
			headers:     []string{"Região", "Etapa", "Produto", "PO Number", "Data da Criação", "Status", "Due Date", "Fornecedor", "Rastreio"},
			wantMissing: []string{"Last Update"},
		},
		{
			// The error lists missing names in canonical order, not upload order.
			name:        "several missing, canonical order",
			headers:     []string{"Status", "Produto"},
			wantMissing: []string{"Região", "Etapa", "PO Number", "Data da Criação", "Due Date", "Fornecedor", "Rastreio", "Last Update"},
		},
		{
			name:        "case sensitive match",
			headers:     []string{"região", "ETAPA", "Produto", "PO Number", "Data da Criação", "Status", "Due Date", "Fornecedor", "Rastreio", "Last Update"},
			wantMissing: []string{"Região", "Etapa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeaders(tt.headers)
			require.Error(t, err)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.wantMissing, schemaErr.Missing)
			for _, col := range tt.wantMissing {
				assert.Contains(t, err.Error(), col)
			}
		})
	}
}
