package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func workbookBytes(n int) []byte {
	data := make([]byte, n)
	copy(data, []byte{'P', 'K', 0x03, 0x04})
	return data
}

func TestValidateWorkbook(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		limit    int64
		wantErr  string
	}{
		{
			name:     "valid xlsx",
			filename: "pos.xlsx",
			data:     workbookBytes(128),
		},
		{
			name:     "valid xlsm",
			filename: "pos.XLSM",
			data:     workbookBytes(128),
		},
		{
			name:     "empty file",
			filename: "pos.xlsx",
			data:     nil,
			wantErr:  "is empty",
		},
		{
			name:     "over size limit",
			filename: "pos.xlsx",
			data:     workbookBytes(2048),
			limit:    1024,
			wantErr:  "exceeds the 1024 byte limit",
		},
		{
			name:     "zero limit disables size check",
			filename: "pos.xlsx",
			data:     workbookBytes(2048),
			limit:    0,
		},
		{
			name:     "temp workbook copy",
			filename: "~$pos.xlsx",
			data:     workbookBytes(128),
			wantErr:  "temporary workbook copy",
		},
		{
			name:     "wrong extension",
			filename: "pos.csv",
			data:     workbookBytes(128),
			wantErr:  "not a spreadsheet",
		},
		{
			name:     "no extension",
			filename: "pos",
			data:     workbookBytes(128),
			wantErr:  "not a spreadsheet",
		},
		{
			name:     "missing zip signature",
			filename: "pos.xlsx",
			data:     []byte("this is not a workbook at all"),
			wantErr:  "does not look like a workbook",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewUploadValidator(tt.limit, nil)
			err := v.ValidateWorkbook(tt.filename, tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
