// Package ingest implements the spreadsheet ingestion pipeline that turns an
// uploaded workbook into normalized purchase-order records.
//
// # Architecture
//
// The pipeline has four stages:
//
// 1. Ingestor: decodes the workbook bytes and drives the other stages
// 2. Schema validation: checks the ten required header names are present
// 3. Row mapping: projects each raw row onto the fixed record shape
// 4. Date coercion: normalizes heterogeneous date cells into time values
//
// # Data Flow
//
//	Workbook bytes → Ingestor → headers/rows → ValidateHeaders → MapRow → []domain.Record
//
// # Error Handling
//
// Schema and empty-sheet failures abort the whole upload; no partial dataset
// is ever produced. Cell-level problems never abort: an unparseable date
// degrades to a nil time and a missing cell to an empty string. Decoder
// failures are wrapped in IngestError so callers never see raw excelize
// errors.
package ingest
