// Package exporter provides CSV output for decoded feed records and
// generated reports.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// appending, streaming, and UTF-8 BOM for Excel compatibility.
//
// OrderRow / TradeRow: Converters from decoded records to delimited rows,
// one column per decoded field with the timestamp split into date and
// time columns.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths)
//
//	// Stream rows into a partition sink
//	stream, err := writer.CreateStreamWriter(sinkPath, exporter.StreamOptions{})
//	if err != nil {
//		return err
//	}
//	defer stream.Close()
//
//	err = stream.WriteRecord(exporter.TradeRow(rec))
package exporter
