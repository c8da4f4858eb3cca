package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"
	log "github.com/sirupsen/logrus"
)

type parquetSource struct {
	filepath string
}

func newParquetSource(filepath string) *parquetSource {
	return &parquetSource{filepath: filepath}
}

// ReadAll reads every row of the parquet file into memory
func (ps *parquetSource) ReadAll() ([]string, []rawRow, error) {
	file, err := os.Open(ps.filepath)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening %s: %w", ps.filepath, err)
	}

	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", ps.filepath, err.Error())
		}
	}(file)

	stat, err := file.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("error reading %s stats: %w", ps.filepath, err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("%s is not a parquet file: %s: %w", ps.filepath, err.Error(), ErrDataFormat)
	}

	var columns []string
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	reader := parquet.NewReader(pqFile)
	defer reader.Close()

	var rows []rawRow
	for {
		values := make(map[string]interface{})
		err := reader.Read(&values)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("error reading row %v: %s: %w", len(rows)+1, err.Error(), ErrDataFormat)
		}

		row := make(rawRow, len(values))
		for column, value := range values {
			row[column] = formatValue(value)
		}
		rows = append(rows, row)
	}

	return columns, rows, nil
}
