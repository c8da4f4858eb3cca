package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type csvSource struct {
	filepath string
}

func newCSVSource(filepath string) *csvSource {
	return &csvSource{filepath: filepath}
}

// ReadAll reads the header and every row of the file, in file order
func (cs *csvSource) ReadAll() ([]string, []rawRow, error) {
	dataFile, err := os.Open(cs.filepath)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening %s: %w", cs.filepath, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", cs.filepath, err.Error())
		}
	}(dataFile)

	return readCSV(dataFile)
}

func readCSV(input io.Reader) ([]string, []rawRow, error) {
	reader := csv.NewReader(input)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty file: %w", ErrDataFormat)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error reading header: %s: %w", err.Error(), ErrDataFormat)
	}

	var rows []rawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", err.Error(), ErrDataFormat)
		}

		row := make(rawRow, len(header))
		for idx, column := range header {
			row[column] = record[idx]
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
