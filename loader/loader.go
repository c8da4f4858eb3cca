package loader

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/triptable"
	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/schema"
	"bikeshare/loader/config"
)

// rows between context checks while parsing
const cancelCheckInterval = 10000

// Loader reads the trip log of a city into a TripTable. Any row that cannot be
// parsed fails the whole load.
type Loader struct {
	config *config.LoaderConfig
}

func NewLoader(loaderConfig *config.LoaderConfig) *Loader {
	return &Loader{
		config: loaderConfig,
	}
}

// Load returns a new TripTable with every trip of c in source order
func (l *Loader) Load(ctx context.Context, c city.City) (*triptable.TripTable, error) {
	tableSchema, err := schema.ForCity(c)
	if err != nil {
		return nil, err
	}

	sourceConfig, ok := l.config.GetSource(c)
	if !ok {
		return nil, fmt.Errorf("[city: %s] %w", c, ErrSourceNotFound)
	}

	src, err := newSource(sourceConfig)
	if err != nil {
		return nil, fmt.Errorf("[city: %s] %w", c, err)
	}

	start := time.Now()
	columns, rows, err := src.ReadAll()
	if err != nil {
		log.Errorf("[city: %s][file: %s][status: ERROR][method: Load] %s", c, sourceConfig.File, err.Error())
		return nil, fmt.Errorf("[city: %s] %w", c, err)
	}

	if err := checkColumns(tableSchema, columns); err != nil {
		return nil, fmt.Errorf("[city: %s][file: %s] %w", c, sourceConfig.File, err)
	}

	records := make([]trip.Record, 0, len(rows))
	for idx, row := range rows {
		if idx%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// row 1 is the header in the source file
		record, err := l.getTripRecord(tableSchema, row, idx+2)
		if err != nil {
			log.Errorf("[city: %s][file: %s][status: ERROR][method: Load] %s", c, sourceConfig.File, err.Error())
			return nil, fmt.Errorf("[city: %s] %w", c, err)
		}
		records = append(records, record)
	}

	log.Infof("[city: %s][rows: %v][status: OK][method: Load] trips loaded in %s", c, len(records), time.Since(start))
	return triptable.NewTripTable(tableSchema, records), nil
}

func newSource(sourceConfig config.SourceConfig) (source, error) {
	switch sourceConfig.Format {
	case config.FormatCSV:
		return newCSVSource(sourceConfig.File), nil
	case config.FormatParquet:
		return newParquetSource(sourceConfig.File), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, sourceConfig.Format)
	}
}

func checkColumns(tableSchema schema.Schema, columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, column := range columns {
		present[strings.TrimSpace(column)] = true
	}

	var missing []string
	for _, column := range tableSchema.Columns {
		if !present[column] {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w %v: %w", ErrMissingColumn, missing, ErrDataFormat)
	}
	return nil
}

// getTripRecord builds a trip.Record from a source row. rowNumber is only used in errors.
func (l *Loader) getTripRecord(tableSchema schema.Schema, row rawRow, rowNumber int) (trip.Record, error) {
	startTime, err := l.parseTime(row[schema.StartTime])
	if err != nil {
		return trip.Record{}, fmt.Errorf("[row: %v] %w %s %q: %w", rowNumber, ErrInvalidDate, schema.StartTime, row[schema.StartTime], ErrDataFormat)
	}

	endTime, err := l.parseTime(row[schema.EndTime])
	if err != nil {
		return trip.Record{}, fmt.Errorf("[row: %v] %w %s %q: %w", rowNumber, ErrInvalidDate, schema.EndTime, row[schema.EndTime], ErrDataFormat)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(row[schema.TripDuration]), 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return trip.Record{}, fmt.Errorf("[row: %v] %w %q: %w", rowNumber, ErrInvalidDuration, row[schema.TripDuration], ErrDataFormat)
	}

	record := trip.NewRecord(
		startTime,
		endTime,
		duration,
		strings.TrimSpace(row[schema.StartStation]),
		strings.TrimSpace(row[schema.EndStation]),
		strings.TrimSpace(row[schema.UserType]),
	)

	if !tableSchema.HasDemographics {
		return record, nil
	}

	birthYear, err := parseBirthYear(row[schema.BirthYear])
	if err != nil {
		return trip.Record{}, fmt.Errorf("[row: %v] %w %q: %w", rowNumber, ErrInvalidBirthYear, row[schema.BirthYear], ErrDataFormat)
	}

	return record.WithDemographics(strings.TrimSpace(row[schema.Gender]), birthYear), nil
}

func (l *Loader) parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range l.config.TimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no time layouts configured")
	}
	return time.Time{}, lastErr
}

// parseBirthYear returns 0 for blank cells. Sources store years as floats, e.g: 1992.0,
// so only positive whole numbers are accepted.
func parseBirthYear(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") {
		return 0, nil
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(year, 0) || year <= 0 || year != math.Trunc(year) || year > math.MaxInt32 {
		return 0, fmt.Errorf("birth year must be a positive whole number")
	}
	return int(year), nil
}
