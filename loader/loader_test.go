package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/schema"
	"bikeshare/loader/config"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-01-15 08:00:00,2017-01-15 08:10:00,600,Canal St & Adams St,Clark St & Elm St,Subscriber,Male,1992.0
955915,2017-06-23 15:09:32,2017-06-23 15:14:53,321,"Wood St & Hubbard St",Damen Ave & Chicago Ave,Customer,,
9031,2017-03-06 23:59:00,2017-03-07 00:05:00,360.5,Lake St,Clark St & Elm St,Subscriber,Female,1949
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
`

func writeFile(t *testing.T, dir string, name string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func newTestLoader(t *testing.T, files map[city.City]string) *Loader {
	t.Helper()

	dir := t.TempDir()
	loaderConfig := &config.LoaderConfig{
		DataDir: dir,
		Cities:  map[city.City]config.SourceConfig{},
	}
	for c, content := range files {
		name := string(c) + ".csv"
		writeFile(t, dir, name, content)
		loaderConfig.Cities[c] = config.SourceConfig{File: name}
	}
	// sources for the remaining cities are not read by these tests
	for _, c := range city.All() {
		if _, ok := loaderConfig.Cities[c]; !ok {
			loaderConfig.Cities[c] = config.SourceConfig{File: string(c) + ".csv"}
		}
	}
	if err := loaderConfig.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	return NewLoader(loaderConfig)
}

func TestLoadChicago(t *testing.T) {
	l := newTestLoader(t, map[city.City]string{city.Chicago: chicagoCSV})

	table, err := l.Load(context.Background(), city.Chicago)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	if !table.HasDemographics() {
		t.Errorf("Chicago table should have demographics")
	}

	first := table.Record(0)
	if first.Month != time.January || first.Weekday != time.Sunday || first.Hour != 8 {
		t.Errorf("derived fields = %s/%s/%d, want January/Sunday/8", first.Month, first.Weekday, first.Hour)
	}
	if first.Duration != 600 || first.StartStation != "Canal St & Adams St" || first.Gender != "Male" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if !first.HasBirthYear || first.BirthYear != 1992 {
		t.Errorf("BirthYear = %d (%v), want 1992", first.BirthYear, first.HasBirthYear)
	}

	second := table.Record(1)
	if second.Gender != "" || second.HasBirthYear {
		t.Errorf("blank demographics should be missing, got %+v", second)
	}

	third := table.Record(2)
	if third.Hour != 23 || third.Weekday != time.Monday || third.Duration != 360.5 {
		t.Errorf("unexpected third record: %+v", third)
	}
}

func TestLoadDerivedFieldsMatchStartTime(t *testing.T) {
	l := newTestLoader(t, map[city.City]string{city.Chicago: chicagoCSV})

	table, err := l.Load(context.Background(), city.Chicago)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	for i := 0; i < table.Len(); i++ {
		r := table.Record(i)
		if r.Month != r.StartTime.Month() || r.Weekday != r.StartTime.Weekday() || r.Hour != r.StartTime.Hour() {
			t.Errorf("row %d derived fields out of sync with %s", i, r.StartTime)
		}
	}
}

func TestLoadWashington(t *testing.T) {
	l := newTestLoader(t, map[city.City]string{city.Washington: washingtonCSV})

	table, err := l.Load(context.Background(), city.Washington)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if table.HasDemographics() {
		t.Errorf("Washington table should not have demographics")
	}
	if got := table.Record(0).Duration; got != 489.066 {
		t.Errorf("Duration = %v, want 489.066", got)
	}
}

func TestLoadErrors(t *testing.T) {
	const demographicsHeader = "Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n"

	tests := []struct {
		name    string
		source  city.City
		content string
		wantErr error
	}{
		{
			name: "unparseable start time",
			content: `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-06-21 08:36:34,2017-06-21 08:44:43,489,A,B,Subscriber
yesterday,2017-06-21 08:44:43,489,A,B,Subscriber
`,
			wantErr: ErrInvalidDate,
		},
		{
			name: "invalid duration",
			content: `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-06-21 08:36:34,2017-06-21 08:44:43,long,A,B,Subscriber
`,
			wantErr: ErrInvalidDuration,
		},
		{
			name: "NaN duration",
			content: `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-06-21 08:36:34,2017-06-21 08:44:43,NaN,A,B,Subscriber
`,
			wantErr: ErrInvalidDuration,
		},
		{
			name: "infinite duration",
			content: `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-06-21 08:36:34,2017-06-21 08:44:43,+Inf,A,B,Subscriber
`,
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "text birth year",
			source:  city.NewYork,
			content: demographicsHeader + "2017-01-15 08:00:00,2017-01-15 08:10:00,600,A,B,Subscriber,Male,nineteen\n",
			wantErr: ErrInvalidBirthYear,
		},
		{
			name:    "negative birth year",
			source:  city.NewYork,
			content: demographicsHeader + "2017-01-15 08:00:00,2017-01-15 08:10:00,600,A,B,Subscriber,Male,-1990\n",
			wantErr: ErrInvalidBirthYear,
		},
		{
			name:    "zero birth year",
			source:  city.Chicago,
			content: demographicsHeader + "2017-01-15 08:00:00,2017-01-15 08:10:00,600,A,B,Subscriber,Male,0\n",
			wantErr: ErrInvalidBirthYear,
		},
		{
			name:    "fractional birth year",
			source:  city.Chicago,
			content: demographicsHeader + "2017-01-15 08:00:00,2017-01-15 08:10:00,600,A,B,Subscriber,Male,1992.7\n",
			wantErr: ErrInvalidBirthYear,
		},
		{
			name:    "infinite birth year",
			source:  city.Chicago,
			content: demographicsHeader + "2017-01-15 08:00:00,2017-01-15 08:10:00,600,A,B,Subscriber,Male,Inf\n",
			wantErr: ErrInvalidBirthYear,
		},
		{
			name: "missing column",
			content: `Start Time,End Time,Start Station,End Station,User Type
2017-06-21 08:36:34,2017-06-21 08:44:43,A,B,Subscriber
`,
			wantErr: ErrMissingColumn,
		},
		{
			name:    "empty file",
			content: ``,
			wantErr: ErrDataFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := tt.source
			if source == "" {
				source = city.Washington
			}
			l := newTestLoader(t, map[city.City]string{source: tt.content})

			table, err := l.Load(context.Background(), source)
			if table != nil {
				t.Errorf("Load() returned a table on error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrDataFormat) {
				t.Errorf("Load() error = %v, want it to wrap ErrDataFormat", err)
			}
		})
	}
}

func TestLoadBirthYearFormats(t *testing.T) {
	content := `Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
2017-01-15 08:00:00,2017-01-15 08:10:00,600,A,B,Subscriber,Male,1992.0
2017-01-15 09:00:00,2017-01-15 09:10:00,600,A,B,Customer,,
2017-01-15 10:00:00,2017-01-15 10:10:00,600,A,B,Customer,,nan
2017-01-15 11:00:00,2017-01-15 11:10:00,600,A,B,Subscriber,Female,1985
`
	l := newTestLoader(t, map[city.City]string{city.NewYork: content})

	table, err := l.Load(context.Background(), city.NewYork)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	want := []struct {
		year int
		ok   bool
	}{{1992, true}, {0, false}, {0, false}, {1985, true}}
	for i, w := range want {
		record := table.Record(i)
		if record.BirthYear != w.year || record.HasBirthYear != w.ok {
			t.Errorf("row %d birth year = %d, %v; want %d, %v", i, record.BirthYear, record.HasBirthYear, w.year, w.ok)
		}
	}
}

func TestLoadUnknownCity(t *testing.T) {
	l := newTestLoader(t, nil)

	if _, err := l.Load(context.Background(), city.City("montreal")); !errors.Is(err, schema.ErrSchema) {
		t.Fatalf("Load() error = %v, want schema.ErrSchema", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := newTestLoader(t, nil)

	_, err := l.Load(context.Background(), city.Chicago)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	l := newTestLoader(t, map[city.City]string{city.Washington: washingtonCSV})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Load(ctx, city.Washington); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
}
