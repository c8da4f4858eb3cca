package statistics

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/business/triptable"
	"bikeshare/domain/entities/trip"
)

// TimeOfTravel returns the most common month, day of week and start hour
func TimeOfTravel(view *triptable.FilteredView) TimeStats {
	start := time.Now()
	months := frequency.NewCounter[time.Month](frequency.Ascending[time.Month])
	weekdays := frequency.NewCounter[time.Weekday](frequency.WeekdayOrder)
	hours := frequency.NewCounter[int](frequency.Ascending[int])

	view.Each(func(record *trip.Record) {
		months.UpdateCounter(record.Month)
		weekdays.UpdateCounter(record.Weekday)
		hours.UpdateCounter(record.Hour)
	})

	stats := TimeStats{Empty: view.IsEmpty()}
	stats.Month, _ = months.Mode()
	stats.Weekday, _ = weekdays.Mode()
	stats.Hour, _ = hours.Mode()
	stats.Elapsed = time.Since(start)
	return stats
}

// Stations returns the most common start station, end station and trip
func Stations(view *triptable.FilteredView) StationStats {
	start := time.Now()
	starts := frequency.NewCounter[string](frequency.Ascending[string])
	ends := frequency.NewCounter[string](frequency.Ascending[string])
	combinations := frequency.NewCounter[string](frequency.Ascending[string])

	view.Each(func(record *trip.Record) {
		starts.UpdateCounter(record.StartStation)
		ends.UpdateCounter(record.EndStation)
		combinations.UpdateCounter(record.StationCombination())
	})

	stats := StationStats{Empty: view.IsEmpty()}
	stats.StartStation, _ = starts.Mode()
	stats.EndStation, _ = ends.Mode()
	stats.Combination, _ = combinations.Mode()
	stats.Elapsed = time.Since(start)
	return stats
}

// TripDuration returns the total and the mean trip duration
func TripDuration(view *triptable.FilteredView) DurationStats {
	start := time.Now()
	accumulator := durationaccumulator.NewDurationAccumulator()
	view.Each(func(record *trip.Record) {
		accumulator.UpdateAccumulator(record.Duration)
	})

	stats := DurationStats{Empty: accumulator.IsEmpty()}
	if mean, ok := accumulator.GetAverageDuration(); ok {
		stats.Trips = accumulator.Counter
		stats.TotalSeconds = accumulator.TotalDuration
		stats.MeanSeconds = mean
		stats.Total = durationaccumulator.FromSeconds(accumulator.TotalDuration)
		stats.Mean = durationaccumulator.FromSeconds(mean)
	}
	stats.Elapsed = time.Since(start)
	return stats
}

// Users returns the counts of users by user type
func Users(view *triptable.FilteredView) UserStats {
	start := time.Now()
	userTypes := frequency.NewCounter[string](frequency.Ascending[string])
	view.Each(func(record *trip.Record) {
		userTypes.UpdateCounter(record.UserType)
	})

	return UserStats{
		Empty:     view.IsEmpty(),
		UserTypes: userTypes.Sorted(),
		Elapsed:   time.Since(start),
	}
}

// Demographics returns the counts of users by gender and the earliest, latest
// and most common birth year. Cities without demographic columns get
// ErrUnsupportedStatistic; no default values are made up for them.
func Demographics(view *triptable.FilteredView) (DemographicStats, error) {
	if !view.HasDemographics() {
		return DemographicStats{}, fmt.Errorf("[city: %s] gender and birth year: %w", view.Table().GetCity(), ErrUnsupportedStatistic)
	}

	start := time.Now()
	genders := frequency.NewCounter[string](frequency.Ascending[string])
	birthYears := frequency.NewCounter[int](frequency.Ascending[int])
	view.Each(func(record *trip.Record) {
		if record.Gender != "" {
			genders.UpdateCounter(record.Gender)
		}
		if record.HasBirthYear {
			birthYears.UpdateCounter(record.BirthYear)
		}
	})

	stats := DemographicStats{
		Empty:      view.IsEmpty(),
		Genders:    genders.Sorted(),
		BirthYears: BirthYearStats{Empty: birthYears.IsEmpty()},
	}
	stats.BirthYears.Earliest, _ = birthYears.Min()
	stats.BirthYears.Latest, _ = birthYears.Max()
	stats.BirthYears.MostCommon, _ = birthYears.Mode()
	stats.Elapsed = time.Since(start)
	return stats, nil
}

// Compute runs every statistic group supported by the city of the view.
// Groups only read the view, so they run concurrently.
func Compute(ctx context.Context, view *triptable.FilteredView) (*Summary, error) {
	summary := &Summary{Rows: view.Len()}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		summary.Time = TimeOfTravel(view)
		return nil
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		summary.Stations = Stations(view)
		return nil
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		summary.Duration = TripDuration(view)
		return nil
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		summary.Users = Users(view)
		return nil
	})

	if view.HasDemographics() {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			demographics, err := Demographics(view)
			if err != nil {
				return err
			}
			summary.Demographics = &demographics
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Errorf("[city: %s][status: ERROR][method: Compute] %s", view.Table().GetCity(), err.Error())
		return nil, err
	}

	log.Debugf("[city: %s][rows: %v][status: OK][method: Compute] statistics computed", view.Table().GetCity(), summary.Rows)
	return summary, nil
}
