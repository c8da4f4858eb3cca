package presentation

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/business/triptable"
	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/trip"
	"bikeshare/statistics"
	"bikeshare/ui"
)

const (
	noData         = "no data matches the selected filters"
	timestampShown = "2006-01-02 15:04:05"
)

// Renderer writes raw trip pages and statistic groups as text
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Greeting prints the banner shown when the explorer starts
func (r *Renderer) Greeting() {
	r.println(ui.TitleStyle.Render("Hello! Let's explore some US bikeshare data!"))
}

// Selection echoes the city and filters the user picked
func (r *Renderer) Selection(c city.City, criteria triptable.Criteria, rows int) {
	r.println(fmt.Sprintf(
		"The data is filtered according to your selection: City - %s, Month - %s, Day of Week - %s (%s trips).",
		ui.ValueStyle.Render(c.Name()),
		ui.ValueStyle.Render(criteria.MonthLabel()),
		ui.ValueStyle.Render(criteria.WeekdayLabel()),
		humanize.Comma(int64(rows)),
	))
	r.println(ui.Separator)
}

// Page prints a page of raw trips. firstRow is the position of the first record in the view.
func (r *Renderer) Page(records []trip.Record, firstRow int, withDemographics bool) {
	if len(records) == 0 {
		r.println(ui.DimStyle.Render("There are no more rows to show."))
		return
	}

	headers := []string{"#", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if withDemographics {
		headers = append(headers, "Gender", "Birth Year")
	}
	headers = append(headers, "Month", "Week Day", "Hour")

	rows := make([][]string, 0, len(records))
	for i, record := range records {
		row := []string{
			strconv.Itoa(firstRow + i),
			record.StartTime.Format(timestampShown),
			record.EndTime.Format(timestampShown),
			strconv.FormatFloat(record.Duration, 'f', -1, 64),
			record.StartStation,
			record.EndStation,
			record.UserType,
		}
		if withDemographics {
			row = append(row, record.Gender, birthYearCell(record))
		}
		row = append(row, strconv.Itoa(int(record.Month)), record.Weekday.String(), strconv.Itoa(record.Hour))
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(ui.DimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return ui.TitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	r.println(t.Render())
}

// Summary prints every statistic group of summary
func (r *Renderer) Summary(summary *statistics.Summary) {
	r.println("")
	r.println("Thanks! Here are the statistics:")
	r.println(ui.Separator)
	r.TimeStats(summary.Time)
	r.StationStats(summary.Stations)
	r.DurationStats(summary.Duration)
	r.UserStats(summary.Users, summary.Demographics)
}

func (r *Renderer) TimeStats(stats statistics.TimeStats) {
	r.section("Calculating The Most Frequent Times of Travel...")
	if stats.Empty {
		r.noData(stats.Elapsed)
		return
	}
	r.item(1, "The most common month for travel is %s", stats.Month.Value.String())
	r.item(2, "The most common day of week for travel is %s", stats.Weekday.Value.String())
	r.item(3, "The most common hour for travel is %s", strconv.Itoa(stats.Hour.Value))
	r.elapsed(stats.Elapsed)
}

func (r *Renderer) StationStats(stats statistics.StationStats) {
	r.section("Calculating The Most Popular Stations and Trip...")
	if stats.Empty {
		r.noData(stats.Elapsed)
		return
	}
	r.item(1, "The most commonly used start station is %s", stats.StartStation.Value)
	r.item(2, "The most commonly used end station is %s", stats.EndStation.Value)
	r.item(3, "The most frequent combination of start and end station trip is %s", stats.Combination.Value)
	r.elapsed(stats.Elapsed)
}

func (r *Renderer) DurationStats(stats statistics.DurationStats) {
	r.section("Calculating Trip Duration...")
	if stats.Empty {
		r.noData(stats.Elapsed)
		return
	}
	r.item(1, "The total travel time is %s", hoursAndMinutes(stats.Total))
	r.item(2, "The average travel time is %s", hoursAndMinutes(stats.Mean))
	r.elapsed(stats.Elapsed)
}

// UserStats prints user types and, if not nil, demographics
func (r *Renderer) UserStats(users statistics.UserStats, demographics *statistics.DemographicStats) {
	r.section("Calculating User Stats...")
	if users.Empty {
		r.noData(users.Elapsed)
		return
	}

	r.println("1. Following are the counts of users by user type:")
	r.println(frequencyTable("User Type", users.UserTypes))

	elapsed := users.Elapsed
	if demographics != nil {
		elapsed += demographics.Elapsed
		r.println("2. Following are the counts of users by gender:")
		r.println(frequencyTable("Gender", demographics.Genders))

		years := demographics.BirthYears
		if years.Empty {
			r.println("3. No birth year was reported by these users.")
		} else {
			r.println(fmt.Sprintf(
				"3. The earliest birth year of those users is %s, the most recent birth year is %s, and the most common birth year is %s.",
				ui.ValueStyle.Render(strconv.Itoa(years.Earliest)),
				ui.ValueStyle.Render(strconv.Itoa(years.Latest)),
				ui.ValueStyle.Render(strconv.Itoa(years.MostCommon.Value)),
			))
		}
	} else {
		r.println(ui.DimStyle.Render("Gender and birth year are not reported for this city."))
	}
	r.elapsed(elapsed)
}

// Error prints err for the user
func (r *Renderer) Error(err error) {
	r.println(ui.ErrorStyle.Render("Oops! " + err.Error()))
}

// Goodbye prints the closing message
func (r *Renderer) Goodbye() {
	r.println(ui.TitleStyle.Render("Analysis completed! Bye."))
}

func (r *Renderer) section(title string) {
	r.println(ui.SectionStyle.Render(title))
	r.println("")
}

func (r *Renderer) item(number int, format string, value string) {
	r.println(fmt.Sprintf("%d. "+format, number, ui.ValueStyle.Render(value)))
}

func (r *Renderer) noData(elapsed time.Duration) {
	r.println(ui.DimStyle.Render(noData))
	r.elapsed(elapsed)
}

func (r *Renderer) elapsed(elapsed time.Duration) {
	r.println("")
	r.println(ui.DimStyle.Render(fmt.Sprintf("This took %s seconds.", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))))
	r.println(ui.Separator)
}

func (r *Renderer) println(text string) {
	_, _ = fmt.Fprintln(r.out, text)
}

func hoursAndMinutes(hm durationaccumulator.HoursMinutes) string {
	return fmt.Sprintf("%s hours and %d minutes", humanize.Comma(hm.Hours), hm.Minutes)
}

func birthYearCell(record trip.Record) string {
	if !record.HasBirthYear {
		return ""
	}
	return strconv.Itoa(record.BirthYear)
}

func frequencyTable(label string, entries []frequency.Entry[string]) string {
	if len(entries) == 0 {
		return ui.DimStyle.Render("   (none reported)")
	}

	var b strings.Builder
	width := len(label)
	for _, entry := range entries {
		if len(entry.Value) > width {
			width = len(entry.Value)
		}
	}
	b.WriteString(fmt.Sprintf("   %-*s %s\n", width, label, "Count"))
	for _, entry := range entries {
		b.WriteString(fmt.Sprintf("   %-*s %s\n", width, entry.Value, humanize.Comma(int64(entry.Count))))
	}
	return strings.TrimRight(b.String(), "\n")
}
