package selection

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/triptable"
	"bikeshare/domain/entities/calendar"
	"bikeshare/domain/entities/city"
)

const (
	filterByMonth = "Month"
	filterByDay   = "Day"
	filterNone    = "None"
	answerYes     = "Yes"
	answerNo      = "No"
)

// chooseFunc asks the user to pick one of options and returns its index
type chooseFunc func(title string, options []string) (int, error)

// Terminal asks the user for a city, filters and yes/no answers. Every
// answer is picked from a closed list, so callers only get valid values.
type Terminal struct {
	months []time.Month
	choose chooseFunc
}

// NewTerminal returns a Terminal reading keys from input and drawing on output.
// months are the months offered when filtering by month.
func NewTerminal(input io.Reader, output io.Writer, months []time.Month) *Terminal {
	return &Terminal{
		months: months,
		choose: programChooser(input, output),
	}
}

func programChooser(input io.Reader, output io.Writer) chooseFunc {
	return func(title string, options []string) (int, error) {
		program := tea.NewProgram(
			newChoiceModel(title, options),
			tea.WithInput(input),
			tea.WithOutput(output),
		)

		finalModel, err := program.Run()
		if err != nil {
			return 0, fmt.Errorf("error running prompt %q: %w", title, err)
		}

		selected, ok := finalModel.(choiceModel).Selected()
		if !ok {
			return 0, ErrAborted
		}
		return selected, nil
	}
}

// SelectCity asks which city to explore
func (t *Terminal) SelectCity() (city.City, error) {
	cities := city.All()
	options := make([]string, 0, len(cities))
	for _, c := range cities {
		options = append(options, c.Name())
	}

	idx, err := t.choose("Would you like to see data for Chicago, New York, or Washington?", options)
	if err != nil {
		return "", err
	}
	log.Debugf("[component: selection][city: %s] city selected", cities[idx])
	return cities[idx], nil
}

// SelectCriteria asks whether to filter by month, by day or not at all.
// Choosing one of them leaves the other unfiltered.
func (t *Terminal) SelectCriteria(selected city.City) (triptable.Criteria, error) {
	title := fmt.Sprintf("You selected the data from %s. Would you like to filter the data by month, day, or not at all?", selected.Name())
	filterKinds := []string{filterByMonth, filterByDay, filterNone}

	idx, err := t.choose(title, filterKinds)
	if err != nil {
		return triptable.Criteria{}, err
	}

	switch filterKinds[idx] {
	case filterByMonth:
		return t.selectMonth()
	case filterByDay:
		return t.selectWeekday()
	default:
		return triptable.NoFilter(), nil
	}
}

func (t *Terminal) selectMonth() (triptable.Criteria, error) {
	options := make([]string, 0, len(t.months))
	for _, month := range t.months {
		options = append(options, month.String())
	}

	idx, err := t.choose("Which month?", options)
	if err != nil {
		return triptable.Criteria{}, err
	}
	return triptable.ByMonth(t.months[idx]), nil
}

func (t *Terminal) selectWeekday() (triptable.Criteria, error) {
	weekdays := calendar.Weekdays()
	options := make([]string, 0, len(weekdays))
	for _, day := range weekdays {
		options = append(options, day.String())
	}

	idx, err := t.choose("Which day of week?", options)
	if err != nil {
		return triptable.Criteria{}, err
	}
	return triptable.ByWeekday(weekdays[idx]), nil
}

// Confirm asks a yes/no question
func (t *Terminal) Confirm(question string) (bool, error) {
	idx, err := t.choose(question, []string{answerYes, answerNo})
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}
