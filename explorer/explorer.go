package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
	"bikeshare/domain/business/triptable"
	"bikeshare/domain/entities/city"
	"bikeshare/explorer/config"
	"bikeshare/presentation"
	"bikeshare/selection"
	"bikeshare/statistics"
)

const (
	rawDataQuestion  = "Would you like to see the raw data first?"
	nextRowsQuestion = "Would you like to see the next %v rows?"
	restartQuestion  = "Would you like to restart?"
)

type selector interface {
	SelectCity() (city.City, error)
	SelectCriteria(selected city.City) (triptable.Criteria, error)
	Confirm(question string) (bool, error)
}

type tableLoader interface {
	Load(ctx context.Context, c city.City) (*triptable.TripTable, error)
}

type reportSink interface {
	Publish(ctx context.Context, r *report.Report) error
}

// Explorer runs selection cycles until the user declines to restart
type Explorer struct {
	config   *config.ExplorerConfig
	selector selector
	loader   tableLoader
	renderer *presentation.Renderer
	sink     reportSink
	tables   map[city.City]*triptable.TripTable
}

// NewExplorer returns an Explorer. sink may be nil, in which case reports are not published.
func NewExplorer(explorerConfig *config.ExplorerConfig, selector selector, loader tableLoader, renderer *presentation.Renderer, sink reportSink) *Explorer {
	return &Explorer{
		config:   explorerConfig,
		selector: selector,
		loader:   loader,
		renderer: renderer,
		sink:     sink,
		tables:   make(map[city.City]*triptable.TripTable),
	}
}

// Run greets the user and repeats the selection cycle. Aborting a prompt ends
// the run without error.
func (e *Explorer) Run(ctx context.Context) error {
	e.renderer.Greeting()

	for {
		restart, err := e.runCycle(ctx)
		if errors.Is(err, selection.ErrAborted) {
			log.Info("[explorer] selection aborted by user")
			break
		}
		if err != nil {
			return err
		}
		if !restart {
			break
		}
	}

	e.renderer.Goodbye()
	return nil
}

func (e *Explorer) runCycle(ctx context.Context) (bool, error) {
	cycleID := uuid.NewString()
	logger := log.WithField("cycle", cycleID)

	selectedCity, err := e.selector.SelectCity()
	if err != nil {
		return false, err
	}

	criteria, err := e.selector.SelectCriteria(selectedCity)
	if err != nil {
		return false, err
	}

	table, err := e.getTable(ctx, selectedCity)
	if err != nil {
		if ctx.Err() != nil {
			return false, err
		}
		logger.Errorf("[city: %s] error loading trips: %s", selectedCity, err.Error())
		e.renderer.Error(err)
		return e.selector.Confirm(restartQuestion)
	}

	view := triptable.Filter(table, criteria)
	logger.Infof("[city: %s][criteria: %s][rows: %v] trips filtered", selectedCity, criteria, view.Len())
	e.renderer.Selection(selectedCity, criteria, view.Len())

	if err := e.showRawData(view); err != nil {
		return false, err
	}

	summary, err := statistics.Compute(ctx, view)
	if err != nil {
		return false, err
	}
	e.renderer.Summary(summary)

	if e.sink != nil {
		tripReport := report.NewReport(cycleID, view, summary)
		if err := e.sink.Publish(ctx, tripReport); err != nil {
			logger.Errorf("[report: %s] error publishing report: %s", tripReport.GetReportID(), err.Error())
		}
	}

	return e.selector.Confirm(restartQuestion)
}

// showRawData pages through the view while the user keeps asking for more rows
func (e *Explorer) showRawData(view *triptable.FilteredView) error {
	wantsRows, err := e.selector.Confirm(rawDataQuestion)
	if err != nil || !wantsRows {
		return err
	}

	cursor := triptable.NewCursor(view, e.config.PageSize)
	for {
		firstRow := cursor.Offset()
		e.renderer.Page(cursor.Next(), firstRow, view.HasDemographics())
		if cursor.Done() {
			return nil
		}

		wantsRows, err = e.selector.Confirm(fmt.Sprintf(nextRowsQuestion, e.config.PageSize))
		if err != nil || !wantsRows {
			return err
		}
	}
}

// getTable loads the trips of c once per run. Tables are never mutated after loading.
func (e *Explorer) getTable(ctx context.Context, c city.City) (*triptable.TripTable, error) {
	if table, ok := e.tables[c]; ok {
		return table, nil
	}

	table, err := e.loader.Load(ctx, c)
	if err != nil {
		return nil, err
	}
	e.tables[c] = table
	return table, nil
}
