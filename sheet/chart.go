package sheet

import (
	"context"
	"fmt"

	"gsheets/a1"

	"google.golang.org/api/sheets/v4"
)

// Chart is the local model of a basic embedded chart, anchored to a cell on
// its worksheet, with one domain range and one or more series ranges.
type Chart struct {
	worksheet *Worksheet
	resource  *sheets.EmbeddedChart
}

func newChart(w *Worksheet, resource *sheets.EmbeddedChart) *Chart {
	return &Chart{
		worksheet: w,
		resource:  resource,
	}
}

// AddChart creates an embedded chart with the given domain (e.g. the labels
// column) and series ranges. With a zero anchor the chart is anchored to the
// cell just below the end of the domain.
func (w *Worksheet) AddChart(ctx context.Context, domain string, series []string, title string, chartType ChartType, anchor a1.Address) (*Chart, error) {
	domainRange, err := w.gridRange(domain)
	if err != nil {
		return nil, err
	}

	spec := sheets.BasicChartSpec{
		ChartType:      string(chartType),
		LegendPosition: "RIGHT_LEGEND",
		Domains: []*sheets.BasicChartDomain{
			{
				Domain: &sheets.ChartData{
					SourceRange: &sheets.ChartSourceRange{
						Sources: []*sheets.GridRange{domainRange},
					},
				},
			},
		},
	}

	for _, area := range series {
		seriesRange, err := w.gridRange(area)
		if err != nil {
			return nil, err
		}

		spec.Series = append(spec.Series, &sheets.BasicChartSeries{
			Series: &sheets.ChartData{
				SourceRange: &sheets.ChartSourceRange{
					Sources: []*sheets.GridRange{seriesRange},
				},
			},
			TargetAxis: "LEFT_AXIS",
		})
	}

	if anchor.Zero() {
		anchor = a1.Cell(int(domainRange.EndRowIndex)+1, int(domainRange.EndColumnIndex))
	}

	chart := sheets.EmbeddedChart{
		Spec: &sheets.ChartSpec{
			Title:      title,
			BasicChart: &spec,
		},
		Position: &sheets.EmbeddedObjectPosition{
			OverlayPosition: &sheets.OverlayPosition{
				AnchorCell: &sheets.GridCoordinate{
					SheetId:         w.ID(),
					RowIndex:        int64(anchor.Row - 1),
					ColumnIndex:     int64(anchor.Col - 1),
					ForceSendFields: []string{"RowIndex", "ColumnIndex"},
				},
			},
		},
	}

	response, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		AddChart: &sheets.AddChartRequest{
			Chart: &chart,
		},
	})
	if err != nil {
		return nil, err
	}

	if response == nil {
		return newChart(w, &chart), nil
	}

	return newChart(w, response.Replies[0].AddChart.Chart), nil
}

// Charts returns the embedded charts on this worksheet, refetched from the
// service.
func (w *Worksheet) Charts(ctx context.Context) ([]*Chart, error) {
	resource, err := w.client.fetch(ctx, w.spreadsheet.ID(), "sheets(charts,properties(sheetId))", false)
	if err != nil {
		return nil, err
	}

	charts := []*Chart{}
	for _, sh := range resource.Sheets {
		if sh.Properties != nil && sh.Properties.SheetId == w.ID() {
			for _, c := range sh.Charts {
				charts = append(charts, newChart(w, c))
			}
		}
	}

	return charts, nil
}

// ChartByID returns the embedded chart with the given id.
func (w *Worksheet) ChartByID(ctx context.Context, id int64) (*Chart, error) {
	charts, err := w.Charts(ctx)
	if err != nil {
		return nil, err
	}

	for _, chart := range charts {
		if chart.ID() == id {
			return chart, nil
		}
	}

	return nil, fmt.Errorf("chart %d: %w", id, ErrChartNotFound)
}

// ID is the chart id.
func (c *Chart) ID() int64 {
	return c.resource.ChartId
}

// Title is the chart title.
func (c *Chart) Title() string {
	if c.resource.Spec == nil {
		return ""
	}

	return c.resource.Spec.Title
}

// Type is the basic chart type.
func (c *Chart) Type() ChartType {
	if spec := c.basicSpec(); spec != nil {
		return ChartType(spec.ChartType)
	}

	return ""
}

// Domain is the domain range of the chart.
func (c *Chart) Domain() (a1.Range, bool) {
	spec := c.basicSpec()
	if spec == nil || len(spec.Domains) == 0 {
		return a1.Range{}, false
	}

	sources := spec.Domains[0].Domain.SourceRange.Sources
	if len(sources) == 0 {
		return a1.Range{}, false
	}

	return a1.FromGridRange(sources[0]), true
}

// Series lists the series ranges of the chart.
func (c *Chart) Series() []a1.Range {
	spec := c.basicSpec()
	if spec == nil {
		return nil
	}

	series := []a1.Range{}
	for _, s := range spec.Series {
		if s.Series != nil && s.Series.SourceRange != nil && len(s.Series.SourceRange.Sources) > 0 {
			series = append(series, a1.FromGridRange(s.Series.SourceRange.Sources[0]))
		}
	}

	return series
}

// LegendPosition is the legend position of the chart.
func (c *Chart) LegendPosition() string {
	if spec := c.basicSpec(); spec != nil {
		return spec.LegendPosition
	}

	return ""
}

// SetLegendPosition moves the chart legend ("RIGHT_LEGEND", "BOTTOM_LEGEND",
// "LEFT_LEGEND", "TOP_LEGEND", "NO_LEGEND").
func (c *Chart) SetLegendPosition(ctx context.Context, position string) error {
	spec := c.basicSpec()
	if spec == nil {
		return fmt.Errorf("chart %d is not a basic chart: %w", c.ID(), ErrChartNotFound)
	}

	spec.LegendPosition = position

	return c.pushSpec(ctx)
}

// FontName is the default font of the chart.
func (c *Chart) FontName() string {
	if c.resource.Spec == nil {
		return ""
	}

	return c.resource.Spec.FontName
}

// SetFontName changes the default font of the chart.
func (c *Chart) SetFontName(ctx context.Context, name string) error {
	c.resource.Spec.FontName = name

	return c.pushSpec(ctx)
}

// SetTitle retitles the chart.
func (c *Chart) SetTitle(ctx context.Context, title string) error {
	c.resource.Spec.Title = title

	return c.pushSpec(ctx)
}

// SetType changes the basic chart type.
func (c *Chart) SetType(ctx context.Context, chartType ChartType) error {
	spec := c.basicSpec()
	if spec == nil {
		return fmt.Errorf("chart %d is not a basic chart: %w", c.ID(), ErrChartNotFound)
	}

	spec.ChartType = string(chartType)

	return c.pushSpec(ctx)
}

// SetDomain changes the domain range of the chart.
func (c *Chart) SetDomain(ctx context.Context, domain string) error {
	spec := c.basicSpec()
	if spec == nil {
		return fmt.Errorf("chart %d is not a basic chart: %w", c.ID(), ErrChartNotFound)
	}

	domainRange, err := c.worksheet.gridRange(domain)
	if err != nil {
		return err
	}

	spec.Domains = []*sheets.BasicChartDomain{
		{
			Domain: &sheets.ChartData{
				SourceRange: &sheets.ChartSourceRange{
					Sources: []*sheets.GridRange{domainRange},
				},
			},
		},
	}

	return c.pushSpec(ctx)
}

// SetSeries replaces the series ranges of the chart.
func (c *Chart) SetSeries(ctx context.Context, series []string) error {
	spec := c.basicSpec()
	if spec == nil {
		return fmt.Errorf("chart %d is not a basic chart: %w", c.ID(), ErrChartNotFound)
	}

	replacement := []*sheets.BasicChartSeries{}
	for _, area := range series {
		seriesRange, err := c.worksheet.gridRange(area)
		if err != nil {
			return err
		}

		replacement = append(replacement, &sheets.BasicChartSeries{
			Series: &sheets.ChartData{
				SourceRange: &sheets.ChartSourceRange{
					Sources: []*sheets.GridRange{seriesRange},
				},
			},
			TargetAxis: "LEFT_AXIS",
		})
	}

	spec.Series = replacement

	return c.pushSpec(ctx)
}

// Delete removes the chart from the worksheet.
func (c *Chart) Delete(ctx context.Context) error {
	_, err := c.worksheet.client.batchUpdate(ctx, c.worksheet.spreadsheet.ID(), &sheets.Request{
		DeleteEmbeddedObject: &sheets.DeleteEmbeddedObjectRequest{
			ObjectId: c.ID(),
		},
	})

	return err
}

// Refresh refetches the chart from the service.
func (c *Chart) Refresh(ctx context.Context) error {
	chart, err := c.worksheet.ChartByID(ctx, c.ID())
	if err != nil {
		return err
	}

	c.resource = chart.resource

	return nil
}

func (c *Chart) basicSpec() *sheets.BasicChartSpec {
	if c.resource.Spec == nil {
		return nil
	}

	return c.resource.Spec.BasicChart
}

func (c *Chart) pushSpec(ctx context.Context) error {
	_, err := c.worksheet.client.batchUpdate(ctx, c.worksheet.spreadsheet.ID(), &sheets.Request{
		UpdateChartSpec: &sheets.UpdateChartSpecRequest{
			ChartId: c.ID(),
			Spec:    c.resource.Spec,
		},
	})

	return err
}

func (c *Chart) String() string {
	return fmt.Sprintf("<Chart %d %q %s>", c.ID(), c.Title(), c.Type())
}
