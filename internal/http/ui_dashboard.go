package httpx

import (
	"context"
	"html/template"
	"net/http"
	"strconv"

	"github.com/target/crawl-admin/internal/chart"
	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/service"
)

// Chart canvases.
//
//nolint:gochecknoglobals // fixed chart geometry
var (
	pieSize = chart.Size{W: 400, H: 300}
	barSize = chart.Size{W: 600, H: 300}
)

// Series colors of the data-by-year chart.
const (
	rawSeriesColor    = "#4e79a7"
	sampleSeriesColor = "#f28e2b"
)

// DashboardCard is one summary number on the landing page.
type DashboardCard struct {
	Label       string
	Value       int
	Unavailable bool
}

func dashboardMeta() PageMeta {
	return PageMeta{Title: "Crawl Admin - Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard}
}

func dashboardCards(s *model.DashboardSnapshot) []DashboardCard {
	return []DashboardCard{
		{Label: "Accounts", Value: s.TotalAccounts, Unavailable: s.IsUnavailable(service.SourceAccounts)},
		{Label: "Running tasks", Value: s.RunningTasks, Unavailable: s.IsUnavailable(service.SourceTasks)},
		{Label: "Available proxies", Value: s.AvailableProxies, Unavailable: s.IsUnavailable(service.SourceProxies)},
		{Label: "Raw records", Value: s.TotalRaw, Unavailable: s.IsUnavailable(service.SourceRaw)},
		{Label: "Sample records", Value: s.TotalSample, Unavailable: s.IsUnavailable(service.SourceSample)},
	}
}

// statusPie lays out one slice per known status, in display order. Codes the
// console does not know are pooled into a trailing "Unknown" slice.
func statusPie(s *model.DashboardSnapshot) template.HTML {
	statuses := model.TaskStatuses()
	slices := make([]chart.Slice, 0, len(statuses)+1)
	for _, st := range statuses {
		slices = append(slices, chart.Slice{
			Label: st.Text(),
			Value: float64(s.StatusCounts[st]),
			Color: st.Color(),
		})
	}
	unknown := 0
	for st, n := range s.StatusCounts {
		if !st.Valid() {
			unknown += n
		}
	}
	if unknown > 0 {
		st := model.TaskStatus(-1)
		slices = append(slices, chart.Slice{Label: st.Text(), Value: float64(unknown), Color: st.Color()})
	}
	return chart.RenderPieSVG(chart.LayoutPie(pieSize, slices), "Task status")
}

// yearBars groups raw and sample counts per year.
func yearBars(s *model.DashboardSnapshot) template.HTML {
	years := model.ChartYears(s.RawByYear, s.SampleByYear)
	labels := make([]string, 0, len(years))
	raw := chart.Series{Name: "Raw data", Color: rawSeriesColor, Values: make([]float64, 0, len(years))}
	sample := chart.Series{Name: "Sample data", Color: sampleSeriesColor, Values: make([]float64, 0, len(years))}
	for _, y := range years {
		labels = append(labels, strconv.Itoa(y))
		raw.Values = append(raw.Values, float64(s.RawByYear.For(y)))
		sample.Values = append(sample.Values, float64(s.SampleByYear.For(y)))
	}
	return chart.RenderBarSVG(chart.LayoutBars(barSize, labels, raw, sample), "Data by year")
}

// Home serves the dashboard: summary cards, the task status pie and the
// data-by-year bars. Sources that fail are marked on their card.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: dashboardMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			snap, err := h.Dashboard.Snapshot(ctx)
			if err != nil {
				data["ErrorMessage"] = "Unable to load the dashboard."
				return err
			}
			data["Cards"] = dashboardCards(snap)
			data["StatusChart"] = statusPie(snap)
			data["YearChart"] = yearBars(snap)
			data["TasksUnavailable"] = snap.IsUnavailable(service.SourceTasks)
			data["Snapshot"] = snap
			return nil
		},
	})
}

// DashboardRedirect sends /dashboard to the canonical landing page.
func (h *UIHandlers) DashboardRedirect(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		h.Home(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusMovedPermanently)
}
