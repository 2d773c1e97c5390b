package httpx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateHelpers_SectionTmpl_Mapping(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	cloned, err := tr.t.Clone()
	require.NoError(t, err)
	cloned, err = cloned.Parse(`{{define "probe"}}{{ sectionTmpl . }}{{end}}`)
	require.NoError(t, err)

	cases := map[string]string{
		PageDashboard:    "dashboard-content",
		PageAccounts:     "accounts-content",
		PageRedisConfigs: "redis-configs-content",
		PageRawData:      "records-content",
		PageSampleData:   "records-content",
		"unknown":        "dashboard-content",
	}
	for page, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, cloned.ExecuteTemplate(&buf, "probe", page))
		assert.Equal(t, want, buf.String(), "sectionTmpl(%s)", page)
	}
}

func TestTemplateHelpers_RenderSection(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	cloned, err := tr.t.Clone()
	require.NoError(t, err)
	cloned, err = cloned.Parse(`{{define "probe"}}{{ renderSection .Page .Data }}{{end}}`)
	require.NoError(t, err)

	render := func(t *testing.T, page string, data map[string]any) *goquery.Document {
		t.Helper()
		var buf bytes.Buffer
		require.NoError(t, cloned.ExecuteTemplate(&buf, "probe", map[string]any{"Page": page, "Data": data}))
		doc, err := goquery.NewDocumentFromReader(&buf)
		require.NoError(t, err)
		return doc
	}

	t.Run("dashboard cards", func(t *testing.T) {
		doc := render(t, PageDashboard, map[string]any{
			"Cards": []DashboardCard{
				{Label: "Accounts", Value: 1234},
				{Label: "Raw records", Unavailable: true},
			},
		})
		cards := doc.Find(".card")
		require.Equal(t, 2, cards.Length())
		assert.Equal(t, "1,234", strings.TrimSpace(cards.First().Find(".card-value").Text()))
		assert.True(t, cards.Last().HasClass("card-unavailable"))
		assert.Equal(t, "Unavailable", cards.Last().Find(".card-note").Text())
	})

	t.Run("unknown page falls back to dashboard", func(t *testing.T) {
		doc := render(t, "nope", map[string]any{})
		assert.Equal(t, 1, doc.Find("#dashboard-content").Length())
	})

	t.Run("page error", func(t *testing.T) {
		doc := render(t, PageDashboard, map[string]any{"Error": true, "ErrorMessage": "Unable to load the dashboard."})
		assert.Equal(t, "Unable to load the dashboard.", doc.Find(".alert-error").Text())
	})
}
