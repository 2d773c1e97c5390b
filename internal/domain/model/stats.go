package model

import (
	"sort"
	"strconv"
)

// Year span always shown on the dashboard bar chart.
const (
	DefaultChartFirstYear = 2018
	DefaultChartLastYear  = 2025
)

// YearCounts maps a year (as the backend's string key) to a record count.
type YearCounts map[string]int

// Total sums every year.
func (y YearCounts) Total() int {
	total := 0
	for _, n := range y {
		total += n
	}
	return total
}

// For returns the count for a year, 0 when absent.
func (y YearCounts) For(year int) int {
	return y[strconv.Itoa(year)]
}

// Years returns the numeric years present, ascending. Keys that are not
// integers are ignored.
func (y YearCounts) Years() []int {
	out := make([]int, 0, len(y))
	for k := range y {
		if n, err := strconv.Atoi(k); err == nil {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// ChartYears returns the default span followed by any additional years found
// in the given series, in ascending order.
func ChartYears(series ...YearCounts) []int {
	seen := make(map[int]bool)
	years := make([]int, 0, DefaultChartLastYear-DefaultChartFirstYear+1)
	for y := DefaultChartFirstYear; y <= DefaultChartLastYear; y++ {
		years = append(years, y)
		seen[y] = true
	}
	var extra []int
	for _, s := range series {
		for _, y := range s.Years() {
			if !seen[y] {
				seen[y] = true
				extra = append(extra, y)
			}
		}
	}
	if len(extra) == 0 {
		return years
	}
	years = append(years, extra...)
	sort.Ints(years)
	return years
}

// TaskCount is one entry of the by-task statistics.
type TaskCount struct {
	TaskName string `json:"task_name"`
	Count    int    `json:"count"`
}

// TaskCounts maps task id (string key) to its record count.
type TaskCounts map[string]TaskCount

// DashboardSnapshot aggregates everything the dashboard renders.
type DashboardSnapshot struct {
	TotalAccounts    int                `json:"total_accounts"`
	RunningTasks     int                `json:"running_tasks"`
	AvailableProxies int                `json:"available_proxies"`
	TotalRaw         int                `json:"total_raw"`
	TotalSample      int                `json:"total_sample"`
	StatusCounts     map[TaskStatus]int `json:"status_counts"`
	RawByYear        YearCounts         `json:"raw_by_year"`
	SampleByYear     YearCounts         `json:"sample_by_year"`
	// Unavailable lists the sources that failed to load ("accounts", "tasks", ...).
	Unavailable []string `json:"unavailable,omitempty"`
}

// IsUnavailable reports whether the named source failed to load.
func (s *DashboardSnapshot) IsUnavailable(source string) bool {
	for _, u := range s.Unavailable {
		if u == source {
			return true
		}
	}
	return false
}
