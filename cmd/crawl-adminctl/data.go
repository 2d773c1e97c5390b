package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/http/uiutil"
	"github.com/target/crawl-admin/internal/service"
)

// dataSet binds a record kind to its command group.
type dataSet struct {
	Kind model.RecordKind
	Use  string
}

//nolint:gochecknoglobals // static command descriptions
var (
	rawData    = dataSet{Kind: model.RecordKindRaw, Use: "raw-data"}
	sampleData = dataSet{Kind: model.RecordKindSample, Use: "sample-data"}
)

// yearStats is the stats output: per-year counts and their total.
type yearStats struct {
	Kind   model.RecordKind `json:"kind"`
	Total  int              `json:"total"`
	ByYear model.YearCounts `json:"by_year"`
}

func sortedYears(counts ...model.YearCounts) []int {
	seen := map[int]bool{}
	var years []int
	for _, c := range counts {
		for _, y := range c.Years() {
			if !seen[y] {
				seen[y] = true
				years = append(years, y)
			}
		}
	}
	sort.Ints(years)
	return years
}

func recordsCmd(a *app, ds dataSet) *cobra.Command {
	cmd := &cobra.Command{Use: ds.Use, Short: ds.Kind.Label() + " records"}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Record counts per year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := a.svc.Records.StatsByYear(cmd.Context(), ds.Kind)
			if err != nil {
				return err
			}
			stats := yearStats{Kind: ds.Kind, Total: counts.Total(), ByYear: counts}
			t := table{header: []string{"YEAR", "RECORDS"}}
			for _, y := range sortedYears(counts) {
				t.add(strconv.Itoa(y), strconv.Itoa(counts.For(y)))
			}
			t.add("TOTAL", strconv.Itoa(stats.Total))
			return a.render(stats, t)
		},
	})

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every " + ds.Kind.Label() + " record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errConfirm
			}
			msg, err := a.svc.Records.Clear(cmd.Context(), ds.Kind)
			if err != nil {
				return err
			}
			return a.message(msg)
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting every record")
	cmd.AddCommand(clearCmd)

	switch ds.Kind {
	case model.RecordKindRaw:
		cmd.AddCommand(importCmd(a))
	case model.RecordKindSample:
		cmd.AddCommand(sampleCmd(a))
	}
	return cmd
}

func importCmd(a *app) *cobra.Command {
	var expression string
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Import records from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			res, err := a.svc.Records.ImportRaw(cmd.Context(), service.ImportRequest{Document: doc, Expression: expression})
			if err != nil {
				return err
			}
			msg := res.Message
			if msg == "" {
				msg = fmt.Sprintf("Imported %d records.", res.Imported)
			}
			return a.render(res, table{rows: [][]string{{msg}}})
		},
	}
	cmd.Flags().StringVarP(&expression, "expression", "e", "", "JMESPath expression selecting the record array")
	return cmd
}

func readDocument(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		doc, err := io.ReadAll(io.LimitReader(stdin, maxImportBytes))
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return doc, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	doc, err := io.ReadAll(io.LimitReader(f, maxImportBytes))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return doc, nil
}

const maxImportBytes = 10 << 20

func sampleCmd(a *app) *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Run quota-based sampling of the raw data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := a.svc.Records.Sample(cmd.Context())
			if err != nil {
				return err
			}
			if !wait {
				return a.message(msg)
			}
			return a.waitFor(cmd, service.Job{Kind: service.JobKindSampling}, "Sampling finished.")
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "wait until sampled records appear")
	return cmd
}

// waitFor blocks on the job watcher and reports the outcome.
func (a *app) waitFor(cmd *cobra.Command, job service.Job, done string) error {
	err := a.svc.Jobs.Wait(cmd.Context(), job)
	if errors.Is(err, service.ErrWatchExhausted) {
		return fmt.Errorf("%s: %w", job.Kind, err)
	}
	if err != nil {
		return err
	}
	return a.message(done)
}

func exportTable(files []model.ExportFile) table {
	t := table{header: []string{"FILE", "KIND", "SIZE", "CREATED"}}
	for i := range files {
		f := &files[i]
		t.add(f.Filename, string(f.Kind()), uiutil.FormatBytes(f.Size), f.CreatedTime.Display())
	}
	return t
}

func exportsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "exports", Short: "Export spreadsheets"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List export files, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := a.svc.Exports.List(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(files, exportTable(files))
		},
	})

	var wait bool
	run := &cobra.Command{
		Use:       "run <raw|sample>",
		Short:     "Generate an export of a data set",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.RecordKindRaw), string(model.RecordKindSample)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := model.RecordKind(args[0])
			if !kind.Valid() {
				return fmt.Errorf("unknown export kind %q", args[0])
			}
			job, msg, err := a.svc.Exports.Trigger(cmd.Context(), kind)
			if err != nil {
				return err
			}
			if !wait {
				return a.message(msg)
			}
			return a.waitFor(cmd, job, kind.Label()+" export finished.")
		},
	}
	run.Flags().BoolVar(&wait, "wait", false, "wait until the export file appears")
	cmd.AddCommand(run)

	var target string
	download := &cobra.Command{
		Use:   "download <file>",
		Short: "Download an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.download(cmd, args[0], target)
		},
	}
	download.Flags().StringVarP(&target, "file", "f", "", "destination path (default: the export's name in the current directory)")
	cmd.AddCommand(download)

	var yes bool
	del := &cobra.Command{
		Use:   "delete <file>",
		Short: "Delete an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errConfirm
			}
			if err := a.svc.Exports.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.message("Export deleted.")
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "confirm deleting the file")
	cmd.AddCommand(del)
	return cmd
}

func (a *app) download(cmd *cobra.Command, name, target string) error {
	dl, err := a.svc.Exports.Open(cmd.Context(), name)
	if err != nil {
		return err
	}
	defer dl.Body.Close()

	if target == "" {
		target = filepath.Base(dl.Filename)
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	n, copyErr := io.Copy(f, dl.Body)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return a.message(fmt.Sprintf("Saved %s (%s).", target, uiutil.FormatBytes(n)))
}

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Totals and the per-year record table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := a.svc.Dashboard.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			if a.output != formatTable {
				return a.render(snap, table{})
			}
			return a.writeDashboard(snap)
		},
	}
}

func (a *app) writeDashboard(snap *model.DashboardSnapshot) error {
	totals := table{header: []string{"METRIC", "VALUE"}}
	mark := func(label string, v int, source string) {
		value := strconv.Itoa(v)
		if snap.IsUnavailable(source) {
			value = "unavailable"
		}
		totals.add(label, value)
	}
	mark("Accounts", snap.TotalAccounts, service.SourceAccounts)
	mark("Running tasks", snap.RunningTasks, service.SourceTasks)
	mark("Available proxies", snap.AvailableProxies, service.SourceProxies)
	mark("Raw records", snap.TotalRaw, service.SourceRaw)
	mark("Sample records", snap.TotalSample, service.SourceSample)
	if err := writeTable(a.out, totals); err != nil {
		return err
	}
	if err := writeln(a.out, ""); err != nil {
		return err
	}

	years := table{header: []string{"YEAR", "RAW", "SAMPLE"}}
	for _, y := range model.ChartYears(snap.RawByYear, snap.SampleByYear) {
		years.add(strconv.Itoa(y), strconv.Itoa(snap.RawByYear.For(y)), strconv.Itoa(snap.SampleByYear.For(y)))
	}
	return writeTable(a.out, years)
}
