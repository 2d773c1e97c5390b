package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/http/uiutil"
)

// accountNameWidth matches the console's account column.
const accountNameWidth = 20

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func pageFlags(cmd *cobra.Command, page, size *int) {
	cmd.Flags().IntVar(page, "page", 1, "page number")
	cmd.Flags().IntVar(size, "page-size", 0, "rows per page (default $BACKEND_PAGE_SIZE)")
}

func (a *app) limitOffset(page, size int) (int, int) {
	if size <= 0 {
		size = a.cfg.Backend.PageSize
	}
	return size, (max(page, 1) - 1) * size
}

func accountsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "accounts", Short: "Crawl accounts"}
	var page, size int
	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, offset := a.limitOffset(page, size)
			items, err := a.svc.Accounts.List(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			t := table{header: []string{"ID", "ACCOUNT", "STATUS"}}
			for i := range items {
				t.add(strconv.FormatInt(items[i].ID, 10), uiutil.Truncate(items[i].AccountName, accountNameWidth), items[i].StatusText())
			}
			return a.render(items, t)
		},
	}
	pageFlags(list, &page, &size)
	cmd.AddCommand(list)
	return cmd
}

func tasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "tasks", Short: "Crawl and export tasks"}
	var page, size int
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, offset := a.limitOffset(page, size)
			items, err := a.svc.Tasks.List(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			t := table{header: []string{"ID", "NAME", "TYPE", "STATUS", "PROGRESS", "START", "END"}}
			for i := range items {
				task := &items[i]
				t.add(
					strconv.FormatInt(task.ID, 10),
					task.TaskName,
					string(task.TaskType),
					task.Status.Text(),
					strconv.Itoa(task.Progress)+"%",
					task.StartTime.Display(),
					task.EndTime.Display(),
				)
			}
			return a.render(items, t)
		},
	}
	pageFlags(list, &page, &size)
	cmd.AddCommand(list)

	for _, action := range []model.TaskAction{
		model.TaskActionStart, model.TaskActionPause, model.TaskActionResume, model.TaskActionStop,
	} {
		cmd.AddCommand(taskActionCmd(a, action))
	}
	return cmd
}

func taskActionCmd(a *app, action model.TaskAction) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " <id>",
		Short: "Send " + string(action) + " to a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			task, err := a.svc.Tasks.RunAction(cmd.Context(), id, action)
			if err != nil {
				return err
			}
			if task == nil {
				return a.message(fmt.Sprintf("Task %d: %s sent.", id, action))
			}
			return a.render(task, table{
				header: []string{"ID", "NAME", "STATUS"},
				rows:   [][]string{{strconv.FormatInt(task.ID, 10), task.TaskName, task.Status.Text()}},
			})
		},
	}
}

func proxiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "proxies", Short: "Crawler proxies"}
	var page, size int
	list := &cobra.Command{
		Use:   "list",
		Short: "List proxies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, offset := a.limitOffset(page, size)
			items, err := a.svc.Proxies.List(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			t := table{header: []string{"ID", "TYPE", "ADDRESS", "STRATEGY", "STATUS"}}
			for i := range items {
				p := &items[i]
				t.add(strconv.FormatInt(p.ID, 10), string(p.ProxyType), p.ProxyAddr, string(p.Strategy), p.StatusText())
			}
			return a.render(items, t)
		},
	}
	pageFlags(list, &page, &size)
	cmd.AddCommand(list)
	return cmd
}

func quotaTable(items []model.Quota) table {
	t := table{header: []string{"ID", "START", "END", "STOCK RATIO", "SAMPLES"}}
	for i := range items {
		q := &items[i]
		t.add(
			strconv.FormatInt(q.ID, 10),
			strconv.Itoa(q.StartYear),
			strconv.Itoa(q.EndYear),
			uiutil.FormatRatio(q.StockRatio),
			strconv.Itoa(q.SampleNum),
		)
	}
	return t
}

func quotasCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "quotas", Short: "Sampling quotas"}
	var yes bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Replace every quota with the default quota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errConfirm
			}
			items, err := a.svc.Quotas.Init(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(items, quotaTable(items))
		},
	}
	initCmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting the existing quotas")
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List quotas",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				items, err := a.svc.Quotas.List(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(items, quotaTable(items))
			},
		},
		initCmd,
	)
	return cmd
}

func redisConfigsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "redis-configs", Short: "Worker Redis connections"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List Redis configs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				items, err := a.svc.RedisConfigs.List(cmd.Context())
				if err != nil {
					return err
				}
				t := table{header: []string{"ID", "NAME", "ADDRESS", "DB", "PASSWORD", "DEFAULT"}}
				for i := range items {
					c := &items[i]
					pw := "-"
					if c.HasPassword() {
						pw = "******"
					}
					def := ""
					if c.IsDefault {
						def = "yes"
					}
					t.add(strconv.FormatInt(c.ID, 10), c.Name, fmt.Sprintf("%s:%d", c.Host, c.Port), strconv.Itoa(c.DB), pw, def)
				}
				// Structured output omits passwords.
				for i := range items {
					items[i].Password = nil
				}
				return a.render(items, t)
			},
		},
		&cobra.Command{
			Use:   "test <id>",
			Short: "Test a saved Redis config",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseIDArg(args[0])
				if err != nil {
					return err
				}
				res, err := a.svc.RedisConfigs.TestSaved(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := a.render(res, table{rows: [][]string{{verdict(res.Success), res.Message}}}); err != nil {
					return err
				}
				if !res.Success {
					return fmt.Errorf("redis config %d: connection failed", id)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "reload",
			Short: "Reconnect the backend workers to the default Redis",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				res, err := a.svc.RedisConfigs.Reload(cmd.Context())
				if err != nil {
					return err
				}
				return a.message(res.Message)
			},
		},
	)
	return cmd
}

func verdict(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAILED"
}
