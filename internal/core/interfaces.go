package core

import (
	"context"
	"encoding/json"

	"github.com/target/crawl-admin/internal/domain/model"
)

// This file contains the backend port definitions. The pipelineapi client
// implements all of them; services depend on these interfaces only.

// AccountAPI defines the backend operations on crawl accounts.
type AccountAPI interface {
	ListAccounts(ctx context.Context, opts model.ListOptions) ([]model.Account, error)
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	CreateAccount(ctx context.Context, req model.AccountRequest) (*model.Account, error)
	UpdateAccount(ctx context.Context, id int64, req model.AccountRequest) (*model.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// TaskAPI defines the backend operations on crawl and export tasks.
type TaskAPI interface {
	ListTasks(ctx context.Context, opts model.ListOptions) ([]model.Task, error)
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	CreateTask(ctx context.Context, req model.TaskRequest) (*model.Task, error)
	UpdateTask(ctx context.Context, id int64, req model.TaskRequest) (*model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	RunTaskAction(ctx context.Context, id int64, action model.TaskAction) (*model.Task, error)
}

// ProxyAPI defines the backend operations on proxies.
type ProxyAPI interface {
	ListProxies(ctx context.Context, opts model.ListOptions) ([]model.Proxy, error)
	GetProxy(ctx context.Context, id int64) (*model.Proxy, error)
	CreateProxy(ctx context.Context, req model.ProxyRequest) (*model.Proxy, error)
	UpdateProxy(ctx context.Context, id int64, req model.ProxyRequest) (*model.Proxy, error)
	DeleteProxy(ctx context.Context, id int64) error
}

// QuotaAPI defines the backend operations on sampling quotas.
type QuotaAPI interface {
	ListQuotas(ctx context.Context) ([]model.Quota, error)
	GetQuota(ctx context.Context, id int64) (*model.Quota, error)
	CreateQuota(ctx context.Context, req model.QuotaRequest) (*model.Quota, error)
	UpdateQuota(ctx context.Context, id int64, req model.QuotaRequest) (*model.Quota, error)
	DeleteQuota(ctx context.Context, id int64) error
	InitQuotas(ctx context.Context) ([]model.Quota, error)
}

// RedisConfigAPI defines the backend operations on worker Redis configs.
type RedisConfigAPI interface {
	ListRedisConfigs(ctx context.Context) ([]model.RedisConfig, error)
	DefaultRedisConfig(ctx context.Context) (*model.RedisConfig, error)
	CreateRedisConfig(ctx context.Context, req model.RedisConfigRequest) (*model.RedisConfig, error)
	UpdateRedisConfig(ctx context.Context, id int64, req model.RedisConfigRequest) (*model.RedisConfig, error)
	DeleteRedisConfig(ctx context.Context, id int64) error
	TestRedisConnection(ctx context.Context, req model.RedisTestRequest) (*model.RedisTestResult, error)
	ReloadRedis(ctx context.Context) (*model.ActionMessage, error)
}

// CrawlerParamAPI defines the backend operations on crawler parameter sets.
type CrawlerParamAPI interface {
	ListCrawlerParams(ctx context.Context, opts model.ListOptions) ([]model.CrawlerParam, error)
	GetCrawlerParam(ctx context.Context, id int64) (*model.CrawlerParam, error)
	CreateCrawlerParam(ctx context.Context, req model.CrawlerParamRequest) (*model.CrawlerParam, error)
	UpdateCrawlerParam(ctx context.Context, id int64, req model.CrawlerParamRequest) (*model.CrawlerParam, error)
	DeleteCrawlerParam(ctx context.Context, id int64) error
}

// RecordAPI defines the backend operations on raw and sample records.
type RecordAPI interface {
	ListRecords(ctx context.Context, kind model.RecordKind, opts model.RecordListOptions) ([]model.Record, error)
	GetRecord(ctx context.Context, kind model.RecordKind, id int64) (*model.Record, error)
	DeleteRecord(ctx context.Context, kind model.RecordKind, id int64) error
	ClearRecords(ctx context.Context, kind model.RecordKind) (*model.ActionMessage, error)
	RecordStatsByYear(ctx context.Context, kind model.RecordKind) (model.YearCounts, error)
	RecordStatsByTask(ctx context.Context, kind model.RecordKind) (model.TaskCounts, error)
	ImportRawRecords(ctx context.Context, records json.RawMessage) (*model.ImportResult, error)
	SampleRecords(ctx context.Context) (*model.ActionMessage, error)
}

// ExportAPI defines the backend operations on export files.
type ExportAPI interface {
	ListExports(ctx context.Context) ([]model.ExportFile, error)
	TriggerExport(ctx context.Context, kind model.RecordKind) (*model.ActionMessage, error)
	OpenExport(ctx context.Context, filename string) (*model.ExportDownload, error)
	DeleteExport(ctx context.Context, filename string) error
}

// PipelineAPI is the whole backend surface.
type PipelineAPI interface {
	AccountAPI
	TaskAPI
	ProxyAPI
	QuotaAPI
	RedisConfigAPI
	CrawlerParamAPI
	RecordAPI
	ExportAPI
}
