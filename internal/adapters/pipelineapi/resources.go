package pipelineapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/crawl-admin/internal/domain/model"
)

// Collection paths. Item paths append the id.
const (
	accountsPath      = "/api/accounts/"
	tasksPath         = "/api/tasks/"
	proxiesPath       = "/api/proxies/"
	quotasPath        = "/api/quotas/"
	redisConfigsPath  = "/api/redis-configs/"
	crawlerParamsPath = "/api/crawler-params/"
	exportsPath       = "/api/exports/"
)

// fetch decodes a JSON response of type T.
func fetch[T any](ctx context.Context, c *Client, rq request) (T, error) {
	var out T
	err := c.do(ctx, rq, &out)
	return out, err
}

// fetchList is fetch for list endpoints; a null body yields an empty slice.
func fetchList[T any](ctx context.Context, c *Client, rq request) ([]T, error) {
	out, err := fetch[[]T](ctx, c, rq)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func pageQuery(opts model.ListOptions) url.Values {
	q := url.Values{}
	opts.Apply(q)
	return q
}

// crud implements the five standard resource calls for one collection.
type crud[T, R any] struct {
	c          *Client
	collection string
}

func (r crud[T, R]) list(ctx context.Context, q url.Values) ([]T, error) {
	return fetchList[T](ctx, r.c, request{
		method: http.MethodGet, route: r.collection, path: r.collection, query: q,
	})
}

func (r crud[T, R]) get(ctx context.Context, id int64) (*T, error) {
	return fetch[*T](ctx, r.c, request{
		method: http.MethodGet, route: r.collection + "{id}", path: itemPath(r.collection, id),
	})
}

func (r crud[T, R]) create(ctx context.Context, body R) (*T, error) {
	return fetch[*T](ctx, r.c, request{
		method: http.MethodPost, route: r.collection, path: r.collection, body: body,
	})
}

func (r crud[T, R]) update(ctx context.Context, id int64, body R) (*T, error) {
	return fetch[*T](ctx, r.c, request{
		method: http.MethodPut, route: r.collection + "{id}", path: itemPath(r.collection, id), body: body,
	})
}

func (r crud[T, R]) delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, request{
		method: http.MethodDelete, route: r.collection + "{id}", path: itemPath(r.collection, id),
	}, nil)
}

func (c *Client) accounts() crud[model.Account, model.AccountRequest] {
	return crud[model.Account, model.AccountRequest]{c: c, collection: accountsPath}
}

// ListAccounts returns a page of accounts.
func (c *Client) ListAccounts(ctx context.Context, opts model.ListOptions) ([]model.Account, error) {
	return c.accounts().list(ctx, pageQuery(opts))
}

// GetAccount fetches one account.
func (c *Client) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return c.accounts().get(ctx, id)
}

// CreateAccount creates an account.
func (c *Client) CreateAccount(ctx context.Context, req model.AccountRequest) (*model.Account, error) {
	return c.accounts().create(ctx, req)
}

// UpdateAccount replaces an account.
func (c *Client) UpdateAccount(ctx context.Context, id int64, req model.AccountRequest) (*model.Account, error) {
	return c.accounts().update(ctx, id, req)
}

// DeleteAccount removes an account.
func (c *Client) DeleteAccount(ctx context.Context, id int64) error {
	return c.accounts().delete(ctx, id)
}

func (c *Client) tasks() crud[model.Task, model.TaskRequest] {
	return crud[model.Task, model.TaskRequest]{c: c, collection: tasksPath}
}

// ListTasks returns a page of tasks.
func (c *Client) ListTasks(ctx context.Context, opts model.ListOptions) ([]model.Task, error) {
	return c.tasks().list(ctx, pageQuery(opts))
}

// GetTask fetches one task.
func (c *Client) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	return c.tasks().get(ctx, id)
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, req model.TaskRequest) (*model.Task, error) {
	return c.tasks().create(ctx, req)
}

// UpdateTask replaces a task.
func (c *Client) UpdateTask(ctx context.Context, id int64, req model.TaskRequest) (*model.Task, error) {
	return c.tasks().update(ctx, id, req)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.tasks().delete(ctx, id)
}

// RunTaskAction issues a lifecycle command and returns the updated task.
func (c *Client) RunTaskAction(ctx context.Context, id int64, action model.TaskAction) (*model.Task, error) {
	return fetch[*model.Task](ctx, c, request{
		method: http.MethodPost,
		route:  tasksPath + "{id}/" + string(action),
		path:   itemPath(tasksPath, id) + "/" + string(action),
	})
}

func (c *Client) proxies() crud[model.Proxy, model.ProxyRequest] {
	return crud[model.Proxy, model.ProxyRequest]{c: c, collection: proxiesPath}
}

// ListProxies returns a page of proxies.
func (c *Client) ListProxies(ctx context.Context, opts model.ListOptions) ([]model.Proxy, error) {
	return c.proxies().list(ctx, pageQuery(opts))
}

// GetProxy fetches one proxy.
func (c *Client) GetProxy(ctx context.Context, id int64) (*model.Proxy, error) {
	return c.proxies().get(ctx, id)
}

// CreateProxy creates a proxy.
func (c *Client) CreateProxy(ctx context.Context, req model.ProxyRequest) (*model.Proxy, error) {
	return c.proxies().create(ctx, req)
}

// UpdateProxy replaces a proxy.
func (c *Client) UpdateProxy(ctx context.Context, id int64, req model.ProxyRequest) (*model.Proxy, error) {
	return c.proxies().update(ctx, id, req)
}

// DeleteProxy removes a proxy.
func (c *Client) DeleteProxy(ctx context.Context, id int64) error {
	return c.proxies().delete(ctx, id)
}

func (c *Client) quotas() crud[model.Quota, model.QuotaRequest] {
	return crud[model.Quota, model.QuotaRequest]{c: c, collection: quotasPath}
}

// ListQuotas returns every quota; the backend does not page them.
func (c *Client) ListQuotas(ctx context.Context) ([]model.Quota, error) {
	return c.quotas().list(ctx, nil)
}

// GetQuota fetches one quota.
func (c *Client) GetQuota(ctx context.Context, id int64) (*model.Quota, error) {
	return c.quotas().get(ctx, id)
}

// CreateQuota creates a quota.
func (c *Client) CreateQuota(ctx context.Context, req model.QuotaRequest) (*model.Quota, error) {
	return c.quotas().create(ctx, req)
}

// UpdateQuota replaces a quota.
func (c *Client) UpdateQuota(ctx context.Context, id int64, req model.QuotaRequest) (*model.Quota, error) {
	return c.quotas().update(ctx, id, req)
}

// DeleteQuota removes a quota.
func (c *Client) DeleteQuota(ctx context.Context, id int64) error {
	return c.quotas().delete(ctx, id)
}

// InitQuotas resets the quotas to the backend defaults.
func (c *Client) InitQuotas(ctx context.Context) ([]model.Quota, error) {
	return fetchList[model.Quota](ctx, c, request{
		method: http.MethodPost, route: quotasPath + "init", path: quotasPath + "init",
	})
}

func (c *Client) redisConfigs() crud[model.RedisConfig, model.RedisConfigRequest] {
	return crud[model.RedisConfig, model.RedisConfigRequest]{c: c, collection: redisConfigsPath}
}

// ListRedisConfigs returns every Redis config.
func (c *Client) ListRedisConfigs(ctx context.Context) ([]model.RedisConfig, error) {
	return c.redisConfigs().list(ctx, nil)
}

// DefaultRedisConfig returns the config flagged as default, or nil when none is.
func (c *Client) DefaultRedisConfig(ctx context.Context) (*model.RedisConfig, error) {
	return fetch[*model.RedisConfig](ctx, c, request{
		method: http.MethodGet, route: redisConfigsPath + "default", path: redisConfigsPath + "default",
	})
}

// CreateRedisConfig creates a Redis config.
func (c *Client) CreateRedisConfig(ctx context.Context, req model.RedisConfigRequest) (*model.RedisConfig, error) {
	return c.redisConfigs().create(ctx, req)
}

// UpdateRedisConfig replaces a Redis config.
func (c *Client) UpdateRedisConfig(
	ctx context.Context,
	id int64,
	req model.RedisConfigRequest,
) (*model.RedisConfig, error) {
	return c.redisConfigs().update(ctx, id, req)
}

// DeleteRedisConfig removes a Redis config.
func (c *Client) DeleteRedisConfig(ctx context.Context, id int64) error {
	return c.redisConfigs().delete(ctx, id)
}

// TestRedisConnection asks the backend to connect with the given settings.
func (c *Client) TestRedisConnection(ctx context.Context, req model.RedisTestRequest) (*model.RedisTestResult, error) {
	return fetch[*model.RedisTestResult](ctx, c, request{
		method: http.MethodPost, route: redisConfigsPath + "test", path: redisConfigsPath + "test", body: req,
	})
}

// ReloadRedis makes the backend re-read its default Redis config.
func (c *Client) ReloadRedis(ctx context.Context) (*model.ActionMessage, error) {
	return fetch[*model.ActionMessage](ctx, c, request{
		method: http.MethodPost, route: "/api/system/reload-redis", path: "/api/system/reload-redis",
	})
}

func (c *Client) crawlerParams() crud[model.CrawlerParam, model.CrawlerParamRequest] {
	return crud[model.CrawlerParam, model.CrawlerParamRequest]{c: c, collection: crawlerParamsPath}
}

// ListCrawlerParams returns a page of crawler params.
func (c *Client) ListCrawlerParams(ctx context.Context, opts model.ListOptions) ([]model.CrawlerParam, error) {
	return c.crawlerParams().list(ctx, pageQuery(opts))
}

// GetCrawlerParam fetches one crawler param set.
func (c *Client) GetCrawlerParam(ctx context.Context, id int64) (*model.CrawlerParam, error) {
	return c.crawlerParams().get(ctx, id)
}

// CreateCrawlerParam creates a crawler param set.
func (c *Client) CreateCrawlerParam(ctx context.Context, req model.CrawlerParamRequest) (*model.CrawlerParam, error) {
	return c.crawlerParams().create(ctx, req)
}

// UpdateCrawlerParam replaces a crawler param set.
func (c *Client) UpdateCrawlerParam(
	ctx context.Context,
	id int64,
	req model.CrawlerParamRequest,
) (*model.CrawlerParam, error) {
	return c.crawlerParams().update(ctx, id, req)
}

// DeleteCrawlerParam removes a crawler param set.
func (c *Client) DeleteCrawlerParam(ctx context.Context, id int64) error {
	return c.crawlerParams().delete(ctx, id)
}
