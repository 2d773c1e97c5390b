// Package mocks provides mock implementations of the core ports for testing crawl-admin services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the backend and cache interfaces.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockTaskAPI(ctrl)
//	api.EXPECT().ListTasks(gomock.Any(), gomock.Any()).Return(tasks, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_api_mock.go github.com/target/crawl-admin/internal/core AccountAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=task_api_mock.go github.com/target/crawl-admin/internal/core TaskAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=proxy_api_mock.go github.com/target/crawl-admin/internal/core ProxyAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=quota_api_mock.go github.com/target/crawl-admin/internal/core QuotaAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=redis_config_api_mock.go github.com/target/crawl-admin/internal/core RedisConfigAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=crawler_param_api_mock.go github.com/target/crawl-admin/internal/core CrawlerParamAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=record_api_mock.go github.com/target/crawl-admin/internal/core RecordAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=export_api_mock.go github.com/target/crawl-admin/internal/core ExportAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/target/crawl-admin/internal/core CacheRepository
