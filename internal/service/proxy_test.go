package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/mocks"
)

func TestProxyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockProxyAPI(ctrl)
	svc := NewProxyService(ProxyServiceOptions{API: api})

	_, err := svc.Create(context.Background(), model.ProxyRequest{ProxyType: "http", ProxyAddr: "10.0.0.1:0"})
	assert.True(t, apperrors.IsValidation(err))

	api.EXPECT().
		CreateProxy(gomock.Any(), model.ProxyRequest{
			ProxyType: model.ProxyTypeSOCKS5,
			ProxyAddr: "10.0.0.1:1080",
			Status:    model.ToggleOn,
			Strategy:  model.ProxyStrategyRoundRobin,
		}).
		Return(&model.Proxy{ID: 4}, nil)

	p, err := svc.Create(context.Background(), model.ProxyRequest{
		ProxyType: " socks5 ", ProxyAddr: "10.0.0.1:1080", Status: model.ToggleOn,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
}

func TestCrawlerParamService_Create_FillsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockCrawlerParamAPI(ctrl)
	svc := NewCrawlerParamService(CrawlerParamServiceOptions{API: api})

	api.EXPECT().
		CreateCrawlerParam(gomock.Any(), model.CrawlerParamRequest{
			URL:                "https://www.zhihu.com/search",
			APIRequest:         "/api/v4/search_v3",
			IntervalTime:       model.DefaultIntervalTime,
			ErrorCount:         model.DefaultErrorCount,
			RestartBrowserTime: model.DefaultRestartBrowserTime,
			EndTime:            23,
		}).
		Return(&model.CrawlerParam{ID: 1}, nil)

	_, err := svc.Create(context.Background(), model.CrawlerParamRequest{
		URL: " https://www.zhihu.com/search ", APIRequest: "/api/v4/search_v3", EndTime: 23,
	})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), model.CrawlerParamRequest{URL: "ftp://x", APIRequest: "a"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestQuotaService_List_SortedByStartYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockQuotaAPI(ctrl)
	svc := NewQuotaService(QuotaServiceOptions{API: api})

	api.EXPECT().ListQuotas(gomock.Any()).Return([]model.Quota{
		{ID: 2, StartYear: 2022}, {ID: 1, StartYear: 2018}, {ID: 3, StartYear: 2020},
	}, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	ids := make([]int64, 0, len(got))
	for _, q := range got {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []int64{1, 3, 2}, ids)
}
