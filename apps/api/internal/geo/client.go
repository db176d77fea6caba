package geo

import (
	"BridgerServer/config"
	"BridgerServer/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"
)

// Location IP 定位结果
type Location struct {
	City   string // 城市
	Postal string // 邮编
}

// lookupResponse ip-api.com 的响应体（只取需要的字段）
type lookupResponse struct {
	Status string `json:"status"` // success / fail
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// Client IP 地理位置查询客户端
// 外部依赖用熔断器包住：连续失败后一段时间内直接短路，
// 注册流程对定位结果只是尽力而为，短路返回错误由调用方忽略。
type Client struct {
	cfg     config.GeoConfig
	httpCli *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient 创建定位客户端
func NewClient(cfg config.GeoConfig) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "geo-lookup",
		Timeout: cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
	})

	return &Client{
		cfg:     cfg,
		httpCli: &http.Client{Timeout: cfg.Timeout},
		breaker: breaker,
	}
}

// Lookup 根据客户端 IP 查询城市/邮编
// 本机回环地址传空串，让服务端按出口 IP 自动识别
func (c *Client) Lookup(ctx context.Context, ip string) (*Location, error) {
	if ip == "127.0.0.1" || ip == "::1" {
		ip = ""
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doLookup(ctx, ip)
	})
	if err != nil {
		// 熔断打开或查询失败都只记 Warn，调用方降级
		logger.Warn(ctx, "IP 定位查询失败",
			logger.String("ip", ip),
			logger.ErrorField("error", err),
		)
		return nil, err
	}

	return result.(*Location), nil
}

func (c *Client) doLookup(ctx context.Context, ip string) (*Location, error) {
	url := fmt.Sprintf("%s/%s", c.cfg.BaseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo lookup: unexpected status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	// 保留地址段/内网 IP 会返回 fail
	if body.Status != "success" {
		return nil, fmt.Errorf("geo lookup: status %q", body.Status)
	}

	return &Location{City: body.City, Postal: body.Zip}, nil
}
