package toss

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrConfigInvalid   = errors.New("toss config invalid")
	ErrRequestFailed   = errors.New("toss request failed")
	ErrResponseInvalid = errors.New("toss response invalid")
	ErrPaymentRejected = errors.New("toss payment rejected")
)

const defaultTimeout = 15 * time.Second

// Config 支付网关配置
type Config struct {
	BaseURL   string // 网关地址，如 https://api.tosspayments.com
	SecretKey string // 商户密钥
	TimeoutMS int    // 请求超时（毫秒）
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.SecretKey = strings.TrimSpace(c.SecretKey)
}

// Client 支付网关客户端
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient 创建支付网关客户端
func NewClient(cfg Config) (*Client, error) {
	cfg.normalize()
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base_url is required", ErrConfigInvalid)
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: secret_key is required", ErrConfigInvalid)
	}
	timeout := defaultTimeout
	if cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// ConfirmResult 支付确认结果
type ConfirmResult struct {
	PaymentKey string                 // 网关支付键
	OrderNo    string                 // 商户订单编号
	Status     string                 // 网关支付状态
	ApprovedAt string                 // 批准时间
	Raw        map[string]interface{} // 原始响应
}

// Confirm 确认支付（金额以整数韩元传递）
func (c *Client) Confirm(ctx context.Context, paymentKey, orderNo string, amount decimal.Decimal) (*ConfirmResult, error) {
	if c == nil {
		return nil, ErrConfigInvalid
	}
	if strings.TrimSpace(paymentKey) == "" || strings.TrimSpace(orderNo) == "" {
		return nil, fmt.Errorf("%w: payment_key and order_no are required", ErrConfigInvalid)
	}

	params := map[string]interface{}{
		"paymentKey": paymentKey,
		"orderId":    orderNo,
		"amount":     amount.Round(0).IntPart(),
	}
	respBytes, statusCode, err := c.postJSON(ctx, "/v1/payments/confirm", params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var resp struct {
		PaymentKey string `json:"paymentKey"`
		OrderID    string `json:"orderId"`
		Status     string `json:"status"`
		ApprovedAt string `json:"approvedAt"`
		Code       string `json:"code"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrPaymentRejected, resp.Message, resp.Code)
	}
	if !strings.EqualFold(resp.Status, "DONE") {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrPaymentRejected, resp.Status)
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(respBytes, &raw)

	return &ConfirmResult{
		PaymentKey: resp.PaymentKey,
		OrderNo:    resp.OrderID,
		Status:     resp.Status,
		ApprovedAt: resp.ApprovedAt,
		Raw:        raw,
	}, nil
}

// Cancel 取消支付
func (c *Client) Cancel(ctx context.Context, paymentKey, reason string) error {
	if c == nil {
		return ErrConfigInvalid
	}
	if strings.TrimSpace(paymentKey) == "" {
		return fmt.Errorf("%w: payment_key is required", ErrConfigInvalid)
	}
	params := map[string]interface{}{
		"cancelReason": reason,
	}
	endpoint := fmt.Sprintf("/v1/payments/%s/cancel", paymentKey)
	respBytes, statusCode, err := c.postJSON(ctx, endpoint, params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if statusCode < 200 || statusCode >= 300 {
		var resp struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(respBytes, &resp)
		return fmt.Errorf("%w: %s (%s)", ErrPaymentRejected, resp.Message, resp.Code)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, params map[string]interface{}) ([]byte, int, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, strings.NewReader(string(body)))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", basicAuth(c.cfg.SecretKey))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return respBytes, resp.StatusCode, nil
}

// basicAuth 生成 Basic 认证头（密钥后跟冒号，无密码）
func basicAuth(secretKey string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(secretKey + ":"))
	return "Basic " + encoded
}
