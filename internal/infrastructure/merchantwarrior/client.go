package merchantwarrior

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Zhima-Mochi/minishop-checkout/internal/config"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/payment"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability/logctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	peerName     = "merchantwarrior"
	endpointName = "paylink"

	envPublicBaseURL = "PUBLIC_BASE_URL"
	maxBodyBytes     = 1 << 20
)

var _ payment.Linker = (*Client)(nil)

// Client issues PayLink requests against Merchant Warrior.
type Client struct {
	merchant config.Merchant
	baseURL  string
	endpoint string

	httpClient *http.Client
	now        func() time.Time

	log      observability.Logger
	tracer   observability.Tracer
	requests observability.Counter
	duration observability.BoundHistogram
}

// NewClient wires a Client from cfg. A nil httpClient gets one with cfg.GatewayTimeout.
func NewClient(cfg config.Config, httpClient *http.Client, tel observability.Observability) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.GatewayTimeout}
	}
	if tel == nil {
		tel = observability.Nop()
	}
	endpoint := cfg.PayLinkURL
	if endpoint == "" {
		endpoint = config.DefaultPayLinkURL
	}
	return &Client{
		merchant:   cfg.Merchant,
		baseURL:    strings.TrimRight(cfg.PublicBaseURL, "/"),
		endpoint:   endpoint,
		httpClient: httpClient,
		now:        time.Now,
		log:        tel.Logger().With(observability.F("component", "merchantwarrior")),
		tracer:     tel.Tracer(),
		requests:   tel.Metrics().Counter(observability.MExternalRequests),
		duration:   tel.Metrics().Histogram(observability.MExternalRequestDuration).Bind(
			observability.L("peer", peerName),
			observability.L("endpoint", endpointName),
		),
	}
}

// Configured returns a *payment.ConfigError naming every missing setting.
func (c *Client) Configured() error {
	missing := c.merchant.Missing()
	if c.baseURL == "" {
		missing = append(missing, envPublicBaseURL)
	}
	if len(missing) > 0 {
		return &payment.ConfigError{Missing: missing}
	}
	return nil
}

// CreateLink posts the signed PayLink form and returns the issued link.
func (c *Client) CreateLink(ctx context.Context, req payment.LinkRequest) (rec *order.PaymentRecord, err error) {
	if err := c.Configured(); err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "MerchantWarrior.CreateLink",
		attribute.String("peer.service", peerName),
		attribute.String("order.id", req.Reference),
		attribute.String("payment.currency", req.Total.Currency),
	)
	start := time.Now()
	log := logctx.FromOr(ctx, c.log)

	defer func() {
		outcome := observability.OutcomeSuccess
		if err != nil {
			outcome = observability.OutcomeError
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		c.requests.Add(1,
			observability.L("peer", peerName),
			observability.L("endpoint", endpointName),
			observability.L("outcome", outcome),
		)
		c.duration.Observe(time.Since(start).Seconds())
		span.End()
	}()

	form := buildForm(c.merchant, c.baseURL, req, c.now())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", payment.ErrNetwork, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn("paylink_request_failed",
			observability.F("order_id", req.Reference),
			observability.Err(err),
		)
		return nil, fmt.Errorf("%w: %v", payment.ErrNetwork, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	parsed, parseErr := parseResponse(io.LimitReader(resp.Body, maxBodyBytes))
	if parseErr != nil {
		log.Debug("paylink_response_parse_error",
			observability.F("order_id", req.Reference),
			observability.Err(parseErr),
		)
	}

	if !parsed.has(tagResponseCode) {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: unexpected status %d", payment.ErrNetwork, resp.StatusCode)
		}
		return nil, &payment.RejectionError{}
	}
	if !parsed.approved() {
		log.Info("paylink_rejected",
			observability.F("order_id", req.Reference),
			observability.F("response_code", parsed.ResponseCode),
			observability.F("response_message", parsed.ResponseMessage),
		)
		return nil, &payment.RejectionError{Code: parsed.ResponseCode, Message: parsed.ResponseMessage}
	}

	log.Info("paylink_created",
		observability.F("order_id", req.Reference),
		observability.F("unique_code", parsed.UniqueCode),
	)
	return &order.PaymentRecord{
		ResponseCode:    parsed.ResponseCode,
		ResponseMessage: parsed.ResponseMessage,
		UniqueCode:      parsed.UniqueCode,
		PaymentLink:     parsed.PaymentLink,
		LinkReferenceID: req.Reference,
	}, nil
}
