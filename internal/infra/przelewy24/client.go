package przelewy24

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/pkg/config"
	"smakownia-backend/internal/pkg/errs"
)

// Client talks to the Przelewy24 REST API. Every call authenticates with
// Basic auth derived from posId:apiKey and starts by checking that the
// merchant credentials are configured at all; with partial configuration no
// network I/O is attempted.
type Client struct {
	cfg        config.GatewayConfig
	httpClient *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) checkCredentials() error {
	if !c.cfg.HasCredentials() {
		return errs.ErrGatewayConfigMissing
	}
	return nil
}

// Register registers a transaction and returns the token-bearing redirect
// handle. On any transport or gateway-reported error the raw response body is
// attached for diagnostics; a token is never guessed.
func (c *Client) Register(ctx context.Context, p RegisterParams) (*RegisterResult, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	req := registerRequest{
		MerchantID:  c.cfg.MerchantID,
		PosID:       c.cfg.PosID,
		SessionID:   p.SessionID,
		Amount:      p.Amount,
		Currency:    c.cfg.Currency,
		Description: p.Description,
		Email:       p.Email,
		Client:      p.ClientName,
		Phone:       p.Phone,
		Country:     p.Country,
		Language:    p.Language,
		URLReturn:   fmt.Sprintf("%s?sessionId=%s", c.cfg.ReturnURL, p.SessionID),
		URLStatus:   c.cfg.StatusURL,
		TimeLimit:   c.cfg.TimeLimitMin,
		Sign:        RegistrationSign(p.SessionID, c.cfg.MerchantID, p.Amount, c.cfg.Currency, c.cfg.CRC),
	}
	if req.Country == "" {
		req.Country = "PL"
	}
	if req.Language == "" {
		req.Language = "pl"
	}

	var resp registerResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/transaction/register", req, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Token == "" {
		return nil, errs.New("gateway returned no token")
	}

	return &RegisterResult{
		SessionID:  p.SessionID,
		Token:      resp.Data.Token,
		PaymentURL: c.cfg.BaseURL + "/trnRequest/" + resp.Data.Token,
	}, nil
}

// GetBySessionID looks the transaction up through the gateway's read model.
// A missing record comes back as ErrTransactionNotFound.
func (c *Client) GetBySessionID(ctx context.Context, sessionID string) (*payment.TransactionInfo, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	var resp transactionResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/transaction/by/sessionId/"+sessionID, nil, &resp)
	if err != nil {
		var regErr *RegistrationError
		if errors.As(err, &regErr) && regErr.StatusCode == http.StatusNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	return &payment.TransactionInfo{
		SessionID:   resp.Data.SessionID,
		OrderID:     resp.Data.OrderID,
		StatusCode:  resp.Data.Status,
		Amount:      resp.Data.Amount,
		Currency:    resp.Data.Currency,
		ClientName:  resp.Data.ClientName,
		ClientEmail: resp.Data.ClientEmail,
		ClientPhone: resp.Data.ClientPhone,
	}, nil
}

// Verify performs the authoritative confirmation call. The gateway's status
// read model and its verify endpoint become consistent at different times;
// once an orderId exists, verify is the one to trust.
func (c *Client) Verify(ctx context.Context, sessionID string, orderID, amount int64) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}

	req := verifyRequest{
		MerchantID: c.cfg.MerchantID,
		PosID:      c.cfg.PosID,
		SessionID:  sessionID,
		Amount:     amount,
		Currency:   c.cfg.Currency,
		OrderID:    orderID,
		Sign:       VerifySign(sessionID, orderID, amount, c.cfg.Currency, c.cfg.CRC),
	}

	var resp verifyResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/transaction/verify", req, &resp); err != nil {
		return err
	}
	if resp.Data.Status != "success" {
		return errs.Newf("gateway verify returned status %q", resp.Data.Status)
	}
	return nil
}

// VerifyNotificationSign recomputes the expected signature over the full
// notification payload plus the shared secret and compares in constant time.
func (c *Client) VerifyNotificationSign(n payment.Notification) bool {
	expected := signPayload(notificationSignPayload{
		MerchantID:   n.MerchantID,
		PosID:        n.PosID,
		SessionID:    n.SessionID,
		Amount:       n.Amount,
		OriginAmount: n.OriginAmount,
		Currency:     n.Currency,
		OrderID:      n.OrderID,
		MethodID:     n.MethodID,
		Statement:    n.Statement,
		CRC:          c.cfg.CRC,
	})
	return subtle.ConstantTimeCompare([]byte(expected), []byte(n.Sign)) == 1
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode gateway request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.SetBasicAuth(fmt.Sprintf("%d", c.cfg.PosID), c.cfg.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "gateway request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "failed to read gateway response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RegistrationError{StatusCode: resp.StatusCode, RawBody: raw}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errs.Wrap(err, "failed to decode gateway response")
		}
	}
	return nil
}
