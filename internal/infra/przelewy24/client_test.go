//go:build unit

package przelewy24

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/pkg/config"
	"smakownia-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.NewTestConfig().Gateway
	cfg.BaseURL = server.URL
	return NewClient(cfg), server
}

func TestRegister(t *testing.T) {
	t.Run("registers and builds the redirect URL", func(t *testing.T) {
		var captured registerRequest
		client, server := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/transaction/register", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "64195", user)
			assert.Equal(t, "test-api-key", pass)

			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]string{"token": "TKN-123"},
			})
		}))

		result, err := client.Register(context.Background(), RegisterParams{
			SessionID:   "masterclass_1_1000",
			Amount:      25000,
			Description: "Smakownia - warsztaty",
			Email:       "anna@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, "masterclass_1_1000", result.SessionID)
		assert.Equal(t, "TKN-123", result.Token)
		assert.Equal(t, server.URL+"/trnRequest/TKN-123", result.PaymentURL)

		assert.Equal(t, 64195, captured.MerchantID)
		assert.Equal(t, int64(25000), captured.Amount)
		assert.Equal(t, "PLN", captured.Currency)
		assert.Equal(t, "PL", captured.Country)
		assert.Equal(t, "pl", captured.Language)
		assert.Contains(t, captured.URLReturn, "?sessionId=masterclass_1_1000")
		assert.Equal(t, RegistrationSign("masterclass_1_1000", 64195, 25000, "PLN", "d27c3f1b0e14a8c2"), captured.Sign)
	})

	t.Run("missing token is an error", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{}})
		}))

		_, err := client.Register(context.Background(), RegisterParams{SessionID: "s", Amount: 100})
		assert.Error(t, err)
	})

	t.Run("gateway error carries status and body", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid sign"}`))
		}))

		_, err := client.Register(context.Background(), RegisterParams{SessionID: "s", Amount: 100})
		var regErr *RegistrationError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, http.StatusBadRequest, regErr.StatusCode)
		assert.Contains(t, string(regErr.RawBody), "invalid sign")
	})

	t.Run("refuses to call out without credentials", func(t *testing.T) {
		called := false
		client, _ := testClient(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			called = true
		}))
		client.cfg.APIKey = ""

		_, err := client.Register(context.Background(), RegisterParams{SessionID: "s", Amount: 100})
		assert.ErrorIs(t, err, errs.ErrGatewayConfigMissing)
		assert.False(t, called)
	})
}

func TestGetBySessionID(t *testing.T) {
	t.Run("maps the transaction record", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/transaction/by/sessionId/masterclass_1_1000", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"sessionId":   "masterclass_1_1000",
					"orderId":     987654,
					"status":      5,
					"amount":      25000,
					"currency":    "PLN",
					"clientName":  "Anna Kowalska",
					"clientEmail": "anna@example.com",
				},
			})
		}))

		info, err := client.GetBySessionID(context.Background(), "masterclass_1_1000")
		require.NoError(t, err)
		assert.Equal(t, int64(987654), info.OrderID)
		assert.Equal(t, 5, info.StatusCode)
		assert.Equal(t, "Anna Kowalska", info.ClientName)
	})

	t.Run("404 is ErrTransactionNotFound", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.GetBySessionID(context.Background(), "unknown")
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestVerify(t *testing.T) {
	t.Run("succeeds on success status", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/v1/transaction/verify", r.URL.Path)

			var req verifyRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, VerifySign("s", 987654, 25000, "PLN", "d27c3f1b0e14a8c2"), req.Sign)

			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"status": "success"}})
		}))

		assert.NoError(t, client.Verify(context.Background(), "s", 987654, 25000))
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"status": "rejected"}})
		}))

		assert.Error(t, client.Verify(context.Background(), "s", 987654, 25000))
	})
}

func TestVerifyNotificationSign(t *testing.T) {
	cfg := config.NewTestConfig().Gateway
	client := NewClient(cfg)

	notification := payment.Notification{
		MerchantID: cfg.MerchantID,
		PosID:      cfg.PosID,
		SessionID:  "masterclass_1_1000",
		Amount:     25000,
		Currency:   "PLN",
		OrderID:    987654,
	}
	notification.Sign = signPayload(notificationSignPayload{
		MerchantID: notification.MerchantID,
		PosID:      notification.PosID,
		SessionID:  notification.SessionID,
		Amount:     notification.Amount,
		Currency:   notification.Currency,
		OrderID:    notification.OrderID,
		CRC:        cfg.CRC,
	})

	assert.True(t, client.VerifyNotificationSign(notification))

	t.Run("tampered amount fails", func(t *testing.T) {
		tampered := notification
		tampered.Amount = 1
		assert.False(t, client.VerifyNotificationSign(tampered))
	})

	t.Run("empty sign fails", func(t *testing.T) {
		unsigned := notification
		unsigned.Sign = ""
		assert.False(t, client.VerifyNotificationSign(unsigned))
	})
}
