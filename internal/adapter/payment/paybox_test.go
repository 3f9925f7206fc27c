package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ramp-gateway/config"
	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayboxServer(t *testing.T, mode string, handler http.HandlerFunc) *Paybox {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewPaybox(config.PayboxConfig{
		APIURL:        srv.URL,
		CollectionKey: "collect-key",
		TransferKey:   "transfer-key",
		Mode:          mode,
	}, srv.Client())
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestPaybox_ChargeCard(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		wantMode string
	}{
		{"test account", "Test", "Test"},
		{"live account", "Live", "Card"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPayboxServer(t, tt.mode, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/pay", r.URL.Path)
				assert.Equal(t, "Bearer collect-key", r.Header.Get("Authorization"))

				body := decodeBody(t, r)
				assert.Equal(t, tt.wantMode, body["mode"])
				assert.Equal(t, "tx-1", body["order_id"])
				assert.Equal(t, "4111111111111111", body["card_number"])
				assert.Equal(t, "20", body["amount"])

				_, _ = w.Write([]byte(`{"status":"Pending","token":"pbx-1","url":"https://paybox.com.co/checkout/pbx-1"}`))
			})

			link, err := p.ChargeCard(context.Background(), ports.CardCharge{
				OrderID:  "tx-1",
				Currency: "GHS",
				Amount:   decimal.NewFromInt(20),
				Card:     ports.CardDetails{FirstName: "Ama", Number: "4111111111111111", Expiry: "12/29", CVC: "123"},
			})
			require.NoError(t, err)
			assert.Equal(t, domain.PaymentProviderPaybox, link.Provider)
			assert.Equal(t, "https://paybox.com.co/checkout/pbx-1", link.Link)
			assert.Equal(t, "pbx-1", link.Reference)
		})
	}
}

func TestPaybox_ChargeCard_NoURL(t *testing.T) {
	p := newPayboxServer(t, "Test", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"Failed","message":"card declined"}`))
	})

	_, err := p.ChargeCard(context.Background(), ports.CardCharge{OrderID: "tx", Amount: decimal.NewFromInt(1)})
	assert.ErrorContains(t, err, "no url")
}

func TestPaybox_Transfer(t *testing.T) {
	t.Run("mobile money", func(t *testing.T) {
		p := newPayboxServer(t, "Live", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transfer", r.URL.Path)
			assert.Equal(t, "Bearer transfer-key", r.Header.Get("Authorization"))

			body := decodeBody(t, r)
			assert.Equal(t, "MobileMoney", body["mode"])
			assert.Equal(t, "MTN", body["mobile_network"])
			assert.Equal(t, "0241234567", body["mobile_number"])
			assert.NotContains(t, body, "bank_code")

			_, _ = w.Write([]byte(`{"status":"Success","token":"trf-1"}`))
		})

		receipt, err := p.Transfer(context.Background(), ports.TransferRequest{
			OrderID:       "tx-1",
			Currency:      "GHS",
			Amount:        decimal.NewFromInt(300),
			MobileNetwork: "MTN",
			MobileNumber:  "0241234567",
		})
		require.NoError(t, err)
		assert.Equal(t, "trf-1", receipt.Reference)
	})

	t.Run("bank", func(t *testing.T) {
		p := newPayboxServer(t, "Live", func(w http.ResponseWriter, r *http.Request) {
			body := decodeBody(t, r)
			assert.Equal(t, "Cash", body["mode"])
			assert.Equal(t, "GCB", body["bank_code"])
			_, _ = w.Write([]byte(`{"status":"Success"}`))
		})

		receipt, err := p.Transfer(context.Background(), ports.TransferRequest{
			OrderID:     "tx-2",
			Amount:      decimal.NewFromInt(300),
			BankCode:    "GCB",
			BankAccount: "1234567890",
		})
		require.NoError(t, err)
		assert.Equal(t, "tx-2", receipt.Reference, "order id is the fallback reference")
	})
}

func TestPaybox_ListBanks(t *testing.T) {
	p := newPayboxServer(t, "Test", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/settlement_accounts", r.URL.Path)
		assert.Equal(t, "Bearer transfer-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[
			{"name":"GCB Bank","short_name":"GCB","code":"300304"},
			{"name":"MTN Mobile Money","short_name":"MTN","code":"MTN"},
			{"name":"AirtelTigo Money","short_name":"AirtelTigo","code":"ATL"},
			{"name":"Vodafone Cash","short_name":"VODAFONE","code":"VOD"},
			{"name":"Ecobank","short_name":"ECO","code":"300312"}
		]`))
	})

	banks, err := p.ListBanks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ports.Bank{
		{Name: "GCB Bank", ShortName: "GCB", Code: "300304"},
		{Name: "Ecobank", ShortName: "ECO", Code: "300312"},
	}, banks)
}

func TestPaybox_ListBanks_Error(t *testing.T) {
	p := newPayboxServer(t, "Test", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := p.ListBanks(context.Background())
	assert.ErrorContains(t, err, "paybox responded 401")
}
