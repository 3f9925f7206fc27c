package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ramp-gateway/internal/adapter/notify"
	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/internal/core/ports/mocks"
	"ramp-gateway/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerDeps struct {
	router     *gin.Engine
	orderSvc   *mocks.MockOrderService
	reconciler *mocks.MockWebhookReconciler
	userSvc    *mocks.MockUserService
	marketSvc  *mocks.MockMarketService
	tokenSvc   *mocks.MockTokenService
	hub        *notify.Hub
}

func setupRouter(t *testing.T, withAuth bool) *handlerDeps {
	ctrl := gomock.NewController(t)
	d := &handlerDeps{
		orderSvc:   mocks.NewMockOrderService(ctrl),
		reconciler: mocks.NewMockWebhookReconciler(ctrl),
		userSvc:    mocks.NewMockUserService(ctrl),
		marketSvc:  mocks.NewMockMarketService(ctrl),
		hub:        notify.NewHub(zerolog.Nop()),
	}
	deps := RouterDeps{
		OrderSvc:   d.orderSvc,
		Reconciler: d.reconciler,
		UserSvc:    d.userSvc,
		MarketSvc:  d.marketSvc,
		Hub:        d.hub,
		Mode:       gin.TestMode,
		Logger:     zerolog.Nop(),
	}
	if withAuth {
		d.tokenSvc = mocks.NewMockTokenService(ctrl)
		deps.TokenSvc = d.tokenSvc
	}
	d.router = SetupRouter(deps)
	return d
}

func (d *handlerDeps) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleTxn(userID uuid.UUID, status domain.TransactionStatus) *domain.Transaction {
	return &domain.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        domain.TransactionKindOfframp,
		Status:      status,
		Token:       domain.TokenUSDC,
		Fiat:        "GHS",
		FiatAmount:  decimal.RequireFromString("1205.25"),
		TokenAmount: decimal.NewFromInt(100),
	}
}

// --- Order Handler Tests ---

func TestCreateOrder_Success(t *testing.T) {
	d := setupRouter(t, false)
	userID := uuid.New()
	txn := sampleTxn(userID, domain.TransactionStatusInitiated)

	d.orderSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.CreateOrderRequest) (*ports.CreateOrderResult, error) {
			assert.Equal(t, userID, req.UserID)
			assert.Equal(t, domain.TransactionKindOfframp, req.Kind)
			assert.Equal(t, domain.TokenUSDC, req.Token)
			assert.True(t, req.FiatAmount.Equal(decimal.RequireFromString("1205.25")))
			assert.True(t, req.TokenAmount.Equal(decimal.NewFromInt(100)))
			assert.True(t, req.FiatRate.Equal(decimal.RequireFromString("12.0525")))
			assert.Equal(t, domain.PayoutMethodMobileMoney, req.PayoutInfo.Method)
			require.NotNil(t, req.PayoutInfo.MobileMoney)
			assert.Equal(t, "0241234567", req.PayoutInfo.MobileMoney.Number)
			return &ports.CreateOrderResult{Transaction: txn, SerializedTransaction: "AQID"}, nil
		})

	w := d.do(http.MethodPost, "/order/create", `{
		"user_id": "`+userID.String()+`",
		"fiat_amount": "1205.25",
		"token_amount": 100,
		"token": "USDC",
		"fiat": "GHS",
		"country": "GH",
		"kind": "OFFRAMP",
		"payout_info": {"method": "MOBILE_MONEY", "mobile_money": {"name": "Kofi B", "number": "0241234567", "network": "MTN"}},
		"fiat_rate": "12.0525",
		"token_rate": "1"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "AQID", data["serialized_transaction"])
	assert.Equal(t, txn.ID.String(), data["transaction"].(map[string]interface{})["id"])
}

func TestCreateOrder_ValidationError(t *testing.T) {
	d := setupRouter(t, false)
	// no service call expected

	w := d.do(http.MethodPost, "/order/create", `{"kind":"SIDEWAYS"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, decode(t, w)["error_code"])

	w = d.do(http.MethodPost, "/order/create", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_ServiceError(t *testing.T) {
	d := setupRouter(t, false)
	d.orderSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrWalletNotLinked())

	w := d.do(http.MethodPost, "/order/create", map[string]interface{}{
		"user_id": uuid.NewString(), "token": "USDC", "fiat": "GHS", "country": "GH", "kind": "ONRAMP",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, apperror.CodeWalletNotLinked, resp["error_code"])
	assert.NotEmpty(t, resp["request_id"])
}

func TestOrderRoutes_RequireMatchingToken(t *testing.T) {
	d := setupRouter(t, true)
	caller := uuid.New()
	d.tokenSvc.EXPECT().Validate("tok").Return(&ports.TokenClaims{UserID: caller}, nil).AnyTimes()

	// no token
	w := d.do(http.MethodPost, "/order/credit", map[string]string{"user_id": caller.String(), "tx_id": uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// token for someone else
	w = d.do(http.MethodPost, "/order/credit",
		map[string]string{"user_id": uuid.NewString(), "tx_id": uuid.NewString()},
		"Authorization", "Bearer tok")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// own request
	txID := uuid.New()
	d.orderSvc.EXPECT().Credit(gomock.Any(), caller, txID).
		Return(&ports.CreditResult{Transaction: sampleTxn(caller, domain.TransactionStatusSettling), PayoutReference: "po-1"}, nil)
	w = d.do(http.MethodPost, "/order/credit",
		map[string]string{"user_id": caller.String(), "tx_id": txID.String()},
		"Authorization", "Bearer tok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "po-1", decode(t, w)["data"].(map[string]interface{})["payout_reference"])
}

func TestDebit_WithCard(t *testing.T) {
	d := setupRouter(t, false)
	userID, txID := uuid.New(), uuid.New()

	d.orderSvc.EXPECT().Debit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.DebitRequest) (*ports.DebitResult, error) {
			assert.Equal(t, userID, req.UserID)
			assert.Equal(t, txID, req.TxID)
			assert.Equal(t, "5sig", req.BlockchainTxID)
			require.NotNil(t, req.Card)
			assert.Equal(t, "4111111111111111", req.Card.Number)
			assert.Equal(t, "Ama", req.Card.FirstName)
			return &ports.DebitResult{
				Transaction: sampleTxn(userID, domain.TransactionStatusDebiting),
				PaymentLink: "https://pay/1",
			}, nil
		})

	w := d.do(http.MethodPost, "/order/debit", map[string]interface{}{
		"user_id":          userID.String(),
		"tx_id":            txID.String(),
		"blockchain_tx_id": "5sig",
		"card": map[string]string{
			"first_name": "Ama", "last_name": "Mensah", "number": "4111111111111111", "expiry": "12/29", "cvc": "123",
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://pay/1", decode(t, w)["data"].(map[string]interface{})["payment_link"])
}

func TestDebit_BadTxID(t *testing.T) {
	d := setupRouter(t, false)
	w := d.do(http.MethodPost, "/order/debit", map[string]string{"user_id": uuid.NewString(), "tx_id": "42"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCredit_ConcurrentModification(t *testing.T) {
	d := setupRouter(t, false)
	d.orderSvc.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperror.ErrConcurrentModification())

	w := d.do(http.MethodPost, "/order/credit", map[string]string{"user_id": uuid.NewString(), "tx_id": uuid.NewString()})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.CodeConcurrentModification, decode(t, w)["error_code"])
}

func TestComplete(t *testing.T) {
	d := setupRouter(t, false)
	d.orderSvc.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.LedgerTxResult{SerializedTransaction: "Y29tcGxldGU="}, nil)

	w := d.do(http.MethodPost, "/order/complete", map[string]string{"user_id": uuid.NewString(), "tx_id": uuid.NewString()})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Y29tcGxldGU=", decode(t, w)["data"].(map[string]interface{})["serialized_transaction"])
}

func TestOverrideStatus(t *testing.T) {
	d := setupRouter(t, false)
	userID, txID := uuid.New(), uuid.New()

	d.orderSvc.EXPECT().UpdateStatus(gomock.Any(), txID, userID, "settled").
		Return(sampleTxn(userID, domain.TransactionStatusSettled), nil)
	w := d.do(http.MethodPatch, "/order/"+txID.String()+"/"+userID.String()+"/settled", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	d.orderSvc.EXPECT().UpdateStatus(gomock.Any(), txID, userID, "REFUNDED").Return(nil, apperror.ErrInvalidStatus())
	w = d.do(http.MethodPatch, "/order/"+txID.String()+"/"+userID.String()+"/REFUNDED", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidStatus, decode(t, w)["error_code"])

	w = d.do(http.MethodPatch, "/order/not-a-uuid/"+userID.String()+"/SETTLED", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFail_SanitizesReason(t *testing.T) {
	d := setupRouter(t, false)
	userID, txID := uuid.New(), uuid.New()

	d.orderSvc.EXPECT().Fail(gomock.Any(), txID, userID, "user &lt;b&gt;cancelled&lt;/b&gt;").
		Return(sampleTxn(userID, domain.TransactionStatusFailed), nil)

	w := d.do(http.MethodPost, "/order/"+txID.String()+"/fail",
		map[string]string{"user_id": userID.String(), "reason": "  user <b>cancelled</b> "})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutes_RejectOwnerToken(t *testing.T) {
	d := setupRouter(t, true)
	owner, admin := uuid.New(), uuid.New()
	txID := uuid.New()
	d.tokenSvc.EXPECT().Validate("owner-tok").Return(&ports.TokenClaims{UserID: owner}, nil).AnyTimes()
	d.tokenSvc.EXPECT().Validate("admin-tok").Return(&ports.TokenClaims{UserID: admin, Admin: true}, nil).AnyTimes()

	// the owner cannot push their own order forward
	w := d.do(http.MethodPatch, "/order/"+txID.String()+"/"+owner.String()+"/DEBITED", nil,
		"Authorization", "Bearer owner-tok")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidToken, decode(t, w)["error_code"])

	w = d.do(http.MethodPost, "/order/"+txID.String()+"/fail",
		map[string]string{"user_id": owner.String(), "reason": "cancelled"},
		"Authorization", "Bearer owner-tok")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// an operator may act on anyone's order
	d.orderSvc.EXPECT().UpdateStatus(gomock.Any(), txID, owner, "DEBITED").
		Return(sampleTxn(owner, domain.TransactionStatusDebited), nil)
	w = d.do(http.MethodPatch, "/order/"+txID.String()+"/"+owner.String()+"/DEBITED", nil,
		"Authorization", "Bearer admin-tok")
	assert.Equal(t, http.StatusOK, w.Code)

	d.orderSvc.EXPECT().Fail(gomock.Any(), txID, owner, "cancelled").
		Return(sampleTxn(owner, domain.TransactionStatusFailed), nil)
	w = d.do(http.MethodPost, "/order/"+txID.String()+"/fail",
		map[string]string{"user_id": owner.String(), "reason": "cancelled"},
		"Authorization", "Bearer admin-tok")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetOrder(t *testing.T) {
	d := setupRouter(t, false)
	txn := sampleTxn(uuid.New(), domain.TransactionStatusDebited)

	d.orderSvc.EXPECT().GetByID(gomock.Any(), txn.ID).Return(txn, nil)
	w := d.do(http.MethodGet, "/order/"+txn.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "DEBITED", data["status"])
	assert.Equal(t, "1205.25", data["fiat_amount"])

	missing := uuid.New()
	d.orderSvc.EXPECT().GetByID(gomock.Any(), missing).Return(nil, apperror.ErrNotFound("Transaction"))
	w = d.do(http.MethodGet, "/order/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Transaction not found", decode(t, w)["error"])
}

func TestGetOrder_OtherUsersTransaction(t *testing.T) {
	d := setupRouter(t, true)
	caller := uuid.New()
	txn := sampleTxn(uuid.New(), domain.TransactionStatusDebited)

	d.tokenSvc.EXPECT().Validate("tok").Return(&ports.TokenClaims{UserID: caller}, nil)
	d.orderSvc.EXPECT().GetByID(gomock.Any(), txn.ID).Return(txn, nil)

	w := d.do(http.MethodGet, "/order/"+txn.ID.String(), nil, "Authorization", "Bearer tok")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListByUser(t *testing.T) {
	d := setupRouter(t, false)
	userID := uuid.New()

	d.orderSvc.EXPECT().ListByUser(gomock.Any(), userID).Return([]domain.Transaction{}, nil)
	w := d.do(http.MethodGet, "/order/by-user/"+userID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w)["data"])
}

func TestUserAccountTx(t *testing.T) {
	d := setupRouter(t, false)
	userID := uuid.New()

	d.orderSvc.EXPECT().NewUserAccountTx(gomock.Any(), userID).Return(&ports.LedgerTxResult{SerializedTransaction: "bmV3"}, nil)
	w := d.do(http.MethodGet, "/order/user-account/"+userID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bmV3", decode(t, w)["data"].(map[string]interface{})["serialized_transaction"])
}

// --- Webhook Handler Tests ---

func TestFincraWebhook_Success(t *testing.T) {
	d := setupRouter(t, false)
	body := []byte(`{"event":"charge.successful","data":{"reference":"x","status":"success"}}`)

	d.reconciler.EXPECT().HandleFincra(gomock.Any(), body, "abc123").Return(nil)

	w := d.do(http.MethodPost, "/webhooks/fincra", body, HeaderWebhookSignature, "abc123")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":"success"}`, w.Body.String())
}

func TestFincraWebhook_InvalidSignature(t *testing.T) {
	d := setupRouter(t, false)
	d.reconciler.EXPECT().HandleFincra(gomock.Any(), gomock.Any(), "").Return(apperror.ErrInvalidSignature())

	w := d.do(http.MethodPost, "/webhooks/fincra", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid signature", decode(t, w)["error"])
}

func TestPayboxWebhook(t *testing.T) {
	d := setupRouter(t, false)
	body := []byte(`{"order_id":"x","status":"Success","mode":"MobileMoney"}`)

	d.reconciler.EXPECT().HandlePaybox(gomock.Any(), body, "def456").Return(nil)
	w := d.do(http.MethodPost, "/webhooks/paybox", body, HeaderWebhookSignature, "def456")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":"success"}`, w.Body.String())

	d.reconciler.EXPECT().HandlePaybox(gomock.Any(), gomock.Any(), "").Return(apperror.ErrInvalidSignature())
	w = d.do(http.MethodPost, "/webhooks/paybox", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- User Handler Tests ---

func TestSignup(t *testing.T) {
	d := setupRouter(t, false)
	wallet := solana.NewWallet().PublicKey().String()
	user := &domain.User{ID: uuid.New(), Username: "ama", Email: "ama@example.com", WalletAddress: &wallet}

	d.userSvc.EXPECT().Signup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.SignupRequest) (*domain.User, error) {
			assert.Equal(t, "ama", req.Username)
			require.NotNil(t, req.WalletAddress)
			assert.Equal(t, wallet, *req.WalletAddress)
			assert.JSONEq(t, `{"tier":1}`, string(req.KYCFields))
			return user, nil
		})

	w := d.do(http.MethodPost, "/users", map[string]interface{}{
		"username": " ama ", "email": "ama@example.com", "wallet_address": wallet, "kyc_fields": map[string]int{"tier": 1},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, user.ID.String(), decode(t, w)["data"].(map[string]interface{})["id"])
}

func TestSignup_InvalidWallet(t *testing.T) {
	d := setupRouter(t, false)
	w := d.do(http.MethodPost, "/users", map[string]string{"username": "ama", "email": "ama@example.com", "wallet_address": "0xabc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLinkWallet(t *testing.T) {
	d := setupRouter(t, false)
	userID := uuid.New()
	wallet := solana.NewWallet().PublicKey().String()

	d.userSvc.EXPECT().LinkWallet(gomock.Any(), userID, wallet).
		Return(&domain.User{ID: userID, WalletAddress: &wallet}, nil)

	w := d.do(http.MethodPut, "/users/"+userID.String()+"/wallet", map[string]string{"wallet_address": wallet})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wallet, decode(t, w)["data"].(map[string]interface{})["wallet_address"])

	w = d.do(http.MethodPut, "/users/"+userID.String()+"/wallet", map[string]string{"wallet_address": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser(t *testing.T) {
	d := setupRouter(t, false)
	userID := uuid.New()

	d.userSvc.EXPECT().GetByID(gomock.Any(), userID).Return(nil, apperror.ErrNotFound("User"))
	w := d.do(http.MethodGet, "/users/"+userID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Market Handler Tests ---

func TestRate(t *testing.T) {
	d := setupRouter(t, false)
	d.marketSvc.EXPECT().Rate(gomock.Any(), "GHS").Return(decimal.RequireFromString("12.05"), nil)

	w := d.do(http.MethodGet, "/rates/ghs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "USD", data["base"])
	assert.Equal(t, "GHS", data["symbol"])
	assert.Equal(t, "12.05", data["rate"])
}

func TestRate_Unavailable(t *testing.T) {
	d := setupRouter(t, false)
	d.marketSvc.EXPECT().Rate(gomock.Any(), "GHS").Return(decimal.Zero, apperror.ErrMarketDataUnavailable(errors.New("down")))

	w := d.do(http.MethodGet, "/rates/GHS", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBanks(t *testing.T) {
	d := setupRouter(t, false)
	d.marketSvc.EXPECT().Banks(gomock.Any()).Return([]ports.Bank{{Name: "GCB Bank", ShortName: "GCB", Code: "040100"}}, nil)

	w := d.do(http.MethodGet, "/banks", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	banks := decode(t, w)["data"].([]interface{})
	require.Len(t, banks, 1)
	assert.Equal(t, "GCB", banks[0].(map[string]interface{})["short_name"])
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	pg := mocks.NewMockHealthChecker(ctrl)
	rd := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Name().Return("postgresql").AnyTimes()
	rd.EXPECT().Name().Return("redis").AnyTimes()

	router := gin.New()
	router.GET("/health", HealthCheck(pg, rd))

	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	rd.EXPECT().Ping(gomock.Any()).Return(nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])

	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	rd.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "degraded", resp["status"])
	redis := resp["dependencies"].(map[string]interface{})["redis"].(map[string]interface{})
	assert.Equal(t, "connection refused", redis["error"])
}

// --- Status Stream Tests ---

func TestStream_SubscribesAndReceives(t *testing.T) {
	d := setupRouter(t, false)
	srv := httptest.NewServer(d.router)
	defer srv.Close()

	userID := uuid.New()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?user_id=" + userID.String()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return d.hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	txn := sampleTxn(userID, domain.TransactionStatusSettled)
	require.NoError(t, d.hub.Publish(t.Context(), domain.NewStatusEvent(txn)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev domain.StatusEvent
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, txn.ID, ev.TransactionID)
	assert.Equal(t, domain.TransactionStatusSettled, ev.Status)
}

func TestStream_BadFilter(t *testing.T) {
	d := setupRouter(t, false)
	w := d.do(http.MethodGet, "/ws?user_id=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwaggerEndpoints(t *testing.T) {
	d := setupRouter(t, false)

	SetAPISpec(nil)
	assert.Equal(t, http.StatusNotFound, d.do(http.MethodGet, "/docs/spec", nil).Code)

	SetAPISpec([]byte("openapi: 3.0.3\n"))
	t.Cleanup(func() { SetAPISpec(nil) })
	w := d.do(http.MethodGet, "/docs/spec", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")

	w = d.do(http.MethodGet, "/docs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}
