//go:build e2e

package bootstrap_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"goalkick/cmd/bootstrap"
	"goalkick/cmd/bootstrap/components"
	"goalkick/internal/handler/dto/response"
	"goalkick/internal/pkg/config"
	"goalkick/internal/pkg/cookie"
	"goalkick/internal/testutil/dbtest"
	testhttp "goalkick/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const staffPassword = "gatekeeper-pass"

// fakeESewa answers transaction verification requests the way the gateway does.
type fakeESewa struct {
	server   *httptest.Server
	calls    atomic.Int32
	approved atomic.Bool
}

func newFakeESewa(t *testing.T) *fakeESewa {
	f := &fakeESewa{}
	f.approved.Store(true)
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		code := "Success"
		if !f.approved.Load() || r.ParseForm() != nil || r.PostForm.Get("rid") == "" {
			code = "failure"
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = fmt.Fprintf(w, "<response><response_code>%s</response_code></response>", code)
	}))
	t.Cleanup(f.server.Close)
	return f
}

type appSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	router *gin.Engine
	esewa  *fakeESewa
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(appSuite))
}

func (s *appSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	t := s.T()

	pool, dbCfg := dbtest.NewPostgres(t)
	s.pool = pool
	s.esewa = newFakeESewa(t)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Gateway.VerifyURL = s.esewa.server.URL

	app := fx.New(
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.RedisModule,
		bootstrap.MetricsModule,
		bootstrap.NotifyModule,
		bootstrap.GatewayModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&s.router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})
}

func (s *appSuite) reserve(matchID fmt.Stringer, qty int) response.ReserveResponse {
	var res response.ReserveResponse
	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/tickets", map[string]any{
		"match_id": matchID.String(),
		"quantity": qty,
		"phone":    "9841234567",
		"name":     "Sita Rai",
	}, "")
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *appSuite) login(email, role string) *http.Cookie {
	dbtest.CreateTestStaff(s.T(), s.pool, email, staffPassword, role)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": staffPassword,
	}, "")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	c := testhttp.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(s.T(), c)
	return c
}

func (s *appSuite) TestBuyAndEnter() {
	matchID := dbtest.CreateTestMatch(s.T(), s.pool, dbtest.DefaultMatch())

	res := s.reserve(matchID, 2)
	s.Equal("1000.00", res.TotalAmount)
	s.Equal("PENDING", res.Status)
	s.Equal(98, res.RemainingSeats)
	s.Equal("manual", res.Checkout.Mode)

	path := fmt.Sprintf("/api/payments/success?oid=%s&amt=1000.00&refId=0009XYZ", res.TicketID)
	var settled response.SettlementResponse
	testhttp.AssertSuccessResponse(s.T(), testhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, ""),
		http.StatusOK, &settled)
	s.Equal("PAID", settled.Outcome)
	s.Require().NotNil(settled.Code)
	s.Equal(int32(1), s.esewa.calls.Load())

	// the gateway redirects again on browser refresh
	var replay response.SettlementResponse
	testhttp.AssertSuccessResponse(s.T(), testhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, ""),
		http.StatusOK, &replay)
	s.Equal("REPLAYED", replay.Outcome)
	s.Equal(*settled.Code, *replay.Code)

	var view response.TicketResponse
	testhttp.AssertSuccessResponse(s.T(),
		testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/tickets/"+*settled.Code, nil, ""),
		http.StatusOK, &view)
	s.Equal("PAID", view.Status)
	s.Equal(int32(2), view.Quantity)

	qr := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/tickets/"+*settled.Code+"/qr", nil, "")
	s.Equal(http.StatusOK, qr.Code)
	s.Equal("image/png", qr.Header().Get("Content-Type"))

	gate := s.login("gate@goalkick.test", "gatekeeper")
	cookies := []*http.Cookie{gate}

	var first, second response.RedemptionResponse
	w := testhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/gate/validate",
		map[string]string{"code": " " + *settled.Code + " "}, cookies, "")
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
	s.Equal("ENTER", first.Outcome)
	s.True(first.Admit)

	w = testhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/gate/validate",
		map[string]string{"code": *settled.Code}, cookies, "")
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
	s.Equal("ALREADY_USED", second.Outcome)
	s.False(second.Admit)

	// gatekeepers cannot reach admin routes
	w = testhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/admin/tickets", nil, cookies, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
}

func (s *appSuite) TestRejectedVerificationFailsTicket() {
	matchID := dbtest.CreateTestMatch(s.T(), s.pool, dbtest.DefaultMatch())
	res := s.reserve(matchID, 1)
	s.esewa.approved.Store(false)

	path := fmt.Sprintf("/api/payments/success?oid=%s&amt=500&refId=FORGED", res.TicketID)
	var settled response.SettlementResponse
	testhttp.AssertSuccessResponse(s.T(), testhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, ""),
		http.StatusOK, &settled)

	s.Equal("FAILED", settled.Outcome)
	s.Nil(settled.Code)
	s.Equal(100, dbtest.AvailableSeats(s.T(), s.pool, matchID))
}

func (s *appSuite) TestManualApproval() {
	matchID := dbtest.CreateTestMatch(s.T(), s.pool, dbtest.DefaultMatch())
	res := s.reserve(matchID, 1)

	var submitted response.SubmissionResponse
	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments/confirm", map[string]string{
		"ticket_id":      res.TicketID.String(),
		"transaction_id": "0AB12CD",
	}, "")
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &submitted)
	s.Equal("AWAITING_VERIFICATION", submitted.PaymentStatus)

	admin := []*http.Cookie{s.login("admin@goalkick.test", "admin")}

	var list []response.AdminTicketResponse
	w = testhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/admin/tickets?status=pending", nil, admin, "")
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
	s.Require().Len(list, 1)
	s.Equal(res.TicketID, list[0].ID)
	s.Require().NotNil(list[0].ExternalRef)
	s.Equal("0AB12CD", *list[0].ExternalRef)

	var approved response.SettlementResponse
	w = testhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodPost,
		"/api/admin/tickets/"+res.TicketID.String()+"/approve", nil, admin, "")
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &approved)
	s.Equal("PAID", approved.Outcome)
	s.NotNil(approved.Code)

	w = testhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodPost,
		"/api/admin/tickets/"+res.TicketID.String()+"/reject", nil, admin, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "already settled")
	s.Equal(99, dbtest.AvailableSeats(s.T(), s.pool, matchID))
}

func (s *appSuite) TestMatchesAndHealth() {
	small := dbtest.DefaultMatch()
	small.Seats = 1
	soldOut := dbtest.CreateTestMatch(s.T(), s.pool, small)
	s.reserve(soldOut, 1)
	hidden := dbtest.DefaultMatch()
	hidden.Active = false
	dbtest.CreateTestMatch(s.T(), s.pool, hidden)

	var matches []response.MatchResponse
	w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/matches", nil, "")
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &matches)
	s.Require().Len(matches, 1)
	s.Equal(soldOut, matches[0].ID)
	s.True(matches[0].SoldOut)

	w = testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
}
