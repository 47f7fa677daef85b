//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"goalkick/internal/domain/ticket"
	"goalkick/internal/handler/httperr"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "domain sentinel wins over validation mark",
			err:        errs.Mark(ticket.ErrInvalidQuantity, commands.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Quantity must be between 1 and 10",
		},
		{
			name:       "generic validation",
			err:        errs.Wrap(commands.ErrValidation, "bad status filter"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request",
		},
		{
			name:       "wrapped sold out",
			err:        errs.Wrap(commands.ErrInsufficientSeats, "reserve"),
			wantStatus: http.StatusConflict,
			wantMsg:    "Not enough seats available",
		},
		{
			name:       "query not found",
			err:        queries.ErrMatchNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Match not found",
		},
		{
			name:       "terminal ticket",
			err:        errs.Wrap(ticket.ErrAlreadyTerminal, "approve"),
			wantStatus: http.StatusConflict,
			wantMsg:    "Ticket is already settled",
		},
		{
			name:       "unknown error stays internal",
			err:        errors.New("pq: password authentication failed for user goalkick"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.Map(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestAbortWithUseCaseError_RecordsPublicError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/tickets", nil)

	httperr.AbortWithUseCaseError(c, errs.Wrap(commands.ErrInsufficientSeats, "reserve"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Not enough seats available")

	require.Len(t, c.Errors, 1)
	recorded := c.Errors.Last()
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	resp, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.ErrorIs(t, recorded.Err, commands.ErrInsufficientSeats)
}
