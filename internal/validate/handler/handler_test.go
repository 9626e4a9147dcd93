package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cotejo/internal/validate"
	"cotejo/internal/validate/handler/mocks"
	"cotejo/pkg/spain"
)

//go:generate mockgen -source=handler.go -destination=mocks/validate-mocks.go -package=mocks Service
type ValidateHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ValidateHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestValidateHandlerSuite(t *testing.T) {
	suite.Run(t, new(ValidateHandlerSuite))
}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := New(mockService, logger)
	r := chi.NewRouter()
	handler.Register(r)
	return handler, mockService
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func (s *ValidateHandlerSuite) TestHandleIdentity() {
	s.Run("valid NIF", func() {
		handler, mockService := newTestHandler(s.T())
		mockService.EXPECT().ValidateIdentity(
			gomock.Any(),
			validate.IdentityRequest{Value: "12345678Z"},
		).Return(spain.Result{Valid: true, Kind: spain.KindNIF, Canonical: "12345678Z"})

		req := httptest.NewRequest(http.MethodPost, "/validate/identity", jsonBody(s.T(), IdentityRequest{Value: "12345678Z"}))
		w := httptest.NewRecorder()
		handler.handleIdentity(w, req)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp ValidationResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(s.T(), resp.Valid)
		assert.Equal(s.T(), "nif", resp.Kind)
		assert.Equal(s.T(), "12345678Z", resp.Canonical)
		assert.Empty(s.T(), resp.Reason)
	})

	s.Run("only_nif flag is forwarded", func() {
		handler, mockService := newTestHandler(s.T())
		onlyNIF := true
		mockService.EXPECT().ValidateIdentity(
			gomock.Any(),
			validate.IdentityRequest{Value: "A58818501", OnlyNIF: &onlyNIF},
		).Return(spain.Result{Reason: spain.ReasonKindDisallowed})

		req := httptest.NewRequest(http.MethodPost, "/validate/identity", jsonBody(s.T(), IdentityRequest{Value: "A58818501", OnlyNIF: &onlyNIF}))
		w := httptest.NewRecorder()
		handler.handleIdentity(w, req)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp ValidationResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(s.T(), resp.Valid)
		assert.Equal(s.T(), "kind_disallowed", resp.Reason)
	})

	s.Run("checksum mismatch keeps kind", func() {
		handler, mockService := newTestHandler(s.T())
		mockService.EXPECT().ValidateIdentity(gomock.Any(), gomock.Any()).
			Return(spain.Result{Kind: spain.KindNIF, Reason: spain.ReasonChecksumMismatch})

		req := httptest.NewRequest(http.MethodPost, "/validate/identity", jsonBody(s.T(), IdentityRequest{Value: "12345678T"}))
		w := httptest.NewRecorder()
		handler.handleIdentity(w, req)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp ValidationResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(s.T(), resp.Valid)
		assert.Equal(s.T(), "nif", resp.Kind)
		assert.Equal(s.T(), "checksum_mismatch", resp.Reason)
	})

	s.Run("empty value rejected before the service is called", func() {
		handler, _ := newTestHandler(s.T())

		req := httptest.NewRequest(http.MethodPost, "/validate/identity", jsonBody(s.T(), IdentityRequest{Value: "   "}))
		w := httptest.NewRecorder()
		handler.handleIdentity(w, req)

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
		var resp map[string]any
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(s.T(), "validation_failed", resp["error"])
	})

	s.Run("oversized value rejected", func() {
		handler, _ := newTestHandler(s.T())

		req := httptest.NewRequest(http.MethodPost, "/validate/identity", jsonBody(s.T(), IdentityRequest{Value: strings.Repeat("1", 65)}))
		w := httptest.NewRecorder()
		handler.handleIdentity(w, req)

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("malformed JSON rejected", func() {
		handler, _ := newTestHandler(s.T())

		req := httptest.NewRequest(http.MethodPost, "/validate/identity", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		handler.handleIdentity(w, req)

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *ValidateHandlerSuite) TestHandleBankAccount() {
	s.Run("valid CCC", func() {
		handler, mockService := newTestHandler(s.T())
		mockService.EXPECT().ValidateBankAccount(gomock.Any(), "2100 0418 45 0200051332").
			Return(spain.Result{Valid: true, Kind: spain.KindCCC, Canonical: "21000418450200051332"})

		req := httptest.NewRequest(http.MethodPost, "/validate/bank-account", jsonBody(s.T(), ValueRequest{Value: "2100 0418 45 0200051332"}))
		w := httptest.NewRecorder()
		handler.handleBankAccount(w, req)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp ValidationResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(s.T(), resp.Valid)
		assert.Equal(s.T(), "ccc", resp.Kind)
		assert.Equal(s.T(), "21000418450200051332", resp.Canonical)
	})

	s.Run("checksum mismatch reported", func() {
		handler, mockService := newTestHandler(s.T())
		mockService.EXPECT().ValidateBankAccount(gomock.Any(), gomock.Any()).
			Return(spain.Result{Kind: spain.KindCCC, Reason: spain.ReasonChecksumMismatch})

		req := httptest.NewRequest(http.MethodPost, "/validate/bank-account", jsonBody(s.T(), ValueRequest{Value: "21000418440200051332"}))
		w := httptest.NewRecorder()
		handler.handleBankAccount(w, req)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp ValidationResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(s.T(), resp.Valid)
		assert.Equal(s.T(), "checksum_mismatch", resp.Reason)
	})
}

func (s *ValidateHandlerSuite) TestHandleBoundaryChecks() {
	s.Run("postal code", func() {
		handler, mockService := newTestHandler(s.T())
		mockService.EXPECT().ValidatePostalCode(gomock.Any(), "28013").Return(true)

		req := httptest.NewRequest(http.MethodPost, "/validate/postal-code", jsonBody(s.T(), ValueRequest{Value: "28013"}))
		w := httptest.NewRecorder()
		handler.handlePostalCode(w, req)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp CheckResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(s.T(), resp.Valid)
	})

	s.Run("phone number", func() {
		handler, mockService := newTestHandler(s.T())
		mockService.EXPECT().ValidatePhoneNumber(gomock.Any(), "600123456").Return(true)

		req := httptest.NewRequest(http.MethodPost, "/validate/phone", jsonBody(s.T(), ValueRequest{Value: "600123456"}))
		w := httptest.NewRecorder()
		handler.handlePhoneNumber(w, req)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp CheckResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(s.T(), resp.Valid)
	})
}

func (s *ValidateHandlerSuite) TestRoutes() {
	handler, mockService := newTestHandler(s.T())
	r := chi.NewRouter()
	handler.Register(r)

	mockService.EXPECT().ValidateIdentity(gomock.Any(), gomock.Any()).
		Return(spain.Result{Valid: true, Kind: spain.KindNIF, Canonical: "12345678Z"})

	req := httptest.NewRequest(http.MethodPost, "/validate/identity", jsonBody(s.T(), IdentityRequest{Value: "12345678Z"}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
}
