package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	accountdomain "github.com/munimji/munimji/internal/account/domain"
	agentlogdomain "github.com/munimji/munimji/internal/agentlog/domain"
	"github.com/munimji/munimji/internal/config"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	pipelinedomain "github.com/munimji/munimji/internal/pipeline/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAccountService struct {
	accounts map[string]accountdomain.Account
}

func (f *fakeAccountService) Create(ctx context.Context, req accountdomain.CreateAccountRequest) (accountdomain.Account, error) {
	if _, ok := f.accounts[req.Code]; ok {
		return accountdomain.Account{}, accountdomain.ErrCodeExists
	}
	account := accountdomain.Account{Code: req.Code, Name: req.Name, Type: req.Type, IsActive: true}
	f.accounts[req.Code] = account
	return account, nil
}

func (f *fakeAccountService) Get(ctx context.Context, code string) (accountdomain.Account, error) {
	account, ok := f.accounts[code]
	if !ok {
		return accountdomain.Account{}, accountdomain.ErrNotFound
	}
	return account, nil
}

func (f *fakeAccountService) List(ctx context.Context, req accountdomain.ListAccountsRequest) ([]accountdomain.Account, error) {
	out := []accountdomain.Account{}
	for _, a := range f.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAccountService) Deactivate(ctx context.Context, code string) (accountdomain.Account, error) {
	account, ok := f.accounts[code]
	if !ok {
		return accountdomain.Account{}, accountdomain.ErrNotFound
	}
	account.IsActive = false
	f.accounts[code] = account
	return account, nil
}

type fakeJournalService struct {
	approveErr error
}

func (f *fakeJournalService) Get(ctx context.Context, id int64) (journaldomain.JournalEntry, error) {
	return journaldomain.JournalEntry{}, journaldomain.ErrNotFound
}

func (f *fakeJournalService) List(ctx context.Context, req journaldomain.ListEntriesRequest) ([]journaldomain.JournalEntry, error) {
	return []journaldomain.JournalEntry{}, nil
}

func (f *fakeJournalService) Approve(ctx context.Context, req journaldomain.ReviewRequest) (journaldomain.JournalEntry, error) {
	if f.approveErr != nil {
		return journaldomain.JournalEntry{}, f.approveErr
	}
	return journaldomain.JournalEntry{Status: journaldomain.StatusApproved}, nil
}

func (f *fakeJournalService) Reject(ctx context.Context, req journaldomain.ReviewRequest) (journaldomain.JournalEntry, error) {
	return journaldomain.JournalEntry{Status: journaldomain.StatusRejected}, nil
}

func (f *fakeJournalService) Post(ctx context.Context, id int64) (journaldomain.JournalEntry, error) {
	return journaldomain.JournalEntry{}, journaldomain.ErrEntryNotApproved
}

type fakePipelineService struct {
	err error
}

func (f *fakePipelineService) Process(ctx context.Context, req pipelinedomain.ProcessRequest) (pipelinedomain.Result, error) {
	if f.err != nil {
		return pipelinedomain.Result{}, f.err
	}
	return pipelinedomain.Result{SessionID: "session-1"}, nil
}

func (f *fakePipelineService) Logs(ctx context.Context, sessionID string) ([]agentlogdomain.AgentLog, error) {
	return nil, nil
}

func newTestServer(t *testing.T, journalSvc journaldomain.Service, pipelineSvc pipelinedomain.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := NewEngine(zap.NewNop(), prometheus.NewRegistry())

	NewServer(ServerParams{
		Gin:         engine,
		Cfg:         config.Config{},
		AccountSvc:  &fakeAccountService{accounts: map[string]accountdomain.Account{}},
		JournalSvc:  journalSvc,
		PipelineSvc: pipelineSvc,
	})
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAccountRoutes(t *testing.T) {
	engine := newTestServer(t, &fakeJournalService{}, &fakePipelineService{})

	rec := doJSON(t, engine, http.MethodPost, "/api/accounts", gin.H{
		"code": "A005", "name": "Fuel Expense", "type": "expense",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/accounts/A005", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/accounts/Z999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/accounts", gin.H{
		"code": "A005", "name": "Fuel again", "type": "expense",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLifecycleConflictsMapTo409(t *testing.T) {
	engine := newTestServer(t, &fakeJournalService{approveErr: journaldomain.ErrEntryNotBalanced}, &fakePipelineService{})

	rec := doJSON(t, engine, http.MethodPost, "/api/entries/42/approve", gin.H{"reviewer": "asha"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/entries/42/post", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthoringFailureMapsTo502(t *testing.T) {
	engine := newTestServer(t, &fakeJournalService{}, &fakePipelineService{err: pipelinedomain.ErrAuthoringFailed})

	rec := doJSON(t, engine, http.MethodPost, "/api/entries", gin.H{"description": "invoice for 1,18,000"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestValidationErrorsCarryFieldList(t *testing.T) {
	vErr := &journaldomain.ValidationErrors{Errors: []journaldomain.FieldError{
		{Field: "lines", Code: "not_balanced", Message: "entry does not balance"},
	}}
	engine := newTestServer(t, &fakeJournalService{}, &fakePipelineService{err: vErr})

	rec := doJSON(t, engine, http.MethodPost, "/api/entries", gin.H{"description": "salary"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error.Type)
	require.Len(t, body.Error.Errors, 1)
	assert.Equal(t, "not_balanced", body.Error.Errors[0].Code)
}

func TestBadDateParamIs400(t *testing.T) {
	engine := newTestServer(t, &fakeJournalService{}, &fakePipelineService{})

	rec := doJSON(t, engine, http.MethodGet, "/api/statements/trial-balance?as_of=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
