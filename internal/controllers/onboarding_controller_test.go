package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/binahub/building-service/internal/models"
	"github.com/binahub/building-service/internal/services"
)

type stubOnboardingRepo struct {
	mu         sync.Mutex
	selections map[string]*models.OnboardingSelection
}

func newStubOnboardingRepo() *stubOnboardingRepo {
	return &stubOnboardingRepo{selections: make(map[string]*models.OnboardingSelection)}
}

func (r *stubOnboardingRepo) Set(ctx context.Context, sessionKey string, selection models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections[sessionKey] = &models.OnboardingSelection{
		SessionKey: sessionKey,
		Selection:  selection,
		CreatedAt:  time.Now().UTC(),
	}
	return nil
}

func (r *stubOnboardingRepo) Get(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.selections[sessionKey]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *stubOnboardingRepo) Consume(ctx context.Context, sessionKey string) (*models.OnboardingSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.selections[sessionKey]
	if !ok {
		return nil, nil
	}
	delete(r.selections, sessionKey)
	return s, nil
}

func (r *stubOnboardingRepo) CleanupStale(ctx context.Context, olderThan time.Duration) error {
	return nil
}

func TestOnboardingSelectionHandlers(t *testing.T) {
	controller := NewOnboardingController(services.NewOnboardingService(newStubOnboardingRepo()))

	// First PUT has no session cookie yet; the handler mints one.
	putRec := httptest.NewRecorder()
	controller.SetSelectionHandler(putRec, httptest.NewRequest(http.MethodPut, "/api/v1/onboarding/selection",
		bytes.NewBufferString(`{"selection":"manager"}`)))
	require.Equal(t, http.StatusOK, putRec.Code)

	cookies := putRec.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]
	require.Equal(t, OnboardingSessionCookieName, session.Name)
	require.NotEmpty(t, session.Value)

	withSession := func(method string, body string) *http.Request {
		var reader *bytes.Buffer
		if body == "" {
			reader = &bytes.Buffer{}
		} else {
			reader = bytes.NewBufferString(body)
		}
		req := httptest.NewRequest(method, "/api/v1/onboarding/selection", reader)
		req.AddCookie(session)
		return req
	}

	// GET reads without consuming, repeatedly.
	for i := 0; i < 2; i++ {
		getRec := httptest.NewRecorder()
		controller.GetSelectionHandler(getRec, withSession(http.MethodGet, ""))
		require.Equal(t, http.StatusOK, getRec.Code)

		var body struct {
			Selection string `json:"selection"`
		}
		require.NoError(t, json.NewDecoder(getRec.Body).Decode(&body))
		require.Equal(t, "manager", body.Selection)
	}

	// A later PUT on the same session replaces the slot.
	replaceRec := httptest.NewRecorder()
	controller.SetSelectionHandler(replaceRec, withSession(http.MethodPut, `{"selection":"resident"}`))
	require.Equal(t, http.StatusOK, replaceRec.Code)
	require.Empty(t, replaceRec.Result().Cookies(), "an existing session cookie is reused, not reminted")

	// DELETE consumes exactly once.
	delRec := httptest.NewRecorder()
	controller.ConsumeSelectionHandler(delRec, withSession(http.MethodDelete, ""))
	require.Equal(t, http.StatusOK, delRec.Code)
	var consumed struct {
		Selection string `json:"selection"`
	}
	require.NoError(t, json.NewDecoder(delRec.Body).Decode(&consumed))
	require.Equal(t, "resident", consumed.Selection)

	againRec := httptest.NewRecorder()
	controller.ConsumeSelectionHandler(againRec, withSession(http.MethodDelete, ""))
	require.Equal(t, http.StatusNotFound, againRec.Code)
}

func TestOnboardingSelectionHandlerRejectsUnknownRole(t *testing.T) {
	controller := NewOnboardingController(services.NewOnboardingService(newStubOnboardingRepo()))

	rec := httptest.NewRecorder()
	controller.SetSelectionHandler(rec, httptest.NewRequest(http.MethodPut, "/api/v1/onboarding/selection",
		bytes.NewBufferString(`{"selection":"landlord"}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOnboardingGetWithoutSessionIsNotFound(t *testing.T) {
	controller := NewOnboardingController(services.NewOnboardingService(newStubOnboardingRepo()))

	rec := httptest.NewRecorder()
	controller.GetSelectionHandler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/selection", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
