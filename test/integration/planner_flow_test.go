package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"collegeplan-be/internal/bootstrap"
	"collegeplan-be/internal/config"
	"collegeplan-be/internal/model"
	"collegeplan-be/internal/server"
	"collegeplan-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// envelope mirrors the standard response wrapper so tests can unwrap data.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	app    *fiber.App
	db     *gorm.DB
	cookie string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set; skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	require.NoError(t, err, "failed to connect to DB")

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	return &testApp{app: srv.GetApp(), db: db}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.cookie != "" {
		req.Header.Set("Cookie", a.cookie)
	}

	resp, err := a.app.Test(req, 30000)
	require.NoError(t, err)

	if c := resp.Header.Get("Set-Cookie"); c != "" {
		a.cookie = c
	}

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

func (a *testApp) register(t *testing.T) {
	t.Helper()
	username := "student-" + uuid.NewString()[:8]
	resp, env := a.do(t, "POST", "/api/register", map[string]interface{}{
		"username": username,
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)
	require.NotEmpty(t, a.cookie, "register should start a session")
}

func TestRegisterAndSession(t *testing.T) {
	a := newTestApp(t)
	a.register(t)

	// Session cookie grants access to /me.
	resp, env := a.do(t, "GET", "/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		Id       uuid.UUID `json:"id"`
		Username string    `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.NotEqual(t, uuid.Nil, user.Id)

	// Logout kills the session.
	resp, _ = a.do(t, "POST", "/api/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, "GET", "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCollegePositionOnStatusChange(t *testing.T) {
	a := newTestApp(t)
	a.register(t)

	type college struct {
		Id       uuid.UUID `json:"id"`
		Status   string    `json:"status"`
		Position int       `json:"position"`
	}

	addCollege := func(name string) college {
		resp, env := a.do(t, "POST", "/api/colleges", map[string]interface{}{"name": name})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var c college
		require.NoError(t, json.Unmarshal(env.Data, &c))
		return c
	}

	first := addCollege("Carleton College")
	second := addCollege("Macalester College")

	// Default column and sequential positions.
	assert.Equal(t, "researching", first.Status)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2, second.Position)

	// Moving to an empty column appends at position 1.
	resp, env := a.do(t, "PATCH", fmt.Sprintf("/api/colleges/%s/status", first.Id),
		map[string]interface{}{"status": "applying"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var moved college
	require.NoError(t, json.Unmarshal(env.Data, &moved))
	assert.Equal(t, "applying", moved.Status)
	assert.Equal(t, 1, moved.Position)

	// Re-sending the same status must not move it.
	resp, env = a.do(t, "PATCH", fmt.Sprintf("/api/colleges/%s/status", first.Id),
		map[string]interface{}{"status": "applying"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &moved))
	assert.Equal(t, 1, moved.Position)

	// Second college follows, appended after the first.
	resp, env = a.do(t, "PATCH", fmt.Sprintf("/api/colleges/%s/status", second.Id),
		map[string]interface{}{"status": "applying"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &moved))
	assert.Equal(t, 2, moved.Position)

	// Unknown status is rejected.
	resp, _ = a.do(t, "GET", "/api/colleges/status/waitlisted", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Delete is idempotent: true first, false after.
	resp, env = a.do(t, "DELETE", fmt.Sprintf("/api/colleges/%s", second.Id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var del struct {
		Deleted bool `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &del))
	assert.True(t, del.Deleted)

	resp, env = a.do(t, "DELETE", fmt.Sprintf("/api/colleges/%s", second.Id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &del))
	assert.False(t, del.Deleted)
}

func TestAdvisorShareLinkLifecycle(t *testing.T) {
	a := newTestApp(t)
	a.register(t)

	// Create a session worth sharing.
	resp, env := a.do(t, "POST", "/api/chat/sessions", map[string]interface{}{"title": "Essay brainstorm"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))

	resp, env = a.do(t, "POST", "/api/advisors", map[string]interface{}{
		"name": "Ms. Rivera",
		"type": "school_counselor",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var advisor struct {
		Id         uuid.UUID `json:"id"`
		ShareToken uuid.UUID `json:"share_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &advisor))
	require.NotEqual(t, uuid.Nil, advisor.ShareToken)

	// Share twice; the junction must stay unique.
	for i := 0; i < 2; i++ {
		resp, _ = a.do(t, "POST", fmt.Sprintf("/api/advisors/%s/share-chats", advisor.Id),
			map[string]interface{}{"session_ids": []uuid.UUID{session.Id}})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, env = a.do(t, "GET", fmt.Sprintf("/api/advisors/%s/shared-chats", advisor.Id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var shared struct {
		SessionIds []uuid.UUID `json:"session_ids"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &shared))
	assert.Equal(t, []uuid.UUID{session.Id}, shared.SessionIds)

	// The public share view works without a session cookie.
	public := &testApp{app: a.app}
	resp, env = public.do(t, "GET", "/api/shared/"+advisor.ShareToken.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view struct {
		Advisor struct {
			Name string `json:"name"`
		} `json:"advisor"`
		SharedChatSessions []struct {
			Id uuid.UUID `json:"id"`
		} `json:"shared_chat_sessions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Ms. Rivera", view.Advisor.Name)
	require.Len(t, view.SharedChatSessions, 1)

	// Deactivating makes the link dead without destroying state.
	resp, _ = a.do(t, "PATCH", fmt.Sprintf("/api/advisors/%s/status", advisor.Id),
		map[string]interface{}{"is_active": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = public.do(t, "GET", "/api/shared/"+advisor.ShareToken.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Reactivation restores the same token and shares.
	resp, env = a.do(t, "PATCH", fmt.Sprintf("/api/advisors/%s/status", advisor.Id),
		map[string]interface{}{"is_active": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reactivated struct {
		ShareToken uuid.UUID `json:"share_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reactivated))
	assert.Equal(t, advisor.ShareToken, reactivated.ShareToken)

	resp, env = public.do(t, "GET", "/api/shared/"+advisor.ShareToken.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Len(t, view.SharedChatSessions, 1)

	// A garbage token reads as not found, same as an unknown one.
	resp, _ = public.do(t, "GET", "/api/shared/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdvisorRecommendationViaShareLink(t *testing.T) {
	a := newTestApp(t)
	a.register(t)

	resp, env := a.do(t, "POST", "/api/advisors", map[string]interface{}{
		"name": "Coach Daniels",
		"type": "other",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var advisor struct {
		Id         uuid.UUID `json:"id"`
		ShareToken uuid.UUID `json:"share_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &advisor))

	public := &testApp{app: a.app}
	resp, env = public.do(t, "POST", "/api/shared/"+advisor.ShareToken.String()+"/recommendations",
		map[string]interface{}{
			"college_name":  "Oberlin College",
			"advisor_notes": "Great music program, visit in fall.",
		})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rec struct {
		Id            uuid.UUID `json:"id"`
		Name          string    `json:"name"`
		RecommendedBy *string   `json:"recommended_by"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "Oberlin College", rec.Name)
	require.NotNil(t, rec.RecommendedBy)
	assert.Equal(t, "Coach Daniels", *rec.RecommendedBy)

	// The student sees it in their own list.
	resp, env = a.do(t, "GET", "/api/recommendations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recs []struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &recs))
	require.Len(t, recs, 1)

	// Converting creates the college and removes the recommendation.
	resp, env = a.do(t, "POST", fmt.Sprintf("/api/recommendations/%s/convert", rec.Id),
		map[string]interface{}{"status": "researching"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var college struct {
		Name     string `json:"name"`
		Position int    `json:"position"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &college))
	assert.Equal(t, "Oberlin College", college.Name)
	assert.Equal(t, 1, college.Position)

	resp, env = a.do(t, "GET", "/api/recommendations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &recs))
	assert.Empty(t, recs)
}

func TestChatSessionDeleteCascades(t *testing.T) {
	a := newTestApp(t)
	a.register(t)

	type chatSession struct {
		Id    uuid.UUID `json:"id"`
		Title string    `json:"title"`
	}

	createSession := func(title string) chatSession {
		resp, env := a.do(t, "POST", "/api/chat/sessions", map[string]interface{}{"title": title})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var s chatSession
		require.NoError(t, json.Unmarshal(env.Data, &s))
		return s
	}

	kept := createSession("College visits")
	doomed := createSession("Essay brainstorm")

	// Rename sticks.
	resp, env := a.do(t, "PATCH", fmt.Sprintf("/api/chat/sessions/%s", doomed.Id),
		map[string]interface{}{"title": "Essay drafts"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var renamed chatSession
	require.NoError(t, json.Unmarshal(env.Data, &renamed))
	assert.Equal(t, "Essay drafts", renamed.Title)

	// Seed the conversation directly; producing replies needs the AI upstream.
	for _, m := range []model.ChatMessage{
		{SessionId: doomed.Id, Content: "How do I start my essay?", Sender: "user"},
		{SessionId: doomed.Id, Content: "Pick a moment that changed you.", Sender: "ai"},
		{SessionId: kept.Id, Content: "Which campuses should I tour?", Sender: "user"},
	} {
		require.NoError(t, a.db.Create(&m).Error)
	}

	// Share both sessions so the delete also has a junction to clean up.
	resp, env = a.do(t, "POST", "/api/advisors", map[string]interface{}{
		"name": "Mr. Okafor",
		"type": "private_counselor",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var advisor struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &advisor))

	resp, _ = a.do(t, "POST", fmt.Sprintf("/api/advisors/%s/share-chats", advisor.Id),
		map[string]interface{}{"session_ids": []uuid.UUID{kept.Id, doomed.Id}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Unshare is selective: dropping one leaves the other.
	resp, _ = a.do(t, "POST", fmt.Sprintf("/api/advisors/%s/unshare-chats", advisor.Id),
		map[string]interface{}{"session_ids": []uuid.UUID{kept.Id}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = a.do(t, "GET", fmt.Sprintf("/api/advisors/%s/shared-chats", advisor.Id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var shared struct {
		SessionIds []uuid.UUID `json:"session_ids"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &shared))
	assert.Equal(t, []uuid.UUID{doomed.Id}, shared.SessionIds)

	// Deleting the session removes its messages and share junctions with it.
	resp, _ = a.do(t, "DELETE", fmt.Sprintf("/api/chat/sessions/%s", doomed.Id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, "GET", fmt.Sprintf("/api/chat/sessions/%s/messages", doomed.Id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var orphaned int64
	require.NoError(t, a.db.Model(&model.ChatMessage{}).
		Where("session_id = ?", doomed.Id).Count(&orphaned).Error)
	assert.Zero(t, orphaned)

	var junctions int64
	require.NoError(t, a.db.Model(&model.SharedChatSession{}).
		Where("session_id = ?", doomed.Id).Count(&junctions).Error)
	assert.Zero(t, junctions)

	// The sibling session and its message survive.
	var remaining int64
	require.NoError(t, a.db.Model(&model.ChatMessage{}).
		Where("session_id = ?", kept.Id).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	// Deleting again reads as not found.
	resp, _ = a.do(t, "DELETE", fmt.Sprintf("/api/chat/sessions/%s", doomed.Id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNotificationReadOwnership(t *testing.T) {
	a := newTestApp(t)
	a.register(t)

	resp, env := a.do(t, "GET", "/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var owner struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &owner))

	notif := model.Notification{
		UserID:   owner.Id,
		TypeCode: "PROFILE_UPDATED",
		Title:    "Profile updated",
		Message:  "Your profile was updated from a recent conversation.",
	}
	require.NoError(t, a.db.Create(&notif).Error)

	// A different user cannot mark it read; it reads as not found.
	ownerCookie := a.cookie
	a.cookie = ""
	a.register(t)

	resp, _ = a.do(t, "PATCH", fmt.Sprintf("/api/notifications/%s/read", notif.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var untouched model.Notification
	require.NoError(t, a.db.First(&untouched, "id = ?", notif.ID).Error)
	assert.False(t, untouched.IsRead)

	// The owner can.
	a.cookie = ownerCookie
	resp, _ = a.do(t, "PATCH", fmt.Sprintf("/api/notifications/%s/read", notif.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = a.do(t, "GET", "/api/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &count))
	assert.Zero(t, count.Count)
}
