package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"campusq/internal/auth"
	"campusq/internal/handlers"
	"campusq/internal/models"
	"campusq/internal/queue"
	"campusq/internal/storage"
	"campusq/internal/store"
	"campusq/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full HTTP surface over the given row store.
// Admin routes are registered without the JWT middleware, the way the
// handlers see requests after authentication.
func newTestServer(rows store.RowStore) (*httptest.Server, *queue.Service) {
	gin.SetMode(gin.TestMode)

	svc := queue.NewService(rows)
	hub := ws.NewHub()
	go hub.Run()

	h := handlers.New(svc, hub, nil)

	r := gin.New()

	r.GET("/api/queues/:id", h.GetQueue)
	r.POST("/api/queues/:id/join", h.JoinQueue)
	r.GET("/api/queues/:id/ws", hub.QueueWebSocketHandler)
	r.POST("/api/cleanup", h.Cleanup)

	r.POST("/api/queues", h.CreateQueue)
	r.GET("/api/queues", h.ListQueues)
	r.PATCH("/api/queues/:id", h.PatchQueue)
	r.DELETE("/api/queues/:id", h.DeleteQueue)
	r.POST("/api/queues/:id/serve", h.ServeEntry)
	r.GET("/api/queues/:id/export", h.ExportQueue)

	return httptest.NewServer(r), svc
}

func setupTestServer() (*httptest.Server, *queue.Service) {
	return newTestServer(store.NewMemoryStore())
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return res
}

func decodeJSON(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
}

func TestQueueFlow(t *testing.T) {
	ts, _ := setupTestServer()
	defer ts.Close()

	// Create a queue and check the catalog copy.
	res := postJSON(t, ts.URL+"/api/queues", map[string]interface{}{
		"title":    "Front Desk",
		"category": "library",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var q models.Queue
	decodeJSON(t, res, &q)
	require.NotEmpty(t, q.ID)
	assert.Equal(t, "Front Desk", q.Title)
	assert.Equal(t, 5, q.EstimatedTimePerPerson)
	assert.Equal(t, "Borrow Book", q.Services[0])
	assert.Len(t, q.Items, 0)

	// Subscribe to change notifications before anyone joins.
	wsURL := "ws" + ts.URL[4:] + "/api/queues/" + q.ID + "/ws"
	wsConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "websocket dial failed")
	defer wsConn.Close()

	// Alice joins and gets position 1.
	res = postJSON(t, ts.URL+"/api/queues/"+q.ID+"/join", map[string]interface{}{
		"name":    "Alice",
		"service": "Borrow Book",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var alice models.Entry
	decodeJSON(t, res, &alice)
	assert.Equal(t, 1, alice.Position)
	require.NotEmpty(t, alice.ID)

	// The subscriber sees the join.
	wsConn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, wsPayload, err := wsConn.ReadMessage()
	require.NoError(t, err, "no websocket message after join")
	var wsMsg map[string]interface{}
	require.NoError(t, json.Unmarshal(wsPayload, &wsMsg))
	assert.Equal(t, "entry_joined", wsMsg["event_type"])
	assert.Equal(t, q.ID, wsMsg["queue_id"])

	// Bob joins and gets position 2.
	res = postJSON(t, ts.URL+"/api/queues/"+q.ID+"/join", map[string]interface{}{
		"name":    "Bob",
		"service": "Return Book",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var bob models.Entry
	decodeJSON(t, res, &bob)
	assert.Equal(t, 2, bob.Position)

	// Joining without a name is rejected and stores nothing.
	res = postJSON(t, ts.URL+"/api/queues/"+q.ID+"/join", map[string]interface{}{
		"service": "Borrow Book",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()

	// The dashboard fetch shows both entries in order.
	res, err = http.Get(ts.URL + "/api/queues/" + q.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var fetched models.Queue
	decodeJSON(t, res, &fetched)
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "Alice", fetched.Items[0].Name)
	assert.Equal(t, "Bob", fetched.Items[1].Name)

	// Serving Alice leaves Bob at position 1.
	res = postJSON(t, ts.URL+"/api/queues/"+q.ID+"/serve", map[string]interface{}{
		"itemId": alice.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var served struct {
		Success bool         `json:"success"`
		Queue   models.Queue `json:"queue"`
	}
	decodeJSON(t, res, &served)
	assert.True(t, served.Success)
	require.Len(t, served.Queue.Items, 1)
	assert.Equal(t, "Bob", served.Queue.Items[0].Name)
	assert.Equal(t, 1, served.Queue.Items[0].Position)

	// Serving an unknown item id changes nothing.
	res = postJSON(t, ts.URL+"/api/queues/"+q.ID+"/serve", map[string]interface{}{
		"itemId": "no-such-entry",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	decodeJSON(t, res, &served)
	require.Len(t, served.Queue.Items, 1)
	assert.Equal(t, 1, served.Queue.Items[0].Position)

	// The roster export carries the remaining entry.
	res, err = http.Get(ts.URL + "/api/queues/" + q.ID + "/export?format=csv")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	csvBody, err := io.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(csvBody), "Position,Name,Service,Details,Timestamp")
	assert.Contains(t, string(csvBody), "1,Bob,Return Book")
}

func TestQueueExpiryFlow(t *testing.T) {
	ts, _ := setupTestServer()
	defer ts.Close()

	res := postJSON(t, ts.URL+"/api/queues", map[string]interface{}{
		"title":    "Pop-up Desk",
		"category": "canteen",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var q models.Queue
	decodeJSON(t, res, &q)

	// Fresh queue: sweep is a no-op.
	res = postJSON(t, ts.URL+"/api/cleanup", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var sweep struct {
		Success      bool `json:"success"`
		DeletedCount int  `json:"deleted_count"`
	}
	decodeJSON(t, res, &sweep)
	assert.True(t, sweep.Success)
	assert.Equal(t, 0, sweep.DeletedCount)

	// Age the queue past the 15 hour threshold via a field patch.
	old := time.Now().Add(-15*time.Hour - time.Millisecond).UnixMilli()
	patch, err := http.NewRequest(http.MethodPatch, ts.URL+"/api/queues/"+q.ID,
		bytes.NewReader([]byte(fmt.Sprintf(`{"createdAt": %d}`, old))))
	require.NoError(t, err)
	patch.Header.Set("Content-Type", "application/json")
	res, err = http.DefaultClient.Do(patch)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res = postJSON(t, ts.URL+"/api/cleanup", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	decodeJSON(t, res, &sweep)
	assert.Equal(t, 1, sweep.DeletedCount)

	// The vanished queue reads as not found, not as empty.
	res, err = http.Get(ts.URL + "/api/queues/" + q.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res.Body.Close()
}

// TestAdminAuthFlow runs the whole administrator path: register, login,
// and a queue mutation guarded by the JWT middleware.
func TestAdminAuthFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")

	svc := queue.NewService(store.NewMemoryStore())
	hub := ws.NewHub()
	go hub.Run()

	h := handlers.New(svc, hub, nil)
	authHandler := handlers.NewAuthHandler(store.NewMemoryAdminStore())

	r := gin.New()
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	admin := r.Group("/api/queues", auth.AuthMiddleware())
	admin.POST("", h.CreateQueue)

	ts := httptest.NewServer(r)
	defer ts.Close()

	res := postJSON(t, ts.URL+"/auth/register", map[string]interface{}{
		"name":     "Desk Admin",
		"email":    "admin@campus.edu",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	res = postJSON(t, ts.URL+"/auth/login", map[string]interface{}{
		"email":    "admin@campus.edu",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, res, &tokens)
	require.NotEmpty(t, tokens.AccessToken)

	// Without a token the mutation is refused.
	res = postJSON(t, ts.URL+"/api/queues", map[string]interface{}{
		"title":    "Front Desk",
		"category": "library",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res.Body.Close()

	// With the issued token it goes through.
	payload := []byte(`{"title": "Front Desk", "category": "library"}`)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/queues", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var q models.Queue
	decodeJSON(t, res, &q)
	assert.Equal(t, "Front Desk", q.Title)
}

// TestQueueFlowPostgres runs the visitor flow against a real Postgres
// instance. Skipped unless TEST_DB_HOST points at one.
func TestQueueFlowPostgres(t *testing.T) {
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database-backed test")
	}

	storage.ConnectTestingDatabase()
	require.NoError(t, storage.DB.AutoMigrate(&models.Queue{}, &models.Admin{}))
	require.NoError(t, storage.DB.Exec("TRUNCATE TABLE queues").Error)

	ts, _ := newTestServer(store.NewGormStore(storage.DB))
	defer ts.Close()

	res := postJSON(t, ts.URL+"/api/queues", map[string]interface{}{
		"title":    "Front Desk",
		"category": "library",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var q models.Queue
	decodeJSON(t, res, &q)
	require.NotEmpty(t, q.ID)

	res = postJSON(t, ts.URL+"/api/queues/"+q.ID+"/join", map[string]interface{}{
		"name":    "Alice",
		"service": "Borrow Book",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var alice models.Entry
	decodeJSON(t, res, &alice)
	assert.Equal(t, 1, alice.Position)

	// The entry survives a round trip through the JSON column.
	res, err := http.Get(ts.URL + "/api/queues/" + q.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var fetched models.Queue
	decodeJSON(t, res, &fetched)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Alice", fetched.Items[0].Name)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/queues/"+q.ID, nil)
	require.NoError(t, err)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()
}

func TestCreateQueueValidationFlow(t *testing.T) {
	ts, _ := setupTestServer()
	defer ts.Close()

	res := postJSON(t, ts.URL+"/api/queues", map[string]interface{}{
		"title":    "Mystery Desk",
		"category": "gym",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()

	res = postJSON(t, ts.URL+"/api/queues", map[string]interface{}{
		"category": "library",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()

	res, err := http.Get(ts.URL + "/api/queues")
	require.NoError(t, err)
	var queues []models.Queue
	decodeJSON(t, res, &queues)
	assert.Len(t, queues, 0)
}
