package integration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"grocery-ai-be/internal/bootstrap"
	"grocery-ai-be/internal/config"
	"grocery-ai-be/internal/controller"
	"grocery-ai-be/internal/dto"
	"grocery-ai-be/internal/pkg/logger"
	"grocery-ai-be/internal/pkg/serverutils"
	"grocery-ai-be/internal/repository/memory"
	"grocery-ai-be/internal/server"
	"grocery-ai-be/internal/service"
	"grocery-ai-be/pkg/suggester"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// mockSuggester stands in for the generative collaborator.
type mockSuggester struct {
	mu       sync.Mutex
	result   []suggester.RawSuggestion
	err      error
	received [][]string
}

func (m *mockSuggester) Suggest(_ context.Context, names []string) ([]suggester.RawSuggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.received = append(m.received, names)
	return m.result, m.err
}

func (m *mockSuggester) lastReceived() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.received) == 0 {
		return nil
	}
	return m.received[len(m.received)-1]
}

type testEnv struct {
	app *fiber.App
	sug *mockSuggester
}

func newTestEnv(t *testing.T, autoSuggest bool) *testEnv {
	t.Helper()

	cfg := config.Load()
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(cfg.Keys.ListChangedTopic, pubSub)

	sug := &mockSuggester{}
	listService := service.NewListService(memory.NewListRepository(), publisherService, sysLogger)
	suggestionService := service.NewSuggestionService(sug, sysLogger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if autoSuggest {
		consumer := service.NewConsumerService(pubSub, cfg.Keys.ListChangedTopic, suggestionService, sysLogger)
		if err := consumer.Consume(ctx); err != nil {
			t.Fatalf("start consumer: %v", err)
		}
	}

	container := &bootstrap.Container{
		ListController:       controller.NewListController(listService),
		SuggestionController: controller.NewSuggestionController(sug, suggestionService, listService),
	}
	srv := server.New(cfg, container)

	return &testEnv{app: srv.GetApp(), sug: sug}
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestSmartSuggestionsSuccess(t *testing.T) {
	env := newTestEnv(t, false)
	env.sug.result = []suggester.RawSuggestion{
		{Name: "rice", Category: "pantry", Reason: "complementary", Priority: "medium"},
	}

	resp := postJSON(t, env.app, "/api/smart-suggestions",
		`{"items": [{"name": "chicken breast"}, {"name": "broccoli"}]}`)

	assert.Equal(t, 200, resp.StatusCode)

	var result []dto.SmartSuggestionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Len(t, result, 1)
	assert.Equal(t, "rice", result[0].Item.Name)
	assert.Equal(t, "pantry", result[0].Item.Category)
	assert.Equal(t, "complementary", result[0].Reason)
	assert.Equal(t, "medium", result[0].Priority)
	// Unit defaults to pcs when the collaborator omits it.
	if assert.NotNil(t, result[0].Item.Unit) {
		assert.Equal(t, "pcs", *result[0].Item.Unit)
	}

	assert.Equal(t, []string{"chicken breast", "broccoli"}, env.sug.lastReceived())
}

func TestSmartSuggestionsEmptyResultIsOK(t *testing.T) {
	env := newTestEnv(t, false)
	env.sug.result = []suggester.RawSuggestion{}

	resp := postJSON(t, env.app, "/api/smart-suggestions", `{"items": []}`)

	assert.Equal(t, 200, resp.StatusCode)

	var result []dto.SmartSuggestionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
}

func TestSmartSuggestionsRejectsNonArrayItems(t *testing.T) {
	env := newTestEnv(t, false)

	for _, body := range []string{
		`{"items": "not-an-array"}`,
		`{}`,
		`{"items": null}`,
	} {
		resp := postJSON(t, env.app, "/api/smart-suggestions", body)

		assert.Equal(t, 400, resp.StatusCode, "body: %s", body)

		var clientErr dto.ClientError
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&clientErr))
		assert.NotEmpty(t, clientErr.Error)
	}
}

func TestSmartSuggestionsUpstreamFailure(t *testing.T) {
	env := newTestEnv(t, false)
	env.sug.err = errors.New("model unavailable")

	resp := postJSON(t, env.app, "/api/smart-suggestions", `{"items": [{"name": "milk"}]}`)

	assert.Equal(t, 500, resp.StatusCode)

	var serverErr dto.ServerError
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&serverErr))
	assert.NotEmpty(t, serverErr.Error)
	assert.Contains(t, serverErr.Message, "model unavailable")
}

func TestListFlow(t *testing.T) {
	env := newTestEnv(t, false)

	// Create a list.
	resp := postJSON(t, env.app, "/api/list/v1", `{"name": "Weekly shop"}`)
	assert.Equal(t, 200, resp.StatusCode)

	var created serverutils.BaseResponse[dto.GroceryListResponse]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.True(t, created.Success)
	assert.Equal(t, "Weekly shop", created.Data.Name)

	// Add an item; category and unit come from the classifier.
	resp = postJSON(t, env.app, "/api/list/v1/items", `{"name": "chicken breast", "quantity": 2}`)
	assert.Equal(t, 200, resp.StatusCode)

	var added serverutils.BaseResponse[dto.GroceryListResponse]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&added))
	assert.Len(t, added.Data.Items, 1)
	assert.Equal(t, "meat", added.Data.Items[0].Category)

	// Remove it again.
	req := httptest.NewRequest("DELETE", "/api/list/v1/items/"+added.Data.Items[0].Id.String(), nil)
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var removed serverutils.BaseResponse[dto.GroceryListResponse]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&removed))
	assert.Len(t, removed.Data.Items, 0)
}

func TestAddItemWithoutListIsNoop(t *testing.T) {
	env := newTestEnv(t, false)

	resp := postJSON(t, env.app, "/api/list/v1/items", `{"name": "apples"}`)
	assert.Equal(t, 200, resp.StatusCode)

	// And the list endpoint still reports no active list.
	req := httptest.NewRequest("GET", "/api/list/v1", nil)
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestAddItemValidation(t *testing.T) {
	env := newTestEnv(t, false)
	postJSON(t, env.app, "/api/list/v1", `{}`)

	// Missing name.
	resp := postJSON(t, env.app, "/api/list/v1/items", `{"category": "dairy"}`)
	assert.Equal(t, 400, resp.StatusCode)

	// Category outside the closed enumeration.
	resp = postJSON(t, env.app, "/api/list/v1/items", `{"name": "ice cream", "category": "frozen"}`)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAutoSuggestRegeneratesOnListChange(t *testing.T) {
	env := newTestEnv(t, true)
	env.sug.result = []suggester.RawSuggestion{
		{Name: "rice", Category: "pantry", Reason: "complementary", Priority: "medium"},
	}

	postJSON(t, env.app, "/api/list/v1", `{}`)
	postJSON(t, env.app, "/api/list/v1/items", `{"name": "chicken breast"}`)

	// The consumer picks up the list change and settles the coordinator.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		req := httptest.NewRequest("GET", "/api/suggestion/v1", nil)
		resp, err := env.app.Test(req, -1)
		assert.NoError(t, err)

		// The list creation publishes a change event of its own, so wait
		// for the settlement that saw the added item.
		var snap serverutils.BaseResponse[dto.CoordinatorStateResponse]
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
		last := env.sug.lastReceived()
		if !snap.Data.Loading && len(snap.Data.Suggestions) > 0 &&
			len(last) == 1 && last[0] == "chicken breast" {
			assert.Equal(t, "rice", snap.Data.Suggestions[0].Item.Name)
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("coordinator never produced suggestions from the list change")
}

func TestClearEndpointResetsCoordinator(t *testing.T) {
	env := newTestEnv(t, false)
	env.sug.result = []suggester.RawSuggestion{
		{Name: "rice", Category: "pantry", Priority: "medium"},
	}

	postJSON(t, env.app, "/api/list/v1", `{}`)
	postJSON(t, env.app, "/api/list/v1/items", `{"name": "chicken breast"}`)

	resp := postJSON(t, env.app, "/api/suggestion/v1/generate", `{}`)
	assert.Equal(t, 202, resp.StatusCode)

	req := httptest.NewRequest("DELETE", "/api/suggestion/v1", nil)
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Idle regardless of how the outstanding generate settles.
	time.Sleep(50 * time.Millisecond)
	req = httptest.NewRequest("GET", "/api/suggestion/v1", nil)
	resp, err = env.app.Test(req, -1)
	assert.NoError(t, err)

	var snap serverutils.BaseResponse[dto.CoordinatorStateResponse]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.False(t, snap.Data.Loading)
	assert.Nil(t, snap.Data.Error)
	assert.Len(t, snap.Data.Suggestions, 0)
}
