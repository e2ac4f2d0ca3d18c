package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"docintel-be/internal/entity"
	"docintel-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	return string(body)
}

func TestMetrics_ObserveUsageEvents(t *testing.T) {
	m := New()
	m.SetUsage(entity.Usage{
		UploadsUsed: 1, UploadsLimit: 10,
		ChatsUsed: 2, ChatsLimit: 20,
		StorageUsed: 3, StorageLimit: 30,
		Period: entity.BillingPeriodMonthly,
	})

	m.Observe(events.New(events.UsageUpdated, map[string]interface{}{"kind": "chats", "used": float64(21), "limit": float64(20)}))
	m.Observe(events.New(events.UsageExceeded, map[string]interface{}{"kind": "chats"}))

	app := fiber.New()
	app.Get("/metrics", m.Handler())
	body := scrape(t, m, app)

	assert.Contains(t, body, `docintel_usage_used{kind="chats"} 21`)
	assert.Contains(t, body, `docintel_usage_limit{kind="uploads"} 10`)
	assert.Contains(t, body, `docintel_quota_exceeded_total{kind="chats"} 1`)
	assert.Contains(t, body, `docintel_workspace_events_total{type="USAGE_UPDATED"} 1`)
}

func TestMetrics_MiddlewareLabelsRoutePattern(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())
	app.Get("/documents/:id", func(ctx *fiber.Ctx) error { return ctx.SendString(ctx.Params("id")) })

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/documents/"+id, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	body := scrape(t, m, app)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/documents/:id",status="200"} 2`)
}
