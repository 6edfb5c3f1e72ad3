package dto

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindJSON(t *testing.T, body string, dest interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("PATCH", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(dest)
}

const validBasicInfo = `{
	"name": "Lakeview",
	"state": "MH",
	"address": "12 Lake Road",
	"completionDate": "2026-06-30",
	"projectType": "residential",
	"city": "Pune",
	"landStatus": "available",
	"reraNumber": "P52100001234"
}`

func TestBasicInfoRequestBinding(t *testing.T) {
	t.Run("complete payload binds", func(t *testing.T) {
		var req BasicInfoRequest
		require.NoError(t, bindJSON(t, validBasicInfo, &req))

		info := req.ToModel()
		assert.Equal(t, "Lakeview", info.Name)
		assert.Equal(t, "residential", info.ProjectType)
		assert.Equal(t, "2026-06-30", info.CompletionDate)
	})

	t.Run("missing field fails the whole section", func(t *testing.T) {
		body := strings.Replace(validBasicInfo, `"city": "Pune",`, "", 1)
		var req BasicInfoRequest
		assert.Error(t, bindJSON(t, body, &req))
	})

	t.Run("project type outside the enum fails", func(t *testing.T) {
		body := strings.Replace(validBasicInfo, "residential", "industrial", 1)
		var req BasicInfoRequest
		assert.Error(t, bindJSON(t, body, &req))
	})

	t.Run("malformed date fails", func(t *testing.T) {
		body := strings.Replace(validBasicInfo, "2026-06-30", "soon", 1)
		var req BasicInfoRequest
		assert.Error(t, bindJSON(t, body, &req))
	})
}

const validPropertyInfo = `{
	"totalPlots": 40,
	"totalShops": 0,
	"totalOffices": 0,
	"totalFloors": 12,
	"engineerName": "S. Kulkarni",
	"architectName": "R. Mehta",
	"estimatedCost": 125000000.50
}`

func TestPropertyInfoRequestBinding(t *testing.T) {
	t.Run("zero counts are legitimate values", func(t *testing.T) {
		var req PropertyInfoRequest
		require.NoError(t, bindJSON(t, validPropertyInfo, &req))

		info := req.ToModel()
		assert.Equal(t, 0, info.TotalShops)
		assert.Equal(t, 40, info.TotalPlots)
		assert.Equal(t, 125000000.50, info.EstimatedCost)
	})

	t.Run("omitted count fails", func(t *testing.T) {
		body := strings.Replace(validPropertyInfo, `"totalShops": 0,`, "", 1)
		var req PropertyInfoRequest
		assert.Error(t, bindJSON(t, body, &req))
	})

	t.Run("non-numeric cost fails", func(t *testing.T) {
		body := strings.Replace(validPropertyInfo, "125000000.50", `"a lot"`, 1)
		var req PropertyInfoRequest
		assert.Error(t, bindJSON(t, body, &req))
	})
}
