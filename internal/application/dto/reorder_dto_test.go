package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencia-api/internal/application/dto"
)

// Cada recurso identifica sus filas en el body de reorder con su propio
// nombre de campo (service_id, plan_id, product_id, slug).

func TestServiceReorderRequest_DecodificaServiceID(t *testing.T) {
	var in dto.ServiceReorderRequest
	body := `{"order":[{"service_id":"seo","order":1},{"service_id":"branding","order":0}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	items := in.Items()
	require.Len(t, items, 2)
	assert.Equal(t, dto.ReorderItem{BusinessID: "seo", Order: 1}, items[0])
	assert.Equal(t, dto.ReorderItem{BusinessID: "branding", Order: 0}, items[1])
}

func TestPlanReorderRequest_DecodificaPlanID(t *testing.T) {
	var in dto.PlanReorderRequest
	body := `{"order":[{"plan_id":"premium","order":2}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	items := in.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "premium", items[0].BusinessID)
}

func TestProductReorderRequest_DecodificaProductID(t *testing.T) {
	var in dto.ProductReorderRequest
	body := `{"order":[{"product_id":"kit-marca","order":3}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	items := in.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "kit-marca", items[0].BusinessID)
}

func TestBlogPostReorderRequest_DecodificaSlug(t *testing.T) {
	var in dto.BlogPostReorderRequest
	body := `{"order":[{"slug":"episodio-1","order":0}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	items := in.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "episodio-1", items[0].BusinessID)
}
