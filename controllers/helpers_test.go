package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"restaurant-backend/controllers"
	"restaurant-backend/models"
	"restaurant-backend/routes"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubCategoryService serves canned responses for the category controller.
type stubCategoryService struct {
	categories []*models.Category
	category   *models.Category
	err        error
}

func (s *stubCategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) Create(ctx context.Context, req services.CategoryWriteRequest) (*models.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Update(ctx context.Context, id string, req services.CategoryWriteRequest) (*models.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Delete(ctx context.Context, id string) error {
	return s.err
}

// stubProductService serves canned responses for the product controller.
type stubProductService struct {
	list    []map[string]interface{}
	flat    map[string]interface{}
	record  *models.Product
	err     error
	lastReq services.ProductWriteRequest
}

func (s *stubProductService) List(ctx context.Context) ([]map[string]interface{}, error) {
	return s.list, s.err
}

func (s *stubProductService) Create(ctx context.Context, req services.ProductWriteRequest) (map[string]interface{}, error) {
	s.lastReq = req
	return s.flat, s.err
}

func (s *stubProductService) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	return s.flat, s.err
}

func (s *stubProductService) GetRecord(ctx context.Context, id string) (*models.Product, error) {
	return s.record, s.err
}

func (s *stubProductService) Update(ctx context.Context, id string, req services.ProductWriteRequest) (map[string]interface{}, error) {
	s.lastReq = req
	return s.flat, s.err
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.err
}

// stubPropertyService records the property calls the controller makes.
type stubPropertyService struct {
	err       error
	added     []services.AddPropertyInput
	edited    []string
	deleted   []string
	recursive bool
}

func (s *stubPropertyService) AddProperty(ctx context.Context, product *models.Product, in services.AddPropertyInput) error {
	if s.err != nil {
		return s.err
	}
	s.added = append(s.added, in)
	product.Properties = append(product.Properties, models.CustomProperty{Name: in.Name, Value: in.Value})
	return nil
}

func (s *stubPropertyService) EditProperty(ctx context.Context, product *models.Product, name string, patch services.PropertyPatch) error {
	if s.err != nil {
		return s.err
	}
	s.edited = append(s.edited, name)
	return nil
}

func (s *stubPropertyService) DeleteProperty(ctx context.Context, product *models.Product, name string, recursive bool) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, name)
	s.recursive = recursive
	return nil
}

func (s *stubPropertyService) GetProperties(product *models.Product) map[string]models.PropertyValue {
	props := make(map[string]models.PropertyValue, len(product.Properties))
	for _, p := range product.Properties {
		props[p.Name] = p.Value
	}
	return props
}

// stubCatalogService serves a canned snapshot for the mobile controller.
type stubCatalogService struct {
	version  int64
	snapshot map[string]interface{}
	err      error
}

func (s *stubCatalogService) Version(ctx context.Context) int64 {
	return s.version
}

func (s *stubCatalogService) Snapshot(ctx context.Context) (map[string]interface{}, error) {
	return s.snapshot, s.err
}

// stubOrderService records placed orders.
type stubOrderService struct {
	order *models.Order
	err   error
	last  services.OrderSubmission
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, req services.OrderSubmission) (*models.Order, error) {
	s.last = req
	return s.order, s.err
}

func newAdminRouter(categories services.CategoryAPI, products services.ProductAPI, properties services.PropertyAPI) *gin.Engine {
	r := gin.New()
	routes.RegisterAdminRoutes(r,
		controllers.NewCategoryController(categories, nil),
		controllers.NewProductController(products, nil),
		controllers.NewPropertyController(products, properties, nil))
	return r
}

func newMobileRouter(catalog services.CatalogAPI, orders services.OrderAPI, mws ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	routes.RegisterMobileRoutes(r, controllers.NewMobileController(catalog, orders), mws...)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
