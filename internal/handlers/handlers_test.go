package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/accounting_mappings/internal/core/services"
	"github.com/SscSPs/accounting_mappings/internal/handlers"
	"github.com/SscSPs/accounting_mappings/internal/middleware"
	"github.com/SscSPs/accounting_mappings/internal/platform/config"
	"github.com/SscSPs/accounting_mappings/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "accounting-mappings-test"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// generateTestToken creates a signed JWT accepted by AuthMiddleware.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{SearchPageSize: 2, SearchMaxPageSize: 10}
	container := services.NewServiceContainer(cfg, memory.NewStore().Provider())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger), middleware.AuthMiddleware(testSecret, testIssuer))
	ws := suite.router.Group("/api/v1/workspaces/:workspace_id", middleware.WorkspaceMiddleware())
	handlers.RegisterWorkspaceRoutes(ws, container)

	suite.token = suite.generateTestToken("user-1")
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

// seed pushes attributes through the sync endpoints.
func (suite *HandlerTestSuite) seed() {
	w := suite.do(http.MethodPost, "/api/v1/workspaces/1/expense_attributes", []gin.H{
		{"attribute_type": "PROJECT", "value": "Alpha", "source_id": "p1"},
		{"attribute_type": "PROJECT", "value": "Beta", "source_id": "p2"},
		{"attribute_type": "EMPLOYEE", "value": "ashwin@example.com", "source_id": "e1"},
		{"attribute_type": "EMPLOYEE", "value": "bea@example.com", "source_id": "e2"},
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodPost, "/api/v1/workspaces/1/destination_attributes", []gin.H{
		{"attribute_type": "CUSTOMER", "value": "Acme", "destination_id": "c1"},
		{"attribute_type": "CUSTOMER", "value": "Globex", "destination_id": "c2"},
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestMappingLifecycle_LatestDestinationWins() {
	suite.seed()

	for _, dst := range []string{"Acme", "Globex"} {
		w := suite.do(http.MethodPost, "/api/v1/workspaces/1/mappings", gin.H{
			"source_type": "PROJECT", "destination_type": "CUSTOMER",
			"source_value": "Alpha", "destination_value": dst,
		})
		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}

	w := suite.do(http.MethodGet, "/api/v1/workspaces/1/mappings?source_type=PROJECT&destination_type=CUSTOMER", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var mappings []struct {
		Source      struct{ Value string } `json:"source"`
		Destination struct{ Value string } `json:"destination"`
	}
	suite.decode(w, &mappings)
	suite.Require().Len(mappings, 1)
	suite.Equal("Alpha", mappings[0].Source.Value)
	suite.Equal("Globex", mappings[0].Destination.Value)

	w = suite.do(http.MethodGet, "/api/v1/workspaces/1/mappings/stats?source_type=PROJECT&destination_type=CUSTOMER", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var stats map[string]any
	suite.decode(w, &stats)
	suite.Equal(float64(2), stats["all_attributes_count"])
	suite.Equal(float64(1), stats["mapped_attributes_count"])
	suite.Equal(float64(1), stats["unmapped_attributes_count"])
	suite.Equal("50", stats["mapped_percentage"])
}

func (suite *HandlerTestSuite) TestCreateMapping_MissingDestination() {
	suite.seed()

	w := suite.do(http.MethodPost, "/api/v1/workspaces/1/mappings", gin.H{
		"source_type": "PROJECT", "destination_type": "CUSTOMER",
		"source_value": "Alpha", "destination_value": "Nonexistent",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var body map[string]string
	suite.decode(w, &body)
	suite.Equal("destination", body["entity"])
	suite.Equal("Nonexistent", body["value"])
	suite.Contains(body["error"], "Nonexistent")
}

func (suite *HandlerTestSuite) TestMalformedQueryParameters() {
	for _, path := range []string{
		"/api/v1/workspaces/1/mappings",
		"/api/v1/workspaces/1/mappings?source_type=PROJECT&table_dimension=4",
		"/api/v1/workspaces/1/mappings?source_type=PROJECT&table_dimension=two",
		"/api/v1/workspaces/1/mappings?source_type=PROJECT&source_active=maybe",
		"/api/v1/workspaces/1/mappings/attributes?source_type=PROJECT&mapping_source_alphabets=A&limit=abc",
		"/api/v1/workspaces/1/mappings/attributes?source_type=PROJECT&mapping_source_alphabets=A&mapped=perhaps",
		"/api/v1/workspaces/1/mappings/attributes?source_type=PROJECT&mapping_source_alphabets=A&nextToken=%21%21",
		"/api/v1/workspaces/1/mappings/attributes?source_type=PROJECT",
		"/api/v1/workspaces/1/mappings/stats",
		"/api/v1/workspaces/1/destination_attributes/search?destination_attribute_type=CUSTOMER",
	} {
		w := suite.do(http.MethodGet, path, nil)
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func (suite *HandlerTestSuite) TestBulkSettings_PartialSuccess() {
	w := suite.do(http.MethodPost, "/api/v1/workspaces/1/mappings/settings", []gin.H{
		{"source_field": "PROJECT", "destination_field": "CUSTOMER", "import_to_fyle": true},
		{"source_field": "", "destination_field": "CLASS"},
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code, w.Body.String())

	var body struct {
		Message string           `json:"message"`
		Errors  []map[string]any `json:"errors"`
		Saved   []map[string]any `json:"saved"`
	}
	suite.decode(w, &body)
	suite.Require().Len(body.Errors, 1)
	suite.Equal(float64(1), body.Errors[0]["index"])
	suite.Require().Len(body.Saved, 1)
	suite.Equal("PROJECT", body.Saved[0]["source_field"])

	w = suite.do(http.MethodGet, "/api/v1/workspaces/1/mappings/settings", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var settings []map[string]any
	suite.decode(w, &settings)
	suite.Len(settings, 1)
}

func (suite *HandlerTestSuite) TestEmptySettingsBatch() {
	w := suite.do(http.MethodPost, "/api/v1/workspaces/1/mappings/settings", []gin.H{})
	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestEmployeeAttributeSearch_DefaultsToEmployees() {
	suite.seed()

	w := suite.do(http.MethodGet, "/api/v1/workspaces/1/mappings/employee/attributes?all_alphabets=true&mapped=false", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var page struct {
		Results []struct {
			AttributeType string `json:"attribute_type"`
			Value         string `json:"value"`
		} `json:"results"`
		NextToken *string `json:"nextToken"`
	}
	suite.decode(w, &page)
	suite.Require().Len(page.Results, 2)
	suite.Equal("EMPLOYEE", page.Results[0].AttributeType)
	suite.Equal("ashwin@example.com", page.Results[0].Value)
	suite.Nil(page.NextToken)
}

func (suite *HandlerTestSuite) TestDestinationSearch() {
	suite.seed()

	w := suite.do(http.MethodGet, "/api/v1/workspaces/1/destination_attributes/search?destination_attribute_type=CUSTOMER&destination_attribute_value=glob", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var attrs []map[string]any
	suite.decode(w, &attrs)
	suite.Require().Len(attrs, 1)
	suite.Equal("Globex", attrs[0]["value"])

	w = suite.do(http.MethodGet, "/api/v1/workspaces/1/destination_attributes/search?destination_attribute_type=CUSTOMER&destination_attribute_value=", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var everything []map[string]any
	suite.decode(w, &everything)
	suite.Len(everything, 2, "an empty value matches every attribute of the type")
}

func (suite *HandlerTestSuite) TestWorkspaceIsolation() {
	suite.seed()

	w := suite.do(http.MethodPost, "/api/v1/workspaces/2/mappings", gin.H{
		"source_type": "PROJECT", "destination_type": "CUSTOMER",
		"source_value": "Alpha", "destination_value": "Acme",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var body map[string]string
	suite.decode(w, &body)
	suite.Equal("source", body["entity"])
}

func (suite *HandlerTestSuite) TestRejectsBadWorkspaceAndMissingToken() {
	w := suite.do(http.MethodGet, "/api/v1/workspaces/abc/mappings/settings", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/1/mappings/settings", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}
