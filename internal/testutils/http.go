package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	apperrors "mission-control-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite drives a gin router in-process
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns a suite around an empty router in test mode
func SetupHTTPTest() *HTTPTestSuite {
	return NewHTTPTestSuite(nil)
}

// NewHTTPTestSuite wraps an already configured router, or a fresh one when router is nil
func NewHTTPTestSuite(router *gin.Engine) *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	if router == nil {
		router = gin.New()
	}
	return &HTTPTestSuite{Router: router}
}

// MakeRequest sends body, if any, as JSON and records the response
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeAuthorizedRequest(method, url, "", body)
}

// MakeAuthorizedRequest is MakeRequest with a bearer token. An empty token sends no Authorization header.
func (suite *HTTPTestSuite) MakeAuthorizedRequest(method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		payload = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, url, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// RouteCase is one request and the status and error kind it must produce
type RouteCase struct {
	Name   string
	Method string
	URL    string
	Token  string
	Body   interface{}
	Status int
	Kind   apperrors.Kind
}

// RunRouteCases sends every case as its own subtest
func (suite *HTTPTestSuite) RunRouteCases(t *testing.T, cases []RouteCase) {
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			recorder := suite.MakeAuthorizedRequest(tc.Method, tc.URL, tc.Token, tc.Body)
			require.Equal(t, tc.Status, recorder.Code, recorder.Body.String())
			if tc.Kind == "" {
				return
			}
			var payload struct {
				Kind apperrors.Kind `json:"kind"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, tc.Kind, payload.Kind)
		})
	}
}

// AssertJSONResponse checks status and content type, then decodes the body into target when given
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, jsonContentType, recorder.Header().Get("Content-Type"))
	if target == nil {
		return
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

// AssertErrorResponse checks status and that the error message contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	if expectedMessage != "" {
		assert.Contains(t, payload.Error, expectedMessage)
	}
}
