package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite drives a gin router in-process
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns a bare router in test mode; callers register their own routes
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body, if any, as JSON
func (suite *HTTPTestSuite) MakeRequest(method, target string, body interface{}) *httptest.ResponseRecorder {
	return suite.serve(newJSONRequest(method, target, body))
}

// MakeRequestWithHeaders is MakeRequest with extra headers such as Authorization
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	req := newJSONRequest(method, target, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return suite.serve(req)
}

// MakeRequestWithCookies is MakeRequest carrying a session cookie or others
func (suite *HTTPTestSuite) MakeRequestWithCookies(method, target string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := newJSONRequest(method, target, body)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return suite.serve(req)
}

// MakeFormRequest submits url-encoded form values, as an HTML form would
func (suite *HTTPTestSuite) MakeFormRequest(method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return suite.serve(req)
}

func (suite *HTTPTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

func newJSONRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		// Raw strings let tests send malformed payloads
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			encoded, err := json.Marshal(body)
			if err != nil {
				panic(err)
			}
			reader = bytes.NewReader(encoded)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// FindCookie returns the named cookie set on the response, or nil
func FindCookie(recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// AssertJSONResponse checks status and content type, then decodes into target when non-nil
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, jsonContentType, recorder.Header().Get("Content-Type"))
	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse checks status and that the error field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
}

// AssertSuccessResponse checks status and content type only
func AssertSuccessResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, jsonContentType, recorder.Header().Get("Content-Type"))
}
