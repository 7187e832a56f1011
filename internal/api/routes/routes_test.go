package routes_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"entry-tracker-backend/internal/api/routes"
	"entry-tracker-backend/internal/auth"
	"entry-tracker-backend/internal/config"
	"entry-tracker-backend/internal/service"
	"entry-tracker-backend/internal/testutils"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ScenarioTestSuite drives the full router over in-memory stores
type ScenarioTestSuite struct {
	suite.Suite
	db        *memoryDB
	httpSuite *testutils.HTTPTestSuite
}

func (suite *ScenarioTestSuite) SetupTest() {
	suite.db = newMemoryDB()
	cfg := &config.Config{
		SessionStore:           config.SessionStoreMemory,
		SessionCookieName:      "entry_session",
		SessionIdleTimeout:     2 * time.Hour,
		SessionAbsoluteTimeout: 24 * time.Hour,
		PasswordHashIterations: 1000,
	}

	suite.httpSuite = testutils.SetupHTTPTest()
	router, _, err := routes.NewRouter(routes.Dependencies{
		Users:     memoryUsers{suite.db},
		Companies: memoryCompanies{suite.db},
		Tasks:     memoryTasks{suite.db},
		Sessions:  auth.NewMemoryStore(),
		Database:  suite.db,
	}, cfg)
	suite.Require().NoError(err)
	suite.httpSuite.Router = router
}

func (suite *ScenarioTestSuite) signup(username, email string) *http.Cookie {
	recorder := suite.httpSuite.MakeFormRequest(http.MethodPost, "/api/v1/auth/signup", url.Values{
		"username": {username}, "email": {email}, "password": {"s3cret-" + username},
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())
	cookie := testutils.FindCookie(recorder, "entry_session")
	suite.Require().NotNil(cookie)
	return cookie
}

func (suite *ScenarioTestSuite) login(email, password string) *http.Cookie {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": email, "password": password})
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	return testutils.FindCookie(recorder, "entry_session")
}

func (suite *ScenarioTestSuite) as(cookie *http.Cookie, method, target string, body interface{}) (int, string) {
	recorder := suite.httpSuite.MakeRequestWithCookies(method, target, body, cookie)
	return recorder.Code, recorder.Body.String()
}

func (suite *ScenarioTestSuite) TestAliceLifecycle() {
	t := suite.T()
	alice := suite.signup("alice", "a@x.com")

	recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodPost, "/api/v1/companies",
		map[string]string{"name": "Acme"}, alice)
	var company service.CompanyResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &company)

	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodPost,
		fmt.Sprintf("/api/v1/companies/%d/tasks", company.ID), map[string]string{"theme": "Why Acme?"}, alice)
	var task service.TaskResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &task)
	assert.Empty(t, task.Content)

	taskURL := fmt.Sprintf("/api/v1/tasks/%d", task.ID)
	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodPut, taskURL,
		map[string]string{"content": "Because culture"}, alice)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &task)
	assert.Equal(t, "Because culture", task.Content)

	code, _ := suite.as(alice, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, code)

	// a second client with no session
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, taskURL, nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "authentication required")
	// the logged-out cookie is dead too
	code, _ = suite.as(alice, http.MethodDelete, taskURL, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	alice = suite.login("a@x.com", "s3cret-alice")
	code, _ = suite.as(alice, http.MethodDelete, fmt.Sprintf("/api/v1/companies/%d", company.ID), nil)
	require.Equal(t, http.StatusOK, code)

	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodGet, "/api/v1/companies", nil, alice)
	var list service.CompanyListResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &list)
	assert.NotNil(t, list.Companies)
	assert.Empty(t, list.Companies)
	assert.Equal(t, 0, suite.db.taskCount())
}

func (suite *ScenarioTestSuite) TestCrossTenantIsolation() {
	t := suite.T()
	alice := suite.signup("alice", "a@x.com")
	bob := suite.signup("bob", "b@x.com")

	recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodPost, "/api/v1/companies",
		map[string]string{"name": "Acme"}, alice)
	var company service.CompanyResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &company)
	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodPost,
		fmt.Sprintf("/api/v1/companies/%d/tasks", company.ID), map[string]string{"theme": "Why Acme?"}, alice)
	var task service.TaskResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &task)

	companyURL := fmt.Sprintf("/api/v1/companies/%d", company.ID)
	taskURL := fmt.Sprintf("/api/v1/tasks/%d", task.ID)
	_, missingBody := suite.as(bob, http.MethodGet, "/api/v1/companies/999999", nil)

	attempts := []struct {
		method string
		target string
		body   interface{}
	}{
		{http.MethodGet, companyURL, nil},
		{http.MethodDelete, companyURL, nil},
		{http.MethodGet, companyURL + "/tasks", nil},
		{http.MethodPost, companyURL + "/tasks", map[string]string{"theme": "Sneaky"}},
		{http.MethodGet, taskURL, nil},
		{http.MethodPut, taskURL, map[string]string{"content": "pwned"}},
		{http.MethodDelete, taskURL, nil},
	}
	for _, a := range attempts {
		code, body := suite.as(bob, a.method, a.target, a.body)
		assert.Equal(t, http.StatusNotFound, code, "%s %s", a.method, a.target)
		assert.Equal(t, missingBody, body, "%s %s", a.method, a.target)
	}

	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodGet, "/api/v1/companies", nil, bob)
	var bobs service.CompanyListResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &bobs)
	assert.Empty(t, bobs.Companies)

	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodGet, companyURL, nil, alice)
	var detail service.CompanyDetailResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &detail)
	require.Len(t, detail.Tasks, 1)
	assert.Empty(t, detail.Tasks[0].Content)
}

func (suite *ScenarioTestSuite) TestDeniedAccessLogNamesCaller() {
	hook := test.NewGlobal()
	prevLevel := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer func() {
		logrus.SetLevel(prevLevel)
		hook.Reset()
	}()

	alice := suite.signup("alice", "a@x.com")
	bob := suite.signup("bob", "b@x.com")
	recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodPost, "/api/v1/companies",
		map[string]string{"name": "Acme"}, alice)
	var company service.CompanyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &company)
	hook.Reset()

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, fmt.Sprintf("/api/v1/companies/%d", company.ID), nil,
		map[string]string{"Authorization": "Bearer " + bob.Value, "X-Request-ID": "req-bob-1"})
	suite.Require().Equal(http.StatusNotFound, recorder.Code)

	var denial *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Company access denied to non-owner" {
			denial = entry
		}
	}
	suite.Require().NotNil(denial)
	suite.Equal("bob", denial.Data["user"])
	suite.Equal("req-bob-1", denial.Data["request_id"])
}

func (suite *ScenarioTestSuite) TestStaleCookieWithValidBearer() {
	alice := suite.signup("alice", "a@x.com")
	code, _ := suite.as(alice, http.MethodPost, "/api/v1/auth/logout", nil)
	suite.Require().Equal(http.StatusOK, code)
	bob := suite.signup("bob", "b@x.com")

	req := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/auth/me", nil, map[string]string{
		"Cookie":        alice.Name + "=" + alice.Value,
		"Authorization": "Bearer " + bob.Value,
	})

	var me auth.UserResponse
	testutils.AssertJSONResponse(suite.T(), req, http.StatusOK, &me)
	suite.Equal("bob", me.Username)
}

func (suite *ScenarioTestSuite) TestLogoutAfterSessionEndedStillClearsCookie() {
	alice := suite.signup("alice", "a@x.com")
	code, _ := suite.as(alice, http.MethodPost, "/api/v1/auth/logout", nil)
	suite.Require().Equal(http.StatusOK, code)

	recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodPost, "/api/v1/auth/logout", nil, alice)

	suite.Equal(http.StatusOK, recorder.Code)
	cookie := testutils.FindCookie(recorder, "entry_session")
	suite.Require().NotNil(cookie)
	suite.Less(cookie.MaxAge, 0)
}

func (suite *ScenarioTestSuite) TestDuplicateSignupCreatesNothing() {
	suite.signup("alice", "a@x.com")

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/auth/signup",
		map[string]string{"username": "alice", "email": "other@x.com", "password": "p"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
	suite.Nil(testutils.FindCookie(recorder, "entry_session"))

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/auth/signup",
		map[string]string{"username": "alice2", "email": "a@x.com", "password": "p"})
	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *ScenarioTestSuite) TestHealthAndUnknownRoute() {
	suite.Equal(http.StatusOK, suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil).Code)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/nope", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.NotEmpty(recorder.Header().Get("X-Request-ID"))
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}
