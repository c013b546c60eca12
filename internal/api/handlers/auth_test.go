package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/campusconnect/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(map[string]interface{})
		setup          func(t *testing.T, ts *testutil.TestServer)
		expectedStatus int
		expectedError  string
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:           "successful signup",
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.AuthResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "Account created successfully", result.Message)
				assert.NotEmpty(t, result.Token)
				assert.NotEmpty(t, result.User.ID)
			},
		},
		{
			name:           "short password",
			mutate:         func(m map[string]interface{}) { m["password"] = "short" },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Password must be at least 8 characters",
		},
		{
			name:           "age out of range",
			mutate:         func(m map[string]interface{}) { m["age"] = 31 },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Age must be between 18 and 30",
		},
		{
			name:           "missing email",
			mutate:         func(m map[string]interface{}) { delete(m, "email") },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Required fields are missing",
		},
		{
			name:           "missing university",
			mutate:         func(m map[string]interface{}) { delete(m, "university") },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "University is required",
		},
		{
			name: "duplicate email",
			setup: func(t *testing.T, ts *testutil.TestServer) {
				testutil.NewUserBuilder().WithEmail("taken@campus.edu").Build(t, ts.Repos.User)
			},
			mutate:         func(m map[string]interface{}) { m["email"] = "taken@campus.edu" },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "User with this email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testutil.NewTestServer(t)

			if tt.setup != nil {
				tt.setup(t, ts)
			}

			payload := testutil.NewUserBuilder().SignupRequest()
			if tt.mutate != nil {
				tt.mutate(payload)
			}

			resp := postJSON(t, ts.APIURL("/auth/signup"), payload)
			defer resp.Body.Close()

			if tt.expectedError != "" {
				testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedError)
				return
			}

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Signin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("signin@campus.edu").
		WithPassword("correctpassword").
		Build(t, ts.Repos.User)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful signin",
			request: map[string]string{
				"email":    user.Email,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"email":    user.Email,
				"password": "wrongpassword",
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password",
		},
		{
			name: "unknown email",
			request: map[string]string{
				"email":    "nobody@campus.edu",
				"password": "anypassword",
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password",
		},
		{
			name: "missing password",
			request: map[string]string{
				"email": user.Email,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/auth/signin"), tt.request)
			defer resp.Body.Close()

			if tt.expectedError != "" {
				testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedError)
				return
			}

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var result testutil.AuthResponse
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Equal(t, "Sign in successful", result.Message)
			assert.NotEmpty(t, result.Token)
			assert.Equal(t, user.Email, result.User.Email)
		})
	}
}

func TestAuthHandler_Signin_ErrorsAreIndistinguishable(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().
		WithEmail("enum@campus.edu").
		WithPassword("correctpassword").
		Build(t, ts.Repos.User)

	wrongPassword := postJSON(t, ts.APIURL("/auth/signin"), map[string]string{
		"email":    user.Email,
		"password": "wrongpassword",
	})
	defer wrongPassword.Body.Close()

	unknownEmail := postJSON(t, ts.APIURL("/auth/signin"), map[string]string{
		"email":    "ghost@campus.edu",
		"password": "wrongpassword",
	})
	defer unknownEmail.Body.Close()

	testutil.AssertErrorResponse(t, wrongPassword, http.StatusUnauthorized, "Invalid email or password")
	testutil.AssertErrorResponse(t, unknownEmail, http.StatusUnauthorized, "Invalid email or password")
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().Build(t, ts.Repos.User)

	readAck := func(resp *http.Response) string {
		var payload struct {
			Message string `json:"message"`
		}
		testutil.AssertJSONResponse(t, resp, &payload)
		return payload.Message
	}

	t.Run("same ack for known and unknown email", func(t *testing.T) {
		known := postJSON(t, ts.APIURL("/auth/forgot-password"), map[string]string{"email": user.Email})
		defer known.Body.Close()
		unknown := postJSON(t, ts.APIURL("/auth/forgot-password"), map[string]string{"email": "ghost@campus.edu"})
		defer unknown.Body.Close()

		assert.Equal(t, http.StatusOK, known.StatusCode)
		assert.Equal(t, http.StatusOK, unknown.StatusCode)
		assert.Equal(t, readAck(known), readAck(unknown))
	})

	t.Run("missing email", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/forgot-password"), map[string]string{})
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Email is required")
	})
}
