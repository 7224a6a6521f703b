package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Endpoint paths, relative to the configured base address.
const (
	endpointLogin         = "/user/login/"
	endpointRegister      = "/user/register/"
	endpointInitUser      = "/user/init/"
	endpointAddExpense    = "/expense/add/"
	endpointListExpenses  = "/expense/list/"
	endpointDeleteExpense = "/expense/delete/"
	endpointAddIncome     = "/income/add/"
	endpointListIncomes   = "/income/list/"
	endpointDeleteIncome  = "/income/delete/"
	endpointGetProfile    = "/profile/get/"
	endpointUpdateProfile = "/profile/update/"
)

// HTTPClient is the net/http-backed implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*HTTPClient)

// WithTimeout sets the transport-level timeout for every request. The client
// itself enforces no other time bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient substitutes the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) {
		c.http = h
	}
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthToken sets or clears (empty string) the bearer token used by
// subsequent requests. In-flight requests are unaffected.
func (c *HTTPClient) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) authToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the shape the backend uses for error responses.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// request performs a POST of payload to path and decodes the response into
// out (skipped when out is nil). Non-2xx statuses and transport failures are
// normalized into *Error.
func (c *HTTPClient) request(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.authToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return newNetworkError()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeHTTPError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

// normalizeHTTPError builds an *Error from a non-2xx response: the JSON error
// body's message when parseable, the HTTP status text otherwise.
func normalizeHTTPError(status int, data []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Message != "" {
		return &Error{Message: eb.Message, Status: status, Fields: eb.Errors}
	}
	return &Error{Message: http.StatusText(status), Status: status}
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.request(ctx, endpointLogin, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.request(ctx, endpointRegister, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) InitUser(ctx context.Context) error {
	return c.request(ctx, endpointInitUser, struct{}{}, nil)
}

func (c *HTTPClient) AddExpense(ctx context.Context, req AddExpenseRequest) (*AddExpenseResponse, error) {
	var resp AddExpenseResponse
	if err := c.request(ctx, endpointAddExpense, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListExpenses(ctx context.Context, req ListRequest) (*ListExpensesResponse, error) {
	var resp ListExpensesResponse
	if err := c.request(ctx, endpointListExpenses, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteExpense(ctx context.Context, expenseID string) (*DeleteResponse, error) {
	var resp DeleteResponse
	payload := struct {
		ExpenseID string `json:"expense_id"`
	}{ExpenseID: expenseID}
	if err := c.request(ctx, endpointDeleteExpense, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) AddIncome(ctx context.Context, req AddIncomeRequest) (*AddIncomeResponse, error) {
	var resp AddIncomeResponse
	if err := c.request(ctx, endpointAddIncome, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListIncomes(ctx context.Context, req ListRequest) (*ListIncomesResponse, error) {
	var resp ListIncomesResponse
	if err := c.request(ctx, endpointListIncomes, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteIncome(ctx context.Context, incomeID string) (*DeleteResponse, error) {
	var resp DeleteResponse
	payload := struct {
		IncomeID string `json:"income_id"`
	}{IncomeID: incomeID}
	if err := c.request(ctx, endpointDeleteIncome, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*GetProfileResponse, error) {
	var resp GetProfileResponse
	if err := c.request(ctx, endpointGetProfile, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UpdateProfileResponse, error) {
	var resp UpdateProfileResponse
	if err := c.request(ctx, endpointUpdateProfile, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
