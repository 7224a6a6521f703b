// Package api implements the HTTP client for the CashTrack backend. All
// operations are JSON-over-HTTP POST requests against a configurable base
// address; failures are normalized into *Error (see errors.go).
package api

import "context"

// Client defines one method per backend operation.
//
// Contract:
//   - Every method honors context cancellation/timeouts.
//   - Non-2xx responses and transport failures come back as *Error; success
//     bodies are decoded into the typed response.
//   - SetAuthToken changes the bearer token attached to subsequent calls; it
//     has no effect on requests already in flight. An empty token clears it.
type Client interface {
	SetAuthToken(token string)

	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	// InitUser performs the best-effort post-login initialization call.
	InitUser(ctx context.Context) error

	AddExpense(ctx context.Context, req AddExpenseRequest) (*AddExpenseResponse, error)
	ListExpenses(ctx context.Context, req ListRequest) (*ListExpensesResponse, error)
	DeleteExpense(ctx context.Context, expenseID string) (*DeleteResponse, error)

	AddIncome(ctx context.Context, req AddIncomeRequest) (*AddIncomeResponse, error)
	ListIncomes(ctx context.Context, req ListRequest) (*ListIncomesResponse, error)
	DeleteIncome(ctx context.Context, incomeID string) (*DeleteResponse, error)

	GetProfile(ctx context.Context) (*GetProfileResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UpdateProfileResponse, error)
}
