package api

import (
	"encoding/json"
	"time"
)

// Date is a timestamp that tolerates both RFC 3339 values and bare
// "YYYY-MM-DD" dates on the wire. It marshals back as RFC 3339.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.RFC3339))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return err
		}
	}
	d.Time = t
	return nil
}

// User is the backend's account record as returned by login.
// Expiration is the session expiry in epoch seconds.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	RootID      string `json:"root_id"`
	IsActivated bool   `json:"is_activated"`
	IsAdmin     bool   `json:"is_admin"`
	Expiration  int64  `json:"expiration"`
	State       string `json:"state"`
}

type Expense struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        Date    `json:"date"`
	Description string  `json:"description"`
	CreatedAt   Date    `json:"created_at"`
	UpdatedAt   Date    `json:"updated_at"`
}

type Income struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        Date    `json:"date"`
	Description string  `json:"description"`
	CreatedAt   Date    `json:"created_at"`
	UpdatedAt   Date    `json:"updated_at"`
}

type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type AddExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        Date    `json:"date"`
	Description string  `json:"description"`
}

type AddIncomeRequest struct {
	Amount      float64 `json:"amount"`
	Date        Date    `json:"date"`
	Description string  `json:"description"`
}

// ListRequest selects one page of a resource listing.
type ListRequest struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// MessageReport is the element shape the backend uses for mutation
// confirmations inside the reports envelope.
type MessageReport struct {
	Message string `json:"message"`
}

type ExpenseReport struct {
	Message string   `json:"message"`
	Expense *Expense `json:"expense"`
}

type IncomeReport struct {
	Message string  `json:"message"`
	Income  *Income `json:"income"`
}

type ProfileReport struct {
	Message string   `json:"message"`
	Profile *Profile `json:"profile"`
}

type AddExpenseResponse struct {
	Status  int             `json:"status"`
	Reports []ExpenseReport `json:"reports"`
}

type ListExpensesResponse struct {
	Status  int       `json:"status"`
	Reports []Expense `json:"reports"`
}

type AddIncomeResponse struct {
	Status  int            `json:"status"`
	Reports []IncomeReport `json:"reports"`
}

type ListIncomesResponse struct {
	Status  int      `json:"status"`
	Reports []Income `json:"reports"`
}

type DeleteResponse struct {
	Status  int             `json:"status"`
	Reports []MessageReport `json:"reports"`
}

type GetProfileResponse struct {
	Status  int       `json:"status"`
	Reports []Profile `json:"reports"`
}

type UpdateProfileResponse struct {
	Status  int             `json:"status"`
	Reports []ProfileReport `json:"reports"`
}
