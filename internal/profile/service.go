// Package profile holds the user's profile record fetched from the backend,
// with the same loading/error surface as the resource collections.
package profile

import (
	"context"
	"sync"

	"github.com/cashtrack/cashtrack/internal/api"
)

type Service struct {
	client api.Client

	mu      sync.Mutex
	profile *api.Profile
	loading bool
	lastErr string
}

func NewService(client api.Client) *Service {
	return &Service{client: client}
}

// Profile returns the cached record, nil before the first successful Fetch.
func (s *Service) Profile() *api.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Service) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Fetch loads the profile. The backend wraps it as the first element of the
// reports envelope; an empty envelope leaves the cached record untouched.
func (s *Service) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	resp, err := s.client.GetProfile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	if len(resp.Reports) > 0 {
		p := resp.Reports[0]
		s.profile = &p
	}
	return nil
}

// Update changes the profile's name fields and replaces the cached record
// from the confirmation response.
func (s *Service) Update(ctx context.Context, firstName, lastName string) error {
	resp, err := s.client.UpdateProfile(ctx, api.UpdateProfileRequest{
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
	if len(resp.Reports) > 0 && resp.Reports[0].Profile != nil {
		s.profile = resp.Reports[0].Profile
	}
	return nil
}
