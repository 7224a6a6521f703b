package profile

import (
	"context"
	"testing"

	"github.com/cashtrack/cashtrack/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	api.Client

	getResp *api.GetProfileResponse
	getErr  error

	updResp *api.UpdateProfileResponse
	updErr  error
	lastUpd api.UpdateProfileRequest
}

func (f *fakeClient) GetProfile(ctx context.Context) (*api.GetProfileResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.UpdateProfileResponse, error) {
	f.lastUpd = req
	return f.updResp, f.updErr
}

func TestFetch_UsesFirstReport(t *testing.T) {
	fc := &fakeClient{getResp: &api.GetProfileResponse{
		Status:  200,
		Reports: []api.Profile{{FirstName: "Ada", LastName: "Lovelace"}, {FirstName: "ignored"}},
	}}
	s := NewService(fc)

	require.NoError(t, s.Fetch(context.Background()))
	require.NotNil(t, s.Profile())
	assert.Equal(t, "Ada", s.Profile().FirstName)
	assert.Empty(t, s.Err())
}

func TestFetch_EmptyReportsLeavesProfileNil(t *testing.T) {
	fc := &fakeClient{getResp: &api.GetProfileResponse{Status: 200}}
	s := NewService(fc)

	require.NoError(t, s.Fetch(context.Background()))
	assert.Nil(t, s.Profile())
}

func TestFetch_ErrorRecorded(t *testing.T) {
	fc := &fakeClient{getErr: &api.Error{Message: "forbidden", Status: 403}}
	s := NewService(fc)

	require.Error(t, s.Fetch(context.Background()))
	assert.Equal(t, "forbidden", s.Err())
	assert.False(t, s.Loading())
}

func TestUpdate_ReplacesCachedProfile(t *testing.T) {
	fc := &fakeClient{
		getResp: &api.GetProfileResponse{Status: 200, Reports: []api.Profile{{FirstName: "Ada"}}},
		updResp: &api.UpdateProfileResponse{Status: 200, Reports: []api.ProfileReport{
			{Message: "updated", Profile: &api.Profile{FirstName: "Grace", LastName: "Hopper"}},
		}},
	}
	s := NewService(fc)
	require.NoError(t, s.Fetch(context.Background()))

	require.NoError(t, s.Update(context.Background(), "Grace", "Hopper"))

	assert.Equal(t, "Grace", fc.lastUpd.FirstName)
	assert.Equal(t, "Hopper", fc.lastUpd.LastName)
	require.NotNil(t, s.Profile())
	assert.Equal(t, "Grace", s.Profile().FirstName)
}

func TestUpdate_ErrorRecordedAndReturned(t *testing.T) {
	fc := &fakeClient{
		getResp: &api.GetProfileResponse{Status: 200, Reports: []api.Profile{{FirstName: "Ada"}}},
		updErr:  &api.Error{Message: "bad name", Status: 422},
	}
	s := NewService(fc)
	require.NoError(t, s.Fetch(context.Background()))

	err := s.Update(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, "bad name", s.Err())
	// cached profile survives a failed update
	assert.Equal(t, "Ada", s.Profile().FirstName)
}
