package service

import (
	"context"
	"strings"
	"testing"

	"BridgerServer/consts"
	"BridgerServer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueService_ListVenues(t *testing.T) {
	initFriendTestLogger()

	venueRepo := &fakeVenueRepo{
		listAllFn: func(context.Context) ([]*model.Venue, error) {
			return []*model.Venue{
				{VenueID: 100, Name: "City Library", Type: model.VenueTypeArtsAndCulture, AccessibilityAvail: model.StringList{"ramp"}},
				{VenueID: 101, Name: "Corner Cafe", Type: model.VenueTypeFoodServices},
			}, nil
		},
	}
	svc := NewVenueService(venueRepo, nil)

	resp, err := svc.ListVenues(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Venues, 2)
	assert.Equal(t, "City Library", resp.Venues[0].Name)
	assert.Equal(t, []string{"ramp"}, resp.Venues[0].AccessibilityAvail)
}

func TestVenueService_GetVenue(t *testing.T) {
	initFriendTestLogger()

	t.Run("venue_not_found", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(context.Context, int64) (*model.Venue, error) { return nil, nil },
		}
		svc := NewVenueService(venueRepo, nil)

		_, err := svc.GetVenue(context.Background(), 999)
		requireBizCode(t, err, consts.CodeVenueNotFound)
	})

	t.Run("returns_venue", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(_ context.Context, venueID int64) (*model.Venue, error) {
				assert.Equal(t, int64(100), venueID)
				return &model.Venue{VenueID: 100, Name: "City Library"}, nil
			},
		}
		svc := NewVenueService(venueRepo, nil)

		venue, err := svc.GetVenue(context.Background(), 100)
		require.NoError(t, err)
		assert.Equal(t, "City Library", venue.Name)
	})
}

func TestVenueService_UploadPhoto(t *testing.T) {
	initFriendTestLogger()

	t.Run("storage_disabled", func(t *testing.T) {
		svc := NewVenueService(&fakeVenueRepo{}, nil)

		_, err := svc.UploadPhoto(context.Background(), 100, "photo.jpg", 1024, strings.NewReader("x"))
		requireBizCode(t, err, consts.CodeServiceUnavailable)
	})
}
