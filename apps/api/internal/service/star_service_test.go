package service

import (
	"context"
	"testing"
	"time"

	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/consts"
	"BridgerServer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarService_StarVenue(t *testing.T) {
	initFriendTestLogger()

	t.Run("venue_not_found", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(context.Context, int64) (*model.Venue, error) { return nil, nil },
		}
		svc := NewStarService(venueRepo, &fakeStarRepo{})

		err := svc.StarVenue(context.Background(), 42, &dto.StarVenueRequest{VenueID: 999})
		requireBizCode(t, err, consts.CodeVenueNotFound)
	})

	t.Run("success_stores_share_list", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(context.Context, int64) (*model.Venue, error) {
				return &model.Venue{VenueID: 100}, nil
			},
		}
		var gotStar *model.StarredLocation
		starRepo := &fakeStarRepo{
			upsertFn: func(_ context.Context, star *model.StarredLocation) error {
				gotStar = star
				return nil
			},
		}
		svc := NewStarService(venueRepo, starRepo)

		err := svc.StarVenue(context.Background(), 42, &dto.StarVenueRequest{
			VenueID:   100,
			ShareWith: []int64{2, 3},
		})
		require.NoError(t, err)
		require.NotNil(t, gotStar)
		assert.Equal(t, int64(42), gotStar.UserID)
		assert.Equal(t, int64(100), gotStar.VenueID)
		assert.Equal(t, model.Int64List{2, 3}, gotStar.ShareWith)
	})
}

func TestStarService_ListStarred(t *testing.T) {
	initFriendTestLogger()

	starredAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	starRepo := &fakeStarRepo{
		listByUserFn: func(_ context.Context, userID int64) ([]*model.StarredLocation, error) {
			assert.Equal(t, int64(42), userID)
			return []*model.StarredLocation{
				{
					UserID:    42,
					VenueID:   100,
					StarredAt: starredAt,
					ShareWith: model.Int64List{2},
					Venue:     &model.Venue{VenueID: 100, Name: "City Library"},
				},
			}, nil
		},
	}
	svc := NewStarService(&fakeVenueRepo{}, starRepo)

	resp, err := svc.ListStarred(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, resp.StarredLocations, 1)
	assert.Equal(t, "City Library", resp.StarredLocations[0].Venue.Name)
	assert.Equal(t, []int64{2}, resp.StarredLocations[0].ShareWith)
}
