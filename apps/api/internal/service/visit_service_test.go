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

type fakeVenueRepo struct {
	listAllFn        func(context.Context) ([]*model.Venue, error)
	getByIDFn        func(context.Context, int64) (*model.Venue, error)
	createFn         func(context.Context, *model.Venue) (*model.Venue, error)
	updatePhotoURLFn func(context.Context, int64, string) error
}

func (f *fakeVenueRepo) ListAll(ctx context.Context) ([]*model.Venue, error) {
	return f.listAllFn(ctx)
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, venueID int64) (*model.Venue, error) {
	return f.getByIDFn(ctx, venueID)
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	return f.createFn(ctx, venue)
}

func (f *fakeVenueRepo) UpdatePhotoURL(ctx context.Context, venueID int64, photoURL string) error {
	return f.updatePhotoURLFn(ctx, venueID, photoURL)
}

func TestVisitService_RecordVisit(t *testing.T) {
	initFriendTestLogger()

	library := &model.Venue{VenueID: 100, Name: "City Library", Type: model.VenueTypeArtsAndCulture}

	t.Run("invalid_date_rejected", func(t *testing.T) {
		svc := NewVisitService(&fakeVenueRepo{}, &fakeVisitRepo{})

		for _, visitDate := range []string{"", "14-02-2026", "2026/02/14", "not-a-date"} {
			_, err := svc.RecordVisit(context.Background(), 42, &dto.CreateVisitRequest{
				VenueID:   100,
				VisitDate: visitDate,
			})
			requireBizCode(t, err, consts.CodeParamError)
		}
	})

	t.Run("venue_not_found", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(context.Context, int64) (*model.Venue, error) { return nil, nil },
		}
		svc := NewVisitService(venueRepo, &fakeVisitRepo{})

		_, err := svc.RecordVisit(context.Background(), 42, &dto.CreateVisitRequest{
			VenueID:   999,
			VisitDate: "2026-02-14",
		})
		requireBizCode(t, err, consts.CodeVenueNotFound)
	})

	t.Run("success_includes_venue_info", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(_ context.Context, venueID int64) (*model.Venue, error) {
				assert.Equal(t, int64(100), venueID)
				return library, nil
			},
		}
		visitRepo := &fakeVisitRepo{
			createFn: func(_ context.Context, visit *model.VisitHistory) (*model.VisitHistory, error) {
				assert.Equal(t, int64(42), visit.UserID)
				assert.Equal(t, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), visit.VisitDate)
				created := *visit
				created.VisitID = 7
				return &created, nil
			},
		}
		svc := NewVisitService(venueRepo, visitRepo)

		resp, err := svc.RecordVisit(context.Background(), 42, &dto.CreateVisitRequest{
			VenueID:   100,
			VisitDate: "2026-02-14",
			Notes:     "ramp at side entrance",
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Visit successfully recorded", resp.Message)
		require.NotNil(t, resp.Visit)
		assert.Equal(t, int64(7), resp.Visit.VisitID)
		assert.Equal(t, "2026-02-14", resp.Visit.VisitDate)
		require.NotNil(t, resp.Visit.Venue)
		assert.Equal(t, "City Library", resp.Visit.Venue.Name)
	})
}
