package service

import (
	"context"
	"testing"

	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/consts"
	"BridgerServer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepo struct {
	createWithAwardFn func(context.Context, *model.Feedback) (int64, error)
	listByVenueFn     func(context.Context, int64) ([]*model.Feedback, error)
}

func (f *fakeFeedbackRepo) CreateWithAward(ctx context.Context, feedback *model.Feedback) (int64, error) {
	return f.createWithAwardFn(ctx, feedback)
}

func (f *fakeFeedbackRepo) ListByVenue(ctx context.Context, venueID int64) ([]*model.Feedback, error) {
	return f.listByVenueFn(ctx, venueID)
}

func TestFeedbackService_CreateFeedback(t *testing.T) {
	initFriendTestLogger()

	validReq := &dto.CreateFeedbackRequest{
		UserID:             42,
		VenueID:            100,
		Content:            "Wide doorways, accessible restroom",
		AccessibilityScore: 5,
	}

	existingUser := &fakeUserRepo{
		getByIDFn: func(context.Context, int64) (*model.User, error) {
			return &model.User{UserID: 42, Name: "Alice"}, nil
		},
	}
	existingVenue := &fakeVenueRepo{
		getByIDFn: func(context.Context, int64) (*model.Venue, error) {
			return &model.Venue{VenueID: 100, Name: "City Library"}, nil
		},
	}

	t.Run("user_not_found", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByIDFn: func(context.Context, int64) (*model.User, error) { return nil, nil },
		}
		svc := NewFeedbackService(userRepo, existingVenue, &fakeFeedbackRepo{})

		_, err := svc.CreateFeedback(context.Background(), validReq)
		requireBizCode(t, err, consts.CodeUserNotFound)
	})

	t.Run("venue_not_found", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(context.Context, int64) (*model.Venue, error) { return nil, nil },
		}
		svc := NewFeedbackService(existingUser, venueRepo, &fakeFeedbackRepo{})

		_, err := svc.CreateFeedback(context.Background(), validReq)
		requireBizCode(t, err, consts.CodeVenueNotFound)
	})

	t.Run("success_returns_points_awarded", func(t *testing.T) {
		feedbackRepo := &fakeFeedbackRepo{
			createWithAwardFn: func(_ context.Context, feedback *model.Feedback) (int64, error) {
				assert.Equal(t, int64(42), feedback.UserID)
				assert.Equal(t, int64(100), feedback.VenueID)
				feedback.FeedbackID = 11
				return 10, nil
			},
		}
		svc := NewFeedbackService(existingUser, existingVenue, feedbackRepo)

		resp, err := svc.CreateFeedback(context.Background(), validReq)
		require.NoError(t, err)
		assert.Equal(t, "Feedback submitted", resp.Message)
		assert.Equal(t, int64(10), resp.PointsAwarded)
		require.NotNil(t, resp.Feedback)
		assert.Equal(t, int64(11), resp.Feedback.FeedbackID)
	})
}

func TestFeedbackService_ListVenueFeedback(t *testing.T) {
	initFriendTestLogger()

	t.Run("venue_not_found", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(context.Context, int64) (*model.Venue, error) { return nil, nil },
		}
		svc := NewFeedbackService(&fakeUserRepo{}, venueRepo, &fakeFeedbackRepo{})

		_, err := svc.ListVenueFeedback(context.Background(), 999)
		requireBizCode(t, err, consts.CodeVenueNotFound)
	})

	t.Run("returns_venue_feedback", func(t *testing.T) {
		venueRepo := &fakeVenueRepo{
			getByIDFn: func(context.Context, int64) (*model.Venue, error) {
				return &model.Venue{VenueID: 100}, nil
			},
		}
		feedbackRepo := &fakeFeedbackRepo{
			listByVenueFn: func(_ context.Context, venueID int64) ([]*model.Feedback, error) {
				assert.Equal(t, int64(100), venueID)
				return []*model.Feedback{
					{FeedbackID: 11, UserID: 42, VenueID: 100, Content: "great ramp", AccessibilityScore: 5},
				}, nil
			},
		}
		svc := NewFeedbackService(&fakeUserRepo{}, venueRepo, feedbackRepo)

		resp, err := svc.ListVenueFeedback(context.Background(), 100)
		require.NoError(t, err)
		require.Len(t, resp.Feedback, 1)
		assert.Equal(t, "great ramp", resp.Feedback[0].Content)
	})
}
