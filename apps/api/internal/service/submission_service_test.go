package service

import (
	"context"
	"testing"

	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/consts"
	"BridgerServer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmissionRepo struct {
	createFn          func(context.Context, *model.LocationSubmission) (*model.LocationSubmission, error)
	listAllFn         func(context.Context) ([]*model.LocationSubmission, error)
	acceptIntoVenueFn func(context.Context, int64) (*model.Venue, error)
	deleteFn          func(context.Context, int64) error
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, submission *model.LocationSubmission) (*model.LocationSubmission, error) {
	return f.createFn(ctx, submission)
}

func (f *fakeSubmissionRepo) ListAll(ctx context.Context) ([]*model.LocationSubmission, error) {
	return f.listAllFn(ctx)
}

func (f *fakeSubmissionRepo) AcceptIntoVenue(ctx context.Context, submissionID int64) (*model.Venue, error) {
	return f.acceptIntoVenueFn(ctx, submissionID)
}

func (f *fakeSubmissionRepo) Delete(ctx context.Context, submissionID int64) error {
	return f.deleteFn(ctx, submissionID)
}

func TestSubmissionService_Submit(t *testing.T) {
	initFriendTestLogger()

	t.Run("invalid_venue_type_rejected", func(t *testing.T) {
		svc := NewSubmissionService(&fakeSubmissionRepo{})

		for _, locationType := range []string{"", "casino", "FOODSERVICES"} {
			_, err := svc.Submit(context.Background(), 42, &dto.CreateSubmissionRequest{
				LocationName:    "Corner Cafe",
				LocationAddress: "12 Main St",
				LocationType:    locationType,
			})
			requireBizCode(t, err, consts.CodeParamError)
		}
	})

	t.Run("success_records_submitter", func(t *testing.T) {
		submissionRepo := &fakeSubmissionRepo{
			createFn: func(_ context.Context, submission *model.LocationSubmission) (*model.LocationSubmission, error) {
				assert.Equal(t, int64(42), submission.SubmittedBy)
				assert.Equal(t, model.VenueTypeFoodServices, submission.Type)
				created := *submission
				created.SubmissionID = 5
				return &created, nil
			},
		}
		svc := NewSubmissionService(submissionRepo)

		resp, err := svc.Submit(context.Background(), 42, &dto.CreateSubmissionRequest{
			LocationName:       "Corner Cafe",
			LocationAddress:    "12 Main St",
			LocationType:       model.VenueTypeFoodServices,
			AccessibilityScore: 4,
			AccessibilityAvail: []string{"ramp", "braille menu"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Location submitted successfully", resp.Message)
		require.NotNil(t, resp.Location)
		assert.Equal(t, int64(5), resp.Location.SubmissionID)
		assert.Equal(t, "Corner Cafe", resp.Location.LocationName)
	})
}

func TestSubmissionService_Accept(t *testing.T) {
	initFriendTestLogger()

	t.Run("submission_not_found", func(t *testing.T) {
		submissionRepo := &fakeSubmissionRepo{
			acceptIntoVenueFn: func(context.Context, int64) (*model.Venue, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := NewSubmissionService(submissionRepo)

		_, err := svc.Accept(context.Background(), 999)
		requireBizCode(t, err, consts.CodeSubmissionNotFound)
	})

	t.Run("success_returns_new_venue", func(t *testing.T) {
		submissionRepo := &fakeSubmissionRepo{
			acceptIntoVenueFn: func(_ context.Context, submissionID int64) (*model.Venue, error) {
				assert.Equal(t, int64(5), submissionID)
				return &model.Venue{VenueID: 200, Name: "Corner Cafe", Type: model.VenueTypeFoodServices}, nil
			},
		}
		svc := NewSubmissionService(submissionRepo)

		resp, err := svc.Accept(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Venue accepted and added successfully", resp.Message)
		require.NotNil(t, resp.Venue)
		assert.Equal(t, int64(200), resp.Venue.VenueID)
	})
}

func TestSubmissionService_Delete(t *testing.T) {
	initFriendTestLogger()

	t.Run("submission_not_found", func(t *testing.T) {
		submissionRepo := &fakeSubmissionRepo{
			deleteFn: func(context.Context, int64) error { return repository.ErrRecordNotFound },
		}
		svc := NewSubmissionService(submissionRepo)

		requireBizCode(t, svc.Delete(context.Background(), 999), consts.CodeSubmissionNotFound)
	})

	t.Run("success", func(t *testing.T) {
		var gotID int64
		submissionRepo := &fakeSubmissionRepo{
			deleteFn: func(_ context.Context, submissionID int64) error {
				gotID = submissionID
				return nil
			},
		}
		svc := NewSubmissionService(submissionRepo)

		require.NoError(t, svc.Delete(context.Background(), 5))
		assert.Equal(t, int64(5), gotID)
	})
}
