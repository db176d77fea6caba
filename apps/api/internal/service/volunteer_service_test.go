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

type fakeVolunteerRepo struct {
	createFn  func(context.Context, *model.Volunteer) (*model.Volunteer, error)
	listAllFn func(context.Context) ([]*model.Volunteer, error)
}

func (f *fakeVolunteerRepo) Create(ctx context.Context, volunteer *model.Volunteer) (*model.Volunteer, error) {
	return f.createFn(ctx, volunteer)
}

func (f *fakeVolunteerRepo) ListAll(ctx context.Context) ([]*model.Volunteer, error) {
	return f.listAllFn(ctx)
}

func TestVolunteerService_Apply(t *testing.T) {
	initFriendTestLogger()

	validReq := &dto.CreateVolunteerRequest{
		VolunteerName:   "Alice",
		ContactNumber:   "555-0100",
		Email:           "alice@example.com",
		AreasOfInterest: "venue audits",
	}

	t.Run("duplicate_contact_rejected", func(t *testing.T) {
		volunteerRepo := &fakeVolunteerRepo{
			createFn: func(context.Context, *model.Volunteer) (*model.Volunteer, error) {
				return nil, repository.ErrDuplicateKey
			},
		}
		svc := NewVolunteerService(volunteerRepo, nil)

		_, err := svc.Apply(context.Background(), validReq)
		requireBizCode(t, err, consts.CodeVolunteerAlreadyExist)
	})

	t.Run("success_without_mail_sender", func(t *testing.T) {
		// 邮件能力关闭时报名仍然成功
		volunteerRepo := &fakeVolunteerRepo{
			createFn: func(_ context.Context, volunteer *model.Volunteer) (*model.Volunteer, error) {
				assert.Equal(t, "555-0100", volunteer.ContactNumber)
				created := *volunteer
				created.VolunteerID = 3
				return &created, nil
			},
		}
		svc := NewVolunteerService(volunteerRepo, nil)

		resp, err := svc.Apply(context.Background(), validReq)
		require.NoError(t, err)
		assert.Equal(t, "Volunteer created successfully!", resp.Message)
		require.NotNil(t, resp.Volunteer)
		assert.Equal(t, int64(3), resp.Volunteer.VolunteerID)
		assert.Equal(t, "venue audits", resp.Volunteer.AreasOfInterest)
	})
}

func TestVolunteerService_ListVolunteers(t *testing.T) {
	initFriendTestLogger()

	volunteerRepo := &fakeVolunteerRepo{
		listAllFn: func(context.Context) ([]*model.Volunteer, error) {
			return []*model.Volunteer{
				{VolunteerID: 3, Name: "Alice", ContactNumber: "555-0100", Email: "alice@example.com"},
			}, nil
		},
	}
	svc := NewVolunteerService(volunteerRepo, nil)

	volunteers, err := svc.ListVolunteers(context.Background())
	require.NoError(t, err)
	require.Len(t, volunteers, 1)
	assert.Equal(t, "Alice", volunteers[0].Name)
}
