package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/apps/api/internal/repository"
	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/config"
	"BridgerServer/consts"
	"BridgerServer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStarRepo struct {
	upsertFn         func(context.Context, *model.StarredLocation) error
	listByUserFn     func(context.Context, int64) ([]*model.StarredLocation, error)
	listSharedWithFn func(context.Context, int64) ([]*model.StarredLocation, error)
}

func (f *fakeStarRepo) Upsert(ctx context.Context, star *model.StarredLocation) error {
	return f.upsertFn(ctx, star)
}

func (f *fakeStarRepo) ListByUser(ctx context.Context, userID int64) ([]*model.StarredLocation, error) {
	return f.listByUserFn(ctx, userID)
}

func (f *fakeStarRepo) ListSharedWith(ctx context.Context, userID int64) ([]*model.StarredLocation, error) {
	return f.listSharedWithFn(ctx, userID)
}

type fakeVisitRepo struct {
	createFn     func(context.Context, *model.VisitHistory) (*model.VisitHistory, error)
	listByUserFn func(context.Context, int64) ([]*model.VisitHistory, error)
}

func (f *fakeVisitRepo) Create(ctx context.Context, visit *model.VisitHistory) (*model.VisitHistory, error) {
	return f.createFn(ctx, visit)
}

func (f *fakeVisitRepo) ListByUser(ctx context.Context, userID int64) ([]*model.VisitHistory, error) {
	return f.listByUserFn(ctx, userID)
}

type fakeRewardRepo struct {
	getRuleFn     func(context.Context, string) (*model.RewardRule, error)
	listTiersFn   func(context.Context) ([]*model.RedemptionTier, error)
	getTierByIDFn func(context.Context, int64) (*model.RedemptionTier, error)
	redeemTierFn  func(context.Context, int64, *model.RedemptionTier) (int64, error)
	listHistoryFn func(context.Context, int64) ([]*model.RedemptionHistory, error)
}

func (f *fakeRewardRepo) GetRuleByActivity(ctx context.Context, activityType string) (*model.RewardRule, error) {
	return f.getRuleFn(ctx, activityType)
}

func (f *fakeRewardRepo) ListTiers(ctx context.Context) ([]*model.RedemptionTier, error) {
	return f.listTiersFn(ctx)
}

func (f *fakeRewardRepo) GetTierByID(ctx context.Context, tierID int64) (*model.RedemptionTier, error) {
	return f.getTierByIDFn(ctx, tierID)
}

func (f *fakeRewardRepo) RedeemTier(ctx context.Context, userID int64, tier *model.RedemptionTier) (int64, error) {
	return f.redeemTierFn(ctx, userID, tier)
}

func (f *fakeRewardRepo) ListHistory(ctx context.Context, userID int64) ([]*model.RedemptionHistory, error) {
	return f.listHistoryFn(ctx, userID)
}

func testJWTConfig() config.JWTConfig {
	cfg := config.DefaultJWTConfig()
	cfg.Secret = "unit-test-secret"
	return cfg
}

func TestAuthService_Register(t *testing.T) {
	initFriendTestLogger()

	validReq := &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	}

	t.Run("email_already_used", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			existsByEmailFn: func(_ context.Context, email string) (bool, error) {
				assert.Equal(t, "alice@example.com", email)
				return true, nil
			},
		}
		svc := NewAuthService(testJWTConfig(), userRepo, &fakeFriendRepo{}, &fakeStarRepo{}, &fakeVisitRepo{}, &fakeRewardRepo{}, nil)

		_, err := svc.Register(context.Background(), validReq, "")
		requireBizCode(t, err, consts.CodeEmailAlreadyUsed)
	})

	t.Run("duplicate_key_race_maps_to_email_used", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			existsByEmailFn: func(context.Context, string) (bool, error) { return false, nil },
			createFn: func(context.Context, *model.User) (*model.User, error) {
				return nil, repository.ErrDuplicateKey
			},
		}
		svc := NewAuthService(testJWTConfig(), userRepo, &fakeFriendRepo{}, &fakeStarRepo{}, &fakeVisitRepo{}, &fakeRewardRepo{}, nil)

		_, err := svc.Register(context.Background(), validReq, "")
		requireBizCode(t, err, consts.CodeEmailAlreadyUsed)
	})

	t.Run("success_hashes_password", func(t *testing.T) {
		var storedHash string
		userRepo := &fakeUserRepo{
			existsByEmailFn: func(context.Context, string) (bool, error) { return false, nil },
			createFn: func(_ context.Context, user *model.User) (*model.User, error) {
				storedHash = user.PasswordHash
				created := *user
				created.UserID = 42
				return &created, nil
			},
		}
		svc := NewAuthService(testJWTConfig(), userRepo, &fakeFriendRepo{}, &fakeStarRepo{}, &fakeVisitRepo{}, &fakeRewardRepo{}, nil)

		resp, err := svc.Register(context.Background(), validReq, "")
		require.NoError(t, err)
		assert.Equal(t, "User registered successfully!", resp.Message)
		assert.Equal(t, int64(42), resp.User.UserID)

		// 密码必须以 bcrypt 哈希入库
		assert.NotEqual(t, validReq.Password, storedHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(validReq.Password)))
	})
}

func TestAuthService_Login(t *testing.T) {
	initFriendTestLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &model.User{
		UserID:       42,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	t.Run("unknown_email_reports_password_error", func(t *testing.T) {
		// 对外不区分"邮箱不存在"和"密码错误"，避免枚举邮箱
		userRepo := &fakeUserRepo{
			getByEmailFn: func(context.Context, string) (*model.User, error) { return nil, nil },
		}
		svc := NewAuthService(testJWTConfig(), userRepo, &fakeFriendRepo{}, &fakeStarRepo{}, &fakeVisitRepo{}, &fakeRewardRepo{}, nil)

		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		requireBizCode(t, err, consts.CodePasswordError)
	})

	t.Run("wrong_password", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByEmailFn: func(context.Context, string) (*model.User, error) { return storedUser, nil },
		}
		svc := NewAuthService(testJWTConfig(), userRepo, &fakeFriendRepo{}, &fakeStarRepo{}, &fakeVisitRepo{}, &fakeRewardRepo{}, nil)

		_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
		requireBizCode(t, err, consts.CodePasswordError)
	})

	t.Run("success_issues_parseable_token", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByEmailFn: func(context.Context, string) (*model.User, error) { return storedUser, nil },
		}
		jwtCfg := testJWTConfig()
		svc := NewAuthService(jwtCfg, userRepo, &fakeFriendRepo{}, &fakeStarRepo{}, &fakeVisitRepo{}, &fakeRewardRepo{}, nil)

		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		assert.Equal(t, int64(42), resp.User.UserID)

		claims, err := utils.ParseToken(jwtCfg, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	initFriendTestLogger()

	t.Run("user_not_found", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByIDFn: func(context.Context, int64) (*model.User, error) { return nil, nil },
		}
		svc := NewAuthService(testJWTConfig(), userRepo, &fakeFriendRepo{}, &fakeStarRepo{}, &fakeVisitRepo{}, &fakeRewardRepo{}, nil)

		_, err := svc.GetProfile(context.Background(), 42)
		requireBizCode(t, err, consts.CodeUserNotFound)
	})

	t.Run("aggregates_all_sections", func(t *testing.T) {
		venue := &model.Venue{VenueID: 100, Name: "City Library", Type: model.VenueTypeArtsAndCulture}
		userRepo := &fakeUserRepo{
			getByIDFn: func(_ context.Context, id int64) (*model.User, error) {
				switch id {
				case 42:
					return &model.User{UserID: 42, Name: "Alice", TotalPoints: 70}, nil
				case 2:
					return &model.User{UserID: 2, Name: "Bob"}, nil
				default:
					// id=3 的好友账号已注销
					return nil, nil
				}
			},
		}
		friendRepo := &fakeFriendRepo{
			getFriendIDsFn: func(_ context.Context, userID int64) ([]int64, error) {
				assert.Equal(t, int64(42), userID)
				return []int64{2, 3}, nil
			},
		}
		starRepo := &fakeStarRepo{
			listByUserFn: func(context.Context, int64) ([]*model.StarredLocation, error) {
				return []*model.StarredLocation{{UserID: 42, VenueID: 100, Venue: venue}}, nil
			},
			listSharedWithFn: func(context.Context, int64) ([]*model.StarredLocation, error) {
				return []*model.StarredLocation{{UserID: 2, VenueID: 100, Venue: venue, ShareWith: model.Int64List{42}}}, nil
			},
		}
		visitRepo := &fakeVisitRepo{
			listByUserFn: func(context.Context, int64) ([]*model.VisitHistory, error) {
				return []*model.VisitHistory{
					{VisitID: 7, UserID: 42, VenueID: 100, VisitDate: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), Venue: venue},
				}, nil
			},
		}
		rewardRepo := &fakeRewardRepo{
			listTiersFn: func(context.Context) ([]*model.RedemptionTier, error) {
				return []*model.RedemptionTier{{TierID: 1, PointsRequired: 50, RewardDescription: "Coffee voucher"}}, nil
			},
		}
		svc := NewAuthService(testJWTConfig(), userRepo, friendRepo, starRepo, visitRepo, rewardRepo, nil)

		resp, err := svc.GetProfile(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.User.UserID)
		require.Len(t, resp.Friends, 1) // 已注销好友被跳过
		assert.Equal(t, "Bob", resp.Friends[0].Name)
		require.Len(t, resp.StarredLocations, 1)
		require.Len(t, resp.SharedLocations, 1)
		require.Len(t, resp.VisitHistory, 1)
		assert.Equal(t, "2026-02-14", resp.VisitHistory[0].VisitDate)
		require.Len(t, resp.RedemptionTiers, 1)
	})

	t.Run("friend_lookup_error_wrapped_as_internal", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByIDFn: func(context.Context, int64) (*model.User, error) {
				return &model.User{UserID: 42}, nil
			},
		}
		friendRepo := &fakeFriendRepo{
			getFriendIDsFn: func(context.Context, int64) ([]int64, error) {
				return nil, errors.New("db down")
			},
		}
		svc := NewAuthService(testJWTConfig(), userRepo, friendRepo, &fakeStarRepo{}, &fakeVisitRepo{}, &fakeRewardRepo{}, nil)

		_, err := svc.GetProfile(context.Background(), 42)
		requireBizCode(t, err, consts.CodeInternalError)
	})
}
