package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"BridgerServer/model"
	"BridgerServer/pkg/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var repoTestLoggerOnce sync.Once

func initRepoTestLogger() {
	repoTestLoggerOnce.Do(func() {
		logger.ReplaceGlobal(zap.NewNop())
	})
}

// setupMockDB 基于 sqlmock 构造 gorm 实例，配置与生产保持一致（TranslateError 开启）
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestAcceptRequestAndCreateRelation(t *testing.T) {
	initRepoTestLogger()
	ctx := context.Background()

	t.Run("already_processed_is_idempotent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFriendRequestRepository(db, nil)

		// CAS 未命中：请求不存在或已被处理
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `friend_request`").
			WithArgs(model.FriendRequestAccepted, int64(1), int64(2), model.FriendRequestPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		points, alreadyProcessed, err := repo.AcceptRequestAndCreateRelation(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, alreadyProcessed)
		assert.Zero(t, points)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success_awards_requester_points", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFriendRequestRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `friend_request`").
			WithArgs(model.FriendRequestAccepted, int64(1), int64(2), model.FriendRequestPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		// 双向关系各写一行
		mock.ExpectExec("INSERT INTO `friend_relation`").
			WillReturnResult(sqlmock.NewResult(10, 1))
		mock.ExpectExec("INSERT INTO `friend_relation`").
			WillReturnResult(sqlmock.NewResult(11, 1))
		mock.ExpectQuery("SELECT \\* FROM `reward_rule`").
			WillReturnRows(sqlmock.NewRows([]string{"reward_id", "activity_type", "points_associated"}).
				AddRow(1, model.ActivityAcceptFriendRequest, 25))
		mock.ExpectExec("UPDATE `users`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		points, alreadyProcessed, err := repo.AcceptRequestAndCreateRelation(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, alreadyProcessed)
		assert.Equal(t, int64(25), points)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_rule_awards_nothing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFriendRequestRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `friend_request`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `friend_relation`").
			WillReturnResult(sqlmock.NewResult(10, 1))
		mock.ExpectExec("INSERT INTO `friend_relation`").
			WillReturnResult(sqlmock.NewResult(11, 1))
		// 规则缺失不阻塞接受流程
		mock.ExpectQuery("SELECT \\* FROM `reward_rule`").
			WillReturnRows(sqlmock.NewRows([]string{"reward_id", "activity_type", "points_associated"}))
		mock.ExpectCommit()

		points, alreadyProcessed, err := repo.AcceptRequestAndCreateRelation(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, alreadyProcessed)
		assert.Zero(t, points)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db_error_rolls_back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFriendRequestRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `friend_request`").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, _, err := repo.AcceptRequestAndCreateRelation(ctx, 1, 2)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeclineRequest(t *testing.T) {
	initRepoTestLogger()
	ctx := context.Background()

	t.Run("not_found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFriendRequestRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `friend_request`").
			WithArgs(int64(1), int64(2), model.FriendRequestPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeclineRequest(ctx, 1, 2)
		require.ErrorIs(t, err, ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFriendRequestRepository(db, nil)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `friend_request`").
			WithArgs(int64(1), int64(2), model.FriendRequestPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeclineRequest(ctx, 1, 2)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
