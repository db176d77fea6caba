package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"BridgerServer/apps/api/internal/dto"
	"BridgerServer/consts"
	"BridgerServer/pkg/errs"
	"BridgerServer/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var handlerTestOnce sync.Once

func errEmptyQuery() error { return errs.New(consts.CodeParamError) }

func initHandlerTest() {
	handlerTestOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.ReplaceGlobal(zap.NewNop())
	})
}

type fakeFriendService struct {
	searchUsersFn        func(context.Context, string) ([]*dto.SearchUserItem, error)
	sendRequestFn        func(context.Context, int64, int64) error
	getPendingRequestsFn func(context.Context, int64) (*dto.FriendRequestListResponse, error)
	acceptRequestFn      func(context.Context, int64, int64) (*dto.AcceptFriendRequestResponse, error)
	declineRequestFn     func(context.Context, int64, int64) error
}

func (f *fakeFriendService) SearchUsers(ctx context.Context, query string) ([]*dto.SearchUserItem, error) {
	return f.searchUsersFn(ctx, query)
}

func (f *fakeFriendService) SendRequest(ctx context.Context, userID, targetUserID int64) error {
	return f.sendRequestFn(ctx, userID, targetUserID)
}

func (f *fakeFriendService) GetPendingRequests(ctx context.Context, userID int64) (*dto.FriendRequestListResponse, error) {
	return f.getPendingRequestsFn(ctx, userID)
}

func (f *fakeFriendService) AcceptRequest(ctx context.Context, userID, requesterID int64) (*dto.AcceptFriendRequestResponse, error) {
	return f.acceptRequestFn(ctx, userID, requesterID)
}

func (f *fakeFriendService) DeclineRequest(ctx context.Context, userID, requesterID int64) error {
	return f.declineRequestFn(ctx, userID, requesterID)
}

// newFriendTestRouter 按生产路由挂载好友接口：搜索公开，其余注入登录态
func newFriendTestRouter(svc *fakeFriendService) *gin.Engine {
	h := NewFriendHandler(svc)
	r := gin.New()
	r.GET("/api/friends/search", h.SearchUsers)

	authed := r.Group("/api/friends")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", int64(1))
	})
	authed.POST("/send", h.SendRequest)
	return r
}

func TestSearchUsersHandler(t *testing.T) {
	initHandlerTest()

	t.Run("query_param_reaches_service", func(t *testing.T) {
		var gotQuery string
		svc := &fakeFriendService{
			searchUsersFn: func(_ context.Context, query string) ([]*dto.SearchUserItem, error) {
				gotQuery = query
				return []*dto.SearchUserItem{
					{UserID: 2, Name: "Alice", Email: "alice@example.com"},
				}, nil
			},
		}
		r := newFriendTestRouter(svc)

		w := httptest.NewRecorder()
		// 无认证头：搜索是公开接口
		req := httptest.NewRequest(http.MethodGet, "/api/friends/search?query=Alice", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Alice", gotQuery)

		// 响应体是裸数组，不包外层对象
		var items []*dto.SearchUserItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].UserID)
	})

	t.Run("missing_query_is_bad_request", func(t *testing.T) {
		svc := &fakeFriendService{
			searchUsersFn: func(_ context.Context, query string) ([]*dto.SearchUserItem, error) {
				return nil, errEmptyQuery()
			},
		}
		r := newFriendTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/friends/search", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Search query cannot be empty.")
	})
}

func TestSendRequestHandler(t *testing.T) {
	initHandlerTest()

	t.Run("success_is_plain_200", func(t *testing.T) {
		svc := &fakeFriendService{
			sendRequestFn: func(_ context.Context, userID, targetUserID int64) error {
				return nil
			},
		}
		r := newFriendTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/friends/send",
			strings.NewReader(`{"targetUserId": 2}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Friend request sent successfully.")
	})
}
