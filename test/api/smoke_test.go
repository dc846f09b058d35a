package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/dto/respond"
	"kama_reservation_server/internal/gateway/websocket"
	"kama_reservation_server/internal/handler"
	"kama_reservation_server/internal/https_server"
	"kama_reservation_server/internal/service"
	"kama_reservation_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
)

type stubAuthService struct{}

type stubGroupService struct{}

type stubSpaceService struct{}

type stubReservationService struct{}

func (s stubAuthService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	return &respond.RegisterRespond{}, nil
}
func (s stubAuthService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{}, nil
}
func (s stubAuthService) RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	return &respond.RefreshTokenRespond{}, nil
}

func (s stubGroupService) CreateGroup(userId uint, req request.CreateGroupRequest) (*respond.GroupInfoRespond, error) {
	return &respond.GroupInfoRespond{}, nil
}
func (s stubGroupService) GetGroupInfo(userId, groupId uint) (*respond.GroupInfoRespond, error) {
	return &respond.GroupInfoRespond{}, nil
}
func (s stubGroupService) GetMyGroups(userId uint) (*respond.MyGroupListRespond, error) {
	return &respond.MyGroupListRespond{}, nil
}
func (s stubGroupService) UpdateGroupInfo(userId uint, req request.UpdateGroupInfoRequest) error {
	return nil
}
func (s stubGroupService) ReissueInviteCode(userId uint, req request.ReissueInviteCodeRequest) (string, error) {
	return "Ab3Cd", nil
}
func (s stubGroupService) JoinByInviteCode(userId uint, req request.JoinByInviteCodeRequest) (*respond.JoinByInviteCodeRespond, error) {
	return &respond.JoinByInviteCodeRespond{}, nil
}
func (s stubGroupService) ListMembers(userId, groupId uint) ([]respond.GroupMemberRespond, error) {
	return []respond.GroupMemberRespond{}, nil
}
func (s stubGroupService) KickMember(userId uint, req request.KickMemberRequest) error { return nil }
func (s stubGroupService) Withdraw(userId uint, req request.WithdrawRequest) error     { return nil }
func (s stubGroupService) HandoverManager(userId uint, req request.HandoverManagerRequest) error {
	return nil
}
func (s stubGroupService) UpdateMemberPermission(userId uint, req request.UpdateMemberPermissionRequest) error {
	return nil
}
func (s stubGroupService) ListPermissionTags(userId, groupId uint) ([]respond.PermissionTagRespond, error) {
	return []respond.PermissionTagRespond{}, nil
}
func (s stubGroupService) ListJoinRequests(userId, groupId uint) ([]respond.JoinRequestRespond, error) {
	return []respond.JoinRequestRespond{}, nil
}
func (s stubGroupService) AcceptJoinRequest(userId uint, req request.HandleJoinRequestRequest) error {
	return nil
}
func (s stubGroupService) RejectJoinRequest(userId uint, req request.HandleJoinRequestRequest) error {
	return nil
}
func (s stubGroupService) CreateBlock(userId uint, req request.CreateBlockRequest) (*respond.BlockRespond, error) {
	return &respond.BlockRespond{}, nil
}
func (s stubGroupService) ListBlocks(userId, groupId, memberId uint) ([]respond.BlockRespond, error) {
	return []respond.BlockRespond{}, nil
}
func (s stubGroupService) DeleteBlock(userId uint, req request.DeleteBlockRequest) error { return nil }

func (s stubSpaceService) CreateTerm(userId uint, req request.CreateTermRequest) (*respond.TermRespond, error) {
	return &respond.TermRespond{}, nil
}
func (s stubSpaceService) UpdateTerm(userId uint, req request.UpdateTermRequest) (*respond.TermRespond, error) {
	return &respond.TermRespond{}, nil
}
func (s stubSpaceService) DeleteTerm(userId uint, req request.DeleteTermRequest) error { return nil }
func (s stubSpaceService) ListTerms(userId, groupId uint) ([]respond.TermRespond, error) {
	return []respond.TermRespond{}, nil
}
func (s stubSpaceService) CreateSpace(userId uint, req request.CreateSpaceRequest) (*respond.SpaceRespond, error) {
	return &respond.SpaceRespond{}, nil
}
func (s stubSpaceService) UpdateSpace(userId uint, req request.UpdateSpaceRequest) (*respond.SpaceRespond, error) {
	return &respond.SpaceRespond{}, nil
}
func (s stubSpaceService) DeleteSpace(userId uint, req request.DeleteSpaceRequest) error { return nil }
func (s stubSpaceService) ListSpaces(userId, groupId uint) ([]respond.SpaceRespond, error) {
	return []respond.SpaceRespond{{SpaceId: 1, GroupId: groupId, Name: "会议室"}}, nil
}

func (s stubReservationService) WeekGrid(userId uint, req request.WeekGridRequest) (*respond.WeekGridRespond, error) {
	return &respond.WeekGridRespond{}, nil
}
func (s stubReservationService) Book(userId uint, req request.BookSlotRequest) (*respond.ReservationRespond, error) {
	return &respond.ReservationRespond{}, nil
}
func (s stubReservationService) GetReservation(userId uint, req request.ReservationDetailRequest) (*respond.ReservationRespond, error) {
	return &respond.ReservationRespond{}, nil
}
func (s stubReservationService) DeleteReservation(userId uint, req request.DeleteReservationRequest) error {
	return nil
}

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, client *http.Client, method, url string, body io.Reader, authHeader string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request %s %s: %v", method, url, err)
	}
	return resp
}

func requireNot5xxOr404(t *testing.T, path string, resp *http.Response) {
	t.Helper()
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		t.Fatalf("%s status=%d", path, resp.StatusCode)
	}
}

func TestAllHTTPAndWebSocketEndpoints_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 15, 168)
	if err := handler.InitTrans("zh"); err != nil {
		t.Fatalf("init trans: %v", err)
	}

	svcs := &service.Services{
		Auth:        stubAuthService{},
		Group:       stubGroupService{},
		Space:       stubSpaceService{},
		Reservation: stubReservationService{},
	}
	hub := websocket.NewHub()

	engine := https_server.Init(handler.NewHandlers(svcs, hub))
	server := httptest.NewServer(engine)
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	accessToken, err := jwt.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	authHeader := "Bearer " + accessToken

	// ===== 公共接口（无需鉴权） =====
	resp := doReq(t, client, http.MethodPost, server.URL+"/auth/register", mustJSON(t, map[string]any{
		"username": "alice",
		"nickname": "爱丽丝",
		"password": "secret123",
	}), "")
	requireNot5xxOr404(t, "/auth/register", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/login", mustJSON(t, map[string]any{
		"username": "alice",
		"password": "secret123",
	}), "")
	requireNot5xxOr404(t, "/auth/login", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/refreshToken", mustJSON(t, map[string]any{
		"refresh_token": "some-token",
	}), "")
	requireNot5xxOr404(t, "/auth/refreshToken", resp)
	_ = resp.Body.Close()

	// ===== 未携带令牌的受保护接口返回 401 =====
	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getMyGroups", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token status=%d, want 401", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getMyGroups", nil, "Bearer not-a-token")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token status=%d, want 401", resp.StatusCode)
	}
	_ = resp.Body.Close()

	// ===== 群组接口 =====
	postCases := []struct {
		path string
		body map[string]any
	}{
		{"/group/createGroup", map[string]any{"name": "读书会", "is_public": true}},
		{"/group/updateGroupInfo", map[string]any{"group_id": 1, "name": "读书会", "is_public": true}},
		{"/group/reissueInviteCode", map[string]any{"group_id": 1}},
		{"/group/joinByInviteCode", map[string]any{"invite_code": "Ab3Cd"}},
		{"/group/kickMember", map[string]any{"group_id": 1, "user_id": 2}},
		{"/group/withdraw", map[string]any{"group_id": 1}},
		{"/group/handoverManager", map[string]any{"group_id": 1, "user_id": 2}},
		{"/group/updateMemberPermission", map[string]any{"group_id": 1, "user_id": 2, "tags": "钥匙 驾照"}},
		{"/group/acceptJoinRequest", map[string]any{"group_id": 1, "request_id": 1}},
		{"/group/rejectJoinRequest", map[string]any{"group_id": 1, "request_id": 1}},
		{"/group/createBlock", map[string]any{"group_id": 1, "user_id": 2, "dt_from": "2025-03-01 00:00:00", "dt_to": "2025-03-08 00:00:00"}},
		{"/group/deleteBlock", map[string]any{"group_id": 1, "block_id": 1}},
		{"/space/createTerm", map[string]any{"group_id": 1, "title": "须知", "body": "离开断电"}},
		{"/space/updateTerm", map[string]any{"group_id": 1, "term_id": 1, "title": "须知", "body": "离开断电"}},
		{"/space/deleteTerm", map[string]any{"group_id": 1, "term_id": 1}},
		{"/space/createSpace", map[string]any{"group_id": 1, "name": "会议室"}},
		{"/space/updateSpace", map[string]any{"group_id": 1, "space_id": 1, "name": "会议室"}},
		{"/space/deleteSpace", map[string]any{"group_id": 1, "space_id": 1}},
		{"/reservation/book", map[string]any{"group_id": 1, "space_id": 1, "monday_year": "2025", "monday_month": "3", "monday_day": "3", "wd": 2, "hour": 10}},
		{"/reservation/deleteReservation", map[string]any{"group_id": 1, "space_id": 1, "reservation_id": 1}},
	}
	for _, tc := range postCases {
		resp = doReq(t, client, http.MethodPost, server.URL+tc.path, mustJSON(t, tc.body), authHeader)
		requireNot5xxOr404(t, tc.path, resp)
		_ = resp.Body.Close()
	}

	getCases := []string{
		"/group/getGroupInfo?group_id=1",
		"/group/getMyGroups",
		"/group/listMembers?group_id=1",
		"/group/listPermissionTags?group_id=1",
		"/group/listJoinRequests?group_id=1",
		"/group/listBlocks?group_id=1",
		"/group/listBlocks?group_id=1&user_id=2",
		"/space/listTerms?group_id=1",
		"/space/listSpaces?group_id=1",
		"/reservation/weekGrid?group_id=1&space_id=1",
		"/reservation/weekGrid?group_id=1&space_id=1&year=2025&month=3&day=3",
		"/reservation/getReservation?group_id=1&space_id=1&reservation_id=1",
	}
	for _, path := range getCases {
		resp = doReq(t, client, http.MethodGet, server.URL+path, nil, authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	// ===== 预约看板 WebSocket =====
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/board?group_id=1&space_id=1"
	header := http.Header{}
	header.Set("Authorization", authHeader)
	conn, wsResp, err := gorillaws.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	_ = wsResp.Body.Close()
	_ = conn.Close()

	// 未携带令牌的握手被拒
	_, wsResp, err = gorillaws.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatalf("ws dial without token unexpectedly succeeded")
	}
	if wsResp != nil {
		if wsResp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("ws without token status=%d, want 401", wsResp.StatusCode)
		}
		_ = wsResp.Body.Close()
	}
}
