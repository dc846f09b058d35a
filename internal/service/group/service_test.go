package group

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"kama_reservation_server/internal/dao/mysql/repository"
	"kama_reservation_server/internal/dao/mysql/repository/repotest"
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/pkg/constants"
	"kama_reservation_server/pkg/errorx"
)

// fakeCache 内存实现的异步缓存，SubmitTask 同步执行以便断言
type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *fakeCache) GetOrError(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return "", errorx.New(errorx.CodeCacheError, "key not found")
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	return c.Delete(ctx, pattern)
}

func (c *fakeCache) DeleteByPatterns(ctx context.Context, patterns []string) error {
	for _, p := range patterns {
		_ = c.Delete(ctx, p)
	}
	return nil
}

func (c *fakeCache) SubmitTask(action func()) { action() }

func newService(t *testing.T) (*groupService, *repository.Repositories) {
	t.Helper()
	repos := repotest.NewRepositories(repotest.NewStore())
	return NewGroupService(repos, newFakeCache()), repos
}

func seedUser(t *testing.T, repos *repository.Repositories, username string) uint {
	t.Helper()
	user := model.UserInfo{Username: username, Nickname: username + "昵称", Password: "hashed"}
	if err := repos.User.Create(&user); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user.ID
}

func TestCreateGroup(t *testing.T) {
	svc, repos := newService(t)
	userId := seedUser(t, repos, "alice")

	rsp, err := svc.CreateGroup(userId, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if !rsp.IsManager || rsp.ManagerId != userId {
		t.Fatalf("respond = %+v", rsp)
	}
	if len(rsp.InviteCode) != constants.INVITE_CODE_LENGTH {
		t.Fatalf("invite code = %q", rsp.InviteCode)
	}

	// 创建人自动入群
	if _, err := repos.Member.FindByGroupAndUser(rsp.GroupId, userId); err != nil {
		t.Fatalf("manager membership missing: %v", err)
	}
}

func TestCreateGroupNameConflict(t *testing.T) {
	svc, repos := newService(t)
	userId := seedUser(t, repos, "alice")

	if _, err := svc.CreateGroup(userId, request.CreateGroupRequest{Name: "读书会"}); err != nil {
		t.Fatalf("create group: %v", err)
	}
	_, err := svc.CreateGroup(userId, request.CreateGroupRequest{Name: "读书会"})
	if err == nil || errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("duplicate name error = %v, want Conflict", err)
	}
}

func TestCreateGroupManagedLimit(t *testing.T) {
	svc, repos := newService(t)
	userId := seedUser(t, repos, "alice")

	for i := 0; i < constants.MANAGED_GROUP_LIMIT; i++ {
		group := model.GroupInfo{
			Name:       fmt.Sprintf("组%d", i),
			ManagerId:  userId,
			InviteCode: fmt.Sprintf("c%04d", i),
		}
		if err := repos.Group.Create(&group); err != nil {
			t.Fatalf("seed group %d: %v", i, err)
		}
	}

	_, err := svc.CreateGroup(userId, request.CreateGroupRequest{Name: "超额群"})
	if err == nil || errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("over limit error = %v, want Forbidden", err)
	}
}

func TestGetGroupInfoNonMember(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	rsp, err := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	// 非成员与群组不存在不可区分
	if _, err := svc.GetGroupInfo(bob, rsp.GroupId); !errorx.IsNotFound(err) {
		t.Fatalf("non-member error = %v, want NotFound", err)
	}
	if _, err := svc.GetGroupInfo(alice, 9999); !errorx.IsNotFound(err) {
		t.Fatalf("missing group error = %v, want NotFound", err)
	}
}

func TestJoinByInviteCodePublic(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, err := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	rsp, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if !rsp.Joined || rsp.GroupId != created.GroupId {
		t.Fatalf("respond = %+v", rsp)
	}

	// 重复加入得到冲突
	_, err = svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode})
	if err == nil || errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("rejoin error = %v, want Conflict", err)
	}

	// 无效邀请码
	_, err = svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: "zzzzz"})
	if !errorx.IsNotFound(err) {
		t.Fatalf("bad code error = %v, want NotFound", err)
	}
}

func TestJoinByInviteCodePrivate(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, err := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: false})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	rsp, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if rsp.Joined {
		t.Fatalf("private group joined directly")
	}
	// 成为待处理申请而非成员
	if _, err := repos.Member.FindByGroupAndUser(created.GroupId, bob); !errorx.IsNotFound(err) {
		t.Fatalf("membership unexpectedly present, err = %v", err)
	}
	requests, err := svc.ListJoinRequests(alice, created.GroupId)
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}
	if len(requests) != 1 || requests[0].UserId != bob {
		t.Fatalf("requests = %+v", requests)
	}

	// 重复申请得到冲突
	_, err = svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode})
	if err == nil || errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("reapply error = %v, want Conflict", err)
	}
}

func TestAcceptJoinRequestTerminal(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: false})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	requests, _ := svc.ListJoinRequests(alice, created.GroupId)

	req := request.HandleJoinRequestRequest{GroupId: created.GroupId, RequestId: requests[0].RequestId}
	if err := svc.AcceptJoinRequest(alice, req); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := repos.Member.FindByGroupAndUser(created.GroupId, bob); err != nil {
		t.Fatalf("membership missing: %v", err)
	}

	// 申请删除即终态，重复处理得到 NotFound
	if err := svc.AcceptJoinRequest(alice, req); !errorx.IsNotFound(err) {
		t.Fatalf("accept twice error = %v, want NotFound", err)
	}
	if err := svc.RejectJoinRequest(alice, req); !errorx.IsNotFound(err) {
		t.Fatalf("reject after accept error = %v, want NotFound", err)
	}
}

func TestRejectJoinRequest(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: false})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	requests, _ := svc.ListJoinRequests(alice, created.GroupId)

	req := request.HandleJoinRequestRequest{GroupId: created.GroupId, RequestId: requests[0].RequestId}
	if err := svc.RejectJoinRequest(alice, req); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := repos.Member.FindByGroupAndUser(created.GroupId, bob); !errorx.IsNotFound(err) {
		t.Fatalf("membership unexpectedly present, err = %v", err)
	}

	// 拒绝后可以重新申请
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("reapply after reject: %v", err)
	}
}

func TestUpdateGroupInfoGoPublicAcceptsPending(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")
	carol := seedUser(t, repos, "carol")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: false})
	for _, uid := range []uint{bob, carol} {
		if _, err := svc.JoinByInviteCode(uid, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}

	err := svc.UpdateGroupInfo(alice, request.UpdateGroupInfoRequest{
		GroupId: created.GroupId, Name: "读书会", IsPublic: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// 存量申请全部放行
	for _, uid := range []uint{bob, carol} {
		if _, err := repos.Member.FindByGroupAndUser(created.GroupId, uid); err != nil {
			t.Fatalf("membership for %d missing: %v", uid, err)
		}
	}
	requests, _ := svc.ListJoinRequests(alice, created.GroupId)
	if len(requests) != 0 {
		t.Fatalf("pending requests remain: %+v", requests)
	}
}

func TestUpdateGroupInfoNonManager(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}

	err := svc.UpdateGroupInfo(bob, request.UpdateGroupInfoRequest{
		GroupId: created.GroupId, Name: "改名", IsPublic: true,
	})
	if err == nil || errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("non-manager update error = %v, want Forbidden", err)
	}
}

func TestReissueInviteCode(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	oldCode := created.InviteCode

	newCode, err := svc.ReissueInviteCode(alice, request.ReissueInviteCodeRequest{GroupId: created.GroupId})
	if err != nil {
		t.Fatalf("reissue: %v", err)
	}
	if newCode == oldCode || len(newCode) != constants.INVITE_CODE_LENGTH {
		t.Fatalf("new code = %q, old = %q", newCode, oldCode)
	}

	// 旧邀请码立即作废
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: oldCode}); !errorx.IsNotFound(err) {
		t.Fatalf("old code error = %v, want NotFound", err)
	}
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: newCode}); err != nil {
		t.Fatalf("join with new code: %v", err)
	}
}

func memberTags(t *testing.T, repos *repository.Repositories, groupId, userId uint) []string {
	t.Helper()
	tags, err := repos.Permission.FindTagsOfUser(groupId, userId)
	if err != nil {
		t.Fatalf("find tags: %v", err)
	}
	bodies := make([]string, 0, len(tags))
	for _, tag := range tags {
		bodies = append(bodies, tag.Body)
	}
	sort.Strings(bodies)
	return bodies
}

func TestUpdateMemberPermissionDiff(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}

	err := svc.UpdateMemberPermission(alice, request.UpdateMemberPermissionRequest{
		GroupId: created.GroupId, UserId: bob, Tags: "钥匙 驾照",
	})
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	got := memberTags(t, repos, created.GroupId, bob)
	if len(got) != 2 || got[0] != "钥匙" || got[1] != "驾照" {
		t.Fatalf("tags = %v", got)
	}

	// 调整到新目标集合：撤销"钥匙"，保留"驾照"，新增"证书"
	err = svc.UpdateMemberPermission(alice, request.UpdateMemberPermissionRequest{
		GroupId: created.GroupId, UserId: bob, Tags: "驾照 证书",
	})
	if err != nil {
		t.Fatalf("rediff: %v", err)
	}
	got = memberTags(t, repos, created.GroupId, bob)
	if len(got) != 2 || got[0] != "证书" || got[1] != "驾照" {
		t.Fatalf("tags after diff = %v", got)
	}

	// 群内标签本身不随撤销消失
	all, err := svc.ListPermissionTags(alice, created.GroupId)
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("group tags = %+v", all)
	}

	// 空串清空
	err = svc.UpdateMemberPermission(alice, request.UpdateMemberPermissionRequest{
		GroupId: created.GroupId, UserId: bob, Tags: "",
	})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := memberTags(t, repos, created.GroupId, bob); len(got) != 0 {
		t.Fatalf("tags after clear = %v", got)
	}
}

// 并发调整同一成员的标签，终态必须完整等于某一次调用的目标集合
func TestUpdateMemberPermissionConcurrent(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}

	targets := []string{"钥匙 驾照", "驾照 证书"}
	for i := 0; i < 20; i++ {
		var wg sync.WaitGroup
		for _, tags := range targets {
			wg.Add(1)
			go func(tags string) {
				defer wg.Done()
				err := svc.UpdateMemberPermission(alice, request.UpdateMemberPermissionRequest{
					GroupId: created.GroupId, UserId: bob, Tags: tags,
				})
				if err != nil {
					t.Errorf("update permission: %v", err)
				}
			}(tags)
		}
		wg.Wait()

		got := fmt.Sprintf("%v", memberTags(t, repos, created.GroupId, bob))
		if got != "[钥匙 驾照]" && got != "[证书 驾照]" {
			t.Fatalf("tags converged to %v, want one call's target set", got)
		}
	}
}

func TestUpdateMemberPermissionTagTooLong(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}

	err := svc.UpdateMemberPermission(alice, request.UpdateMemberPermissionRequest{
		GroupId: created.GroupId, UserId: bob, Tags: "这个标签名字实在是太长了",
	})
	if err == nil || errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("too long tag error = %v, want InvalidParam", err)
	}
}

func TestKickMemberStripsGrants(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.UpdateMemberPermission(alice, request.UpdateMemberPermissionRequest{
		GroupId: created.GroupId, UserId: bob, Tags: "钥匙",
	}); err != nil {
		t.Fatalf("grant: %v", err)
	}

	// 限制记录在移出后保留
	block, err := svc.CreateBlock(alice, request.CreateBlockRequest{
		GroupId: created.GroupId, UserId: bob,
		DtFrom: "2025-03-01 00:00:00", DtTo: "2025-03-08 00:00:00",
	})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	if err := svc.KickMember(alice, request.KickMemberRequest{GroupId: created.GroupId, UserId: bob}); err != nil {
		t.Fatalf("kick: %v", err)
	}

	if _, err := repos.Member.FindByGroupAndUser(created.GroupId, bob); !errorx.IsNotFound(err) {
		t.Fatalf("membership still present, err = %v", err)
	}
	if got := memberTags(t, repos, created.GroupId, bob); len(got) != 0 {
		t.Fatalf("grants survived kick: %v", got)
	}
	if _, err := repos.Block.FindById(block.BlockId); err != nil {
		t.Fatalf("block removed by kick: %v", err)
	}

	// 管理员不能移出自己
	err = svc.KickMember(alice, request.KickMemberRequest{GroupId: created.GroupId, UserId: alice})
	if err == nil || errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("self kick error = %v, want InvalidParam", err)
	}
}

func TestWithdraw(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}

	// 管理员必须先移交管理权
	err := svc.Withdraw(alice, request.WithdrawRequest{GroupId: created.GroupId})
	if err == nil || errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("manager withdraw error = %v, want Forbidden", err)
	}

	if err := svc.Withdraw(bob, request.WithdrawRequest{GroupId: created.GroupId}); err != nil {
		t.Fatalf("member withdraw: %v", err)
	}
	if _, err := repos.Member.FindByGroupAndUser(created.GroupId, bob); !errorx.IsNotFound(err) {
		t.Fatalf("membership still present, err = %v", err)
	}
}

func TestHandoverManager(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := svc.HandoverManager(alice, request.HandoverManagerRequest{GroupId: created.GroupId, UserId: bob}); err != nil {
		t.Fatalf("handover: %v", err)
	}

	info, err := svc.GetGroupInfo(bob, created.GroupId)
	if err != nil {
		t.Fatalf("get info: %v", err)
	}
	if info.ManagerId != bob || !info.IsManager {
		t.Fatalf("info = %+v", info)
	}

	// 移交后原管理员可以退出
	if err := svc.Withdraw(alice, request.WithdrawRequest{GroupId: created.GroupId}); err != nil {
		t.Fatalf("withdraw after handover: %v", err)
	}
}

func TestHandoverManagerRecipientLimit(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	// 接任人已管理满额群组
	for i := 0; i < constants.MANAGED_GROUP_LIMIT; i++ {
		group := model.GroupInfo{
			Name:       fmt.Sprintf("组%d", i),
			ManagerId:  bob,
			InviteCode: fmt.Sprintf("c%04d", i),
		}
		if err := repos.Group.Create(&group); err != nil {
			t.Fatalf("seed group %d: %v", i, err)
		}
	}

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}

	err := svc.HandoverManager(alice, request.HandoverManagerRequest{GroupId: created.GroupId, UserId: bob})
	if err == nil || errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("handover to full recipient error = %v, want Forbidden", err)
	}
}

func TestGetMyGroups(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	managed, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "我管的群", IsPublic: true})
	other, _ := svc.CreateGroup(bob, request.CreateGroupRequest{Name: "别人的群", IsPublic: true})
	if _, err := svc.JoinByInviteCode(alice, request.JoinByInviteCodeRequest{InviteCode: other.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}

	rsp, err := svc.GetMyGroups(alice)
	if err != nil {
		t.Fatalf("get my groups: %v", err)
	}
	if len(rsp.Managed) != 1 || rsp.Managed[0].GroupId != managed.GroupId {
		t.Fatalf("managed = %+v", rsp.Managed)
	}
	if len(rsp.Joined) != 1 || rsp.Joined[0].GroupId != other.GroupId {
		t.Fatalf("joined = %+v", rsp.Joined)
	}

	// 第二次走缓存，结果一致
	again, err := svc.GetMyGroups(alice)
	if err != nil {
		t.Fatalf("get my groups again: %v", err)
	}
	if len(again.Managed) != 1 || len(again.Joined) != 1 {
		t.Fatalf("cached result = %+v", again)
	}
}

func TestListMembers(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	if _, err := svc.JoinByInviteCode(bob, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.UpdateMemberPermission(alice, request.UpdateMemberPermissionRequest{
		GroupId: created.GroupId, UserId: bob, Tags: "钥匙",
	}); err != nil {
		t.Fatalf("grant: %v", err)
	}

	members, err := svc.ListMembers(bob, created.GroupId)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("members = %+v", members)
	}
	byId := make(map[uint]int)
	for i, m := range members {
		byId[m.UserId] = i
	}
	if !members[byId[alice]].IsManager || members[byId[bob]].IsManager {
		t.Fatalf("manager flags wrong: %+v", members)
	}
	if tags := members[byId[bob]].Tags; len(tags) != 1 || tags[0] != "钥匙" {
		t.Fatalf("bob tags = %v", tags)
	}
}

func TestBlocks(t *testing.T) {
	svc, repos := newService(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")
	carol := seedUser(t, repos, "carol")

	created, _ := svc.CreateGroup(alice, request.CreateGroupRequest{Name: "读书会", IsPublic: true})
	for _, uid := range []uint{bob, carol} {
		if _, err := svc.JoinByInviteCode(uid, request.JoinByInviteCodeRequest{InviteCode: created.InviteCode}); err != nil {
			t.Fatalf("join: %v", err)
		}
	}

	// 开始时间必须早于解除时间
	_, err := svc.CreateBlock(alice, request.CreateBlockRequest{
		GroupId: created.GroupId, UserId: bob,
		DtFrom: "2025-03-08 00:00:00", DtTo: "2025-03-01 00:00:00",
	})
	if err == nil || errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("inverted range error = %v, want InvalidParam", err)
	}

	block, err := svc.CreateBlock(alice, request.CreateBlockRequest{
		GroupId: created.GroupId, UserId: bob,
		DtFrom: "2025-03-01 00:00:00", DtTo: "2025-03-08 00:00:00",
	})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	// 普通成员只能查自己的限制记录
	if _, err := svc.ListBlocks(carol, created.GroupId, bob); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("peek error = %v, want Forbidden", err)
	}
	own, err := svc.ListBlocks(bob, created.GroupId, bob)
	if err != nil || len(own) != 1 {
		t.Fatalf("own blocks = %+v, %v", own, err)
	}
	asManager, err := svc.ListBlocks(alice, created.GroupId, bob)
	if err != nil || len(asManager) != 1 {
		t.Fatalf("manager view = %+v, %v", asManager, err)
	}

	// 非管理员不能解除
	err = svc.DeleteBlock(bob, request.DeleteBlockRequest{GroupId: created.GroupId, BlockId: block.BlockId})
	if err == nil || errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("member delete block error = %v, want Forbidden", err)
	}
	if err := svc.DeleteBlock(alice, request.DeleteBlockRequest{GroupId: created.GroupId, BlockId: block.BlockId}); err != nil {
		t.Fatalf("delete block: %v", err)
	}
	if _, err := repos.Block.FindById(block.BlockId); !errorx.IsNotFound(err) {
		t.Fatalf("block still present, err = %v", err)
	}
}
