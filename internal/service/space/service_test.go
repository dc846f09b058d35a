package space

import (
	"testing"

	"kama_reservation_server/internal/dao/mysql/repository"
	"kama_reservation_server/internal/dao/mysql/repository/repotest"
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/model"
	"kama_reservation_server/pkg/errorx"
)

type fixture struct {
	repos *repository.Repositories
	svc   *spaceService

	managerId uint
	memberId  uint
	groupId   uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := repotest.NewRepositories(repotest.NewStore())
	f := &fixture{repos: repos, svc: NewSpaceService(repos)}

	manager := model.UserInfo{Username: "manager", Nickname: "管理员", Password: "hashed"}
	member := model.UserInfo{Username: "member", Nickname: "成员", Password: "hashed"}
	for _, u := range []*model.UserInfo{&manager, &member} {
		if err := repos.User.Create(u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	f.managerId = manager.ID
	f.memberId = member.ID

	group := model.GroupInfo{Name: "俱乐部", ManagerId: manager.ID, IsPublic: true, InviteCode: "Xy9Zw"}
	if err := repos.Group.Create(&group); err != nil {
		t.Fatalf("seed group: %v", err)
	}
	f.groupId = group.ID
	for _, uid := range []uint{manager.ID, member.ID} {
		m := model.GroupMember{GroupId: group.ID, UserId: uid}
		if err := repos.Member.Create(&m); err != nil {
			t.Fatalf("seed member: %v", err)
		}
	}
	return f
}

func TestTermCRUD(t *testing.T) {
	f := newFixture(t)

	term, err := f.svc.CreateTerm(f.managerId, request.CreateTermRequest{
		GroupId: f.groupId, Title: "使用须知", Body: "离开时断电",
	})
	if err != nil {
		t.Fatalf("create term: %v", err)
	}

	// 写操作仅管理员可用
	_, err = f.svc.CreateTerm(f.memberId, request.CreateTermRequest{GroupId: f.groupId, Title: "x"})
	if err == nil || errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("member create term error = %v, want Forbidden", err)
	}

	updated, err := f.svc.UpdateTerm(f.managerId, request.UpdateTermRequest{
		GroupId: f.groupId, TermId: term.TermId, Title: "使用须知", Body: "离开时断电并锁门",
	})
	if err != nil {
		t.Fatalf("update term: %v", err)
	}
	if updated.Body != "离开时断电并锁门" {
		t.Fatalf("updated body = %q", updated.Body)
	}

	terms, err := f.svc.ListTerms(f.memberId, f.groupId)
	if err != nil {
		t.Fatalf("list terms: %v", err)
	}
	if len(terms) != 1 || terms[0].Body != "离开时断电并锁门" {
		t.Fatalf("terms = %+v", terms)
	}

	if err := f.svc.DeleteTerm(f.managerId, request.DeleteTermRequest{GroupId: f.groupId, TermId: term.TermId}); err != nil {
		t.Fatalf("delete term: %v", err)
	}
	if err := f.svc.DeleteTerm(f.managerId, request.DeleteTermRequest{GroupId: f.groupId, TermId: term.TermId}); !errorx.IsNotFound(err) {
		t.Fatalf("delete twice error = %v, want NotFound", err)
	}
}

func TestCreateSpaceFreezesTermSnapshot(t *testing.T) {
	f := newFixture(t)

	term, err := f.svc.CreateTerm(f.managerId, request.CreateTermRequest{
		GroupId: f.groupId, Title: "须知", Body: "v1",
	})
	if err != nil {
		t.Fatalf("create term: %v", err)
	}

	space, err := f.svc.CreateSpace(f.managerId, request.CreateSpaceRequest{
		GroupId: f.groupId, Name: "会议室", TermId: &term.TermId,
	})
	if err != nil {
		t.Fatalf("create space: %v", err)
	}
	if space.TermBody != "v1" {
		t.Fatalf("term body = %q", space.TermBody)
	}

	// 条款更新不回写已有快照
	if _, err := f.svc.UpdateTerm(f.managerId, request.UpdateTermRequest{
		GroupId: f.groupId, TermId: term.TermId, Title: "须知", Body: "v2",
	}); err != nil {
		t.Fatalf("update term: %v", err)
	}
	spaces, err := f.svc.ListSpaces(f.memberId, f.groupId)
	if err != nil {
		t.Fatalf("list spaces: %v", err)
	}
	if len(spaces) != 1 || spaces[0].TermBody != "v1" {
		t.Fatalf("spaces = %+v", spaces)
	}

	// 更新空间（保持挂同一条款）重新定格快照
	updated, err := f.svc.UpdateSpace(f.managerId, request.UpdateSpaceRequest{
		GroupId: f.groupId, SpaceId: space.SpaceId, Name: "会议室", TermId: &term.TermId,
	})
	if err != nil {
		t.Fatalf("update space: %v", err)
	}
	if updated.TermBody != "v2" {
		t.Fatalf("refrozen term body = %q", updated.TermBody)
	}

	// 解绑条款清空快照
	unbound, err := f.svc.UpdateSpace(f.managerId, request.UpdateSpaceRequest{
		GroupId: f.groupId, SpaceId: space.SpaceId, Name: "会议室",
	})
	if err != nil {
		t.Fatalf("unbind term: %v", err)
	}
	if unbound.TermId != nil || unbound.TermBody != "" {
		t.Fatalf("unbound = %+v", unbound)
	}
}

func TestDeleteTermUnlinksSpacesKeepsSnapshot(t *testing.T) {
	f := newFixture(t)

	term, _ := f.svc.CreateTerm(f.managerId, request.CreateTermRequest{
		GroupId: f.groupId, Title: "须知", Body: "v1",
	})
	space, err := f.svc.CreateSpace(f.managerId, request.CreateSpaceRequest{
		GroupId: f.groupId, Name: "会议室", TermId: &term.TermId,
	})
	if err != nil {
		t.Fatalf("create space: %v", err)
	}

	if err := f.svc.DeleteTerm(f.managerId, request.DeleteTermRequest{GroupId: f.groupId, TermId: term.TermId}); err != nil {
		t.Fatalf("delete term: %v", err)
	}

	stored, err := f.repos.Space.FindByIdAndGroup(space.SpaceId, f.groupId)
	if err != nil {
		t.Fatalf("find space: %v", err)
	}
	if stored.TermId != nil {
		t.Fatalf("term still linked: %v", *stored.TermId)
	}
	if stored.TermBody != "v1" {
		t.Fatalf("snapshot lost: %q", stored.TermBody)
	}
}

func TestCreateSpacePermissionTagValidation(t *testing.T) {
	f := newFixture(t)

	tag := model.PermissionTag{GroupId: f.groupId, Body: "钥匙"}
	if err := f.repos.Permission.CreateTag(&tag); err != nil {
		t.Fatalf("create tag: %v", err)
	}

	space, err := f.svc.CreateSpace(f.managerId, request.CreateSpaceRequest{
		GroupId: f.groupId, Name: "器材室", RequiredPermissionId: &tag.ID,
	})
	if err != nil {
		t.Fatalf("create space: %v", err)
	}
	if space.RequiredPermissionBody != "钥匙" {
		t.Fatalf("required permission body = %q", space.RequiredPermissionBody)
	}

	// 其他群组的标签按不存在处理
	otherGroup := model.GroupInfo{Name: "别的群", ManagerId: f.managerId, InviteCode: "Qw8Er"}
	if err := f.repos.Group.Create(&otherGroup); err != nil {
		t.Fatalf("seed other group: %v", err)
	}
	foreignTag := model.PermissionTag{GroupId: otherGroup.ID, Body: "外部"}
	if err := f.repos.Permission.CreateTag(&foreignTag); err != nil {
		t.Fatalf("create foreign tag: %v", err)
	}
	_, err = f.svc.CreateSpace(f.managerId, request.CreateSpaceRequest{
		GroupId: f.groupId, Name: "另一间", RequiredPermissionId: &foreignTag.ID,
	})
	if !errorx.IsNotFound(err) {
		t.Fatalf("foreign tag error = %v, want NotFound", err)
	}
}

func TestCreateSpaceForeignTerm(t *testing.T) {
	f := newFixture(t)

	otherGroup := model.GroupInfo{Name: "别的群", ManagerId: f.managerId, InviteCode: "Qw8Er"}
	if err := f.repos.Group.Create(&otherGroup); err != nil {
		t.Fatalf("seed other group: %v", err)
	}
	foreignTerm := model.Term{GroupId: otherGroup.ID, Title: "外部条款", Body: "x"}
	if err := f.repos.Term.Create(&foreignTerm); err != nil {
		t.Fatalf("create foreign term: %v", err)
	}

	_, err := f.svc.CreateSpace(f.managerId, request.CreateSpaceRequest{
		GroupId: f.groupId, Name: "会议室", TermId: &foreignTerm.ID,
	})
	if !errorx.IsNotFound(err) {
		t.Fatalf("foreign term error = %v, want NotFound", err)
	}
}

func TestDeleteSpace(t *testing.T) {
	f := newFixture(t)

	space, err := f.svc.CreateSpace(f.managerId, request.CreateSpaceRequest{GroupId: f.groupId, Name: "会议室"})
	if err != nil {
		t.Fatalf("create space: %v", err)
	}

	err = f.svc.DeleteSpace(f.memberId, request.DeleteSpaceRequest{GroupId: f.groupId, SpaceId: space.SpaceId})
	if err == nil || errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("member delete error = %v, want Forbidden", err)
	}

	if err := f.svc.DeleteSpace(f.managerId, request.DeleteSpaceRequest{GroupId: f.groupId, SpaceId: space.SpaceId}); err != nil {
		t.Fatalf("delete space: %v", err)
	}
	spaces, err := f.svc.ListSpaces(f.memberId, f.groupId)
	if err != nil {
		t.Fatalf("list spaces: %v", err)
	}
	if len(spaces) != 0 {
		t.Fatalf("spaces = %+v", spaces)
	}
}
