// Package handler 提供 HTTP 请求处理器
// 本文件处理群组相关的 API 请求
package handler

import (
	"kama_reservation_server/internal/dto/request"
	"kama_reservation_server/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler 群组请求处理器
// 通过构造函数注入 GroupService，遵循依赖倒置原则
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler 创建群组处理器实例
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// CreateGroup 创建群组
// POST /group/createGroup
// 请求体: request.CreateGroupRequest
// 响应: respond.GroupInfoRespond
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.CreateGroup(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetGroupInfo 获取群组信息
// GET /group/getGroupInfo?group_id=xxx
// 响应: respond.GroupInfoRespond
func (h *GroupHandler) GetGroupInfo(c *gin.Context) {
	var req request.GroupIdRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.GetGroupInfo(currentUserId(c), req.GroupId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyGroups 获取我的群组列表
// GET /group/getMyGroups
// 响应: respond.MyGroupListRespond
func (h *GroupHandler) GetMyGroups(c *gin.Context) {
	data, err := h.groupSvc.GetMyGroups(currentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateGroupInfo 更新群组信息
// POST /group/updateGroupInfo
// 请求体: request.UpdateGroupInfoRequest
// 响应: nil
func (h *GroupHandler) UpdateGroupInfo(c *gin.Context) {
	var req request.UpdateGroupInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.UpdateGroupInfo(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ReissueInviteCode 更换邀请码
// POST /group/reissueInviteCode
// 请求体: request.ReissueInviteCodeRequest
// 响应: 新邀请码字符串
func (h *GroupHandler) ReissueInviteCode(c *gin.Context) {
	var req request.ReissueInviteCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	code, err := h.groupSvc.ReissueInviteCode(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"invite_code": code})
}

// JoinByInviteCode 凭邀请码加入群组
// POST /group/joinByInviteCode
// 请求体: request.JoinByInviteCodeRequest
// 响应: respond.JoinByInviteCodeRespond
func (h *GroupHandler) JoinByInviteCode(c *gin.Context) {
	var req request.JoinByInviteCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.JoinByInviteCode(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListMembers 获取成员列表
// GET /group/listMembers?group_id=xxx
// 响应: []respond.GroupMemberRespond
func (h *GroupHandler) ListMembers(c *gin.Context) {
	var req request.GroupIdRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.ListMembers(currentUserId(c), req.GroupId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// KickMember 移出成员
// POST /group/kickMember
// 请求体: request.KickMemberRequest
// 响应: nil
func (h *GroupHandler) KickMember(c *gin.Context) {
	var req request.KickMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.KickMember(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Withdraw 退出群组
// POST /group/withdraw
// 请求体: request.WithdrawRequest
// 响应: nil
func (h *GroupHandler) Withdraw(c *gin.Context) {
	var req request.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.Withdraw(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// HandoverManager 移交管理权
// POST /group/handoverManager
// 请求体: request.HandoverManagerRequest
// 响应: nil
func (h *GroupHandler) HandoverManager(c *gin.Context) {
	var req request.HandoverManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.HandoverManager(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UpdateMemberPermission 更新成员权限标签
// POST /group/updateMemberPermission
// 请求体: request.UpdateMemberPermissionRequest
// 响应: nil
func (h *GroupHandler) UpdateMemberPermission(c *gin.Context) {
	var req request.UpdateMemberPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.UpdateMemberPermission(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ListPermissionTags 获取权限标签列表
// GET /group/listPermissionTags?group_id=xxx
// 响应: []respond.PermissionTagRespond
func (h *GroupHandler) ListPermissionTags(c *gin.Context) {
	var req request.GroupIdRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.ListPermissionTags(currentUserId(c), req.GroupId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListJoinRequests 获取待处理加群申请列表
// GET /group/listJoinRequests?group_id=xxx
// 响应: []respond.JoinRequestRespond
func (h *GroupHandler) ListJoinRequests(c *gin.Context) {
	var req request.GroupIdRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.ListJoinRequests(currentUserId(c), req.GroupId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AcceptJoinRequest 接受加群申请
// POST /group/acceptJoinRequest
// 请求体: request.HandleJoinRequestRequest
// 响应: nil
func (h *GroupHandler) AcceptJoinRequest(c *gin.Context) {
	var req request.HandleJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.AcceptJoinRequest(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RejectJoinRequest 拒绝加群申请
// POST /group/rejectJoinRequest
// 请求体: request.HandleJoinRequestRequest
// 响应: nil
func (h *GroupHandler) RejectJoinRequest(c *gin.Context) {
	var req request.HandleJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.RejectJoinRequest(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CreateBlock 创建成员活动限制
// POST /group/createBlock
// 请求体: request.CreateBlockRequest
// 响应: respond.BlockRespond
func (h *GroupHandler) CreateBlock(c *gin.Context) {
	var req request.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.groupSvc.CreateBlock(currentUserId(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListBlocks 获取成员限制记录
// GET /group/listBlocks?group_id=xxx&user_id=xxx
// user_id 缺省时查询自己的记录
// 响应: []respond.BlockRespond
func (h *GroupHandler) ListBlocks(c *gin.Context) {
	var req request.ListBlocksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := currentUserId(c)
	memberId := req.UserId
	if memberId == 0 {
		memberId = userId
	}
	data, err := h.groupSvc.ListBlocks(userId, req.GroupId, memberId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteBlock 解除成员活动限制
// POST /group/deleteBlock
// 请求体: request.DeleteBlockRequest
// 响应: nil
func (h *GroupHandler) DeleteBlock(c *gin.Context) {
	var req request.DeleteBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.DeleteBlock(currentUserId(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
