package router

import (
	"github.com/gin-gonic/gin"

	"kama_reservation_server/internal/infrastructure/middleware"
)

// registerGroupRoutes 注册群组路由，全部需要登录
func (rt *Router) registerGroupRoutes(r *gin.Engine) {
	group := r.Group("/group")
	group.Use(middleware.JWTAuth())
	{
		group.POST("/createGroup", rt.handlers.Group.CreateGroup)
		group.GET("/getGroupInfo", rt.handlers.Group.GetGroupInfo)
		group.GET("/getMyGroups", rt.handlers.Group.GetMyGroups)
		group.POST("/updateGroupInfo", rt.handlers.Group.UpdateGroupInfo)
		group.POST("/reissueInviteCode", rt.handlers.Group.ReissueInviteCode)
		group.POST("/joinByInviteCode", rt.handlers.Group.JoinByInviteCode)
		group.GET("/listMembers", rt.handlers.Group.ListMembers)
		group.POST("/kickMember", rt.handlers.Group.KickMember)
		group.POST("/withdraw", rt.handlers.Group.Withdraw)
		group.POST("/handoverManager", rt.handlers.Group.HandoverManager)
		group.POST("/updateMemberPermission", rt.handlers.Group.UpdateMemberPermission)
		group.GET("/listPermissionTags", rt.handlers.Group.ListPermissionTags)
		group.GET("/listJoinRequests", rt.handlers.Group.ListJoinRequests)
		group.POST("/acceptJoinRequest", rt.handlers.Group.AcceptJoinRequest)
		group.POST("/rejectJoinRequest", rt.handlers.Group.RejectJoinRequest)
		group.POST("/createBlock", rt.handlers.Group.CreateBlock)
		group.GET("/listBlocks", rt.handlers.Group.ListBlocks)
		group.POST("/deleteBlock", rt.handlers.Group.DeleteBlock)
	}
}
