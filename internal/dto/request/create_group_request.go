package request

// CreateGroupRequest 创建群组请求
// 使用位置:
//   - internal/handler/group_handler.go: CreateGroupHandler
type CreateGroupRequest struct {
	// Name 群组名称，全局唯一
	Name string `json:"name" binding:"required,max=20"`
	// IsPublic 是否公开群组，公开群组凭邀请码直接加入
	IsPublic bool `json:"is_public"`
}
