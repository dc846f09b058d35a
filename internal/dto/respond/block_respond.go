package respond

// BlockRespond 活动限制响应
// 使用位置:
//   - internal/service/group/service.go: ListBlocks, CreateBlock
type BlockRespond struct {
	BlockId uint   `json:"block_id"`
	GroupId uint   `json:"group_id"`
	UserId  uint   `json:"user_id"`
	DtFrom  string `json:"dt_from"`
	DtTo    string `json:"dt_to"`
	// Active 当前时刻是否生效中
	Active bool `json:"active"`
}
