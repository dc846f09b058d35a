package respond

// TermRespond 条款响应
// 使用位置:
//   - internal/service/space/service.go: ListTerms, CreateTerm, UpdateTerm
type TermRespond struct {
	TermId    uint   `json:"term_id"`
	GroupId   uint   `json:"group_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}
