package updates

type PostUpdateRequest struct {
	Content    string `json:"content" binding:"required"`
	To         string `json:"to"`
	TargetUser string `json:"targetUser"`
}
