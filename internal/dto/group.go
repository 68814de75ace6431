package dto

// GroupRequest is the create/update payload for a student group.
type GroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Size        int    `json:"size"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Program     string `json:"program"`
	ParentGroup string `json:"parent_group"`
}
