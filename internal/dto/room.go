package dto

// RoomRequest is the create/update payload for a room.
type RoomRequest struct {
	Name      string `json:"name" binding:"required"`
	Capacity  int    `json:"capacity"`
	Type      string `json:"type" binding:"required"`
	Status    *bool  `json:"status"`
	Equipment string `json:"equipment"`
	Location  string `json:"location"`
}
