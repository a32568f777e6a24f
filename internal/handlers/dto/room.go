package dto

type CreateRoomRequest struct {
	Name      string `json:"name" binding:"required"`
	Capacity  *int   `json:"capacity" binding:"omitempty,min=1,max=11"`
	StartAt   string `json:"start_at" binding:"required"`
	EndAt     string `json:"end_at" binding:"required"`
	Timezone  string `json:"timezone" binding:"required"`
	Recurring bool   `json:"recurring"`
}
