package request

type CalendarLoginStartQuery struct {
	ResourceID string `form:"resource_id" binding:"required,uuid"`
	ReturnTo   string `form:"return_to" binding:"required,url"`
	// UserID lets a superuser start the flow on behalf of another user.
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

type CalendarLoginCallbackQuery struct {
	State string `form:"state"`
	Code  string `form:"code"`
}
