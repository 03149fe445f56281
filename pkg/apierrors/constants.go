package apierrors

const (
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskTitle   = "invalidTaskTitle"
	MsgInvalidTaskStatus  = "invalidTaskStatus"
	MsgInternalError      = "internalError"
)
