package domain

// NotFoundError — ошибка отсутствия сущности или пустой выборки.
// Detail уходит клиенту как есть в поле detail ответа 404.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

var (
	ErrNoUsers      = &NotFoundError{Detail: "There are no users"}
	ErrUserNotFound = &NotFoundError{Detail: "User was not found"}
	ErrNoUserTasks  = &NotFoundError{Detail: "There are no tasks by user_id"}
	ErrNoTasks      = &NotFoundError{Detail: "There are no tasks"}
	ErrTaskNotFound = &NotFoundError{Detail: "Task was not found"}
)
