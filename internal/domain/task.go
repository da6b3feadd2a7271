package domain

// Task представляет модель задачи в системе,
// соответствует таблице tasks в бд.
// user_id обязателен и проверяется только в момент создания задачи.
// completed выставляется дефолтом на уровне хранилища и не задаётся клиентом.
type Task struct {
	ID        int64  `json:"id" db:"id" gorm:"primaryKey"`
	Title     string `json:"title" db:"title" gorm:"not null"`
	Content   string `json:"content" db:"content"`
	Priority  int    `json:"priority" db:"priority"`
	Completed bool   `json:"completed" db:"completed" gorm:"not null;default:false"`
	Slug      string `json:"slug" db:"slug"`
	UserID    int64  `json:"user_id" db:"user_id" gorm:"not null"`
}

func (Task) TableName() string {
	return "tasks"
}
