package domain

// User представляет модель пользователя в системе,
// соответствует таблице users в бд.
// username задаётся один раз при создании и далее не меняется,
// slug всегда пересчитывается из username.
type User struct {
	ID        int64  `json:"id" db:"id" gorm:"primaryKey"`
	Username  string `json:"username" db:"username" gorm:"not null"`
	Firstname string `json:"firstname" db:"firstname"`
	Lastname  string `json:"lastname" db:"lastname"`
	Age       int    `json:"age" db:"age"`
	Slug      string `json:"slug" db:"slug"`
}

func (User) TableName() string {
	return "users"
}
