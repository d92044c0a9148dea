package profileservice

// Profile модель профиля пользователя
type Profile struct {
	ID       string `json:"id"` // UUID
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"` // customer, detailer, admin
}

// ErrorResponse модель ошибки от сервиса профилей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
