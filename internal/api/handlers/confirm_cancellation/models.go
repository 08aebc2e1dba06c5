package confirm_cancellation

// ConfirmationPage данные страницы подтверждения отмены
type ConfirmationPage struct {
	ID   string // Ключ приема
	Date string // День, на который вернуться
}
