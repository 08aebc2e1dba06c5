package cancel_appointment

// CancelAppointmentForm поля формы подтверждения
type CancelAppointmentForm struct {
	Date string `schema:"date"`
}
