package cancel_appointment

// Request модель запроса на отмену приема
// Прием передается явно, из адреса подтверждающего запроса
type Request struct {
	AppointmentID string // "appointment:abc" или "abc"
}
