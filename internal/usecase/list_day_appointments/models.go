package list_day_appointments

import "time"

// NoAppointmentsText текст единственной строки таблицы, когда показать нечего
const NoAppointmentsText = "No appointments to show."

// Request модель запроса на получение приемов за день
type Request struct {
	Date *time.Time // Дата без времени; nil - сегодня
}

// Response модель ответа для таблицы приемов
type Response struct {
	Date        time.Time // Показываемый день
	PrevDate    time.Time // Кнопка "предыдущий день"
	NextDate    time.Time // Кнопка "следующий день"
	Rows        []Row     // Пусто, если показывается Placeholder
	Placeholder string    // NoAppointmentsText или ""
}

// Row строка таблицы приемов
type Row struct {
	ID              string // Ключ записи приема, цель отмены
	Doctor          string // "Doctor 2"
	PatientName     string
	Type            string // "Quick checkup"
	StartTime       string // "09:00"
	EndTime         string // "09:45"
	DurationMinutes int
	RoomNr          int
	ValidRange      bool // false, если конец раньше начала
}

// IsEmpty true, если вместо строк показывается заглушка
func (r *Response) IsEmpty() bool {
	return len(r.Rows) == 0
}
