package prepare_appointment_form

import (
	"time"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// Schedule настройки расписания из конфигурации
type Schedule struct {
	WorkingDay       []domain.TimeSlot
	StepMinutes      int
	AppointmentTypes []domain.AppointmentType
}

// Request модель запроса на подготовку формы
type Request struct {
	Date *time.Time // nil - сегодня
}

// Response данные для формы создания приема
type Response struct {
	Date       time.Time
	StartTimes []Option // "08:00" / "08:00:00"
	Patients   []Option // "John Doe" / "patient:abc"
	Doctors    []int    // 0..MaxDoctorIndex
	Rooms      []int    // 0..MaxRoomIndex
	Types      []Option // "Quick checkup" / "quick_checkup"
	Alerts     []string // Частичные ошибки загрузки
}

// Option пункт выпадающего списка
type Option struct {
	Label string
	Value string
}
