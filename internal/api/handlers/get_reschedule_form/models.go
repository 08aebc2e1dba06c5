package get_reschedule_form

// ReschedulePage данные формы массового переноса
type ReschedulePage struct {
	Doctors   []int
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}
