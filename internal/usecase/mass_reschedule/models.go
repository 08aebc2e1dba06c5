package mass_reschedule

// Request модель запроса на массовый перенос приемов врача
type Request struct {
	DoctorID  *int   `validate:"required,min=0"`
	StartDate string `validate:"required,datetime=2006-01-02"` // YYYY-MM-DD, включительно
	EndDate   string `validate:"required,datetime=2006-01-02"` // YYYY-MM-DD, включительно
}
