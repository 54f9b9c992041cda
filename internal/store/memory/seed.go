package memory

import "github.com/dentalcare-app/clinic-api/internal/models"

func str(s string) *string   { return &s }
func f64(f float64) *float64 { return &f }
func intp(i int) *int        { return &i }

func spec(s models.Specialization) *models.Specialization { return &s }

// Seed loads the demo directory and price list. Appointments, results,
// reviews and notifications start empty; counters stay at 1.
func (s *Store) Seed() {
	s.AddDoctor(models.Doctor{
		ID: 1, FirstName: "Anna", LastName: "Ivanova",
		Specialization: models.SpecOrthodontist, ExperienceYears: 8,
		PhotoURL: str("https://example.com/doctors/1.jpg"),
		Rating:   f64(4.8), ReviewsCount: intp(45),
	})
	s.AddDoctor(models.Doctor{
		ID: 2, FirstName: "Dmitry", LastName: "Petrov",
		Specialization: models.SpecSurgeon, ExperienceYears: 12,
		PhotoURL: str("https://example.com/doctors/2.jpg"),
		Rating:   f64(4.9), ReviewsCount: intp(78),
	})
	s.AddDoctor(models.Doctor{
		ID: 3, FirstName: "Elena", LastName: "Smirnova",
		Specialization: models.SpecTherapist, ExperienceYears: 5,
		PhotoURL: str("https://example.com/doctors/3.jpg"),
		Rating:   f64(4.7), ReviewsCount: intp(32),
	})
	s.AddDoctor(models.Doctor{
		ID: 4, FirstName: "Mikhail", LastName: "Kozlov",
		Specialization: models.SpecPeriodontist, ExperienceYears: 10,
		PhotoURL: str("https://example.com/doctors/4.jpg"),
		Rating:   f64(4.6), ReviewsCount: intp(56),
	})

	s.AddPatient(models.Patient{
		ID: 1, FirstName: "Ivan", LastName: "Sidorov",
		Phone: "+79161234567", Email: str("ivan@example.com"), BirthDate: str("1990-05-15"),
	})
	s.AddPatient(models.Patient{
		ID: 2, FirstName: "Maria", LastName: "Fedorova",
		Phone: "+79167654321", Email: str("maria@example.com"), BirthDate: str("1985-08-22"),
	})

	s.AddService(models.Service{
		ID: 1, Name: "Orthodontic consultation",
		Description:     str("Initial consultation on bite correction"),
		Price:           1500, DurationMinutes: 30, Specialization: spec(models.SpecOrthodontist),
	})
	s.AddService(models.Service{
		ID: 2, Name: "Braces installation",
		Description:     str("Metal or ceramic braces fitting"),
		Price:           45000, DurationMinutes: 120, Specialization: spec(models.SpecOrthodontist),
	})
	s.AddService(models.Service{
		ID: 3, Name: "Caries treatment",
		Description:     str("Composite filling of one tooth"),
		Price:           3500, DurationMinutes: 60, Specialization: spec(models.SpecTherapist),
	})
	s.AddService(models.Service{
		ID: 4, Name: "Tooth extraction",
		Description:     str("Simple extraction under local anesthesia"),
		Price:           2500, DurationMinutes: 30, Specialization: spec(models.SpecSurgeon),
	})
	s.AddService(models.Service{
		ID: 5, Name: "Professional teeth cleaning",
		Description:     str("Ultrasonic cleaning with Air Flow"),
		Price:           4000, DurationMinutes: 45, Specialization: spec(models.SpecTherapist),
	})
	s.AddService(models.Service{
		ID: 6, Name: "Periodontitis treatment",
		Description:     str("Comprehensive periodontal care"),
		Price:           8000, DurationMinutes: 90, Specialization: spec(models.SpecPeriodontist),
	})
}
