package dbtime

import (
	"time"

	"gorm.io/datatypes"
)

// Helpers para columnas DATE (datatypes.Date).
// Las fechas se agrupan por día calendario del servidor, igual que el
// YYYY-MM-DD que espera el frontend.

// FechaDe trunca un time.Time a su día calendario local.
func FechaDe(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()))
}

// Hoy devuelve la fecha del servidor.
func Hoy() datatypes.Date {
	return FechaDe(time.Now())
}

// ParseFecha interpreta "YYYY-MM-DD" en hora local.
func ParseFecha(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return datatypes.Date{}, err
	}
	return FechaDe(t), nil
}

// FormatFecha vuelve al string "YYYY-MM-DD" del wire.
func FormatFecha(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
