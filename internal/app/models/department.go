package models

// Department represents an academic department
type Department struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Faculty        string `json:"faculty" db:"faculty"`
	OfficeLocation string `json:"officeLocation" db:"office_location"`
}
