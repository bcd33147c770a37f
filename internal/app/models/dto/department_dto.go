package dto

// CreateDepartmentRequest is the payload for creating a department.
type CreateDepartmentRequest struct {
	Name           string `json:"name" binding:"required,max=120" example:"Computer Science"`
	Faculty        string `json:"faculty" binding:"omitempty,max=120" example:"Faculty of Engineering"`
	OfficeLocation string `json:"officeLocation" binding:"omitempty,max=80" example:"Building A, Floor 2"`
}

// UpdateDepartmentRequest is the payload for updating a department.
type UpdateDepartmentRequest struct {
	Name           string `json:"name" binding:"required,max=120"`
	Faculty        string `json:"faculty" binding:"omitempty,max=120"`
	OfficeLocation string `json:"officeLocation" binding:"omitempty,max=80"`
}

// DepartmentResponse describes a department.
type DepartmentResponse struct {
	ID             int64  `json:"id" example:"1"`
	Name           string `json:"name" example:"Computer Science"`
	Faculty        string `json:"faculty,omitempty"`
	OfficeLocation string `json:"officeLocation,omitempty"`
}
