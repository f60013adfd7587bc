package model

// CarStatus is the availability flag stored on a car row.
type CarStatus string

const (
	CarAvailable   CarStatus = "available"
	CarRented      CarStatus = "rented"
	CarMaintenance CarStatus = "maintenance"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarAvailable, CarRented, CarMaintenance:
		return true
	}
	return false
}

// CarType is immutable reference data (compact, SUV, ...).
type CarType struct {
	ID          int64   `json:"type_id"`
	Name        string  `json:"type_name"`
	Description *string `json:"description,omitempty"`
}

// Car is a rentable vehicle. Status is its only mutable field.
type Car struct {
	ID           int64     `json:"car_id"`
	TypeID       int64     `json:"type_id"`
	TypeName     string    `json:"type_name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"license_plate"`
	DailyRate    Money     `json:"daily_rate"`
	Status       CarStatus `json:"status"`
	Mileage      int       `json:"mileage"`
	ImageURL     *string   `json:"image_url,omitempty"`
}

// UpdateCarStatusRequest is the body of the admin maintenance toggle
type UpdateCarStatusRequest struct {
	Status CarStatus `json:"status" binding:"required,oneof=available maintenance"`
}
