package model

// RideStats holds program-wide sustainability totals.
type RideStats struct {
	ID              uint `json:"-" gorm:"primaryKey"`
	TotalRides      int  `json:"totalRides"`
	ActiveUsers     int  `json:"activeUsers"`
	TotalKilometers int  `json:"totalKilometers"`
	CO2Saved        int  `json:"co2Saved"` // kg
}

// DepartmentStats holds per-department participation figures.
type DepartmentStats struct {
	Department string `json:"department" gorm:"size:100;primaryKey"`
	RidesCount int    `json:"ridesCount"`
	UsersCount int    `json:"usersCount"`
	CO2Saved   int    `json:"co2Saved"` // kg
	Position   int    `json:"-" gorm:"not null;default:0"`
}
