package model

// EquipmentUsage is the reservation count for one equipment item within a
// report period.
type EquipmentUsage struct {
	EquipmentID   string `json:"equipmentId"`
	EquipmentName string `json:"equipmentName"`
	Count         int    `json:"count"`
}

// UsageReport aggregates reservations per equipment over an inclusive date
// range.
type UsageReport struct {
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Total     int              `json:"total"`
	Items     []EquipmentUsage `json:"items"`
}
