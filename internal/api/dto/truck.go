package dto

type TruckResponse struct {
	TruckID        int     `json:"truck_id"`
	DepartAt       string  `json:"depart_at"`
	ReturnAt       string  `json:"return_at"`
	ElapsedMinutes float64 `json:"elapsed_minutes"`
	DistanceMiles  float64 `json:"distance_miles"`
	PackageIDs     []int   `json:"package_ids"`
}

type ListTrucksResponse struct {
	RunID              string          `json:"run_id"`
	Trucks             []TruckResponse `json:"trucks"`
	TotalDistanceMiles float64         `json:"total_distance_miles"`
}
