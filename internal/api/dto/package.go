package dto

type PackageResponse struct {
	PackageID   int    `json:"package_id"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zipcode     string `json:"zipcode"`
	Deadline    string `json:"deadline"`
	WeightKg    int    `json:"weight_kg"`
	Notes       string `json:"notes,omitempty"`
	TruckID     int    `json:"truck_id"`
	Status      string `json:"status"`
	Detail      string `json:"detail"`
	LoadedAt    string `json:"loaded_at"`
	DeliveredAt string `json:"delivered_at,omitempty"`
}

type ListPackagesResponse struct {
	// At is the query time; empty for the end-of-day report.
	At       string            `json:"at,omitempty"`
	Packages []PackageResponse `json:"packages"`
}
