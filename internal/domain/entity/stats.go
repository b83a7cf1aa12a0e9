package entity

type DashboardStats struct {
	Users          int64                   `json:"users"`
	Products       map[ProductStatus]int64 `json:"products"`
	Advertisements int64                   `json:"advertisements"`
	Payments       int64                   `json:"payments"`
	Revenue        float64                 `json:"revenue"`
}
