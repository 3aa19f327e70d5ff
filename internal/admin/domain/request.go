package domain

import "time"

// ConsultationRequest is an inbound lead from the public form. MonthlySales
// is deliberately free text; callers paste anything from "5000" to
// "about 10k SAR".
type ConsultationRequest struct {
	ID           string
	Name         string
	Phone        string
	StoreURL     string
	MonthlySales string
	CreatedAt    time.Time
}
