package entity

// DrugStock is one stocked drug line at a facility.
type DrugStock struct {
	DrugName string      `json:"drug_name"`
	Status   StockStatus `json:"status"`
}

// FacilitySeed is a facility as written by the admin seed, with its
// contact role and every stock line rather than the summarized PrEP status.
type FacilitySeed struct {
	Facility    Facility
	ContactRole string
	Stocks      []DrugStock
}

// SeedReport summarizes a completed seed run.
type SeedReport struct {
	Facilities int `json:"facilities"`
	Contacts   int `json:"contacts"`
	Stocks     int `json:"stocks"`
}
