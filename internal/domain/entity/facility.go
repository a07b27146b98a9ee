// Package entity contains the core business objects of the project.
package entity

// StockStatus is the PrEP stock level reported for a facility.
type StockStatus string

const (
	StockAvailable StockStatus = "available"
	StockLow       StockStatus = "low"
	StockOut       StockStatus = "out"
)

// Valid reports whether s is one of the known stock levels.
func (s StockStatus) Valid() bool {
	switch s {
	case StockAvailable, StockLow, StockOut:
		return true
	default:
		return false
	}
}

// Label returns the human-readable badge text for the stock level.
func (s StockStatus) Label() string {
	switch s {
	case StockAvailable:
		return "In Stock"
	case StockLow:
		return "Low Stock"
	default:
		return "Out of Stock"
	}
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Contact is the key contact person of a facility.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Facility is a point of service located within exactly one region.
type Facility struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	RegionID    string      `json:"region_id"`
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Contact     *Contact    `json:"contact,omitempty"`
	StockStatus StockStatus `json:"stock_status"`
}
