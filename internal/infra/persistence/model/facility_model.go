package model

import "time"

// FacilityModel mirrors the 'facilities' table.
type FacilityModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	RegionID  string  `gorm:"type:varchar(50);not null;index"`
	Latitude  float64 `gorm:"type:decimal(10,8);not null"`
	Longitude float64 `gorm:"type:decimal(11,8);not null"`
	Address   string  `gorm:"type:text"`
	Phone     string  `gorm:"type:varchar(50)"`
	CreatedAt time.Time

	ContactPeople []ContactPersonModel `gorm:"foreignKey:FacilityID;constraint:OnDelete:CASCADE"`
	DrugStocks    []DrugStockModel     `gorm:"foreignKey:FacilityID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FacilityModel) TableName() string {
	return "facilities"
}

// ContactPersonModel mirrors the 'contact_people' table. FacilityID references facilities.id.
type ContactPersonModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	FacilityID int64  `gorm:"not null;index"`
	Name       string `gorm:"type:varchar(255);not null"`
	Role       string `gorm:"type:varchar(100)"`
	Phone      string `gorm:"column:phone_number;type:varchar(50)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactPersonModel) TableName() string {
	return "contact_people"
}

// DrugStockModel mirrors the 'drug_stocks' table. FacilityID references facilities.id.
type DrugStockModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	FacilityID  int64     `gorm:"not null;index"`
	DrugName    string    `gorm:"type:varchar(255);not null"`
	Status      string    `gorm:"type:varchar(20);not null;check:chk_drug_stocks_status,status IN ('available','low','out')"`
	LastUpdated time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (DrugStockModel) TableName() string {
	return "drug_stocks"
}

// FacilityRow is the flat result of the facility/contact/PrEP-stock join.
type FacilityRow struct {
	ID           int64
	Name         string
	RegionID     string
	Latitude     float64
	Longitude    float64
	Address      *string
	Phone        *string
	ContactName  *string
	ContactPhone *string
	StockStatus  *string
}
