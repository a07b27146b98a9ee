package impl

import (
	"strings"

	"prepmap/internal/domain/entity"
)

const (
	prepDrugName        = "PrEP (Tenofovir/Emtricitabine)"
	pepDrugName         = "PEP"
	seedContactRole     = "Medical Superintendent"
	seedContactPhone    = "+233 20 000 0000"
	demoContactRole     = "Key Contact Person"
	demoFacilityName    = "Eastern Regional Hospital"
	demoContactName     = "John Mensah"
	demoContactPhone    = "0200000000"
	demoFacilityAddress = "Koforidua"
)

type seedFacility struct {
	name     string
	region   string
	lat, lng float64
	address  string
	phone    string
}

var seedFacilities = []seedFacility{
	{"Korle Bu Teaching Hospital", "GREATER_ACCRA", 5.5370, -0.2270, "Guggisberg Avenue, Accra", "+233 30 266 7759"},
	{"Ridge Hospital", "GREATER_ACCRA", 5.5595, -0.1975, "Castle Rd, Accra", "+233 30 222 8382"},
	{"Komfo Anokye Teaching Hospital", "ASHANTI", 6.6985, -1.6244, "Bantama, Kumasi", "+233 32 202 2301"},
	{"Manhyia District Hospital", "ASHANTI", 6.7100, -1.6150, "Manhyia, Kumasi", "+233 32 202 3456"},
	{"Tamale Teaching Hospital", "NORTHERN", 9.4020, -0.8330, "Tamale", "+233 37 202 2456"},
	{"Cape Coast Teaching Hospital", "CENTRAL", 5.1160, -1.2460, "Cape Coast", "+233 33 213 2456"},
	{"Effia Nkwanta Regional Hospital", "WESTERN", 4.9010, -1.7650, "Sekondi-Takoradi", "+233 31 204 6789"},
	{"Ho Teaching Hospital", "VOLTA", 6.6120, 0.4710, "Ho", "+233 36 202 6789"},
	{"Sunyani Regional Hospital", "BONO", 7.3450, -2.3210, "Sunyani", "+233 35 202 4567"},
	{"Koforidua Regional Hospital", "EASTERN", 6.0940, -0.2610, "Koforidua", "+233 34 202 3456"},
	{"Wa Regional Hospital", "UPPER_WEST", 10.0600, -2.5020, "Wa", "+233 39 202 1234"},
	{"Bolgatanga Regional Hospital", "UPPER_EAST", 10.7850, -0.8510, "Bolgatanga", "+233 38 202 5678"},
	{"Goaso Government Hospital", "AHAFO", 6.8020, -2.5160, "Goaso", "+233 35 209 1234"},
	{"Techiman Holy Family Hospital", "BONO_EAST", 7.5830, -1.9330, "Techiman", "+233 35 252 2345"},
	{"Nalerigu Baptist Medical Centre", "NORTH_EAST", 10.5260, -0.3680, "Nalerigu", "+233 37 209 5678"},
	{"Damongo District Hospital", "SAVANNAH", 9.0830, -1.8160, "Damongo", "+233 37 209 1234"},
	{"Worawora Government Hospital", "OTI", 7.5330, 0.3660, "Worawora", "+233 36 209 1234"},
	{"Sefwi Wiawso Government Hospital", "WESTERN_NORTH", 6.2000, -2.4830, "Sefwi Wiawso", "+233 31 209 1234"},
}

// seedSet returns the full seed: every listed facility with a placeholder
// superintendent and PrEP/PEP stock, followed by the Eastern Regional demo facility.
func seedSet() []*entity.FacilitySeed {
	seeds := make([]*entity.FacilitySeed, 0, len(seedFacilities)+1)
	for _, f := range seedFacilities {
		seeds = append(seeds, &entity.FacilitySeed{
			Facility: entity.Facility{
				Name:        f.name,
				RegionID:    f.region,
				Coordinates: entity.Coordinates{Lat: f.lat, Lng: f.lng},
				Address:     f.address,
				Phone:       f.phone,
				Contact: &entity.Contact{
					Name:  "Dr. " + strings.Fields(f.name)[0] + " Contact",
					Phone: seedContactPhone,
				},
				StockStatus: entity.StockAvailable,
			},
			ContactRole: seedContactRole,
			Stocks: []entity.DrugStock{
				{DrugName: prepDrugName, Status: entity.StockAvailable},
				{DrugName: pepDrugName, Status: entity.StockAvailable},
			},
		})
	}

	seeds = append(seeds, &entity.FacilitySeed{
		Facility: entity.Facility{
			Name:        demoFacilityName,
			RegionID:    "EASTERN",
			Coordinates: entity.Coordinates{Lat: 6.0940, Lng: -0.2610},
			Address:     demoFacilityAddress,
			Phone:       "+233 34 202 3456",
			Contact:     &entity.Contact{Name: demoContactName, Phone: demoContactPhone},
			StockStatus: entity.StockAvailable,
		},
		ContactRole: demoContactRole,
		Stocks: []entity.DrugStock{
			{DrugName: prepDrugName, Status: entity.StockAvailable},
		},
	})

	return seeds
}
