package domain

// TripType one-way or round trip
type TripType string

const (
	TripSencillo TripType = "SENCILLO" // one-way
	TripDoble    TripType = "DOBLE"    // round trip
)

// EquipmentType accessibility equipment required for a trip
type EquipmentType string

const (
	EquipmentRampa            EquipmentType = "RAMPA"
	EquipmentRoboticaPlegable EquipmentType = "ROBOTICA_PLEGABLE"
	EquipmentSillaRuedas      EquipmentType = "SILLA_RUEDAS"
	EquipmentNinguno          EquipmentType = "NINGUNO"
)

// OriginType administrative origin bucket used by zone rates
type OriginType string

const (
	OriginMismoMunicipio OriginType = "MISMO_MUNICIPIO"
	OriginDesdeMedellin  OriginType = "DESDE_MEDELLIN"
)

// PricingMode how a tariff rule derives its price
type PricingMode string

const (
	ModeFixed          PricingMode = "FIXED"
	ModePerKm          PricingMode = "PER_KM"
	ModeByDistanceTier PricingMode = "BY_DISTANCE_TIER"
)

// ServiceCategory catalog category of a service
type ServiceCategory string

const (
	CategorySencillo           ServiceCategory = "SENCILLO"
	CategoryDoble              ServiceCategory = "DOBLE"
	CategoryRoboticaPlegable   ServiceCategory = "ROBOTICA_PLEGABLE"
	CategorySoloSilla          ServiceCategory = "SOLO_SILLA"
	CategoryEspera             ServiceCategory = "ESPERA"
	CategoryRuedasConvencional ServiceCategory = "RUEDAS_CONVENCIONAL"
	CategorySoloRuedas         ServiceCategory = "SOLO_RUEDAS"
)

// categoryRank fixed preference order used to break price ties between
// service options: lower rank wins
var categoryRank = map[ServiceCategory]int{
	CategorySencillo:           0,
	CategoryDoble:              1,
	CategoryRoboticaPlegable:   2,
	CategorySoloSilla:          3,
	CategoryEspera:             4,
	CategoryRuedasConvencional: 5,
	CategorySoloRuedas:         6,
}

// Rank returns the tie-break preference rank of the category.
// Unknown categories sort last.
func (c ServiceCategory) Rank() int {
	if r, ok := categoryRank[c]; ok {
		return r
	}
	return len(categoryRank)
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
