package entities

// UnitType is the measurement unit of a catalog item. It is used for display
// and grouping only.
type UnitType string

const (
	UnitSquareMeter UnitType = "m²"
	UnitUnit        UnitType = "unidad"
	UnitPackage     UnitType = "paquete"
	UnitHour        UnitType = "hora"
	UnitDay         UnitType = "día"
	UnitMeter       UnitType = "metro"
	UnitKilogram    UnitType = "kg"
	UnitLiter       UnitType = "litro"
	UnitBag         UnitType = "bolsa"
	UnitSheet       UnitType = "placa"
)

var unitTypes = []UnitType{
	UnitSquareMeter,
	UnitUnit,
	UnitPackage,
	UnitHour,
	UnitDay,
	UnitMeter,
	UnitKilogram,
	UnitLiter,
	UnitBag,
	UnitSheet,
}

// UnitTypes returns the closed set of units in display order.
func UnitTypes() []UnitType {
	out := make([]UnitType, len(unitTypes))
	copy(out, unitTypes)
	return out
}

func (u UnitType) IsValid() bool {
	for _, v := range unitTypes {
		if v == u {
			return true
		}
	}
	return false
}
