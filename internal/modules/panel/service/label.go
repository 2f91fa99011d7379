package service

import (
	"fmt"
	"math"

	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

// cityPostalCode stands in for the whole city when it has no element.
const cityPostalCode = "75000"

// ResolveDistrictLabel returns "<number> - <name>" from the district's element,
// or a postal code when the UI has no element for id.
func ResolveDistrictLabel(lookup DistrictLookup, id types.DistrictID) string {
	if lookup != nil {
		if el, ok := lookup.LookupDistrict(id); ok {
			return el.Number + " - " + el.Name
		}
	}
	if id == types.CityAggregate {
		return cityPostalCode
	}
	return fmt.Sprintf("750%02d", int(id))
}

// maxDisplayTemperature keeps rounded readings inside the int range.
const maxDisplayTemperature = math.MaxInt32

// RoundTemperature rounds half up toward positive infinity, so 17.5 is 18,
// -0.5 is 0 and -2.5 is -2. There is no negative zero. Readings beyond
// ±maxDisplayTemperature are clamped and NaN reads as 0.
func RoundTemperature(t float64) int {
	if math.IsNaN(t) {
		return 0
	}
	r := math.Floor(t + 0.5)
	return int(math.Max(-maxDisplayTemperature, math.Min(r, maxDisplayTemperature)))
}
