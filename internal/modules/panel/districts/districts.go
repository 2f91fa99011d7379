// Package districts holds the Paris district table the panel offers for selection.
package districts

import (
	"sort"
	"strings"

	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

type District struct {
	ID   types.DistrictID `json:"id"`
	Name string           `json:"name"`
	Lat  float64          `json:"lat"`
	Lon  float64          `json:"lon"`
}

// Centre coordinates from the Paris open data set.
var table = map[types.DistrictID]District{
	0:  {ID: 0, Name: "Paris", Lat: 48.8566, Lon: 2.3522},
	1:  {ID: 1, Name: "1er - Louvre", Lat: 48.8625627018, Lon: 2.33644336205},
	2:  {ID: 2, Name: "2ème - Bourse", Lat: 48.8682792225, Lon: 2.34280254689},
	3:  {ID: 3, Name: "3ème - Temple", Lat: 48.86287238, Lon: 2.3600009859},
	4:  {ID: 4, Name: "4ème - Hôtel-de-Ville", Lat: 48.8543414263, Lon: 2.35762962032},
	5:  {ID: 5, Name: "5ème - Panthéon", Lat: 48.8444431505, Lon: 2.35071460958},
	6:  {ID: 6, Name: "6ème - Luxembourg", Lat: 48.8491303586, Lon: 2.33289799905},
	7:  {ID: 7, Name: "7ème - Palais-Bourbon", Lat: 48.8561744288, Lon: 2.31218769148},
	8:  {ID: 8, Name: "8ème - Élysée", Lat: 48.8727208374, Lon: 2.3125540224},
	9:  {ID: 9, Name: "9ème - Opéra", Lat: 48.8771635173, Lon: 2.33745754348},
	10: {ID: 10, Name: "10ème - Entrepôt", Lat: 48.8761300365, Lon: 2.36072848785},
	11: {ID: 11, Name: "11ème - Popincourt", Lat: 48.8590592213, Lon: 2.3800583082},
	12: {ID: 12, Name: "12ème - Reuilly", Lat: 48.8349743815, Lon: 2.42132490078},
	13: {ID: 13, Name: "13ème - Gobelins", Lat: 48.8283880317, Lon: 2.36227244042},
	14: {ID: 14, Name: "14ème - Observatoire", Lat: 48.8292445005, Lon: 2.3265420442},
	15: {ID: 15, Name: "15ème - Vaugirard", Lat: 48.8400853759, Lon: 2.29282582242},
	16: {ID: 16, Name: "16ème - Passy", Lat: 48.8603921054, Lon: 2.26197078836},
	17: {ID: 17, Name: "17ème - Batignolles-Monceau", Lat: 48.887326522, Lon: 2.30677699057},
	18: {ID: 18, Name: "18ème - Buttes-Montmartre", Lat: 48.892569268, Lon: 2.34816051956},
	19: {ID: 19, Name: "19ème - Buttes-Chaumont", Lat: 48.8870759966, Lon: 2.38482096015},
	20: {ID: 20, Name: "20ème - Ménilmontant", Lat: 48.8634605789, Lon: 2.40118812928},
}

const cityWideLabel = "Toute la ville"

// Lookup returns the district for id, if known.
func Lookup(id types.DistrictID) (District, bool) {
	d, ok := table[id]
	return d, ok
}

// All returns every district ordered by id, the aggregate first.
func All() []District {
	out := make([]District, 0, len(table))
	for _, d := range table {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Elements returns the selectable UI elements for every district, ordered by id.
func Elements() []types.DistrictElement {
	all := All()
	out := make([]types.DistrictElement, 0, len(all))
	for _, d := range all {
		out = append(out, Element(d))
	}
	return out
}

// Element splits a district name into the number and name sub-fields of its button.
func Element(d District) types.DistrictElement {
	if d.ID == types.CityAggregate {
		return types.DistrictElement{ID: d.ID, Number: d.Name, Name: cityWideLabel}
	}
	number, name, found := strings.Cut(d.Name, " - ")
	if !found {
		return types.DistrictElement{ID: d.ID, Number: d.ID.String(), Name: d.Name}
	}
	return types.DistrictElement{ID: d.ID, Number: number, Name: name}
}
