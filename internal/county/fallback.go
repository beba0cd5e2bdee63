package county

// fallbackCounties is the static list served when the source page
// cannot be fetched or parsed. All 58 California counties.
var fallbackCounties = []string{
	"Alameda", "Alpine", "Amador", "Butte", "Calaveras", "Colusa",
	"Contra Costa", "Del Norte", "El Dorado", "Fresno", "Glenn",
	"Humboldt", "Imperial", "Inyo", "Kern", "Kings", "Lake", "Lassen",
	"Los Angeles", "Madera", "Marin", "Mariposa", "Mendocino", "Merced",
	"Modoc", "Mono", "Monterey", "Napa", "Nevada", "Orange", "Placer",
	"Plumas", "Riverside", "Sacramento", "San Benito", "San Bernardino",
	"San Diego", "San Francisco", "San Joaquin", "San Luis Obispo",
	"San Mateo", "Santa Barbara", "Santa Clara", "Santa Cruz", "Shasta",
	"Sierra", "Siskiyou", "Solano", "Sonoma", "Stanislaus", "Sutter",
	"Tehama", "Trinity", "Tulare", "Tuolumne", "Ventura", "Yolo", "Yuba",
}

// Fallback returns a copy of the static county list, already sorted.
func Fallback() []string {
	list := make([]string, len(fallbackCounties))
	copy(list, fallbackCounties)
	return list
}
