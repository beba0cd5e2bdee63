package county

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jbrasil/fishplants/internal/geocode"
)

// countySeats maps each California county to its county seat's
// coordinate, the fallback pin when a water body cannot be geocoded.
var countySeats = map[string]geocode.Point{
	"Alameda":         {Lat: 37.7799, Lon: -122.2827}, // Oakland
	"Alpine":          {Lat: 38.5969, Lon: -119.8210}, // Markleeville
	"Amador":          {Lat: 38.3477, Lon: -120.7741}, // Jackson
	"Butte":           {Lat: 39.7285, Lon: -121.8375}, // Oroville
	"Calaveras":       {Lat: 38.1960, Lon: -120.6805}, // San Andreas
	"Colusa":          {Lat: 39.2143, Lon: -122.0094}, // Colusa
	"Contra Costa":    {Lat: 37.9735, Lon: -122.0311}, // Martinez
	"Del Norte":       {Lat: 41.7542, Lon: -124.2006}, // Crescent City
	"El Dorado":       {Lat: 38.7296, Lon: -120.7985}, // Placerville
	"Fresno":          {Lat: 36.7378, Lon: -119.7871}, // Fresno
	"Glenn":           {Lat: 39.5200, Lon: -122.1936}, // Willows
	"Humboldt":        {Lat: 40.8021, Lon: -124.1637}, // Eureka
	"Imperial":        {Lat: 32.8473, Lon: -115.5694}, // El Centro
	"Inyo":            {Lat: 36.6044, Lon: -118.0625}, // Independence
	"Kern":            {Lat: 35.3733, Lon: -118.9854}, // Bakersfield
	"Kings":           {Lat: 36.0726, Lon: -119.8154}, // Hanford
	"Lake":            {Lat: 38.9444, Lon: -122.6264}, // Lakeport
	"Lassen":          {Lat: 40.4163, Lon: -120.6620}, // Susanville
	"Los Angeles":     {Lat: 34.0522, Lon: -118.2437}, // Los Angeles
	"Madera":          {Lat: 36.9613, Lon: -120.0607}, // Madera
	"Marin":           {Lat: 37.9358, Lon: -122.5311}, // San Rafael
	"Mariposa":        {Lat: 37.4849, Lon: -119.9663}, // Mariposa
	"Mendocino":       {Lat: 39.3077, Lon: -123.7995}, // Ukiah
	"Merced":          {Lat: 37.3022, Lon: -120.4830}, // Merced
	"Modoc":           {Lat: 41.4899, Lon: -120.7243}, // Alturas
	"Mono":            {Lat: 37.9399, Lon: -118.8800}, // Bridgeport
	"Monterey":        {Lat: 36.6002, Lon: -121.8947}, // Salinas
	"Napa":            {Lat: 38.2975, Lon: -122.2869}, // Napa
	"Nevada":          {Lat: 39.2616, Lon: -121.0180}, // Nevada City
	"Orange":          {Lat: 33.7878, Lon: -117.8531}, // Santa Ana
	"Placer":          {Lat: 39.0620, Lon: -120.7229}, // Auburn
	"Plumas":          {Lat: 39.9380, Lon: -120.9033}, // Quincy
	"Riverside":       {Lat: 33.9806, Lon: -117.3755}, // Riverside
	"Sacramento":      {Lat: 38.5816, Lon: -121.4944}, // Sacramento
	"San Benito":      {Lat: 36.8454, Lon: -121.3542}, // Hollister
	"San Bernardino":  {Lat: 34.1083, Lon: -117.2898}, // San Bernardino
	"San Diego":       {Lat: 32.7157, Lon: -117.1611}, // San Diego
	"San Francisco":   {Lat: 37.7749, Lon: -122.4194}, // San Francisco
	"San Joaquin":     {Lat: 37.9349, Lon: -121.2730}, // Stockton
	"San Luis Obispo": {Lat: 35.2828, Lon: -120.6596}, // San Luis Obispo
	"San Mateo":       {Lat: 37.5630, Lon: -122.3255}, // Redwood City
	"Santa Barbara":   {Lat: 34.4208, Lon: -119.6982}, // Santa Barbara
	"Santa Clara":     {Lat: 37.3541, Lon: -121.9552}, // San Jose
	"Santa Cruz":      {Lat: 36.9741, Lon: -122.0308}, // Santa Cruz
	"Shasta":          {Lat: 40.5865, Lon: -122.3917}, // Redding
	"Sierra":          {Lat: 39.5920, Lon: -120.3680}, // Downieville
	"Siskiyou":        {Lat: 41.5900, Lon: -122.6370}, // Yreka
	"Solano":          {Lat: 38.2682, Lon: -122.0390}, // Fairfield
	"Sonoma":          {Lat: 38.4404, Lon: -122.7141}, // Santa Rosa
	"Stanislaus":      {Lat: 37.5585, Lon: -120.9977}, // Modesto
	"Sutter":          {Lat: 39.0646, Lon: -121.6147}, // Yuba City
	"Tehama":          {Lat: 40.0240, Lon: -122.2350}, // Red Bluff
	"Trinity":         {Lat: 40.7359, Lon: -122.9459}, // Weaverville
	"Tulare":          {Lat: 36.2072, Lon: -118.8020}, // Visalia
	"Tuolumne":        {Lat: 37.9625, Lon: -120.2400}, // Sonora
	"Ventura":         {Lat: 34.2805, Lon: -119.2945}, // Ventura
	"Yolo":            {Lat: 38.7585, Lon: -121.7439}, // Woodland
	"Yuba":            {Lat: 39.1371, Lon: -121.5835}, // Marysville
}

// Seat returns the county seat coordinate for a county name. A
// trailing " County" is stripped and the remainder title-cased before
// lookup, so "el dorado county" resolves to the El Dorado entry.
func Seat(name string) (geocode.Point, bool) {
	clean := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), " County"))
	clean = cases.Title(language.AmericanEnglish).String(strings.ToLower(clean))
	p, ok := countySeats[clean]
	return p, ok
}
