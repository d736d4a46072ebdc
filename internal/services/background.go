package services

import (
	"funweather/internal/models"
)

// Background asset keys mirror the app's image catalog: one key per
// weather code plus special and night variants.
var backgroundByCode = map[int]string{
	0: "soleggiato", 1: "soleggiato",
	2: "parzialmente_nuvoloso",
	3: "nuvoloso",
	45: "nebbia", 48: "nebbia",
	51: "pioggia_leggera", 53: "pioggia_leggera", 55: "pioggia_leggera",
	56: "pioggia_leggera", 57: "pioggia_leggera",
	61: "pioggia_moderata", 63: "pioggia_moderata", 66: "pioggia_moderata",
	65: "pioggia_intensa", 67: "pioggia_intensa", 80: "pioggia_intensa",
	81: "nubifragio", 82: "nubifragio",
	71: "neve_romantica",
	73: "neve_moderata", 85: "neve_moderata",
	75: "bufera", 86: "bufera",
	95: "temporale",
	96: "grandine", 99: "grandine",
}

var fogCodes = map[int]bool{45: true, 48: true}

var lightRainCodes = map[int]bool{51: true, 53: true, 55: true}
var moderateRainCodes = map[int]bool{61: true, 63: true}
var snowBackgroundCodes = map[int]bool{71: true, 73: true, 75: true, 85: true, 86: true}

// BackgroundKey picks the backdrop asset for a snapshot. The override
// order matches the condition classifier's: special conditions first,
// then the standard night variants, last match wins.
func BackgroundKey(snap models.WeatherSnapshot, night bool) string {
	code := snap.CurrentWeatherCode

	bg, ok := backgroundByCode[code]
	if !ok {
		bg = "nuvoloso"
	}

	nightVariant := func(day string) string {
		if night {
			return day + "_night"
		}
		return day
	}

	if snap.CurrentTemperature >= 30 && snap.CurrentHumidity >= 70 {
		bg = nightVariant("afa_umidita")
	}
	if snap.CurrentTemperature <= 0 {
		bg = nightVariant("gelo")
	}
	if fogCodes[code] {
		bg = nightVariant("nebbia")
	}
	if snap.CurrentWindSpeed >= 40 {
		bg = nightVariant("vento_forte")
	}

	if night {
		switch {
		case code == 0 || code == 1:
			bg = "sereno_night"
		case code == 2:
			bg = "parzialmente_nuvoloso_night"
		case code == 3:
			bg = "nuvoloso_night"
		case lightRainCodes[code]:
			bg = "pioggia_leggera_night"
		case moderateRainCodes[code]:
			bg = "pioggia_moderata_night"
		case snowBackgroundCodes[code]:
			bg = "neve_night"
		case code == 65:
			bg = "pioggia_intensa_night"
		}
	}

	return bg
}
