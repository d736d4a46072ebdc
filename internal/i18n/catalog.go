package i18n

import "strings"

// The catalog carries the Italian and English strings the engine needs.
// Italian is the default, matching the primary audience.

const DefaultLanguage = "it"

// NormalizeLang collapses any language tag to the two supported codes.
func NormalizeLang(v string) string {
	if strings.HasPrefix(strings.ToLower(v), "en") {
		return "en"
	}
	return "it"
}

// WMO weather code descriptions.
var conditions = map[string]map[int]string{
	"it": {
		0:  "Cielo sereno",
		1:  "Prevalentemente sereno",
		2:  "Parzialmente nuvoloso",
		3:  "Nuvoloso",
		45: "Nebbia",
		48: "Nebbia con brina",
		51: "Pioggerella leggera",
		53: "Pioggerella moderata",
		55: "Pioggerella intensa",
		56: "Pioggerella gelata leggera",
		57: "Pioggerella gelata intensa",
		61: "Pioggia leggera",
		63: "Pioggia moderata",
		65: "Pioggia intensa",
		66: "Pioggia gelata leggera",
		67: "Pioggia gelata intensa",
		71: "Neve leggera",
		73: "Neve moderata",
		75: "Neve intensa",
		77: "Granelli di neve",
		80: "Rovesci leggeri",
		81: "Rovesci moderati",
		82: "Rovesci violenti",
		85: "Rovesci di neve leggeri",
		86: "Rovesci di neve intensi",
		95: "Temporale",
		96: "Temporale con grandine leggera",
		99: "Temporale con grandine intensa",
	},
	"en": {
		0:  "Clear sky",
		1:  "Mainly clear",
		2:  "Partly cloudy",
		3:  "Overcast",
		45: "Foggy",
		48: "Depositing rime fog",
		51: "Light drizzle",
		53: "Moderate drizzle",
		55: "Dense drizzle",
		56: "Light freezing drizzle",
		57: "Dense freezing drizzle",
		61: "Slight rain",
		63: "Moderate rain",
		65: "Heavy rain",
		66: "Light freezing rain",
		67: "Heavy freezing rain",
		71: "Slight snow fall",
		73: "Moderate snow fall",
		75: "Heavy snow fall",
		77: "Snow grains",
		80: "Slight rain showers",
		81: "Moderate rain showers",
		82: "Violent rain showers",
		85: "Slight snow showers",
		86: "Heavy snow showers",
		95: "Thunderstorm",
		96: "Thunderstorm with slight hail",
		99: "Thunderstorm with heavy hail",
	},
}

var messages = map[string]map[string]string{
	"it": {
		"unknownCondition":     "Condizione meteo sconosciuta",
		"freddissimo":          "FREDDISSIMO",
		"sereno_night":         "Cielo stranamente sereno",
		"parz_nuvoloso_night":  "Poche nuvolette",
		"nuvoloso_night":       "Parecchie nuvolette",
		"pioggia_night":        "Simpatica pioggia notturna",
		"vento_night":          "Affettuoso vento notturno",
		"noGpsPermission":      "Permesso di localizzazione negato",
		"errorLocation":        "Impossibile recuperare la posizione",
		"noResults":            "Nessun risultato trovato",
		"notificationTitle":    "FunWeather",
		"notificationBodyText": "Dai un'occhiata al meteo di oggi!",
	},
	"en": {
		"unknownCondition":     "Unknown weather condition",
		"freddissimo":          "Suuuper cold",
		"sereno_night":         "Suspiciously clear sky",
		"parz_nuvoloso_night":  "A sprinkle of fluffy clouds",
		"nuvoloso_night":       "Plenty of fluffy clouds",
		"pioggia_night":        "Charming night rain",
		"vento_night":          "Affectionate night wind",
		"noGpsPermission":      "Location permission denied",
		"errorLocation":        "Could not determine your location",
		"noResults":            "No results found",
		"notificationTitle":    "FunWeather",
		"notificationBodyText": "Check out today's weather!",
	},
}

// Text looks up a message key for the given language, falling back to
// Italian when the key is missing.
func Text(language, key string) string {
	lang := NormalizeLang(language)
	if s, ok := messages[lang][key]; ok {
		return s
	}
	return messages[DefaultLanguage][key]
}

// ConditionText maps a raw weather code to its base description.
func ConditionText(language string, code int) string {
	lang := NormalizeLang(language)
	if s, ok := conditions[lang][code]; ok {
		return s
	}
	return Text(lang, "unknownCondition")
}
