// Package weather maps destinations to static weather snapshots. There
// is no weather service behind this; the table is the dataset.
package weather

import "github.com/travelbuddy/travelbuddy/internal/domain"

var byDestination = map[string]domain.WeatherInfo{
	"Bali, Indonesia": {
		Destination: "Bali, Indonesia",
		Temperature: 36,
		Condition:   "Clouds",
		Humidity:    20,
		WindSpeed:   10,
		Alert: &domain.WeatherAlert{
			Type:    domain.WeatherAlertHeat,
			Message: "High temperature alert. Stay hydrated and take regular breaks.",
		},
	},
	"Kathmandu, Nepal": {
		Destination: "Kathmandu, Nepal",
		Temperature: 18,
		Condition:   "Clear Sky",
		Humidity:    45,
		WindSpeed:   8,
		Alert: &domain.WeatherAlert{
			Type:    domain.WeatherAlertSafe,
			Message: "Perfect weather for hiking! Conditions are ideal.",
		},
	},
	"Paris, France": {
		Destination: "Paris, France",
		Temperature: 12,
		Condition:   "Partly Cloudy",
		Humidity:    65,
		WindSpeed:   12,
		Alert: &domain.WeatherAlert{
			Type:    domain.WeatherAlertSafe,
			Message: "Comfortable conditions. Light jacket recommended.",
		},
	},
	"Nairobi, Kenya": {
		Destination: "Nairobi, Kenya",
		Temperature: 28,
		Condition:   "Sunny",
		Humidity:    35,
		WindSpeed:   15,
		Alert: &domain.WeatherAlert{
			Type:    domain.WeatherAlertHeat,
			Message: "Moderate temperature. Use sunscreen and stay hydrated.",
		},
	},
	"Tokyo, Japan": {
		Destination: "Tokyo, Japan",
		Temperature: 14,
		Condition:   "Rainy",
		Humidity:    70,
		WindSpeed:   18,
		Alert: &domain.WeatherAlert{
			Type:    domain.WeatherAlertRain,
			Message: "Rainy conditions expected. Carry an umbrella and waterproof gear.",
		},
	},
}

// Lookup returns the weather record for a destination. Unknown
// destinations get a neutral fallback; there is no error path.
func Lookup(destination string) domain.WeatherInfo {
	if info, ok := byDestination[destination]; ok {
		// Copy the alert so callers cannot mutate the table.
		alert := *info.Alert
		info.Alert = &alert
		return info
	}
	return domain.WeatherInfo{
		Destination: destination,
		Temperature: 22,
		Condition:   "Unknown",
		Humidity:    50,
		WindSpeed:   10,
		Alert: &domain.WeatherAlert{
			Type:    domain.WeatherAlertSafe,
			Message: "Weather information unavailable. Check local sources.",
		},
	}
}
