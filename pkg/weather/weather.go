// Package weather provides forecasts for trip days.
package weather

import "context"

// Info is the forecast shown above a day's itinerary.
type Info struct {
	TempMax   string `json:"tempMax"`
	TempMin   string `json:"tempMin"`
	Condition string `json:"condition"`
	Location  string `json:"location"`
	Note      string `json:"note"`
}

// Unknown is returned for days with no forecast.
func Unknown() Info {
	return Info{TempMax: "?", TempMin: "?", Condition: "未知", Location: "未知", Note: ""}
}

// Provider looks up the forecast for a date-key. locationHint may be empty.
type Provider interface {
	Forecast(ctx context.Context, dateKey, locationHint string) (Info, bool)
}

// Static serves forecasts from a fixed table keyed by date-key.
type Static map[string]Info

func (s Static) Forecast(_ context.Context, dateKey, _ string) (Info, bool) {
	info, ok := s[dateKey]
	return info, ok
}

// Default is the table bundled with the seed trip.
func Default() Static {
	return Static{
		"2026-02-04": {TempMax: "1", TempMin: "-5", Condition: "雪", Location: "高山/名古屋", Note: "體感: -3°C"},
		"2026-02-05": {TempMax: "0", TempMin: "-6", Condition: "大雪", Location: "新穗高", Note: "體感: -5°C"},
		"2026-02-06": {TempMax: "2", TempMin: "-4", Condition: "晴朗", Location: "高山", Note: "體感: -2°C"},
		"2026-02-07": {TempMax: "6", TempMin: "0", Condition: "多雲", Location: "名古屋", Note: "體感: 2°C"},
		"2026-02-08": {TempMax: "7", TempMin: "1", Condition: "小雨", Location: "名古屋", Note: "體感: 3°C"},
		"2026-02-09": {TempMax: "8", TempMin: "2", Condition: "晴朗", Location: "名古屋", Note: "體感: 4°C"},
	}
}
