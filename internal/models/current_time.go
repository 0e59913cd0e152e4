package models

import "time"

// LiveTimeLayout is the dd/mm/yyyy HH:MM:SS format shown in the dashboard header.
const LiveTimeLayout = "02/01/2006 15:04:05"

// CurrentTimeModel Current time specific model
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	LiveTime     string `json:"liveTime"`
	Time         int64  `json:"time"`
}

// CurrentTimeData Combined data structure for current time endpoint
type CurrentTimeData struct {
	Entry CurrentTimeModel `json:"entry"`
}

// NewCurrentTimeData creates a CurrentTimeData structure based on a provided Time
func NewCurrentTimeData(t time.Time) CurrentTimeData {
	timeMillis := t.UnixNano() / int64(time.Millisecond)

	return CurrentTimeData{
		Entry: CurrentTimeModel{
			ReadableTime: t.Format(time.RFC3339),
			LiveTime:     FormatLiveTime(t),
			Time:         timeMillis,
		},
	}
}

// FormatLiveTime renders the "Última actualización" header value.
func FormatLiveTime(t time.Time) string {
	return t.Format(LiveTimeLayout)
}
