// Package snapshot encodes the dispatch state as the JSON document the
// application has always stored, and decodes such documents leniently.
//
// Document shape:
//
//	{
//	  "ui":        {"dayFilter": "2025-03-14", "seededMotoboys": true},
//	  "motoboys":  [{"id": "...", "name": "...", "tag": "..."}],
//	  "pedidos":   [{"id", "code", "platform", "pay", "motoboyId", "dayKey", "createdAt"}],
//	  "historico": [{... same as pedidos ..., "finishedAt"}]
//	}
//
// Timestamps are Unix milliseconds. Unknown keys are ignored on decode.
package snapshot

type documentDTO struct {
	UI       uiDTO         `json:"ui"`
	Couriers []courierDTO  `json:"motoboys"`
	Active   []orderDTO    `json:"pedidos"`
	History  []archivedDTO `json:"historico"`
}

type uiDTO struct {
	DayFilter      string `json:"dayFilter"`
	SeededCouriers bool   `json:"seededMotoboys"`
}

type courierDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

type orderDTO struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Platform  string `json:"platform"`
	Pay       string `json:"pay"`
	CourierID string `json:"motoboyId"`
	DayKey    string `json:"dayKey"`
	CreatedAt int64  `json:"createdAt"`
}

type archivedDTO struct {
	orderDTO
	FinishedAt int64 `json:"finishedAt"`
}
