package http

import (
	"time"

	"dispatch/internal/adapters/out/snapshot"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

type (
	NewCourier struct {
		Name string `json:"name"`
		Tag  string `json:"tag"`
	}

	CourierPatch struct {
		Name *string `json:"name"`
		Tag  *string `json:"tag"`
	}

	NewOrders struct {
		Text      string `json:"text"`
		Pay       string `json:"pay"`
		CourierID string `json:"courierId"`
	}

	FinishOrders struct {
		IDs []string `json:"ids"`
	}

	DayFilter struct {
		DayKey string `json:"dayKey"`
	}
)

type (
	Courier struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Tag          string `json:"tag"`
		Label        string `json:"label"`
		ActiveOrders int    `json:"activeOrders"`
	}

	Order struct {
		ID        string    `json:"id"`
		Code      string    `json:"code"`
		Platform  string    `json:"platform"`
		Pay       string    `json:"pay"`
		CourierID string    `json:"courierId"`
		DayKey    string    `json:"dayKey"`
		CreatedAt time.Time `json:"createdAt"`
	}

	Lane struct {
		Courier Courier `json:"courier"`
		Orders  []Order `json:"orders"`
	}

	Board struct {
		DayFilter string `json:"dayFilter"`
		DayLabel  string `json:"dayLabel"`
		Lanes     []Lane `json:"lanes"`
		Total     int    `json:"total"`
	}

	DayFilterResult struct {
		DayKey   string `json:"dayKey"`
		DayLabel string `json:"dayLabel"`
	}

	Rejection struct {
		Code   string `json:"code"`
		Reason string `json:"reason"`
	}

	AddOrdersResult struct {
		Added    []Order     `json:"added"`
		Invalid  []string    `json:"invalid"`
		Rejected []Rejection `json:"rejected"`
		DayKey   string      `json:"dayKey"`
	}

	FinishedOrder struct {
		Order
		FinishedAt time.Time `json:"finishedAt"`
	}

	FinishOrdersResult struct {
		Finished []FinishedOrder `json:"finished"`
		Missing  []string        `json:"missing"`
	}

	RemoveCourierResult struct {
		RemovedOrders int `json:"removedOrders"`
	}

	HistoryItem struct {
		ID          string    `json:"id"`
		Code        string    `json:"code"`
		Platform    string    `json:"platform"`
		Pay         string    `json:"pay"`
		CourierID   string    `json:"courierId"`
		CourierName string    `json:"courierName"`
		DayKey      string    `json:"dayKey"`
		DayLabel    string    `json:"dayLabel"`
		CreatedAt   time.Time `json:"createdAt"`
		FinishedAt  time.Time `json:"finishedAt"`
	}

	CourierStat struct {
		CourierID   string `json:"courierId"`
		CourierName string `json:"courierName"`
		Finished    int    `json:"finished"`
	}

	PayStat struct {
		Pay      string `json:"pay"`
		Finished int    `json:"finished"`
	}

	Stats struct {
		Total     int           `json:"total"`
		ByCourier []CourierStat `json:"byCourier"`
		ByPay     []PayStat     `json:"byPay"`
	}

	RestoreResult struct {
		RemovedActive           int      `json:"removedActive"`
		ClearedHistory          int      `json:"clearedHistory"`
		RemovedSentinelCouriers int      `json:"removedSentinelCouriers"`
		SkippedCouriers         int      `json:"skippedCouriers"`
		SkippedActive           int      `json:"skippedActive"`
		SkippedHistory          int      `json:"skippedHistory"`
		Defaulted               []string `json:"defaulted"`
	}
)

func fromCourierResponse(c queries.CourierResponse) Courier {
	return Courier{
		ID:           c.ID.String(),
		Name:         c.Name,
		Tag:          c.Tag,
		Label:        c.Label,
		ActiveOrders: c.ActiveOrders,
	}
}

func fromCourier(c *courier.Courier) Courier {
	return Courier{ID: c.ID().String(), Name: c.Name(), Tag: c.Tag(), Label: c.Label()}
}

func fromOrderResponse(o queries.OrderResponse) Order {
	return Order{
		ID:        o.ID.String(),
		Code:      o.Code,
		Platform:  o.Platform,
		Pay:       o.Pay,
		CourierID: o.CourierID.String(),
		DayKey:    o.DayKey.String(),
		CreatedAt: o.CreatedAt,
	}
}

func fromOrder(o *order.Order) Order {
	return Order{
		ID:        o.ID().String(),
		Code:      o.Code(),
		Platform:  o.Platform().Display(),
		Pay:       o.Pay().String(),
		CourierID: o.CourierID().String(),
		DayKey:    o.DayKey().String(),
		CreatedAt: o.CreatedAt(),
	}
}

func fromBoard(b queries.BoardResponse) Board {
	lanes := make([]Lane, 0, len(b.Lanes))
	for _, l := range b.Lanes {
		orders := make([]Order, 0, len(l.Orders))
		for _, o := range l.Orders {
			orders = append(orders, fromOrderResponse(o))
		}
		lanes = append(lanes, Lane{Courier: fromCourierResponse(l.Courier), Orders: orders})
	}
	return Board{
		DayFilter: b.DayFilter.String(),
		DayLabel:  b.DayLabel,
		Lanes:     lanes,
		Total:     b.Total,
	}
}

func fromAddOrdersResult(r commands.AddOrdersResult) AddOrdersResult {
	out := AddOrdersResult{
		Added:    make([]Order, 0, len(r.Added)),
		Invalid:  append(make([]string, 0, len(r.Invalid)), r.Invalid...),
		Rejected: make([]Rejection, 0, len(r.Rejected)),
		DayKey:   r.DayKey.String(),
	}
	for _, o := range r.Added {
		out.Added = append(out.Added, fromOrder(o))
	}
	for _, rj := range r.Rejected {
		out.Rejected = append(out.Rejected, Rejection{Code: rj.Code, Reason: string(rj.Reason)})
	}
	return out
}

func fromFinishOrdersResult(r commands.FinishOrdersResult) FinishOrdersResult {
	out := FinishOrdersResult{
		Finished: make([]FinishedOrder, 0, len(r.Finished)),
		Missing:  make([]string, 0, len(r.Missing)),
	}
	for _, a := range r.Finished {
		out.Finished = append(out.Finished, FinishedOrder{Order: fromOrder(&a.Order), FinishedAt: a.FinishedAt()})
	}
	for _, id := range r.Missing {
		out.Missing = append(out.Missing, id.String())
	}
	return out
}

func fromDayKey(k kernel.DayKey) DayFilterResult {
	return DayFilterResult{DayKey: k.String(), DayLabel: k.Display()}
}

func fromHistory(items []queries.HistoryItemResponse) []HistoryItem {
	out := make([]HistoryItem, 0, len(items))
	for _, h := range items {
		out = append(out, HistoryItem{
			ID:          h.ID.String(),
			Code:        h.Code,
			Platform:    h.Platform,
			Pay:         h.Pay,
			CourierID:   h.CourierID.String(),
			CourierName: h.CourierName,
			DayKey:      h.DayKey.String(),
			DayLabel:    h.DayLabel,
			CreatedAt:   h.CreatedAt,
			FinishedAt:  h.FinishedAt,
		})
	}
	return out
}

func fromStats(s queries.StatsResponse) Stats {
	out := Stats{
		Total:     s.Total,
		ByCourier: make([]CourierStat, 0, len(s.ByCourier)),
		ByPay:     make([]PayStat, 0, len(s.ByPay)),
	}
	for _, c := range s.ByCourier {
		out.ByCourier = append(out.ByCourier, CourierStat{
			CourierID:   c.CourierID.String(),
			CourierName: c.CourierName,
			Finished:    c.Finished,
		})
	}
	for _, p := range s.ByPay {
		out.ByPay = append(out.ByPay, PayStat{Pay: p.Pay, Finished: p.Finished})
	}
	return out
}

func fromRestore(reconciled services.ReconcileReport, decoded snapshot.Report) RestoreResult {
	return RestoreResult{
		RemovedActive:           reconciled.RemovedActive,
		ClearedHistory:          reconciled.ClearedHistory,
		RemovedSentinelCouriers: reconciled.RemovedSentinelCouriers,
		SkippedCouriers:         decoded.SkippedCouriers,
		SkippedActive:           decoded.SkippedActive,
		SkippedHistory:          decoded.SkippedHistory,
		Defaulted:               append(make([]string, 0, len(decoded.Defaulted)), decoded.Defaulted...),
	}
}
