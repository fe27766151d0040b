package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ErrNotADocument is returned when the input is not a JSON object.
var ErrNotADocument = errors.New("snapshot is not a JSON object")

// legacyPlatforms maps labels written by older versions to current ones.
var legacyPlatforms = map[string]order.Platform{
	"Anota.ai": order.PlatformAnotaAi,
	"Anota Ai": order.PlatformAnotaAi,
}

// Report lists what a lenient decode had to drop or default.
type Report struct {
	// Defaulted names the sections that were missing or malformed.
	Defaulted       []string
	SkippedCouriers int
	SkippedActive   int
	SkippedHistory  int
}

// Clean reports whether the document decoded without loss.
func (r Report) Clean() bool {
	return len(r.Defaulted) == 0 && r.SkippedCouriers == 0 && r.SkippedActive == 0 && r.SkippedHistory == 0
}

// Encode renders state as a compact document.
func Encode(state *dispatch.State) ([]byte, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(toDocument(state))
}

// EncodeIndent renders state as an indented document for backup files.
func EncodeIndent(state *dispatch.State) ([]byte, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(toDocument(state), "", "  ")
}

// Decode parses a document leniently.
//
// Only a top-level value that is not a JSON object is an error. A missing or
// malformed section falls back to its empty default and is listed in the
// report; elements without an id, or that cannot be read, are skipped and
// counted. A "ui" section without a boolean "seededMotoboys" marks the state
// as seeded, so couriers deleted by the user are never recreated. A document
// without any "ui" section is treated as never seeded.
func Decode(data []byte) (*dispatch.State, Report, error) {
	var report Report

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, report, fmt.Errorf("%w: %w", ErrNotADocument, err)
	}
	if sections == nil {
		return nil, report, ErrNotADocument
	}

	dayFilter, seeded := decodeUI(sections["ui"], &report)

	couriers := make([]*courier.Courier, 0)
	seenCouriers := make(map[kernel.ID]struct{})
	for _, raw := range decodeArray(sections, "motoboys", &report) {
		c, ok := decodeCourier(raw)
		if !ok {
			report.SkippedCouriers++
			continue
		}
		if _, dup := seenCouriers[c.ID()]; dup {
			report.SkippedCouriers++
			continue
		}
		seenCouriers[c.ID()] = struct{}{}
		couriers = append(couriers, c)
	}

	active := make([]*order.Order, 0)
	seenOrders := make(map[kernel.ID]struct{})
	for _, raw := range decodeArray(sections, "pedidos", &report) {
		o, ok := decodeOrder(raw)
		if !ok {
			report.SkippedActive++
			continue
		}
		if _, dup := seenOrders[o.ID()]; dup {
			report.SkippedActive++
			continue
		}
		seenOrders[o.ID()] = struct{}{}
		active = append(active, o)
	}

	history := make([]*order.Archived, 0)
	for _, raw := range decodeArray(sections, "historico", &report) {
		a, ok := decodeArchived(raw)
		if !ok {
			report.SkippedHistory++
			continue
		}
		history = append(history, a)
	}

	state, err := dispatch.RestoreState(couriers, active, history, dayFilter, seeded)
	if err != nil {
		return nil, report, err
	}
	return state, report, nil
}

func toDocument(state *dispatch.State) documentDTO {
	doc := documentDTO{
		UI: uiDTO{
			DayFilter:      state.DayFilter().String(),
			SeededCouriers: state.Seeded(),
		},
		Couriers: make([]courierDTO, 0),
		Active:   make([]orderDTO, 0),
		History:  make([]archivedDTO, 0),
	}

	for _, c := range state.Couriers() {
		doc.Couriers = append(doc.Couriers, courierDTO{ID: c.ID().String(), Name: c.Name(), Tag: c.Tag()})
	}
	for _, o := range state.ActiveOrders() {
		doc.Active = append(doc.Active, fromOrder(o))
	}
	for _, a := range state.History() {
		doc.History = append(doc.History, archivedDTO{
			orderDTO:   fromOrder(&a.Order),
			FinishedAt: a.FinishedAt().UnixMilli(),
		})
	}

	return doc
}

func fromOrder(o *order.Order) orderDTO {
	return orderDTO{
		ID:        o.ID().String(),
		Code:      o.Code(),
		Platform:  o.Platform().String(),
		Pay:       o.Pay().String(),
		CourierID: o.CourierID().String(),
		DayKey:    o.DayKey().String(),
		CreatedAt: o.CreatedAt().UnixMilli(),
	}
}

func decodeUI(raw json.RawMessage, report *Report) (kernel.DayKey, bool) {
	if raw == nil {
		return "", false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		report.Defaulted = append(report.Defaulted, "ui")
		return "", false
	}

	var dayFilter string
	if s, ok := asString(fields["dayFilter"]); ok {
		dayFilter = strings.TrimSpace(s)
	}

	seeded := true
	if v, ok := fields["seededMotoboys"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err == nil {
			seeded = b
		}
	}

	return kernel.DayKey(dayFilter), seeded
}

// decodeArray returns the elements of an array section. Missing sections are
// empty; sections that are not arrays are recorded as defaulted.
func decodeArray(sections map[string]json.RawMessage, name string, report *Report) []json.RawMessage {
	raw, ok := sections[name]
	if !ok {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		report.Defaulted = append(report.Defaulted, name)
		return nil
	}
	return elements
}

func decodeCourier(raw json.RawMessage) (*courier.Courier, bool) {
	fields, ok := objectFields(raw)
	if !ok {
		return nil, false
	}

	id, _ := asString(fields["id"])
	name, _ := asString(fields["name"])
	tag, _ := asString(fields["tag"])

	c, err := courier.RestoreCourier(kernel.ID(strings.TrimSpace(id)), name, tag)
	if err != nil {
		return nil, false
	}
	return c, true
}

func decodeOrder(raw json.RawMessage) (*order.Order, bool) {
	fields, ok := objectFields(raw)
	if !ok {
		return nil, false
	}
	return restoreOrder(fields)
}

func decodeArchived(raw json.RawMessage) (*order.Archived, bool) {
	fields, ok := objectFields(raw)
	if !ok {
		return nil, false
	}

	o, ok := restoreOrder(fields)
	if !ok {
		return nil, false
	}

	a, err := order.RestoreArchived(
		o.ID(), o.Code(), o.Platform(), o.Pay(), o.CourierID(), o.DayKey(), o.CreatedAt(),
		asMillis(fields["finishedAt"]),
	)
	if err != nil {
		return nil, false
	}
	return a, true
}

func restoreOrder(fields map[string]json.RawMessage) (*order.Order, bool) {
	id, _ := asString(fields["id"])
	code, _ := asString(fields["code"])
	platform, _ := asString(fields["platform"])
	pay, _ := asString(fields["pay"])
	courierID, _ := asString(fields["motoboyId"])
	dayKey, _ := asString(fields["dayKey"])

	o, err := order.RestoreOrder(
		kernel.ID(strings.TrimSpace(id)),
		code,
		normalizePlatform(platform),
		order.Payment(pay),
		kernel.ID(strings.TrimSpace(courierID)),
		kernel.DayKey(strings.TrimSpace(dayKey)),
		asMillis(fields["createdAt"]),
	)
	if err != nil {
		return nil, false
	}
	return o, true
}

func normalizePlatform(label string) order.Platform {
	if p, ok := legacyPlatforms[label]; ok {
		return p
	}
	return order.Platform(label)
}

func objectFields(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// asString reads a JSON string, or renders a JSON number as text.
func asString(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}

	return "", false
}

// asMillis reads Unix milliseconds from a JSON number or numeric string.
// Anything else yields the Unix epoch.
func asMillis(raw json.RawMessage) time.Time {
	s, ok := asString(raw)
	if !ok {
		return time.UnixMilli(0)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.UnixMilli(0)
	}
	return time.UnixMilli(int64(f))
}
