package services

import (
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CourierCount is the number of finished orders of one courier. CourierID is
// empty for orders whose courier no longer exists.
type CourierCount struct {
	CourierID kernel.ID
	Count     int
}

// PayCount is the number of finished orders paid with one method.
type PayCount struct {
	Pay   order.Payment
	Count int
}

// Stats summarizes the history. When Locked is set nothing was computed.
type Stats struct {
	Locked    bool
	Total     int
	ByCourier []CourierCount
	ByPay     []PayCount
}

// StatsAggregator counts finished orders per courier and per payment method.
// It is a premium feature and returns locked stats below kernel.EntitlementPremium.
type StatsAggregator struct{}

func NewStatsAggregator() StatsAggregator {
	return StatsAggregator{}
}

// Aggregate groups history by courier and by payment. Groups are sorted by
// count descending; equal counts keep the order in which the group was first
// seen in history.
func (a StatsAggregator) Aggregate(history []*order.Archived, entitlement kernel.Entitlement) Stats {
	if !entitlement.Premium() {
		return Stats{Locked: true}
	}

	byCourier := newCounter[kernel.ID]()
	byPay := newCounter[order.Payment]()
	for _, h := range history {
		byCourier.add(h.CourierID())
		byPay.add(h.Pay())
	}

	stats := Stats{
		Total:     len(history),
		ByCourier: make([]CourierCount, 0, len(byCourier.keys)),
		ByPay:     make([]PayCount, 0, len(byPay.keys)),
	}
	for _, k := range byCourier.sorted() {
		stats.ByCourier = append(stats.ByCourier, CourierCount{CourierID: k, Count: byCourier.counts[k]})
	}
	for _, k := range byPay.sorted() {
		stats.ByPay = append(stats.ByPay, PayCount{Pay: k, Count: byPay.counts[k]})
	}

	return stats
}

// counter counts occurrences and remembers first-seen order.
type counter[K comparable] struct {
	keys   []K
	counts map[K]int
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: make(map[K]int)}
}

func (c *counter[K]) add(k K) {
	if _, ok := c.counts[k]; !ok {
		c.keys = append(c.keys, k)
	}
	c.counts[k]++
}

func (c *counter[K]) sorted() []K {
	out := slices.Clone(c.keys)
	slices.SortStableFunc(out, func(x, y K) int {
		return c.counts[y] - c.counts[x]
	})
	return out
}
