// Package aggregate computes counts, sums and trends over already-loaded
// record sets. Every call re-scans its input; nothing is cached.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTrendMonths is the trailing window used when none is configured.
const DefaultTrendMonths = 6

// Point is one labelled value of a series.
type Point struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Bucket is one month of a trend.
type Bucket struct {
	Label string          `json:"label"`
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// CountBy groups items by key and counts each group.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, it := range items {
		out[key(it)]++
	}
	return out
}

// Series turns counts into points ordered by descending count, then label.
func Series[K ~string](counts map[K]int) []Point {
	out := make([]Point, 0, len(counts))
	for k, n := range counts {
		out = append(out, Point{Label: string(k), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// SumBy adds amount(it) for every item satisfying pred. A nil pred sums all items.
func SumBy[T any](items []T, pred func(T) bool, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if pred == nil || pred(it) {
			total = total.Add(amount(it))
		}
	}
	return total
}

// DistinctCount returns the number of distinct non-zero keys.
func DistinctCount[T any, K comparable](items []T, key func(T) K) int {
	var zero K
	seen := make(map[K]struct{})
	for _, it := range items {
		k := key(it)
		if k == zero {
			continue
		}
		seen[k] = struct{}{}
	}
	return len(seen)
}

// Between reports whether t lies on or after from and no later than the
// calendar day of to. Nil bounds are open.
func Between(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(dayAfter(*to)) {
		return false
	}
	return true
}

func dayAfter(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// MonthlyTrend sums amount per calendar month over the trailing window of
// months ending with the month of now, oldest first. Months with no items
// hold zero. Items for which pred is false are skipped.
func MonthlyTrend[T any](items []T, now time.Time, months int, pred func(T) bool,
	at func(T) time.Time, amount func(T) decimal.Decimal) []Bucket {
	if months <= 0 {
		months = DefaultTrendMonths
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	buckets := make([]Bucket, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i, 0)
		key := m.Format("2006-01")
		buckets[i] = Bucket{Label: m.Format("Jan"), Month: key, Value: decimal.Zero}
		index[key] = i
	}

	for _, it := range items {
		if pred != nil && !pred(it) {
			continue
		}
		key := at(it).In(now.Location()).Format("2006-01")
		if i, ok := index[key]; ok {
			buckets[i].Value = buckets[i].Value.Add(amount(it))
		}
	}
	return buckets
}
