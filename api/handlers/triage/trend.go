package triage

import "time"

// TrendWindow is the number of trailing calendar months the dashboard charts
const TrendWindow = 6

// MonthBucket is one point of a monthly trend series. The label carries the
// year ("Jan 2026") so series spanning a year boundary never collide.
type MonthBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MonthlyTrend buckets timestamps into the trailing `months` calendar months
// ending at now, oldest first. Timestamps outside the window are ignored.
func MonthlyTrend(timestamps []time.Time, now time.Time, months int) []MonthBucket {
	if months <= 0 {
		return []MonthBucket{}
	}

	type key struct {
		year  int
		month time.Month
	}

	// anchor on the first of the month so month arithmetic never rolls over
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]MonthBucket, months)
	index := make(map[key]int, months)
	for i := 0; i < months; i++ {
		m := base.AddDate(0, i-(months-1), 0)
		k := key{m.Year(), m.Month()}
		index[k] = i
		buckets[i] = MonthBucket{Label: m.Format("Jan 2006")}
	}

	for _, ts := range timestamps {
		if i, ok := index[key{ts.Year(), ts.Month()}]; ok && !ts.After(now) {
			buckets[i].Count++
		}
	}
	return buckets
}

// CountByCategory tallies items per category, mapping the empty category to
// "Uncategorized"
func CountByCategory(categories []string) map[string]int {
	counts := map[string]int{}
	for _, c := range categories {
		if c == "" {
			c = "Uncategorized"
		}
		counts[c]++
	}
	return counts
}

// CountByStatus tallies raw status strings with no normalization; the
// analytics view shows the producer's spellings as-is, unlike the triage tabs
func CountByStatus(statuses []string) map[string]int {
	counts := map[string]int{}
	for _, s := range statuses {
		counts[s]++
	}
	return counts
}
