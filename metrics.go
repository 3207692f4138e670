package main

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Derived-metrics functions. All pure and synchronous; the dashboard handlers
// call these over the sample dataset.

// categoryColors maps transaction categories to the frontend style tokens.
// Unknown categories fall back to the muted token.
var categoryColors = map[string]string{
	"Food & Dining":    "bg-warning/10 text-warning",
	"Entertainment":    "bg-info/10 text-info",
	"Transportation":   "bg-accent/10 text-accent",
	"Shopping":         "bg-destructive/10 text-destructive",
	"Health & Fitness": "bg-success/10 text-success",
	"Income":           "bg-primary/10 text-primary",
	"Savings":          "bg-success/10 text-success",
	"Travel":           "bg-info/10 text-info",
	"Budget":           "bg-warning/10 text-warning",
	"Education":        "bg-info/10 text-info",
}

// categoryColor returns the display token for a category
func categoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return "bg-muted/10 text-muted-foreground"
}

// spendingByCategory sums expense amounts per category. Categories appear in
// first-seen order; income entries are excluded entirely.
func spendingByCategory(transactions []Transaction) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string

	for _, t := range transactions {
		if t.Type != "expense" {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, CategoryTotal{Category: category, Amount: totals[category]})
	}
	return result
}

// dailySpending sums expense amounts per calendar date, sorted ascending by
// date, truncated to the 7 most recent distinct spend-days present in the
// input. This is the trend-chart window: last 7 spend-days, not a fixed
// trailing calendar week.
func dailySpending(transactions []Transaction) []DailySpend {
	totals := make(map[string]float64)
	for _, t := range transactions {
		if t.Type != "expense" {
			continue
		}
		totals[t.Date] += t.Amount
	}

	days := make([]DailySpend, 0, len(totals))
	for date, amount := range totals {
		days = append(days, DailySpend{Date: date, Amount: amount})
	}

	sort.Slice(days, func(i, j int) bool {
		di, _ := time.Parse("2006-01-02", days[i].Date)
		dj, _ := time.Parse("2006-01-02", days[j].Date)
		return di.Before(dj)
	})

	if len(days) > 7 {
		days = days[len(days)-7:]
	}
	return days
}

// totalByType sums amounts of transactions with the given type
func totalByType(transactions []Transaction, txType string) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == txType {
			total += t.Amount
		}
	}
	return total
}

// formatINR renders an amount as Indian Rupees without fractional digits,
// using en-IN digit grouping (last three digits, then groups of two):
// 123456 → ₹1,23,456.
func formatINR(amount float64) string {
	n := int64(math.Round(amount))
	negative := n < 0
	if negative {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		head := s[:len(s)-3]
		tail := s[len(s)-3:]

		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		s = strings.Join(groups, ",") + "," + tail
	}

	if negative {
		return "-₹" + s
	}
	return "₹" + s
}
