package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEndpoints(t *testing.T) {
	t.Run("transactions returns the sample ledger", func(t *testing.T) {
		w := makeRequest(testRouter, "GET", "/api/transactions", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var transactions []Transaction
		require.NoError(t, parseJSONResponse(w, &transactions))
		assert.Len(t, transactions, 15)
		assert.Equal(t, "Swiggy Food Delivery", transactions[0].Description)
	})

	t.Run("tips returns the generated nudges", func(t *testing.T) {
		w := makeRequest(testRouter, "GET", "/api/tips", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var tips []AITip
		require.NoError(t, parseJSONResponse(w, &tips))
		assert.Len(t, tips, 4)
	})

	t.Run("goals returns the goal list", func(t *testing.T) {
		w := makeRequest(testRouter, "GET", "/api/goals", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var goals []Goal
		require.NoError(t, parseJSONResponse(w, &goals))
		assert.Len(t, goals, 3)
	})

	t.Run("badges include earned and unearned", func(t *testing.T) {
		w := makeRequest(testRouter, "GET", "/api/badges", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var badges []Badge
		require.NoError(t, parseJSONResponse(w, &badges))
		require.Len(t, badges, 4)

		earned := 0
		for _, badge := range badges {
			if badge.Earned {
				earned++
				assert.NotNil(t, badge.EarnedDate)
			}
		}
		assert.Equal(t, 2, earned)
	})

	t.Run("personas come back in cluster order", func(t *testing.T) {
		w := makeRequest(testRouter, "GET", "/api/personas", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var personas []Persona
		require.NoError(t, parseJSONResponse(w, &personas))
		require.Len(t, personas, 4)
		assert.Equal(t, "Disciplined Planner", personas[0].Name)
		assert.Equal(t, "Experience Seeker", personas[1].Name)
		assert.Equal(t, "Spontaneous Spender", personas[2].Name)
		assert.Equal(t, "Routine Essentialist", personas[3].Name)
	})
}

func TestDashboardSummary(t *testing.T) {
	w := makeRequest(testRouter, "GET", "/api/dashboard/summary", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary DashboardSummary
	require.NoError(t, parseJSONResponse(w, &summary))

	t.Run("headline totals", func(t *testing.T) {
		assert.Equal(t, 45000.0, summary.TotalIncome)
		assert.Equal(t, 7917.0, summary.TotalExpenses)
		assert.Equal(t, 37083.0, summary.Balance)
	})

	t.Run("display strings use Indian grouping", func(t *testing.T) {
		assert.Equal(t, "₹45,000", summary.TotalIncomeDisplay)
		assert.Equal(t, "₹7,917", summary.TotalExpensesDisplay)
		assert.Equal(t, "₹37,083", summary.BalanceDisplay)
	})

	t.Run("top categories are the four biggest, descending", func(t *testing.T) {
		require.Len(t, summary.TopCategories, 4)
		assert.Equal(t, CategorySpend{Category: "Shopping", Amount: 2099, Color: "bg-destructive/10 text-destructive"}, summary.TopCategories[0])
		assert.Equal(t, "Health & Fitness", summary.TopCategories[1].Category)
		assert.Equal(t, "Food & Dining", summary.TopCategories[2].Category)
		assert.Equal(t, "Education", summary.TopCategories[3].Category)
	})

	t.Run("streak counter is populated", func(t *testing.T) {
		assert.Equal(t, 7, summary.Streak.CurrentStreak)
		assert.Equal(t, 12, summary.Streak.BestStreak)
		assert.Equal(t, "Savings", summary.Streak.StreakType)
	})
}

func TestSpendingByCategoryEndpoint(t *testing.T) {
	w := makeRequest(testRouter, "GET", "/api/dashboard/spending-by-category", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var breakdown []CategorySpend
	require.NoError(t, parseJSONResponse(w, &breakdown))
	require.Len(t, breakdown, 6)

	// First-seen order from the ledger, each with its display color
	assert.Equal(t, "Food & Dining", breakdown[0].Category)
	assert.Equal(t, 1780.0, breakdown[0].Amount)
	assert.Equal(t, "bg-warning/10 text-warning", breakdown[0].Color)
}

func TestSpendingTrendEndpoint(t *testing.T) {
	w := makeRequest(testRouter, "GET", "/api/dashboard/trend", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var trend []DailySpend
	require.NoError(t, parseJSONResponse(w, &trend))
	require.Len(t, trend, 7)

	assert.Equal(t, DailySpend{Date: "2025-01-18", Amount: 1149}, trend[0])
	assert.Equal(t, DailySpend{Date: "2025-01-24", Amount: 430}, trend[6])
}

func TestHealthEndpoint(t *testing.T) {
	w := makeRequest(testRouter, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
