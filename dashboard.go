package main

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Dashboard data handlers: read-only endpoints over the sample dataset and
// the derived-metrics functions.

// @Summary List transactions
// @Tags dashboard
// @Produce json
// @Success 200 {array} Transaction "Recent transactions"
// @Router /api/transactions [get]
func getTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, sampleTransactions)
}

// @Summary List AI tips
// @Tags dashboard
// @Produce json
// @Success 200 {array} AITip "Generated nudges"
// @Router /api/tips [get]
func getTips(c *gin.Context) {
	c.JSON(http.StatusOK, sampleAITips)
}

// @Summary List goals
// @Tags dashboard
// @Produce json
// @Success 200 {array} Goal "Savings and budget goals"
// @Router /api/goals [get]
func getGoals(c *gin.Context) {
	c.JSON(http.StatusOK, sampleGoals)
}

// @Summary List badges
// @Tags dashboard
// @Produce json
// @Success 200 {array} Badge "Gamification badges"
// @Router /api/badges [get]
func getBadges(c *gin.Context) {
	c.JSON(http.StatusOK, sampleBadges)
}

// @Summary List spending personas
// @Description The four personas the clustering service can assign, in cluster-index order.
// @Tags cluster
// @Produce json
// @Success 200 {array} Persona "Persona catalog"
// @Router /api/personas [get]
func getPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, personaCatalog)
}

// @Summary Dashboard summary
// @Description Headline numbers: income, expenses, balance, top spending categories and streaks.
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardSummary "Aggregated dashboard metrics"
// @Router /api/dashboard/summary [get]
func getDashboardSummary(c *gin.Context) {
	totalExpenses := totalByType(sampleTransactions, "expense")
	totalIncome := totalByType(sampleTransactions, "income")
	balance := totalIncome - totalExpenses

	byCategory := spendingByCategory(sampleTransactions)
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Amount > byCategory[j].Amount
	})
	if len(byCategory) > 4 {
		byCategory = byCategory[:4]
	}

	topCategories := make([]CategorySpend, 0, len(byCategory))
	for _, ct := range byCategory {
		topCategories = append(topCategories, CategorySpend{
			Category: ct.Category,
			Amount:   ct.Amount,
			Color:    categoryColor(ct.Category),
		})
	}

	c.JSON(http.StatusOK, DashboardSummary{
		TotalIncome:          totalIncome,
		TotalExpenses:        totalExpenses,
		Balance:              balance,
		TotalIncomeDisplay:   formatINR(totalIncome),
		TotalExpensesDisplay: formatINR(totalExpenses),
		BalanceDisplay:       formatINR(balance),
		CurrentMonth:         time.Now().Format("January 2006"),
		TopCategories:        topCategories,
		Streak:               StreakInfo{CurrentStreak: 7, BestStreak: 12, StreakType: "Savings"},
	})
}

// @Summary Spending by category
// @Description Expense totals per category in first-seen order, with display colors.
// @Tags dashboard
// @Produce json
// @Success 200 {array} CategorySpend "Category breakdown"
// @Router /api/dashboard/spending-by-category [get]
func getSpendingByCategory(c *gin.Context) {
	byCategory := spendingByCategory(sampleTransactions)

	breakdown := make([]CategorySpend, 0, len(byCategory))
	for _, ct := range byCategory {
		breakdown = append(breakdown, CategorySpend{
			Category: ct.Category,
			Amount:   ct.Amount,
			Color:    categoryColor(ct.Category),
		})
	}

	c.JSON(http.StatusOK, breakdown)
}

// @Summary Spending trend
// @Description Daily expense totals for the last 7 spend-days, oldest first.
// @Tags dashboard
// @Produce json
// @Success 200 {array} DailySpend "Daily spending points"
// @Router /api/dashboard/trend [get]
func getSpendingTrend(c *gin.Context) {
	c.JSON(http.StatusOK, dailySpending(sampleTransactions))
}
