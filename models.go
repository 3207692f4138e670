package main

import "time"

// Transaction represents a single ledger entry shown on the dashboard
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Type        string  `json:"type"` // "expense" or "income"
}

// AITip represents a generated nudge shown to the user
type AITip struct {
	ID        string   `json:"id"`
	Message   string   `json:"message"`
	Type      string   `json:"type"` // saving | investment | warning | achievement
	Amount    *float64 `json:"amount,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// Goal represents a savings or budget goal with progress
type Goal struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Category string  `json:"category"`
	Deadline string  `json:"deadline"`
}

// Badge represents a gamification badge, earned or not
type Badge struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Earned      bool    `json:"earned"`
	EarnedDate  *string `json:"earnedDate,omitempty"`
}

// ClusterResult is the validated response shape of the clustering service
type ClusterResult struct {
	Cluster int    `json:"cluster"`
	Persona string `json:"persona"`
}

// Persona describes one of the four spending personalities
type Persona struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// User is the persisted account record, created on first Google sign-in
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is the outward-facing view of an authenticated user
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CategoryTotal is one slice of the spending-by-category breakdown
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategorySpend adds the display color token to a category total
type CategorySpend struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Color    string  `json:"color"`
}

// DailySpend is one point of the spending trend chart
type DailySpend struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// StreakInfo mirrors the dashboard streak counter
type StreakInfo struct {
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
	StreakType    string `json:"streak_type"`
}

// DashboardSummary aggregates the headline numbers for the dashboard
type DashboardSummary struct {
	TotalIncome          float64         `json:"total_income"`
	TotalExpenses        float64         `json:"total_expenses"`
	Balance              float64         `json:"balance"`
	TotalIncomeDisplay   string          `json:"total_income_display"`
	TotalExpensesDisplay string          `json:"total_expenses_display"`
	BalanceDisplay       string          `json:"balance_display"`
	CurrentMonth         string          `json:"current_month"`
	TopCategories        []CategorySpend `json:"top_categories"`
	Streak               StreakInfo      `json:"streak"`
}
