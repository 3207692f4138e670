package main

// Read-only sample dataset backing the dashboard. A real deployment would
// replace this with a ledger import pipeline; the app ships with demo data.

var sampleTransactions = []Transaction{
	{ID: "1", Date: "2025-01-24", Description: "Swiggy Food Delivery", Amount: 250, Category: "Food & Dining", Type: "expense"},
	{ID: "2", Date: "2025-01-24", Description: "Zomato Order", Amount: 180, Category: "Food & Dining", Type: "expense"},
	{ID: "3", Date: "2025-01-23", Description: "Netflix Subscription", Amount: 199, Category: "Entertainment", Type: "expense"},
	{ID: "4", Date: "2025-01-23", Description: "Uber Ride", Amount: 120, Category: "Transportation", Type: "expense"},
	{ID: "5", Date: "2025-01-22", Description: "Starbucks Coffee", Amount: 350, Category: "Food & Dining", Type: "expense"},
	{ID: "6", Date: "2025-01-22", Description: "Amazon Purchase", Amount: 899, Category: "Shopping", Type: "expense"},
	{ID: "7", Date: "2025-01-21", Description: "Salary Credit", Amount: 45000, Category: "Income", Type: "income"},
	{ID: "8", Date: "2025-01-21", Description: "Myntra Shopping", Amount: 1200, Category: "Shopping", Type: "expense"},
	{ID: "9", Date: "2025-01-20", Description: "Gym Membership", Amount: 1500, Category: "Health & Fitness", Type: "expense"},
	{ID: "10", Date: "2025-01-20", Description: "BookMyShow Tickets", Amount: 400, Category: "Entertainment", Type: "expense"},
	{ID: "11", Date: "2025-01-19", Description: "Grocery Shopping", Amount: 850, Category: "Food & Dining", Type: "expense"},
	{ID: "12", Date: "2025-01-19", Description: "Petrol", Amount: 500, Category: "Transportation", Type: "expense"},
	{ID: "13", Date: "2025-01-18", Description: "Online Course", Amount: 999, Category: "Education", Type: "expense"},
	{ID: "14", Date: "2025-01-18", Description: "Coffee Shop", Amount: 150, Category: "Food & Dining", Type: "expense"},
	{ID: "15", Date: "2025-01-17", Description: "Medicine", Amount: 320, Category: "Health & Fitness", Type: "expense"},
}

var sampleAITips = []AITip{
	{
		ID:        "1",
		Message:   "Hey! Skipping 2 Zomato orders this week → ₹500 saved. Put it in micro-investment! 🎉",
		Type:      "saving",
		Amount:    floatPtr(500),
		Category:  strPtr("Food & Dining"),
		Timestamp: "2025-01-24T10:30:00Z",
	},
	{
		ID:        "2",
		Message:   "You've spent ₹780 on food delivery this week. Consider meal prep to save ₹400+ monthly!",
		Type:      "warning",
		Amount:    floatPtr(780),
		Category:  strPtr("Food & Dining"),
		Timestamp: "2025-01-24T09:15:00Z",
	},
	{
		ID:        "3",
		Message:   "Great job! You're 15% under budget this month. Invest the extra ₹2,250 in SIP!",
		Type:      "achievement",
		Amount:    floatPtr(2250),
		Timestamp: "2025-01-23T16:45:00Z",
	},
	{
		ID:        "4",
		Message:   "Coffee spending alert: ₹1,050 this month. Try home brewing to save ₹700!",
		Type:      "saving",
		Amount:    floatPtr(700),
		Category:  strPtr("Food & Dining"),
		Timestamp: "2025-01-23T11:20:00Z",
	},
}

var sampleGoals = []Goal{
	{ID: "1", Title: "Emergency Fund", Target: 50000, Current: 12500, Category: "Savings", Deadline: "2025-06-30"},
	{ID: "2", Title: "Vacation Fund", Target: 25000, Current: 8750, Category: "Travel", Deadline: "2025-05-15"},
	{ID: "3", Title: "Reduce Food Delivery", Target: 2000, Current: 1220, Category: "Budget", Deadline: "2025-02-28"},
}

var sampleBadges = []Badge{
	{ID: "1", Title: "Savings Streak", Description: "Saved money for 7 consecutive days", Icon: "🔥", Earned: true, EarnedDate: strPtr("2025-01-20")},
	{ID: "2", Title: "Budget Master", Description: "Stayed under budget for a full month", Icon: "🎯", Earned: true, EarnedDate: strPtr("2025-01-15")},
	{ID: "3", Title: "Investment Rookie", Description: "Made your first micro-investment", Icon: "📈", Earned: false},
	{ID: "4", Title: "Coffee Saver", Description: "Reduced coffee spending by 50%", Icon: "☕", Earned: false},
}

// personaCatalog matches the four clusters returned by the classification
// service, in cluster-index order.
var personaCatalog = []Persona{
	{
		Name:        "Disciplined Planner",
		Tagline:     "You save smartly, invest in growth, and rarely splurge impulsively.",
		Description: "Methodical with spending, focuses on long-term financial goals and careful budgeting.",
	},
	{
		Name:        "Experience Seeker",
		Tagline:     "You value fun and experiences, but sometimes overspend on weekends.",
		Description: "Values experiences and personal growth, willing to spend on meaningful activities.",
	},
	{
		Name:        "Spontaneous Spender",
		Tagline:     "You enjoy spontaneous purchases and late-night shopping.",
		Description: "Makes impulsive purchases, often driven by emotions and immediate desires.",
	},
	{
		Name:        "Routine Essentialist",
		Tagline:     "You prioritize essentials and stick to stable routines.",
		Description: "Consistent spending patterns, focuses on necessities and established routines.",
	},
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }
