package chat

// ListItem is a conversation summary shown on the dashboard.
type ListItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Preview string `json:"preview"`
	Date    string `json:"date"`
	Starred bool   `json:"starred"`
}

// SeedItems returns the sample conversations a fresh dashboard starts with.
func SeedItems() []ListItem {
	return []ListItem{
		{
			ID:      "1",
			Title:   "AI Trends 2025",
			Preview: "What technologies will shape AI in 2025?",
			Date:    "2 hours ago",
			Starred: true,
		},
		{
			ID:      "2",
			Title:   "Marketing Strategy Analysis",
			Preview: "Can you help me analyze our Q3 marketing strategy?",
			Date:    "Yesterday",
		},
		{
			ID:      "3",
			Title:   "Creative Writing Assistance",
			Preview: "I need help writing a compelling introduction for my novel about...",
			Date:    "3 days ago",
		},
		{
			ID:      "4",
			Title:   "Code Review: React Components",
			Preview: "Can you review this React component and suggest performance improvements?",
			Date:    "1 week ago",
			Starred: true,
		},
		{
			ID:      "5",
			Title:   "Business Proposal Draft",
			Preview: "Help me draft a business proposal for a new SaaS product targeting...",
			Date:    "2 weeks ago",
		},
	}
}
