package domain

// Category is a platform-agnostic metric grouping. Aliases are the native keys
// different platforms use for the same concept.
type Category struct {
	Key     string
	Label   string
	Aliases []string
}

const (
	CategoryAudience        = "audience"
	CategoryExposure        = "exposure"
	CategoryEngagement      = "engagement"
	CategoryReach           = "reach"
	CategoryImpressions     = "impressions"
	CategoryProfileViews    = "profile_views"
	CategoryAccountsEngaged = "accounts_engaged"
	CategoryWebsiteClicks   = "website_clicks"

	// CategoryEngagementRate is derived from engagement and exposure totals.
	CategoryEngagementRate = "engagement_rate"
)

var categories = []Category{
	{Key: CategoryAudience, Label: "Audience", Aliases: []string{"followers", "subscribers"}},
	{Key: CategoryExposure, Label: "Exposure", Aliases: []string{"reach", "views"}},
	{Key: CategoryEngagement, Label: "Engagement", Aliases: []string{"engagement_count", "total_interactions"}},
	{Key: CategoryReach, Label: "Reach", Aliases: []string{"reach"}},
	{Key: CategoryImpressions, Label: "Impressions", Aliases: []string{"impressions", "views"}},
	{Key: CategoryProfileViews, Label: "Profile Views", Aliases: []string{"profile_views"}},
	{Key: CategoryAccountsEngaged, Label: "Accounts Engaged", Aliases: []string{"accounts_engaged"}},
	{Key: CategoryWebsiteClicks, Label: "Website Clicks", Aliases: []string{"website_clicks", "profile_links_taps"}},
}

var engagementRate = Category{Key: CategoryEngagementRate, Label: "Engagement Rate"}

// Categories returns the canonical categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// EngagementRateCategory describes the derived rate series.
func EngagementRateCategory() Category {
	return engagementRate
}

// LookupCategory finds a canonical category by key.
func LookupCategory(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

func (c Category) matches(key string) bool {
	for _, a := range c.Aliases {
		if a == key {
			return true
		}
	}
	return false
}

// Resolve returns the first metric in the list whose key is one of the
// category's aliases. An account never contributes two aliases to one category.
func (c Category) Resolve(metrics []Metric) (Metric, bool) {
	for _, m := range metrics {
		if c.matches(m.Key) {
			return m, true
		}
	}
	return Metric{}, false
}
