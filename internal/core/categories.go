package core

var categories = []Category{
	{Key: "animals", Name: "Animals"},
	{Key: "business", Name: "Business"},
	{Key: "competitions", Name: "Competitions"},
	{Key: "startup", Name: "StartUp", Important: true},
	{Key: "education", Name: "Education"},
	{Key: "emergencies", Name: "Emergencies", Important: true},
	{Key: "environment", Name: "Environment", Important: true},
	{Key: "events", Name: "Events"},
	{Key: "family", Name: "Family"},
	{Key: "medical", Name: "Medical", Important: true},
	{Key: "monthlyBills", Name: "Monthly Bills"},
	{Key: "charity", Name: "Charity", Important: true},
	{Key: "sports", Name: "Sports"},
	{Key: "other", Name: "Other", Important: true},
}

// Categories returns the catalog of campaign categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether key names a known category.
func IsCategory(key string) bool {
	for _, c := range categories {
		if c.Key == key {
			return true
		}
	}
	return false
}
