package model

// Category and urgency labels are open string sets. The constants below are
// the default choice lists offered in the UI; any value returned by a
// provider is accepted and displayed even when it falls outside them.

// Default category labels.
const (
	CategoryTechnicalSupport = "Technical Support"
	CategoryBilling          = "Billing & Subscription"
	CategoryProductQuestion  = "Product Question"
	CategoryFeatureRequest   = "Feature Request"
	CategoryAccount          = "Account Management"
	CategorySpamOther        = "Spam/Other"
)

// Default urgency levels.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

// DefaultCategories returns the default category choice list in display
// order. Callers receive a fresh slice and may append to it.
func DefaultCategories() []string {
	return []string{
		CategoryTechnicalSupport,
		CategoryBilling,
		CategoryProductQuestion,
		CategoryFeatureRequest,
		CategoryAccount,
		CategorySpamOther,
	}
}

// DefaultUrgencies returns the default urgency choice list in display order.
func DefaultUrgencies() []string {
	return []string{UrgencyHigh, UrgencyMedium, UrgencyLow}
}
