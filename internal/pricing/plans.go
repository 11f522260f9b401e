package pricing

import "fmt"

// Plan describes one subscription tier of the marketplace. Prices are in
// whole Thai Baht. Checkout itself is handled by an external payment
// service; this package only carries the catalog.
type Plan struct {
	ID          string
	Name        string
	Description string
	Price       int
	Currency    string
	Interval    string
	Features    []string
}

var catalog = []Plan{
	{
		ID:          "basic_monthly",
		Name:        "Basic Plan - Monthly",
		Description: "Perfect for job seekers",
		Price:       499,
		Currency:    "thb",
		Interval:    "month",
		Features: []string{
			"Create professional profile",
			"Apply to unlimited jobs",
			"Save up to 10 jobs",
			"Basic portfolio (5 projects)",
			"Email support",
		},
	},
	{
		ID:          "basic_annual",
		Name:        "Basic Plan - Annual",
		Description: "Perfect for job seekers (Save 17%)",
		Price:       4990,
		Currency:    "thb",
		Interval:    "year",
		Features: []string{
			"All Basic Monthly features",
			"Save ฿998 per year",
			"Priority support",
		},
	},
	{
		ID:          "professional_monthly",
		Name:        "Professional Plan - Monthly",
		Description: "For BIM professionals",
		Price:       999,
		Currency:    "thb",
		Interval:    "month",
		Features: []string{
			"All Basic features",
			"Featured profile listing",
			"Unlimited portfolio projects",
			"Advanced analytics",
			"Priority job applications",
			"Direct messaging with employers",
			"Profile badge",
			"Priority support",
		},
	},
	{
		ID:          "professional_annual",
		Name:        "Professional Plan - Annual",
		Description: "For BIM professionals (Save 17%)",
		Price:       9990,
		Currency:    "thb",
		Interval:    "year",
		Features: []string{
			"All Professional Monthly features",
			"Save ฿1,998 per year",
			"24/7 priority support",
		},
	},
	{
		ID:          "enterprise_monthly",
		Name:        "Enterprise Plan - Monthly",
		Description: "For companies",
		Price:       2999,
		Currency:    "thb",
		Interval:    "month",
		Features: []string{
			"Post unlimited jobs",
			"Featured company profile",
			"Advanced candidate screening",
			"Team collaboration tools",
			"Company portfolio showcase",
			"Analytics dashboard",
			"API access",
			"Dedicated account manager",
			"24/7 premium support",
		},
	},
	{
		ID:          "enterprise_annual",
		Name:        "Enterprise Plan - Annual",
		Description: "For companies (Save 17%)",
		Price:       29990,
		Currency:    "thb",
		Interval:    "year",
		Features: []string{
			"All Enterprise Monthly features",
			"Save ฿5,988 per year",
			"Custom integrations",
			"Onboarding assistance",
		},
	},
}

// Catalog returns all plans in display order.
func Catalog() []Plan {
	plans := make([]Plan, len(catalog))
	copy(plans, catalog)
	return plans
}

// Find returns the plan with the given id.
func Find(id string) (*Plan, error) {
	for i := range catalog {
		if catalog[i].ID == id {
			plan := catalog[i]
			return &plan, nil
		}
	}
	return nil, fmt.Errorf("unknown plan id: %s", id)
}
