// Package category contains expense taxonomy use cases.
package category

// defaultTaxonomy is the seeded category set a fresh installation starts
// with. Seeding is idempotent: it runs only when no default categories exist.
var defaultTaxonomy = []struct {
	Name          string
	Color         string
	Icon          string
	SubCategories []string
}{
	{
		Name:  "Food & Drinks",
		Color: "#E74C3C",
		Icon:  "utensils",
		SubCategories: []string{
			"Groceries", "Restaurants", "Cafes", "Takeaway", "Alcohol", "Snacks",
		},
	},
	{
		Name:  "Housing",
		Color: "#3498DB",
		Icon:  "home",
		SubCategories: []string{
			"Rent", "Mortgage", "Utilities", "Internet", "Maintenance", "Furniture", "Insurance",
		},
	},
	{
		Name:  "Transportation",
		Color: "#F39C12",
		Icon:  "car",
		SubCategories: []string{
			"Public Transport", "Fuel", "Parking", "Taxi & Rideshare", "Vehicle Maintenance", "Tolls",
		},
	},
	{
		Name:  "Health",
		Color: "#2ECC71",
		Icon:  "heart-pulse",
		SubCategories: []string{
			"Pharmacy", "Doctor", "Dentist", "Health Insurance", "Gym & Fitness", "Therapy",
		},
	},
	{
		Name:  "Entertainment",
		Color: "#9B59B6",
		Icon:  "gamepad",
		SubCategories: []string{
			"Streaming", "Cinema & Events", "Games", "Books", "Hobbies", "Music",
		},
	},
	{
		Name:  "Shopping",
		Color: "#E91E8C",
		Icon:  "shopping-bag",
		SubCategories: []string{
			"Clothing", "Electronics", "Gifts", "Beauty & Care", "Accessories",
		},
	},
	{
		Name:  "Education",
		Color: "#1ABC9C",
		Icon:  "graduation-cap",
		SubCategories: []string{
			"Courses", "Books & Materials", "Tuition", "Subscriptions",
		},
	},
	{
		Name:  "Travel",
		Color: "#16A085",
		Icon:  "plane",
		SubCategories: []string{
			"Flights", "Accommodation", "Local Transport", "Activities", "Travel Insurance",
		},
	},
	{
		Name:  "Finance",
		Color: "#34495E",
		Icon:  "landmark",
		SubCategories: []string{
			"Bank Fees", "Taxes", "Loan Payments", "Investments", "Transfers",
		},
	},
	{
		Name:  "Family & Pets",
		Color: "#D35400",
		Icon:  "paw",
		SubCategories: []string{
			"Childcare", "School", "Pet Food", "Veterinary", "Allowances",
		},
	},
	{
		Name:  "Other",
		Color: "#95A5A6",
		Icon:  "ellipsis",
		SubCategories: []string{
			"Uncategorized", "Donations", "Fees & Fines",
		},
	},
}
