package models

import "fmt"

type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleConsumer Role = "consumer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleConsumer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type View string

const (
	ViewHome         View = "home"
	ViewMarketplace  View = "marketplace"
	ViewSmartFarming View = "smart-farming"
	ViewDashboard    View = "dashboard"
)

func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewHome, ViewMarketplace, ViewSmartFarming, ViewDashboard:
		return View(s), nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

type Category string

const (
	CategoryAll       Category = "All"
	CategoryVegetable Category = "Vegetable"
	CategoryFruit     Category = "Fruit"
	CategoryGrain     Category = "Grain"
	CategoryDairy     Category = "Dairy"
	CategoryOther     Category = "Other"
)

// Categories lists the filter choices in display order, All first.
var Categories = []Category{
	CategoryAll,
	CategoryVegetable,
	CategoryFruit,
	CategoryGrain,
	CategoryDairy,
	CategoryOther,
}

// ParseCategory accepts an empty string as All.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
