package dto

// SeedSummary reports how many records a seed run created.
type SeedSummary struct {
	ProfilesCreated int `json:"profiles_created"`
	PizzasCreated   int `json:"pizzas_created"`
}
