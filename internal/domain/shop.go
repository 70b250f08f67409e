package domain

// ItemStreakFreeze: пока единственный товар в магазине
const ItemStreakFreeze = "streak_freeze"

type ShopItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

var ShopCatalog = map[string]ShopItem{
	ItemStreakFreeze: {
		ID:    ItemStreakFreeze,
		Name:  "Streak Freeze",
		Price: 10000,
	},
}
