package mcdata

// categoryItems maps a game-data enchantment category to the item labels it
// applies to. Adding a category is a data change here, not new logic.
var categoryItems = map[string][]string{
	"armor":       {"Helmet", "Chestplate", "Leggings", "Boots"},
	"armor_head":  {"Helmet"},
	"armor_chest": {"Chestplate"},
	"armor_legs":  {"Leggings"},
	"armor_feet":  {"Boots"},
	"weapon":      {"Sword"},
	"digger":      {"Pickaxe", "Shovel", "Axe"},
	"breakable":   {"Pickaxe", "Shovel", "Axe", "Hoe", "Shears", "Fishing Rod", "Bow", "Trident"},
	"bow":         {"Bow"},
	"wearable":    {"Elytra"},
	"crossbow":    {"Crossbow"},
	"vanishable":  {"Compass"},
	"fishing_rod": {"Fishing Rod"},
	"trident":     {"Trident"},
}

// ItemsForCategory returns the item labels for a category. Unknown categories
// yield an empty list. Callers receive a copy so the table stays immutable.
func ItemsForCategory(category string) []string {
	items, ok := categoryItems[category]
	if !ok {
		return []string{}
	}
	return append([]string(nil), items...)
}
