package catalog

import "time"

// Default catalog data: the Eggs & Kegs brunch menu.

func defaultRecipes() []Recipe {
	return []Recipe{
		// Breakfast foods
		{ID: "scrambled_eggs", Name: "Scrambled Eggs", Icon: "🍳", Category: CategoryFood, Station: "stove", CookTime: 3 * time.Second, Price: 8, Unlocked: true, Description: "Fluffy scrambled eggs, cooked to perfection"},
		{ID: "sunny_side_up", Name: "Sunny Side Up", Icon: "🌞", Category: CategoryFood, Station: "stove", CookTime: 4 * time.Second, Price: 10, Unlocked: true, Description: "Classic sunny side up eggs"},
		{ID: "bacon", Name: "Crispy Bacon", Icon: "🥓", Category: CategoryFood, Station: "griddle", CookTime: 4 * time.Second, Price: 7, Unlocked: true, Description: "Perfectly crispy bacon strips"},
		{ID: "pancakes", Name: "Pancakes", Icon: "🥞", Category: CategoryFood, Station: "griddle", CookTime: 5 * time.Second, Price: 12, Unlocked: true, Description: "Fluffy buttermilk pancakes"},
		{ID: "waffles", Name: "Belgian Waffles", Icon: "🧇", Category: CategoryFood, Station: "waffle_iron", CookTime: 6 * time.Second, Price: 14, UnlockCost: 50, Description: "Crispy Belgian waffles with deep pockets"},
		{ID: "french_toast", Name: "French Toast", Icon: "🍯", Category: CategoryFood, Station: "griddle", CookTime: 5 * time.Second, Price: 11, UnlockCost: 40, Description: "Golden brown French toast with honey"},
		{ID: "omelette", Name: "Cheese Omelette", Icon: "🧀", Category: CategoryFood, Station: "stove", CookTime: 6 * time.Second, Price: 15, UnlockCost: 60, Description: "Fluffy omelette with melted cheese"},
		{ID: "hash_browns", Name: "Hash Browns", Icon: "🥔", Category: CategoryFood, Station: "griddle", CookTime: 5 * time.Second, Price: 6, UnlockCost: 30, Description: "Crispy shredded potato hash browns"},
		{ID: "eggs_benedict", Name: "Eggs Benedict", Icon: "🥚", Category: CategoryFood, Station: "stove", CookTime: 8 * time.Second, Price: 18, UnlockCost: 100, Description: "Poached eggs with hollandaise on English muffin"},
		{ID: "breakfast_burrito", Name: "Breakfast Burrito", Icon: "🌯", Category: CategoryFood, Station: "griddle", CookTime: 7 * time.Second, Price: 16, UnlockCost: 80, Description: "Eggs, cheese, and bacon wrapped in a tortilla"},
		{ID: "avocado_toast", Name: "Avocado Toast", Icon: "🥑", Category: CategoryFood, Station: "prep", CookTime: 3 * time.Second, Price: 13, UnlockCost: 45, Description: "Smashed avocado on artisan toast"},
		{ID: "toast", Name: "Buttered Toast", Icon: "🍞", Category: CategoryFood, Station: "prep", CookTime: 2 * time.Second, Price: 4, Unlocked: true, Description: "Crispy toast with butter"},
		{ID: "sausage", Name: "Breakfast Sausage", Icon: "🌭", Category: CategoryFood, Station: "griddle", CookTime: 4500 * time.Millisecond, Price: 8, Unlocked: true, Description: "Savory breakfast sausage links"},
		{ID: "fruit_bowl", Name: "Fresh Fruit Bowl", Icon: "🍇", Category: CategoryFood, Station: "prep", CookTime: 2500 * time.Millisecond, Price: 9, UnlockCost: 35, Description: "Assorted fresh seasonal fruits"},
		{ID: "croissant", Name: "Butter Croissant", Icon: "🥐", Category: CategoryFood, Station: "prep", CookTime: 2 * time.Second, Price: 6, UnlockCost: 25, Description: "Flaky, buttery French croissant"},

		// Drinks, non-alcoholic
		{ID: "coffee", Name: "Coffee", Icon: "☕", Category: CategoryDrink, Station: "coffee_machine", CookTime: 2 * time.Second, Price: 4, Unlocked: true, Description: "Fresh brewed coffee"},
		{ID: "orange_juice", Name: "Fresh OJ", Icon: "🍊", Category: CategoryDrink, Station: "juice_bar", CookTime: 2 * time.Second, Price: 5, Unlocked: true, Description: "Freshly squeezed orange juice"},
		{ID: "latte", Name: "Latte", Icon: "🥛", Category: CategoryDrink, Station: "coffee_machine", CookTime: 3 * time.Second, Price: 6, UnlockCost: 35, Description: "Espresso with steamed milk"},
		{ID: "hot_chocolate", Name: "Hot Chocolate", Icon: "🍫", Category: CategoryDrink, Station: "coffee_machine", CookTime: 2500 * time.Millisecond, Price: 5, UnlockCost: 25, Description: "Rich and creamy hot chocolate"},
		{ID: "smoothie", Name: "Berry Smoothie", Icon: "🫐", Category: CategoryDrink, Station: "juice_bar", CookTime: 3 * time.Second, Price: 8, UnlockCost: 50, Description: "Blended berry smoothie"},
		{ID: "tea", Name: "Hot Tea", Icon: "🫖", Category: CategoryDrink, Station: "coffee_machine", CookTime: 2 * time.Second, Price: 4, Unlocked: true, Description: "Soothing hot tea"},
		{ID: "apple_juice", Name: "Apple Juice", Icon: "🍎", Category: CategoryDrink, Station: "juice_bar", CookTime: 2 * time.Second, Price: 5, UnlockCost: 30, Description: "Fresh pressed apple juice"},
		{ID: "milk", Name: "Glass of Milk", Icon: "🥛", Category: CategoryDrink, Station: "juice_bar", CookTime: 1 * time.Second, Price: 3, Unlocked: true, Description: "Cold fresh milk"},

		// Drinks, alcoholic
		{ID: "mimosa", Name: "Mimosa", Icon: "🥂", Category: CategoryAlcohol, Station: "bar", CookTime: 2 * time.Second, Price: 10, Unlocked: true, Description: "Champagne and orange juice"},
		{ID: "bloody_mary", Name: "Bloody Mary", Icon: "🍅", Category: CategoryAlcohol, Station: "bar", CookTime: 3 * time.Second, Price: 12, UnlockCost: 55, Description: "Spicy tomato vodka cocktail"},
		{ID: "irish_coffee", Name: "Irish Coffee", Icon: "☘️", Category: CategoryAlcohol, Station: "bar", CookTime: 3500 * time.Millisecond, Price: 11, UnlockCost: 45, Description: "Coffee with Irish whiskey and cream"},
		{ID: "beer", Name: "Draft Beer", Icon: "🍺", Category: CategoryAlcohol, Station: "bar", CookTime: 1500 * time.Millisecond, Price: 7, Unlocked: true, Description: "Cold draft beer from the keg"},
		{ID: "bellini", Name: "Bellini", Icon: "🍑", Category: CategoryAlcohol, Station: "bar", CookTime: 2500 * time.Millisecond, Price: 11, UnlockCost: 60, Description: "Prosecco with peach purée"},
		{ID: "screwdriver", Name: "Screwdriver", Icon: "🍸", Category: CategoryAlcohol, Station: "bar", CookTime: 2 * time.Second, Price: 9, UnlockCost: 40, Description: "Vodka and orange juice"},
		{ID: "champagne", Name: "Champagne", Icon: "🍾", Category: CategoryAlcohol, Station: "bar", CookTime: 1500 * time.Millisecond, Price: 15, UnlockCost: 70, Description: "Bubbly celebration champagne"},
		{ID: "white_wine", Name: "White Wine", Icon: "🍷", Category: CategoryAlcohol, Station: "bar", CookTime: 1500 * time.Millisecond, Price: 10, UnlockCost: 50, Description: "Crisp white wine"},
		{ID: "margarita", Name: "Breakfast Margarita", Icon: "🍹", Category: CategoryAlcohol, Station: "bar", CookTime: 3 * time.Second, Price: 13, UnlockCost: 65, Description: "Tequila sunrise with a twist"},
	}
}

func defaultStations() []StationDef {
	return []StationDef{
		{ID: "stove", Name: "Stove", Icon: "🔥", Unlocked: true},
		{ID: "griddle", Name: "Griddle", Icon: "🫓", Unlocked: true},
		{ID: "coffee_machine", Name: "Coffee", Icon: "⚙️", Unlocked: true},
		{ID: "bar", Name: "Bar", Icon: "🍻", Unlocked: true},
		{ID: "juice_bar", Name: "Juice Bar", Icon: "🧃", UnlockCost: 75},
		{ID: "waffle_iron", Name: "Waffle Iron", Icon: "🔲", UnlockCost: 100},
		{ID: "prep", Name: "Prep Station", Icon: "🔪", Unlocked: true},
	}
}

func defaultArchetypes() []Archetype {
	return []Archetype{
		{Type: "regular", Name: "Regular Joe", Sprites: []string{"👨", "👩", "🧑"}, Patience: 60 * time.Second, TipMultiplier: 1.0, OrderSizeMin: 1, OrderSizeMax: 2},
		{Type: "business", Name: "Business Person", Sprites: []string{"👔", "👩‍💼", "🧑‍💼"}, Patience: 40 * time.Second, TipMultiplier: 1.5, OrderSizeMin: 1, OrderSizeMax: 2, Preferences: []RecipeID{"coffee", "latte", "avocado_toast"}},
		{Type: "brunch_crew", Name: "Brunch Crew", Sprites: []string{"👯", "🕺", "💃"}, Patience: 80 * time.Second, TipMultiplier: 1.3, OrderSizeMin: 2, OrderSizeMax: 4, Preferences: []RecipeID{"mimosa", "bellini", "eggs_benedict", "waffles"}},
		{Type: "hungover", Name: "Hungover Friend", Sprites: []string{"😵", "🥴", "😩"}, Patience: 90 * time.Second, TipMultiplier: 1.2, OrderSizeMin: 2, OrderSizeMax: 3, Preferences: []RecipeID{"bloody_mary", "bacon", "hash_browns", "coffee"}},
		{Type: "health_nut", Name: "Health Enthusiast", Sprites: []string{"🏃", "🧘", "🚴"}, Patience: 50 * time.Second, TipMultiplier: 1.1, OrderSizeMin: 1, OrderSizeMax: 2, Preferences: []RecipeID{"smoothie", "avocado_toast", "orange_juice"}},
		{Type: "family", Name: "Family", Sprites: []string{"👨‍👩‍👧", "👨‍👩‍👦", "👩‍👧‍👦"}, Patience: 70 * time.Second, TipMultiplier: 0.9, OrderSizeMin: 3, OrderSizeMax: 5, Preferences: []RecipeID{"pancakes", "waffles", "hot_chocolate", "scrambled_eggs"}},
	}
}

func defaultDecor() []Upgrade {
	return []Upgrade{
		{ID: "fancy_tables", Name: "Fancy Tables", Icon: "🪑", Price: 150, Description: "Attract higher-tipping customers", Effect: EffectTip, Value: 0.1},
		{ID: "jukebox", Name: "Jukebox", Icon: "🎵", Price: 200, Description: "Customers wait 10% longer", Effect: EffectPatience, Value: 0.1},
		{ID: "neon_sign", Name: "Neon Sign", Icon: "✨", Price: 250, Description: "More customers visit each day", Effect: EffectCustomers, Value: 2},
		{ID: "express_grill", Name: "Express Grill", Icon: "⚡", Price: 300, Description: "Cook 15% faster", Effect: EffectSpeed, Value: 0.15},
		{ID: "comfy_booths", Name: "Comfy Booths", Icon: "🛋️", Price: 175, Description: "Extra seating for more customers", Effect: EffectSeating, Value: 2},
	}
}
