package data

import "cocktail-manager/models"

// Cocktails ist der feste Startkatalog. Die Reihenfolge bestimmt die Einfügereihenfolge beim Seeding.
var Cocktails = []models.CocktailInput{
	{
		Name:         "Mojito",
		Description:  "A refreshing Cuban highball",
		Ingredients:  "White rum, Sugar, Lime juice, Soda water, Mint",
		Instructions: "Muddle mint leaves with sugar and lime juice. Add rum and top with soda water.",
	},
	{
		Name:         "Old Fashioned",
		Description:  "A classic cocktail with bourbon",
		Ingredients:  "Bourbon, Angostura bitters, Sugar cube, Orange peel",
		Instructions: "Muddle sugar cube with bitters. Add bourbon and stir. Garnish with orange peel.",
	},
	{
		Name:         "Margarita",
		Description:  "A Mexican classic",
		Ingredients:  "Tequila, Triple sec, Lime juice, Salt",
		Instructions: "Shake tequila, triple sec, and lime juice with ice. Strain into a salt-rimmed glass.",
	},
	{
		Name:         "Martini",
		Description:  "The king of cocktails",
		Ingredients:  "Gin, Dry vermouth, Olive or lemon twist",
		Instructions: "Stir gin and vermouth with ice. Strain into a chilled glass. Garnish with olive or lemon twist.",
	},
	{
		Name:         "Negroni",
		Description:  "Italian aperitif",
		Ingredients:  "Gin, Campari, Sweet vermouth, Orange peel",
		Instructions: "Stir all ingredients with ice. Strain into a glass. Garnish with orange peel.",
	},
	{
		Name:         "Manhattan",
		Description:  "Classic whiskey cocktail",
		Ingredients:  "Rye whiskey, Sweet vermouth, Angostura bitters, Maraschino cherry",
		Instructions: "Stir whiskey, vermouth, and bitters with ice. Strain into a glass. Garnish with cherry.",
	},
	{
		Name:         "Daiquiri",
		Description:  "Cuban rum cocktail",
		Ingredients:  "White rum, Lime juice, Simple syrup",
		Instructions: "Shake all ingredients with ice. Strain into a chilled glass.",
	},
	{
		Name:         "Gin and Tonic",
		Description:  "British classic",
		Ingredients:  "Gin, Tonic water, Lime wedge",
		Instructions: "Pour gin over ice. Top with tonic water. Garnish with lime.",
	},
	{
		Name:         "Whiskey Sour",
		Description:  "Classic sour cocktail",
		Ingredients:  "Bourbon, Lemon juice, Simple syrup, Egg white",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Espresso Martini",
		Description:  "Coffee cocktail",
		Ingredients:  "Vodka, Coffee liqueur, Fresh espresso, Coffee beans",
		Instructions: "Shake all ingredients with ice. Strain into a glass. Garnish with coffee beans.",
	},
	{
		Name:         "Aperol Spritz",
		Description:  "Italian aperitif",
		Ingredients:  "Aperol, Prosecco, Soda water, Orange slice",
		Instructions: "Build in glass over ice. Garnish with orange slice.",
	},
	{
		Name:         "Moscow Mule",
		Description:  "Vodka and ginger beer",
		Ingredients:  "Vodka, Ginger beer, Lime juice, Mint",
		Instructions: "Build in copper mug over ice. Garnish with mint and lime.",
	},
	{
		Name:         "French 75",
		Description:  "Champagne cocktail",
		Ingredients:  "Gin, Champagne, Lemon juice, Simple syrup",
		Instructions: "Shake gin, lemon juice, and syrup. Top with champagne.",
	},
	{
		Name:         "Gimlet",
		Description:  "Classic gin cocktail",
		Ingredients:  "Gin, Lime juice, Simple syrup",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Dark and Stormy",
		Description:  "Rum and ginger beer",
		Ingredients:  "Dark rum, Ginger beer, Lime juice",
		Instructions: "Build in glass over ice. Garnish with lime.",
	},
	{
		Name:         "Paloma",
		Description:  "Mexican tequila cocktail",
		Ingredients:  "Tequila, Grapefruit soda, Lime juice, Salt",
		Instructions: "Build in glass over ice. Garnish with lime and salt rim.",
	},
	{
		Name:         "Tom Collins",
		Description:  "Classic gin cocktail",
		Ingredients:  "Gin, Lemon juice, Simple syrup, Soda water",
		Instructions: "Shake gin, lemon juice, and syrup. Top with soda water.",
	},
	{
		Name:         "Boulevardier",
		Description:  "Whiskey Negroni",
		Ingredients:  "Bourbon, Campari, Sweet vermouth, Orange peel",
		Instructions: "Stir all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Sazerac",
		Description:  "New Orleans classic",
		Ingredients:  "Rye whiskey, Absinthe, Peychaud's bitters, Sugar",
		Instructions: "Rinse glass with absinthe. Stir remaining ingredients with ice.",
	},
	{
		Name:         "Mai Tai",
		Description:  "Tiki classic",
		Ingredients:  "White rum, Dark rum, Orange curaçao, Lime juice, Orgeat",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Pisco Sour",
		Description:  "Peruvian classic",
		Ingredients:  "Pisco, Lime juice, Simple syrup, Egg white, Angostura bitters",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Penicillin",
		Description:  "Modern classic",
		Ingredients:  "Blended scotch, Islay scotch, Lemon juice, Honey syrup, Ginger syrup",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Paper Plane",
		Description:  "Modern classic",
		Ingredients:  "Bourbon, Aperol, Amaro Nonino, Lemon juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Last Word",
		Description:  "Classic equal parts",
		Ingredients:  "Gin, Green Chartreuse, Maraschino liqueur, Lime juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Corpse Reviver No.2",
		Description:  "Classic equal parts",
		Ingredients:  "Gin, Lillet Blanc, Cointreau, Lemon juice, Absinthe",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Aviation",
		Description:  "Classic gin cocktail",
		Ingredients:  "Gin, Maraschino liqueur, Crème de violette, Lemon juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Bee's Knees",
		Description:  "Prohibition classic",
		Ingredients:  "Gin, Honey syrup, Lemon juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Gold Rush",
		Description:  "Modern classic",
		Ingredients:  "Bourbon, Honey syrup, Lemon juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Naked and Famous",
		Description:  "Modern equal parts",
		Ingredients:  "Mezcal, Yellow Chartreuse, Aperol, Lime juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Vieux Carré",
		Description:  "New Orleans classic",
		Ingredients:  "Rye whiskey, Cognac, Sweet vermouth, Bénédictine, Peychaud's bitters, Angostura bitters",
		Instructions: "Stir all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "South Side",
		Description:  "Classic gin cocktail",
		Ingredients:  "Gin, Lime juice, Simple syrup, Mint",
		Instructions: "Muddle mint with syrup. Shake with remaining ingredients. Strain into a glass.",
	},
	{
		Name:         "French Gimlet",
		Description:  "Modern classic",
		Ingredients:  "Gin, St. Germain, Lime juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Industry Sour",
		Description:  "Modern classic",
		Ingredients:  "Fernet Branca, Lime juice, Simple syrup",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Ti' Punch",
		Description:  "Martinique classic",
		Ingredients:  "Rhum agricole, Lime, Cane syrup",
		Instructions: "Muddle lime with syrup. Add rum and stir.",
	},
	{
		Name:         "Pisco Punch",
		Description:  "San Francisco classic",
		Ingredients:  "Pisco, Pineapple, Lemon, Sugar, Water",
		Instructions: "Mix all ingredients and let sit. Strain and serve.",
	},
	{
		Name:         "Brandy Crusta",
		Description:  "New Orleans classic",
		Ingredients:  "Cognac, Curaçao, Lemon juice, Angostura bitters, Sugar",
		Instructions: "Shake all ingredients with ice. Strain into a glass with sugar rim.",
	},
	{
		Name:         "Champagne Cocktail",
		Description:  "Classic",
		Ingredients:  "Champagne, Sugar cube, Angostura bitters, Cognac, Lemon twist",
		Instructions: "Soak sugar cube in bitters. Add cognac and top with champagne.",
	},
	{
		Name:         "Mint Julep",
		Description:  "Kentucky classic",
		Ingredients:  "Bourbon, Mint, Sugar, Water",
		Instructions: "Muddle mint with sugar and water. Add bourbon and crushed ice.",
	},
	{
		Name:         "Scofflaw",
		Description:  "Prohibition classic",
		Ingredients:  "Gin, Dry vermouth, Grenadine, Pomegranate juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Monte Carlo",
		Description:  "Whiskey variation",
		Ingredients:  "Rye whiskey, Bénédictine, Angostura bitters",
		Instructions: "Stir all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Remember the Maine",
		Description:  "Classic variation",
		Ingredients:  "Rye whiskey, Sweet vermouth, Cherry Heering, Absinthe",
		Instructions: "Stir all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Trident",
		Description:  "Modern classic",
		Ingredients:  "Aquavit, Dry sherry, Cynar, Peach bitters",
		Instructions: "Stir all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Division Bell",
		Description:  "Modern classic",
		Ingredients:  "Mezcal, Aperol, Yellow Chartreuse, Lime juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Final Ward",
		Description:  "Modern variation",
		Ingredients:  "Rye whiskey, Green Chartreuse, Maraschino liqueur, Lemon juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Saturn",
		Description:  "Tiki classic",
		Ingredients:  "Gin, Passion fruit syrup, Orgeat, Velvet falernum, Lemon juice",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Corn 'n' Oil",
		Description:  "Tiki classic",
		Ingredients:  "Dark rum, Lime juice, Simple syrup, Blackstrap rum, Mint",
		Instructions: "Muddle mint with syrup. Add remaining ingredients and crushed ice.",
	},
	{
		Name:         "Painkiller",
		Description:  "Tiki classic",
		Ingredients:  "Dark rum, Pineapple juice, Orange juice, Cream of coconut, Nutmeg",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Jungle Bird",
		Description:  "Tiki classic",
		Ingredients:  "Dark rum, Campari, Pineapple juice, Lime juice, Simple syrup",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Three Dots and a Dash",
		Description:  "Tiki classic",
		Ingredients:  "Aged rum, Rhum agricole, Orange juice, Honey syrup, Falernum, Allspice dram",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Zombie",
		Description:  "Tiki classic",
		Ingredients:  "Light rum, Gold rum, Dark rum, 151 rum, Donn's mix, Grenadine, Falernum, Absinthe, Angostura bitters",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Hurricane",
		Description:  "New Orleans classic",
		Ingredients:  "Light rum, Dark rum, Passion fruit syrup, Orange juice, Lime juice, Simple syrup",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Fog Cutter",
		Description:  "Tiki classic",
		Ingredients:  "Light rum, Gin, Vodka, Amontillado sherry, Orange juice, Lemon juice, Orgeat, Amaretto",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Scorpion",
		Description:  "Tiki classic",
		Ingredients:  "Light rum, Brandy, Gin, Dry vermouth, Orange juice, Lemon juice, Orgeat",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Navy Grog",
		Description:  "Tiki classic",
		Ingredients:  "Light rum, Gold rum, Dark rum, Lime juice, Simple syrup, Demerara syrup",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
	{
		Name:         "Jet Pilot",
		Description:  "Tiki classic",
		Ingredients:  "Light rum, Gold rum, Dark rum, 151 rum, Lime juice, Grapefruit juice, Cinnamon syrup, Falernum, Allspice dram",
		Instructions: "Shake all ingredients with ice. Strain into a glass.",
	},
}
