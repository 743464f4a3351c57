package refdata

// Person name corpus for user generation. Weighted toward anglophone names
// with a mix of European, Latin American and Japanese surnames, mirroring a
// B2B SaaS workforce.
var FirstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Susan", "Richard", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Lisa", "Matthew",
	"Nancy", "Anthony", "Emily", "Mark", "Amanda", "Steven", "Melissa",
	"Andrew", "Rebecca", "Oliver", "Charlotte", "Harry", "Amelia", "George",
	"Isla", "Liam", "Emma", "Noah", "Olivia", "Lucas", "Sofia", "Mateo",
	"Valentina", "Diego", "Camila", "Pierre", "Claire", "Lukas", "Hannah",
	"Marco", "Giulia", "Rafael", "Beatriz", "Hiroshi", "Yuki", "Kenji",
	"Aiko", "Priya", "Arjun", "Wei", "Mei", "Omar", "Fatima",
}

var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Thompson", "White", "Harris", "Clark", "Lewis", "Robinson",
	"Walker", "Hall", "Young", "King", "Wright", "Scott", "Green", "Baker",
	"Adams", "Nelson", "Hill", "Campbell", "Mitchell", "Evans", "Murphy",
	"O'Brien", "Kelly", "Dubois", "Laurent", "Schmidt", "Weber", "Rossi",
	"Ferrari", "Silva", "Santos", "Tanaka", "Yamamoto", "Suzuki", "Sato",
	"Patel", "Singh", "Chen", "Wang", "Kim", "Park", "Ali", "Hassan",
}
