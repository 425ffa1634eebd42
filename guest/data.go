package guest

// NamePool is the built-in pool of guest names used by RandomRoster.
var NamePool = []string{
	"Alice", "Bob", "Carol", "David", "Emma", "Frank", "Grace", "Henry",
	"Isabel", "Jack", "Kara", "Liam", "Mona", "Nate", "Olivia", "Paul",
	"Quinn", "Rachel", "Sam", "Tina", "Umar", "Vera", "Will", "Xena",
	"Yusuf", "Zoe", "Aaron", "Bella", "Carlos", "Diana", "Ethan", "Fiona",
	"George", "Hannah", "Ivan", "Julia", "Kevin", "Laura", "Marco", "Nina",
}

// InterestPool is the built-in pool of interest names used by RandomRoster.
var InterestPool = []string{
	"astronomy", "baking", "birdwatching", "chess", "climbing", "cooking",
	"dancing", "fishing", "gardening", "hiking", "history", "jazz",
	"knitting", "languages", "movies", "painting", "philosophy",
	"photography", "poetry", "pottery", "sailing", "sculpture", "tennis",
	"theater", "travel", "videogames", "wine", "woodworking", "yoga",
}
