package hrid

// NiceWordLists is a curated catalog for user-facing identifiers: the
// standard categories re-filtered to keep only warm, positive words that
// cannot produce awkward combinations, plus extra categories (mood, place,
// tree, weather, fabric). Twelve categories in total.
var NiceWordLists = Catalog{
	"adjective": Words(
		"bright", "calm", "charming", "cheerful", "clever", "cozy", "dapper", "dazzling",
		"delicate", "eager", "elegant", "fragrant", "friendly", "gentle", "golden", "graceful",
		"happy", "humble", "jolly", "kind", "lively", "lucky", "majestic", "merry",
		"mighty", "noble", "peaceful", "playful", "polished", "proud", "quick", "quiet",
		"radiant", "serene", "shiny", "sincere", "sparkling", "splendid", "sunny", "sweet",
		"swift", "tender", "tranquil", "vivid", "warm", "whimsical", "wise", "young",
	),
	"mood": Words(
		"blissful", "breezy", "buoyant", "carefree", "cheery", "content", "cordial", "dreamy",
		"earnest", "easygoing", "festive", "giddy", "glad", "gleeful", "grateful", "hopeful",
		"jaunty", "joyful", "jubilant", "mellow", "mirthful", "optimistic", "peppy", "perky",
		"pleased", "relaxed", "rosy", "soothed", "spirited", "sprightly", "thankful", "upbeat",
	),
	"noun": Words(
		"apple", "beacon", "bell", "berry", "blossom", "breeze", "bridge", "brook",
		"candle", "cherry", "cloud", "compass", "crystal", "dawn", "dew", "dream",
		"ember", "feather", "fountain", "garden", "grove", "harbor", "island", "lake",
		"lantern", "leaf", "meadow", "melon", "moon", "orchard", "peach", "pebble",
		"plum", "pond", "ribbon", "river", "sail", "shell", "sky", "star",
		"stream", "summit", "sun", "sunset", "tide", "trail", "valley", "wave",
	),
	"verb": Words(
		"bounce", "cheer", "chime", "climb", "dance", "drift", "explore", "fly",
		"gather", "glide", "glow", "grow", "hop", "hum", "leap", "paddle",
		"paint", "ramble", "rest", "rise", "roam", "sail", "shine", "sing",
		"sketch", "skip", "soar", "spin", "stroll", "sway", "swim", "swing",
		"travel", "twirl", "wander", "wave", "weave", "whistle",
	),
	"adverb": Words(
		"boldly", "bravely", "brightly", "calmly", "cheerfully", "dearly", "eagerly", "easily",
		"fondly", "freely", "gently", "gladly", "gracefully", "happily", "keenly", "kindly",
		"lightly", "merrily", "neatly", "nicely", "nimbly", "openly", "patiently", "playfully",
		"politely", "proudly", "quietly", "smoothly", "softly", "soundly", "steadily", "surely",
		"sweetly", "swiftly", "tenderly", "warmly", "wisely",
	),
	"animal": Words(
		"beaver", "bunny", "crane", "deer", "dolphin", "dove", "duckling", "fawn",
		"finch", "firefly", "gazelle", "goldfinch", "goose", "hare", "hedgehog", "heron",
		"hummingbird", "kitten", "kiwi", "koala", "lamb", "lark", "lemur", "llama",
		"manatee", "meerkat", "otter", "owl", "panda", "pelican", "penguin", "pony",
		"puffin", "puppy", "quail", "rabbit", "robin", "seal", "sparrow", "squirrel",
		"swan", "turtle", "wren",
	),
	"flower": Words(
		"aster", "bluebell", "buttercup", "camellia", "carnation", "clover", "crocus", "daffodil",
		"daisy", "freesia", "gardenia", "hyacinth", "iris", "jasmine", "lavender", "lilac",
		"lily", "lotus", "magnolia", "marigold", "orchid", "peony", "petunia", "poppy",
		"primrose", "rose", "sunflower", "tulip", "violet", "zinnia",
	),
	"place": Words(
		"alcove", "arbor", "atrium", "bay", "bungalow", "cabin", "canal", "chalet",
		"cottage", "courtyard", "cove", "garden", "gazebo", "glen", "grove", "hamlet",
		"harbor", "haven", "hollow", "lagoon", "lighthouse", "lodge", "meadow", "oasis",
		"orchard", "patio", "pavilion", "pier", "plaza", "porch", "terrace", "veranda",
		"villa", "vineyard",
	),
	"tree": Words(
		"alder", "ash", "aspen", "beech", "birch", "cedar", "cherry", "chestnut",
		"cypress", "elm", "fir", "ginkgo", "hawthorn", "hazel", "juniper", "larch",
		"laurel", "linden", "maple", "mulberry", "oak", "olive", "pine", "poplar",
		"rowan", "sequoia", "spruce", "sycamore", "walnut", "willow",
	),
	"weather": Words(
		"aurora", "breeze", "cloudlet", "dewdrop", "drizzle", "flurry", "mist", "moonbeam",
		"moonlight", "rainbow", "raindrop", "shower", "snowfall", "snowflake", "starlight", "sunbeam",
		"sunrise", "sunset", "sunshine", "twilight", "zephyr",
	),
	"fabric": Words(
		"brocade", "cashmere", "chenille", "chiffon", "corduroy", "cotton", "denim", "felt",
		"flannel", "fleece", "gingham", "lace", "linen", "muslin", "organza", "percale",
		"poplin", "sateen", "satin", "silk", "suede", "taffeta", "tweed", "velour",
		"velvet", "wool",
	),
	"number": NumberRange(10, 99),
}
