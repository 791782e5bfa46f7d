package hrid

// StandardWordLists is the default catalog. Seven categories: adjective,
// noun, verb, adverb, animal, flower, and the procedural number range.
var StandardWordLists = Catalog{
	"adjective": Words(
		"ancient", "autumn", "billowing", "bitter", "bold", "brave", "bright", "brisk",
		"broken", "calm", "charming", "chilly", "clever", "cold", "cool", "crimson",
		"curious", "damp", "dapper", "dark", "dawn", "dazzling", "delicate", "divine",
		"dry", "eager", "early", "elegant", "empty", "fancy", "fast", "fearless",
		"fierce", "floral", "fragrant", "frosty", "gentle", "giant", "golden", "graceful",
		"green", "happy", "hidden", "humble", "icy", "jolly", "keen", "kind",
		"late", "lively", "long", "loud", "lucky", "majestic", "merry", "mighty",
		"misty", "modern", "morning", "muddy", "nameless", "noble", "odd", "old",
		"pale", "patient", "peaceful", "plain", "polished", "proud", "purple", "quick",
		"quiet", "rapid", "restless", "rough", "round", "royal", "rustic", "shy",
		"silent", "silver", "sleepy", "small", "snowy", "solitary", "sparkling", "spring",
		"steep", "still", "stout", "summer", "swift", "tall", "tiny", "twilight",
		"wandering", "warm", "weathered", "wild", "winter", "wise", "withered", "young",
	),
	"noun": Words(
		"anchor", "apple", "basket", "beacon", "bell", "berry", "blossom", "bottle",
		"breeze", "bridge", "brook", "candle", "canyon", "castle", "cherry", "cliff",
		"cloud", "compass", "coral", "crystal", "dawn", "dew", "dream", "dune",
		"dusk", "ember", "feather", "field", "fire", "fjord", "flame", "fog",
		"forest", "fountain", "garden", "glacier", "glade", "grape", "grove", "harbor",
		"hill", "island", "kettle", "lake", "lantern", "leaf", "lemon", "lighthouse",
		"marble", "meadow", "melon", "meteor", "mirror", "moon", "mountain", "night",
		"ocean", "orchard", "paper", "peach", "pebble", "pine", "planet", "plum",
		"pond", "prairie", "rain", "reef", "ribbon", "river", "rock", "sail",
		"sand", "sea", "shadow", "shell", "sky", "smoke", "snow", "star",
		"stone", "storm", "stream", "summit", "sun", "sunset", "thunder", "tide",
		"trail", "tree", "valley", "violet", "water", "waterfall", "wave", "wind",
	),
	"verb": Words(
		"bounce", "call", "carry", "cheer", "chime", "climb", "dance", "dash",
		"dig", "dive", "drift", "drum", "echo", "explore", "fly", "gallop",
		"gather", "glide", "glow", "grow", "hike", "hop", "hum", "jump",
		"leap", "march", "paddle", "paint", "ponder", "race", "ramble", "rest",
		"rise", "roam", "roll", "run", "rush", "sail", "shine", "sing",
		"skate", "sketch", "skip", "slide", "soar", "spin", "sprint", "stroll",
		"surge", "sway", "swim", "swing", "travel", "trek", "tumble", "twirl",
		"vault", "wade", "wander", "wave", "weave", "whirl", "whistle", "zoom",
	),
	"adverb": Words(
		"boldly", "bravely", "briskly", "calmly", "carefully", "cheerfully", "cleverly", "dearly",
		"deftly", "eagerly", "early", "easily", "fiercely", "fondly", "freely", "gently",
		"gladly", "gracefully", "happily", "keenly", "kindly", "lightly", "loudly", "merrily",
		"mildly", "neatly", "nicely", "nimbly", "openly", "patiently", "playfully", "politely",
		"proudly", "quickly", "quietly", "rapidly", "readily", "sharply", "shyly", "silently",
		"simply", "sleepily", "slowly", "smoothly", "softly", "soundly", "steadily", "sternly",
		"surely", "sweetly", "swiftly", "tenderly", "warmly", "widely", "wildly", "wisely",
	),
	"animal": Words(
		"badger", "bear", "beaver", "bison", "crane", "deer", "dolphin", "dove",
		"eagle", "elk", "falcon", "ferret", "finch", "firefly", "fox", "gazelle",
		"gecko", "goose", "hare", "hawk", "hedgehog", "heron", "hippo", "horse",
		"hummingbird", "ibis", "jackal", "jaguar", "kestrel", "kingfisher", "kiwi", "koala",
		"lark", "lemur", "leopard", "lion", "llama", "lynx", "magpie", "manatee",
		"marmot", "marten", "meerkat", "mole", "moose", "narwhal", "newt", "ocelot",
		"orca", "osprey", "otter", "owl", "panda", "panther", "pelican", "penguin",
		"puffin", "quail", "rabbit", "raccoon", "raven", "robin", "salmon", "seal",
		"sparrow", "squirrel", "stork", "swan", "swift", "tiger", "toucan", "trout",
		"turtle", "walrus", "weasel", "whale", "wolf", "wombat", "wren", "yak",
	),
	"flower": Words(
		"aster", "azalea", "begonia", "bluebell", "buttercup", "camellia", "carnation", "clover",
		"crocus", "daffodil", "dahlia", "daisy", "freesia", "fuchsia", "gardenia", "geranium",
		"hibiscus", "hyacinth", "iris", "jasmine", "lavender", "lilac", "lily", "lotus",
		"magnolia", "marigold", "orchid", "peony", "petunia", "poppy", "primrose", "rose",
		"snapdragon", "sunflower", "tulip", "verbena", "violet", "wisteria", "yarrow", "zinnia",
	),
	"number": NumberRange(10, 99),
}
