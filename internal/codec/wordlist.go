package codec

// wordTable is the canonical pricklybird word list. Index i is the word for
// byte value i. All entries are distinct four-letter lowercase ASCII words;
// the table is never mutated after process start, so concurrent readers need
// no locking. Changing the order or contents is a wire-format break: an
// encoder and a decoder using different tables silently disagree on byte
// values, and the checksum cannot catch that.
var wordTable = [256]string{
	"perm", "evil", "lady", "chip", "tutu", "ebay", "plot", "rage",
	"cold", "dose", "duck", "rust", "slip", "wavy", "wing", "ride",
	"lend", "wish", "swim", "down", "game", "acts", "heat", "yoga",
	"mule", "aloe", "stud", "slob", "hung", "acre", "life", "user",
	"kiwi", "malt", "rope", "view", "bony", "shed", "skew", "self",
	"flop", "omen", "rack", "lift", "boil", "deed", "cult", "hash",
	"chef", "kite", "duct", "dock", "pork", "fool", "spew", "hunt",
	"tusk", "mate", "wimp", "fang", "tart", "etch", "atom", "darn",
	"zone", "data", "wink", "only", "buck", "kilt", "stir", "item",
	"nerd", "gala", "tidy", "upon", "spur", "disk", "pogo", "mold",
	"mull", "pout", "send", "unit", "math", "keep", "sham", "land",
	"volt", "grab", "walk", "dill", "quit", "veto", "gown", "skid",
	"east", "smog", "blob", "wool", "year", "flip", "gore", "coke",
	"dust", "poet", "rake", "cape", "cure", "fled", "cage", "sage",
	"halt", "wake", "salt", "cope", "suds", "wick", "even", "taps",
	"calm", "boat", "left", "oval", "flag", "wind", "bust", "undo",
	"lazy", "king", "cone", "yard", "plus", "late", "bats", "tank",
	"raid", "bush", "slit", "snap", "grub", "kick", "case", "poem",
	"colt", "polo", "fray", "fade", "sect", "rant", "sift", "bash",
	"park", "wilt", "dish", "blot", "hate", "silk", "eats", "doze",
	"navy", "grew", "scan", "desk", "void", "lily", "robe", "deal",
	"ship", "surf", "gulf", "shop", "same", "most", "bath", "lens",
	"mace", "chow", "fact", "kung", "step", "take", "name", "dial",
	"dime", "nail", "tree", "rule", "golf", "stop", "opal", "mama",
	"doll", "lent", "muse", "romp", "goal", "tilt", "shun", "rice",
	"stew", "shut", "ruin", "last", "grit", "jump", "jaws", "drab",
	"rush", "cost", "rich", "clad", "glad", "slum", "ajar", "wipe",
	"wise", "ruby", "hush", "lung", "tile", "tall", "skit", "mute",
	"sled", "lion", "putt", "hull", "push", "coat", "neon", "glow",
	"skip", "drum", "path", "risk", "wife", "slug", "boss", "rash",
	"cork", "stem", "grid", "acid", "turf", "exit", "jolt", "pace",
	"cozy", "aids", "chew", "half", "edge", "neat", "blog", "date",
}

// reverseIndex maps each table word back to its byte value. Built once from
// wordTable and read-only afterwards.
var reverseIndex = func() map[string]byte {
	m := make(map[string]byte, len(wordTable))
	for i, w := range wordTable {
		m[w] = byte(i)
	}
	return m
}()
