package lemma

var irregularNouns = map[string]string{
	"children":  "child",
	"men":       "man",
	"women":     "woman",
	"people":    "person",
	"mice":      "mouse",
	"geese":     "goose",
	"feet":      "foot",
	"teeth":     "tooth",
	"wives":     "wife",
	"lives":     "life",
	"knives":    "knife",
	"leaves":    "leaf",
	"halves":    "half",
	"wolves":    "wolf",
	"thieves":   "thief",
	"analyses":  "analysis",
	"crises":    "crisis",
	"theses":    "thesis",
	"criteria":  "criterion",
	"phenomena": "phenomenon",
	"indices":   "index",
	"matrices":  "matrix",
}

// Words ending in "s" that are not plurals.
var invariantNouns = map[string]struct{}{
	"news":        {},
	"series":      {},
	"species":     {},
	"means":       {},
	"politics":    {},
	"economics":   {},
	"physics":     {},
	"mathematics": {},
	"athletics":   {},
	"olympics":    {},
	"lens":        {},
	"gas":         {},
	"chaos":       {},
	"always":      {},
	"perhaps":     {},
	"whereas":     {},
	"towards":     {},
	"afterwards":  {},
}

var irregularAdjectives = map[string]string{
	"better":   "good",
	"best":     "good",
	"worse":    "bad",
	"worst":    "bad",
	"further":  "far",
	"farther":  "far",
	"furthest": "far",
	"farthest": "far",
	"less":     "little",
	"least":    "little",
	"more":     "much",
	"most":     "much",
	"elder":    "old",
	"eldest":   "old",
}

var irregularVerbs = map[string]string{
	"is":        "be",
	"are":       "be",
	"was":       "be",
	"were":      "be",
	"been":      "be",
	"being":     "be",
	"has":       "have",
	"had":       "have",
	"does":      "do",
	"did":       "do",
	"done":      "do",
	"went":      "go",
	"gone":      "go",
	"said":      "say",
	"says":      "say",
	"made":      "make",
	"took":      "take",
	"taken":     "take",
	"gave":      "give",
	"given":     "give",
	"got":       "get",
	"gotten":    "get",
	"saw":       "see",
	"seen":      "see",
	"came":      "come",
	"won":       "win",
	"lost":      "lose",
	"ran":       "run",
	"held":      "hold",
	"told":      "tell",
	"found":     "find",
	"left":      "leave",
	"met":       "meet",
	"paid":      "pay",
	"sold":      "sell",
	"bought":    "buy",
	"brought":   "bring",
	"thought":   "think",
	"fought":    "fight",
	"led":       "lead",
	"began":     "begin",
	"begun":     "begin",
	"struck":    "strike",
	"fell":      "fall",
	"fallen":    "fall",
	"rose":      "rise",
	"risen":     "rise",
	"chose":     "choose",
	"chosen":    "choose",
	"spoke":     "speak",
	"spoken":    "speak",
	"wrote":     "write",
	"written":   "write",
	"broke":     "break",
	"broken":    "break",
	"fled":      "flee",
	"sought":    "seek",
	"spent":     "spend",
	"sent":      "send",
	"built":     "build",
	"kept":      "keep",
	"drove":     "drive",
	"driven":    "drive",
	"grew":      "grow",
	"grown":     "grow",
	"knew":      "know",
	"known":     "know",
	"threw":     "throw",
	"thrown":    "throw",
	"shot":      "shoot",
	"hit":       "hit",
	"withdrew":  "withdraw",
	"withdrawn": "withdraw",
}
