package spacelabel

// DefaultVocabulary returns the built-in tables. Every call builds a fresh
// value, so callers may adjust the copy they get without affecting others.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Terms: map[Category]TermSet{
			CategoryMaterials:    NewTermSet(materialTerms...),
			CategorySpatial:      NewTermSet(spatialTerms...),
			CategoryArchitecture: NewTermSet(architectureTerms...),
			CategoryPlaceType:    NewTermSet(placeTypeTerms...),
			CategoryAcoustic:     NewTermSet(acousticTerms...),
		},
		Excluded:         NewTermSet(excludedTerms...),
		StopWords:        NewTermSet(stopWords...),
		CompoundPrefixes: []string{"anda", "a", "the", "with", "and", "of", "in", "on", "at", "by", "to", "for"},
		Contradictions: [][2]string{
			{"small", "large"},
			{"high", "low"},
			{"wide", "narrow"},
			{"tall", "short"},
			{"open", "enclosed"},
			{"bright", "dark"},
			{"modern", "historic"},
			{"spacious", "confined"},
			{"vast", "compact"},
			{"ancient", "modern"},
			{"contemporary", "traditional"},
			{"dry", "reverberant"},
			{"inside", "outside"},
		},
		Synonyms: [][]string{
			{"wood", "wooden"},
			{"concrete", "cement"},
			{"stone", "rocky"},
			{"metal", "metallic"},
			{"fabric", "textile"},
			{"circular", "curved", "rounded"},
			{"theater", "theatre"},
			{"large", "big", "huge"},
			{"small", "tiny", "little"},
			{"reverberant", "echoey", "echoing"},
			{"glass", "glazed"},
			{"marble", "marbled"},
		},
		CompoundTerms: map[Category][]string{
			CategoryPlaceType: {
				"conference room", "dining room", "living room", "board room", "class room",
				"waiting room", "reading room", "work room", "prayer room", "change room",
				"rest room", "bed room", "bath room", "hotel room", "hospital room",
				"lecture hall", "meeting room", "concert hall", "music room", "recording studio",
			},
		},
		RoomTypes: []Mapping{
			{"meeting", []string{"meeting", "conference", "discussion", "board", "briefing"}},
			{"class", []string{"class", "lecture", "teaching", "educational", "school", "university", "classroom", "student"}},
			{"living", []string{"living", "sitting", "lounge", "residential", "home", "apartment", "cozy", "family"}},
			{"dining", []string{"dining", "eating", "food", "meal", "restaurant", "cafeteria", "breakfast", "lunch", "dinner"}},
			{"bed", []string{"bed", "sleeping", "dormitory", "hotel", "sleep", "rest", "nap"}},
			{"work", []string{"work", "office", "business", "professional", "corporate", "commercial", "workspace"}},
			{"waiting", []string{"waiting", "reception", "lobby", "entrance", "foyer"}},
			{"storage", []string{"storage", "storing", "closet", "utility", "equipment"}},
			{"bath", []string{"bath", "shower", "toilet", "sink", "washroom", "restroom"}},
			{"rehearsal", []string{"rehearsal", "practice", "music", "band", "orchestra", "choir", "ensemble"}},
			{"reading", []string{"reading", "library", "book", "study", "quiet", "books"}},
			{"game", []string{"game", "play", "gaming", "entertainment", "recreation"}},
		},
		SizeTerms: []Mapping{
			{"large", []string{"large", "big", "huge", "enormous", "vast", "spacious", "expansive", "grand"}},
			{"small", []string{"small", "tiny", "little", "compact", "cramped", "narrow", "tight", "constrained"}},
			{"high", []string{"high", "tall", "lofty", "towering", "soaring", "elevated", "vaulted"}},
			{"low", []string{"low", "short", "squat", "stunted", "sunken", "depressed"}},
			{"wide", []string{"wide", "broad", "ample", "generous", "expansive", "roomy"}},
			{"narrow", []string{"narrow", "thin", "slim", "constricted", "restricted", "limited"}},
		},
		ShapeTerms: []Mapping{
			{"rectangular", []string{"rectangular", "rectangle", "oblong", "box-shaped", "boxy"}},
			{"square", []string{"square", "boxy", "cube-shaped", "cubic"}},
			{"circular", []string{"circular", "circle", "round", "rounded", "curved", "oval"}},
			{"curved", []string{"curved", "curved shape", "curvature", "arc", "arcing", "arched"}},
			{"triangular", []string{"triangular", "triangle", "pyramid-shaped", "pyramid", "conical"}},
			{"irregular", []string{"irregular", "asymmetric", "uneven", "non-uniform", "organic"}},
			{"domed", []string{"domed", "dome", "cupola", "hemispherical", "half-sphere"}},
			{"arched", []string{"arched", "arch", "vaulted", "vault", "curved ceiling"}},
			{"angular", []string{"angular", "angled", "cornered", "edged", "sharp-edged"}},
		},
		ShapeDescriptors: NewTermSet(
			"circular", "curved", "rounded", "square", "rectangular", "oval",
			"triangular", "hexagonal", "octagonal", "spherical", "cylindrical",
			"conical", "pyramidal", "cubical", "elliptical", "spiral",
		),
		IgnoredPathParts: NewTermSet(
			"desktop", "images", "c:", "users", "documents", "downloads", "irs", "gratuites", "achetees",
		),
		FolderAliases: []FolderAlias{
			{"council-chamber", "conference-room"},
			{"meeting-room", "conference-room"},
			{"guildhall", "hall"},
			{"concert-hall", "concert-hall"},
			{"dining-hall", "dining-room"},
			{"lecture-hall", "classroom"},
			{"recording-studio", "studio"},
			{"concert-room", "concert-hall"},
			{"church-hall", "church"},
		},
		ContextKeywords: map[Category][]Mapping{
			CategoryPlaceType: {
				{"church", []string{"church", "cathedral", "chapel", "sanctuary", "altar", "nave"}},
				{"hall", []string{"hall", "auditorium", "theater", "theatre", "venue", "stage"}},
				{"studio", []string{"studio", "recording", "booth", "session", "mix"}},
				{"bathroom", []string{"bathroom", "shower", "toilet", "lavatory", "bath"}},
				{"outdoor", []string{"outdoor", "garden", "park", "field", "forest", "beach", "nature"}},
				{"conference-room", []string{"conference", "council", "meeting", "chamber", "boardroom"}},
				{"concert-hall", []string{"concert", "music", "acoustic", "performance"}},
				{"living-room", []string{"living", "residential", "home", "apartment", "house"}},
				{"classroom", []string{"class", "school", "education", "lecture", "teaching"}},
				{"dining-room", []string{"dining", "restaurant", "cafeteria", "cafe", "canteen"}},
			},
			CategoryAcoustic: {
				{"reverberant", []string{"cathedral", "church", "hall", "auditorium", "theater", "cave"}},
				{"dry", []string{"studio", "booth", "bedroom", "office", "recording"}},
				{"live", []string{"concert", "performance", "stage", "live"}},
				{"bright", []string{"tile", "marble", "glass", "reflective"}},
				{"damped", []string{"bedroom", "office", "studio"}},
			},
			CategoryMaterials: {
				{"wood", []string{"wooden", "timber", "oak", "pine", "hardwood"}},
				{"stone", []string{"marble", "granite", "slate", "brick", "concrete"}},
				{"glass", []string{"mirror", "window", "glazed", "pane"}},
				{"fabric", []string{"carpet", "upholstered", "textile", "cloth"}},
			},
		},
		ContextOrder: []Category{CategoryPlaceType, CategoryAcoustic, CategoryMaterials},
		AcousticMapping: map[string][]string{
			"church":          {"reverberant", "resonant", "spacious"},
			"cathedral":       {"reverberant", "resonant", "spacious"},
			"chapel":          {"reverberant", "intimate"},
			"hall":            {"reverberant", "spacious", "clear"},
			"concert":         {"balanced", "clear", "diffuse"},
			"theater":         {"balanced", "clear", "diffuse"},
			"auditorium":      {"balanced", "clear", "diffuse"},
			"studio":          {"dry", "balanced", "dead"},
			"bedroom":         {"dry", "intimate", "warm"},
			"bathroom":        {"bright", "live", "resonant"},
			"living":          {"balanced", "warm", "intimate"},
			"office":          {"dry", "balanced", "dead"},
			"library":         {"dry", "dead", "intimate"},
			"classroom":       {"dry", "clear", "balanced"},
			"opera":           {"balanced", "clear", "resonant"},
			"cave":            {"reverberant", "resonant", "focused"},
			"tunnel":          {"reverberant", "focused", "resonant"},
			"outside":         {"dry", "clear", "diffuse"},
			"garden":          {"dry", "diffuse", "clear"},
			"park":            {"dry", "diffuse", "clear"},
			"forest":          {"diffuse", "absorptive", "intimate"},
			"conference-room": {"dry", "clear", "balanced"},
			"meeting-room":    {"dry", "clear", "balanced"},
			"board-room":      {"dry", "balanced", "intimate"},

			"wood":     {"warm", "balanced", "live"},
			"concrete": {"bright", "reverberant", "harsh"},
			"stone":    {"reverberant", "bright", "live"},
			"marble":   {"reverberant", "bright", "harsh"},
			"glass":    {"bright", "harsh", "live"},
			"metal":    {"bright", "harsh", "resonant"},
			"fabric":   {"dead", "dry", "absorptive"},
			"carpet":   {"dead", "dry", "absorptive"},
			"brick":    {"warm", "diffuse", "balanced"},
			"plaster":  {"balanced", "diffuse", "live"},
			"tile":     {"bright", "reverberant", "harsh"},

			"dome":     {"focused", "resonant", "reverberant"},
			"vault":    {"reverberant", "diffuse", "resonant"},
			"column":   {"diffuse", "live", "spacious"},
			"pillar":   {"diffuse", "live", "spacious"},
			"arch":     {"diffuse", "resonant", "spacious"},
			"spire":    {"focused", "resonant", "bright"},
			"steeple":  {"focused", "resonant", "bright"},
			"alcove":   {"focused", "intimate", "resonant"},
			"corridor": {"focused", "reverberant", "bright"},
			"nave":     {"reverberant", "spacious", "diffuse"},

			"large":    {"reverberant", "spacious", "diffuse"},
			"small":    {"intimate", "dry", "focused"},
			"high":     {"reverberant", "bright", "spacious"},
			"low":      {"intimate", "warm", "focused"},
			"wide":     {"spacious", "diffuse", "reverberant"},
			"narrow":   {"focused", "intimate", "resonant"},
			"open":     {"diffuse", "spacious", "clear"},
			"enclosed": {"intimate", "focused", "resonant"},
			"spacious": {"diffuse", "reverberant", "clear"},
			"cramped":  {"intimate", "focused", "dead"},
			"tall":     {"reverberant", "bright", "diffuse"},
			"short":    {"intimate", "warm", "focused"},
		},
		CoreAcoustic: []string{
			"reverberant", "dry", "bright", "warm", "balanced", "diffuse", "resonant",
			"intimate", "spacious", "clear", "harsh", "dead", "live", "focused",
		},
		PlanFilenameKeywords: []string{"plan", "diagram", "blueprint", "map", "layout", "floor", "scheme", "position"},
		PlanCaptionKeywords:  []string{"floor plan", "blueprint", "diagram", "map", "layout", "schematic", "floor layout"},
		Prompts: map[Category][]string{
			CategoryMaterials: {
				"The main materials in this space are",
				"This space is primarily made of",
				"The surfaces in this room are made of",
				"The dominant materials visible here are",
				"What materials can you identify in this space?",
			},
			CategoryPlaceType: {
				"This place is a",
				"This space functions as a",
				"This environment is used as a",
				"This location appears to be a",
				"What type of venue or location is this?",
			},
			CategoryArchitecture: {
				"Architectural elements include",
				"Notable architectural features are",
				"The architectural design shows",
				"The construction details include",
				"What architectural features are visible in this space?",
			},
			CategoryAcoustic: {
				"If you were to clap in this space, it would sound",
				"The reverberation in this space is",
				"This space would sound acoustically",
				"Speaking in this space would sound",
				"How would sound behave in this environment?",
			},
			CategorySpatial: {
				"Is this room large or small?",
				"What shape is this space?",
				"Describe if this space is large, small, wide, narrow, tall, or short",
				"Is this space circular, rectangular, square, or other shape?",
				"The dimensions of this space can be described as",
			},
		},
		SpatialAltPrompts: []string{
			"Is this space large or small?",
			"What shape is this room?",
			"Is this area wide or narrow?",
			"Would you describe this as a big space?",
			"Is this a rectangular, circular, or irregular space?",
		},
		QuestionFragments: []string{
			"describe the ", "what is the ", "how would you ", "can you describe ",
			"tell me about ", "?", "visible in this image is", "describe this",
			"the space?", "this space", "the room?", "this room", "overall spatial",
			"the spatial layout", "this space can be", "the volume", "is this space",
		},
		GenericResponses: []string{
			"very interesting", "a work of art", "i'm not sure", "i can't tell",
			"i don't know", "it's hard to say", "it's difficult to determine",
			"it's not clear", "it depends", "it varies", "cannot be determined",
		},
	}
}

var materialTerms = []string{
	"wooden", "wood", "concrete", "stone", "marble", "brick", "glass",
	"carpet", "fabric", "textile", "metal", "steel", "aluminum", "plastic",
	"ceramic", "tile", "plaster", "drywall", "painted", "hardwood",
	"softwood", "granite", "limestone", "slate", "clay", "velvet", "leather",
	"cork", "foam", "fiberglass", "wool", "cotton", "silk", "velour", "canvas",
	"grass", "rock", "mound", "brass", "bronze", "copper", "gold",
	"silver", "mahogany", "oak", "pine", "walnut", "cedar", "bamboo", "vinyl",
	"linoleum", "porcelain", "terracotta", "sandstone", "quartz", "travertine",
	"wicker", "rattan", "suede", "nylon", "acrylic", "rubber", "chrome", "iron",
	"stucco", "crystal", "terrazzo", "resin", "formica", "teak", "maple", "birch",
	"ash", "elm", "cherry", "spruce", "redwood", "ebony", "rosewood", "hickory",
	"beech", "poplar", "sycamore", "balsa", "composite", "veneer", "laminate",
	"gypsum", "basalt", "onyx", "jade", "alabaster", "obsidian", "coral",
}

var spatialTerms = []string{
	// size
	"large", "small", "huge", "tiny", "medium", "spacious", "intimate",
	"expansive", "compact", "vast", "confined", "open", "enclosed", "enormous",
	"grand", "immense", "massive", "monumental", "colossal", "gigantic", "miniature",
	"cramped", "snug", "limited", "restricted", "extensive", "commodious", "ample",
	"capacious", "voluminous", "substantial", "generous", "copious", "abundant",
	"constrained", "modest", "diminutive", "slight", "petite", "undersized", "oversized",

	// shape
	"rectangular", "square", "circular", "oval", "curved", "angular",
	"symmetrical", "asymmetrical", "hexagonal", "octagonal", "triangular", "rounded",
	"spherical", "cylindrical", "conical", "pyramidal", "cubical", "elliptical",
	"irregular", "organic", "geometric", "pentagonal", "diamond-shaped", "trapezoidal",
	"rhomboidal", "crescent", "spiral", "undulating", "serpentine", "zigzag", "sinuous",
	"wavy", "linear", "fluid", "rigid", "tapered", "pointed", "domed", "arched", "vaulted",

	// dimensions
	"high", "low", "tall", "short", "sloped", "flat",
	"cathedral", "raised", "elevated", "lofty", "towering", "soaring", "stately",
	"imposing", "majestic", "squat", "stunted", "humble", "sunken", "depressed",
	"wide", "narrow", "broad", "constricted",
	"sprawling", "extended", "stretched", "compressed", "squeezed", "roomy",
	"tight", "slim", "pinched",
	"cavernous", "proportional", "balanced", "elongated",
	"cozy", "sweeping",
}

var architectureTerms = []string{
	"pillar", "column", "arch", "balcony", "stage", "steps", "stairs",
	"alcove", "niche", "beam", "vault", "dome", "cupola", "skylight",
	"atrium", "corridor", "hallway", "arcade", "colonnade", "portico", "buttress",
	"cornice", "frieze", "pediment", "gable", "truss", "lintel", "capital", "plinth",
	"soffit", "fascia", "architrave", "molding", "coping", "eave", "quoin", "jamb",
	"mullion", "transom", "parapet", "turret", "spire", "steeple", "belfry", "nave",
	"transept", "apse", "chancel", "crypt", "vestibule", "foyer", "entryway", "loggia",
}

var placeTypeTerms = []string{
	"hall", "chamber", "studio", "auditorium", "theater", "church",
	"cathedral", "chapel", "concert", "lobby", "foyer", "atrium", "entryway",
	"stairwell", "gallery", "sanctuary", "temple", "mosque", "synagogue",
	"monastery", "cloister", "office", "library", "classroom", "museum",
	"parlor", "living", "dining", "kitchen", "bathroom", "basement", "cellar",
	"venue", "arena", "stadium", "gymnasium", "conference", "meeting", "lecture",
	"cave", "tunnel", "mound", "passage", "courtroom", "court",
	"amphitheater", "opera", "conservatory", "recital", "pavilion", "rotunda",
	"vestry", "chancel", "nave", "transept", "apse", "crypt",
	"refectory", "chapter", "dormitory", "abbey", "priory", "convent",
	"inside", "outside",
	"garden", "park", "courtyard", "square", "plaza", "street", "avenue",
	"boulevard", "alley", "field", "forest", "woods", "meadow", "beach",
	"shore", "coast", "mountain", "hill", "valley", "canyon", "desert",
	"landscape", "yard", "patio", "terrace", "balcony", "rooftop", "outdoor",
	"open-air", "waterfront", "lakeside", "riverside", "seaside", "playground",
	"gazebo", "pergola",
	"pathway", "trail", "bridge", "underpass", "overpass", "crosswalk",
	"conference-room", "dining-room", "living-room", "board-room", "class-room",
	"waiting-room", "reading-room", "work-room", "prayer-room", "change-room",
	"rest-room", "bed-room", "bath-room", "hotel-room", "hospital-room",
	"lecture-hall", "meeting-room", "concert-hall", "music-room", "recording-studio",
}

var acousticTerms = []string{
	"reverberant", "dry", "damped", "live", "dead", "bright", "warm", "dark",
	"balanced", "diffuse", "resonant", "absorptive", "reflective", "focused",
	"scattered", "natural", "acoustic", "sonorous", "harmonic", "clear", "muffled",
	"sharp", "dull", "echoing", "ambient", "intimate", "immediate", "distant",
	"enveloping", "transparent", "defined", "articulate", "muddy", "boomy", "thin",
	"lush", "rich", "vibrant", "responsive", "reactive", "dampened", "attenuated",
	"filtered", "projection", "brilliant", "harsh", "smooth", "crisp", "blended",
	"separated", "flat", "colorful", "neutral", "pure", "distorted", "full", "hollow",
	"spacious", "tight", "open", "closed", "direct", "indirect", "airy", "weighty",
}

var excludedTerms = []string{
	// people
	"person", "people", "human", "man", "woman", "child", "audience", "crowd", "group",
	"spectator", "visitor", "tourist", "guest", "attendee", "occupant", "resident",

	// surfaces too generic to describe a space
	"window", "door", "ceiling", "floor", "wall", "panel", "corner",

	"dark", "full",

	// audio equipment
	"microphone", "mic", "speaker", "speakers", "amplifier", "amp", "mixer", "console",
	"equipment", "audio", "sound", "recording", "playback", "stereo", "monitor",
	"headphone", "earphone", "subwoofer", "woofer", "tweeter", "receiver", "deck",
	"system", "setup", "gear", "cable", "wire", "cord", "jack", "plug", "socket",

	// instruments
	"instrument", "musical", "piano", "guitar", "drum", "violin", "cello", "bass",
	"trumpet", "saxophone", "clarinet", "flute", "harp", "organ", "keyboard", "percussion",
	"string", "wind", "brass", "woodwind", "synthesizer", "electric", "acoustic",

	// furniture
	"chair", "chairs", "table", "desk", "bench", "sofa", "couch", "stool", "seat",
	"furniture", "cabinet", "shelf", "bookcase", "stand", "podium", "lectern", "pulpit",
	"platform", "stage", "rostrum", "tripod", "lamp", "light", "curtain", "drape",

	// electronics
	"laptop", "computer", "screen", "projector", "camera", "video", "tv",
	"television", "phone", "smartphone", "device", "gadget", "apparatus", "machine",
	"controller", "remote", "mouse", "tablet", "ipad", "display",

	// art and decoration
	"painting", "picture", "artwork", "sculpture", "statue", "installation", "exhibit",
	"showcase", "frame", "poster", "print", "portrait", "landscape", "abstract",
	"photograph", "tapestry", "banner", "sign", "decoration", "ornament", "artifact",

	// events and drawings
	"event", "performance", "show", "concert", "recital", "lecture", "talk", "presentation",
	"speech", "meeting", "conference", "convention", "workshop", "seminar", "class",
	"lesson", "course", "program", "activity", "function", "ceremony", "service", "ritual",
	"celebration", "party", "reception", "gala", "festival", "fair", "exposition", "plan",
	"drawing", "design", "blueprint", "sketch", "layout", "illustration", "diagram", "map",

	// captioner artifacts seen in practice
	"windows", "building", "apodium", "andapainting", "apiano", "aspeaker", "alaptop",
	"andaspeaker", "atripod",

	// colours and visual finish
	"red", "blue", "green", "yellow", "orange", "purple", "pink",
	"brown", "black", "white", "gray", "grey", "cyan", "magenta",
	"turquoise", "violet", "indigo", "maroon", "olive", "navy", "teal",
	"color", "colour", "colored", "coloured", "bright", "light",
	"shiny", "glossy", "matte", "transparent", "opaque", "translucent",
	"painted", "patterned", "textured", "smooth", "rough", "decorated",
}

var stopWords = []string{
	"the", "a", "an", "and", "is", "are", "in", "on", "at", "with",
	"from", "to", "of", "for", "by", "as", "it", "its", "this", "that",
	"has", "have", "had", "can", "will", "would", "could", "should",
	"like", "made", "make", "making", "looks", "appears", "seems",
	"seen", "looked", "looking", "see", "saw",
	"shows", "showing", "shown", "displayed", "displaying",
	"featured", "featuring", "includes", "including", "included",
	"contains", "containing", "contained", "holds", "holding", "held",
	"was", "were", "being", "been", "am", "used", "using", "use",
	"utilizing", "utilize", "utilized", "employing", "employ", "employed",
}
