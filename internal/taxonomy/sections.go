package taxonomy

// SectionID is the closed set of avoid-guide category tags
type SectionID string

const (
	SectionPreservatives   SectionID = "preservatives"
	SectionArtificial      SectionID = "artificial"
	SectionSweeteners      SectionID = "sweeteners"
	SectionFatsOils        SectionID = "fats-oils"
	SectionEmulsifiers     SectionID = "emulsifiers"
	SectionFlavorEnhancers SectionID = "flavor-enhancers"
)

// Ingredient is a single flagged substance in the avoid guide.
// Slug is globally unique across the entire taxonomy.
type Ingredient struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Reason   string   `json:"reason"`
	Synonyms []string `json:"synonyms"`
}

// Section is a named grouping of Ingredient entries. Item order is the
// authoring order and matters only for display, not matching.
type Section struct {
	ID    SectionID    `json:"id"`
	Title string       `json:"title"`
	Items []Ingredient `json:"items"`
}

// Sections returns the curated avoid guide. The returned slice is shared;
// callers must treat it as read-only.
func Sections() []Section {
	return avoidGuide
}

var avoidGuide = []Section{
	{
		ID:    SectionPreservatives,
		Title: "Preservatives & Antioxidants",
		Items: []Ingredient{
			{
				Slug:     "bha",
				Name:     "BHA (Butylated Hydroxyanisole)",
				Reason:   "Synthetic antioxidant classified as a possible carcinogen.",
				Synonyms: []string{"bha", "e320", "butylated hydroxyanisole"},
			},
			{
				Slug:     "bht",
				Name:     "BHT (Butylated Hydroxytoluene)",
				Reason:   "Synthetic antioxidant linked to organ toxicity in animal studies.",
				Synonyms: []string{"bht", "e321", "butylated hydroxytoluene"},
			},
			{
				Slug:     "tbhq",
				Name:     "TBHQ (tert-Butylhydroquinone)",
				Reason:   "Petroleum-derived preservative with strict intake limits.",
				Synonyms: []string{"tbhq", "tb hq", "e319", "tert-butylhydroquinone", "tertiary butylhydroquinone"},
			},
			{
				Slug:     "sodium-benzoate",
				Name:     "Sodium Benzoate",
				Reason:   "Can form benzene when combined with vitamin C.",
				Synonyms: []string{"e211", "benzoate of soda"},
			},
			{
				Slug:     "potassium-sorbate",
				Name:     "Potassium Sorbate",
				Reason:   "Synthetic preservative; a common irritant for sensitive users.",
				Synonyms: []string{"e202"},
			},
			{
				Slug:     "sodium-nitrite",
				Name:     "Sodium Nitrite",
				Reason:   "Curing agent that can form nitrosamines during cooking.",
				Synonyms: []string{"e250", "sodium nitrites"},
			},
			{
				Slug:     "sodium-nitrate",
				Name:     "Sodium Nitrate",
				Reason:   "Curing salt that converts to nitrite in the body.",
				Synonyms: []string{"e251", "sodium nitrates"},
			},
			{
				Slug:     "calcium-propionate",
				Name:     "Calcium Propionate",
				Reason:   "Mold inhibitor associated with digestive irritation.",
				Synonyms: []string{"e282", "calcium propanoate"},
			},
			{
				Slug:     "propyl-gallate",
				Name:     "Propyl Gallate",
				Reason:   "Synthetic antioxidant with suspected endocrine effects.",
				Synonyms: []string{"e310"},
			},
			{
				Slug:     "potassium-bromate",
				Name:     "Potassium Bromate",
				Reason:   "Flour improver banned in many countries as a carcinogen.",
				Synonyms: []string{"e924", "bromated flour"},
			},
		},
	},
	{
		ID:    SectionArtificial,
		Title: "Artificial Colors & Flavors",
		Items: []Ingredient{
			{
				Slug:     "artificial-color",
				Name:     "Artificial Color",
				Reason:   "Synthetic dyes linked to hyperactivity in children.",
				Synonyms: []string{"artificial colour", "artificial colors", "artificial colours", "artificial coloring", "artificial colouring"},
			},
			{
				Slug:     "artificial-flavor",
				Name:     "Artificial Flavor",
				Reason:   "Lab-synthesized flavor compounds of undisclosed composition.",
				Synonyms: []string{"artificial flavour", "artificial flavors", "artificial flavours", "artificial flavoring", "artificial flavouring"},
			},
			{
				Slug:     "tartrazine",
				Name:     "Tartrazine (Yellow 5)",
				Reason:   "Azo dye that can trigger allergic-type reactions.",
				Synonyms: []string{"e102", "yellow 5", "fd c yellow 5"},
			},
			{
				Slug:     "sunset-yellow",
				Name:     "Sunset Yellow (Yellow 6)",
				Reason:   "Azo dye linked to hyperactivity; requires a warning label in the EU.",
				Synonyms: []string{"e110", "yellow 6", "sunset yellow fcf"},
			},
			{
				Slug:     "ponceau-4r",
				Name:     "Ponceau 4R",
				Reason:   "Azo dye banned in the US; hyperactivity warning in the EU.",
				Synonyms: []string{"e124", "cochineal red a"},
			},
		},
	},
	{
		ID:    SectionSweeteners,
		Title: "Refined & Artificial Sweeteners",
		Items: []Ingredient{
			{
				Slug:     "refined-sugar",
				Name:     "Refined Sugar",
				Reason:   "Empty calories that spike blood sugar.",
				Synonyms: []string{"invert sugar", "white sugar", "refined cane sugar"},
			},
			{
				Slug:     "hfcs",
				Name:     "High Fructose Corn Syrup",
				Reason:   "Highly processed sweetener associated with metabolic disease.",
				Synonyms: []string{"hfcs", "glucose-fructose syrup", "isoglucose"},
			},
			{
				Slug:     "glucose-syrup",
				Name:     "Glucose Syrup",
				Reason:   "Refined starch sweetener with a high glycemic load.",
				Synonyms: []string{"fructose syrup", "corn syrup"},
			},
			{
				Slug:     "corn-syrup-solids",
				Name:     "Corn Syrup Solids",
				Reason:   "Dried glucose syrup; concentrated refined sugar.",
				Synonyms: []string{"dried glucose syrup"},
			},
			{
				Slug:     "maltodextrin",
				Name:     "Maltodextrin",
				Reason:   "Processed starch with a glycemic index above table sugar.",
				Synonyms: []string{"corn maltodextrin"},
			},
			{
				Slug:     "dextrose",
				Name:     "Dextrose",
				Reason:   "Refined glucose added to processed foods.",
				Synonyms: []string{"crystalline dextrose"},
			},
			{
				Slug:     "aspartame",
				Name:     "Aspartame",
				Reason:   "Artificial sweetener classified as possibly carcinogenic.",
				Synonyms: []string{"e951"},
			},
			{
				Slug:     "sucralose",
				Name:     "Sucralose",
				Reason:   "Chlorinated sweetener that may disrupt gut bacteria.",
				Synonyms: []string{"e955", "splenda"},
			},
			{
				Slug:     "saccharin",
				Name:     "Saccharin",
				Reason:   "Oldest artificial sweetener; long history of safety debate.",
				Synonyms: []string{"e954"},
			},
			{
				Slug:     "acesulfame-k",
				Name:     "Acesulfame K",
				Reason:   "Artificial sweetener often paired with aspartame.",
				Synonyms: []string{"acesulfame", "acesulfame k", "acesulfame potassium", "ace k", "e950"},
			},
			{
				Slug:     "neotame",
				Name:     "Neotame",
				Reason:   "Ultra-potent aspartame derivative.",
				Synonyms: []string{"e961"},
			},
		},
	},
	{
		ID:    SectionFatsOils,
		Title: "Industrial Fats & Oils",
		Items: []Ingredient{
			{
				Slug:     "palm-oil",
				Name:     "Palm Oil",
				Reason:   "High in saturated fat; often heavily refined.",
				Synonyms: []string{"palm kernel oil", "palm olein", "palmolein"},
			},
			{
				Slug:     "hydrogenated-oil",
				Name:     "Hydrogenated Oil",
				Reason:   "Source of trans fats linked to heart disease.",
				Synonyms: []string{"hydrogenated", "partially hydrogenated", "partially hydrogenated oil", "trans fat"},
			},
			{
				Slug:     "shortening",
				Name:     "Shortening",
				Reason:   "Solidified industrial fat, typically hydrogenated.",
				Synonyms: []string{"vegetable shortening"},
			},
		},
	},
	{
		ID:    SectionEmulsifiers,
		Title: "Emulsifiers & Stabilizers",
		Items: []Ingredient{
			{
				Slug:     "carrageenan",
				Name:     "Carrageenan",
				Reason:   "Seaweed-derived thickener tied to gut inflammation.",
				Synonyms: []string{"e407"},
			},
			{
				Slug:     "polysorbate-80",
				Name:     "Polysorbate 80",
				Reason:   "Synthetic emulsifier that may alter gut microbiota.",
				Synonyms: []string{"e433", "polysorbate"},
			},
			{
				Slug:     "mono-and-diglycerides",
				Name:     "Mono- and Diglycerides",
				Reason:   "Processed fats that can carry trace trans fat.",
				Synonyms: []string{"mono and diglycerides", "monoglycerides", "diglycerides", "e471"},
			},
			{
				Slug:     "lecithin",
				Name:     "Lecithin",
				Reason:   "Heavily processed emulsifier, usually solvent-extracted.",
				Synonyms: []string{"lecithins", "soy lecithin", "sunflower lecithin", "e322"},
			},
			{
				Slug:     "propylene-glycol",
				Name:     "Propylene Glycol",
				Reason:   "Humectant also used in industrial applications.",
				Synonyms: []string{"e1520"},
			},
		},
	},
	{
		ID:    SectionFlavorEnhancers,
		Title: "Flavor Enhancers",
		Items: []Ingredient{
			{
				Slug:     "msg",
				Name:     "MSG (Monosodium Glutamate)",
				Reason:   "Flavor enhancer that causes reactions in sensitive people.",
				Synonyms: []string{"msg", "monosodium glutamate", "e621"},
			},
		},
	},
}
