package placeholder

import (
	"fmt"
	"strings"
)

// Industry is the typed tag the default content table is keyed by. Unknown
// or unrecognized industry strings collapse to IndustryGeneric, which holds
// the content every other variant falls back to field-by-field.
type Industry int

const (
	IndustryGeneric Industry = iota
	IndustryCafe
	IndustryRestaurant
	IndustryRetail
	IndustryBlog
	IndustryPortfolio
	IndustryFitness
	IndustrySalon
	IndustryTech
)

func (i Industry) String() string {
	switch i {
	case IndustryCafe:
		return "cafe"
	case IndustryRestaurant:
		return "restaurant"
	case IndustryRetail:
		return "retail"
	case IndustryBlog:
		return "blog"
	case IndustryPortfolio:
		return "portfolio"
	case IndustryFitness:
		return "fitness"
	case IndustrySalon:
		return "salon"
	case IndustryTech:
		return "tech"
	default:
		return "generic"
	}
}

// ParseIndustry maps the free-form industry string from the business context
// onto a typed tag. Matching is keyword-based so niche variants ("coffee
// shop", "thai restaurant") land on the right table.
func ParseIndustry(raw string) Industry {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return IndustryGeneric
	case containsAny(s, "cafe", "café", "coffee", "bakery"):
		return IndustryCafe
	case containsAny(s, "restaurant", "bistro", "dining", "food truck", "eatery"):
		return IndustryRestaurant
	case containsAny(s, "retail", "shop", "store", "boutique", "ecommerce", "e-commerce"):
		return IndustryRetail
	case containsAny(s, "blog", "magazine", "news", "publication"):
		return IndustryBlog
	case containsAny(s, "portfolio", "photograph", "designer", "artist", "creative studio"):
		return IndustryPortfolio
	case containsAny(s, "fitness", "gym", "yoga", "pilates", "crossfit"):
		return IndustryFitness
	case containsAny(s, "salon", "beauty", "spa", "barber", "nail"):
		return IndustrySalon
	case containsAny(s, "tech", "startup", "saas", "software", "app"):
		return IndustryTech
	default:
		return IndustryGeneric
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type menuItemDefaults struct {
	name        string
	description string
	price       string
}

type featureDefaults struct {
	title       string
	description string
}

// contentSet holds every category the default content table serves for one
// industry. Empty fields fall back to the generic set, so only the
// industry-distinctive values need filling in.
type contentSet struct {
	heroTitle       string
	heroSubtitle    string
	heroDescription string

	contactPhone   string
	contactEmail   string
	contactAddress string
	contactHours   string

	menuButton      string
	orderButton     string
	contactButton   string
	learnMoreButton string

	featuredTitle string
	aboutTitle    string
	servicesTitle string

	menuItems [3]menuItemDefaults
	features  [3]featureDefaults
}

var genericContent = contentSet{
	heroTitle:       "Welcome to Our Business",
	heroSubtitle:    "Quality you can trust",
	heroDescription: "We are dedicated to bringing you the best products and services in town.",

	contactPhone:   "02-000-0000",
	contactEmail:   "hello@example.com",
	contactAddress: "123 Main Street",
	contactHours:   "Mon-Fri 9:00-18:00",

	menuButton:      "View Menu",
	orderButton:     "Order Now",
	contactButton:   "Contact Us",
	learnMoreButton: "Learn More",

	featuredTitle: "Featured",
	aboutTitle:    "About Us",
	servicesTitle: "Our Services",

	menuItems: [3]menuItemDefaults{
		{"Item 1", "A customer favorite", "$9.99"},
		{"Item 2", "Freshly made every day", "$12.99"},
		{"Item 3", "A house specialty", "$14.99"},
	},
	features: [3]featureDefaults{
		{"Quality First", "Every detail is checked before it reaches you."},
		{"Friendly Service", "A team that remembers your name."},
		{"Fair Prices", "Honest pricing with no surprises."},
	},
}

var contentByIndustry = map[Industry]contentSet{
	IndustryGeneric: genericContent,

	IndustryCafe: {
		heroTitle:       "Artisan Coffee Experience",
		heroSubtitle:    "Slow brews, warm welcomes",
		heroDescription: "Single-origin beans roasted in-house and poured with care, every single cup.",

		contactPhone:   "02-123-4567",
		contactEmail:   "hello@artisancafe.com",
		contactAddress: "12 Roastery Lane",
		contactHours:   "Daily 7:00-19:00",

		menuButton:  "See Our Menu",
		orderButton: "Order a Cup",

		featuredTitle: "Seasonal Brews",
		aboutTitle:    "Our Roastery",
		servicesTitle: "What We Serve",

		menuItems: [3]menuItemDefaults{
			{"Signature Latte", "Velvety espresso with house-made oat milk", "$4.50"},
			{"Pour Over", "Single-origin beans brewed to order", "$5.00"},
			{"Almond Croissant", "Baked fresh each morning", "$3.75"},
		},
		features: [3]featureDefaults{
			{"Roasted In-House", "Beans roasted weekly in small batches."},
			{"Cozy Workspace", "Free Wi-Fi, plenty of outlets, quiet corners."},
			{"Local Pastries", "Baked goods from neighborhood bakers."},
		},
	},

	IndustryRestaurant: {
		heroTitle:       "A Table Worth Coming Back To",
		heroSubtitle:    "Seasonal plates, honest cooking",
		heroDescription: "From-scratch dishes built on local produce and a kitchen that cares about every plate.",

		contactPhone:   "02-234-5678",
		contactEmail:   "reservations@finetable.com",
		contactAddress: "88 Harvest Avenue",
		contactHours:   "Tue-Sun 11:30-22:00",

		menuButton:  "Explore the Menu",
		orderButton: "Reserve a Table",

		featuredTitle: "Chef's Picks",
		aboutTitle:    "Our Kitchen",
		servicesTitle: "Dining Options",

		menuItems: [3]menuItemDefaults{
			{"Grilled Sea Bass", "With charred lemon and herb butter", "$24.00"},
			{"Braised Short Rib", "Slow-cooked with root vegetables", "$28.00"},
			{"Garden Risotto", "Seasonal vegetables and aged parmesan", "$19.00"},
		},
		features: [3]featureDefaults{
			{"Farm to Table", "Produce sourced from farms within fifty miles."},
			{"Private Dining", "A dedicated room for up to twenty guests."},
			{"Sommelier Selected", "A wine list curated for every course."},
		},
	},

	IndustryRetail: {
		heroTitle:       "Find Something You'll Love",
		heroSubtitle:    "Curated goods, delivered fast",
		heroDescription: "A hand-picked collection of products chosen for quality, not quantity.",

		contactPhone:   "02-345-6789",
		contactEmail:   "support@curatedshop.com",
		contactAddress: "5 Commerce Plaza",
		contactHours:   "Mon-Sat 10:00-20:00",

		menuButton:  "Browse Collection",
		orderButton: "Shop Now",

		featuredTitle: "New Arrivals",
		aboutTitle:    "Our Story",
		servicesTitle: "Why Shop With Us",

		features: [3]featureDefaults{
			{"Free Returns", "Thirty days, no questions asked."},
			{"Fast Shipping", "Orders ship within one business day."},
			{"Curated Quality", "Every item tested by our own team."},
		},
	},

	IndustryBlog: {
		heroTitle:       "Stories Worth Your Time",
		heroSubtitle:    "Fresh perspectives, every week",
		heroDescription: "Long-form writing and sharp commentary from voices you won't find anywhere else.",

		contactEmail: "editor@thedailyread.com",

		menuButton:  "Browse Articles",
		orderButton: "Subscribe",

		featuredTitle: "Latest Posts",
		aboutTitle:    "About the Author",
		servicesTitle: "Topics We Cover",

		features: [3]featureDefaults{
			{"Weekly Essays", "A new long-form piece every Monday."},
			{"No Paywall", "Everything free to read, supported by members."},
			{"Reader Community", "Discussions that stay thoughtful."},
		},
	},

	IndustryPortfolio: {
		heroTitle:       "Work That Speaks for Itself",
		heroSubtitle:    "Design, photography, and craft",
		heroDescription: "A selected body of work spanning brand identity, editorial, and digital design.",

		contactEmail: "studio@selectedworks.com",

		menuButton:  "View Portfolio",
		orderButton: "Start a Project",

		featuredTitle: "Selected Work",
		aboutTitle:    "About the Studio",
		servicesTitle: "What I Do",

		features: [3]featureDefaults{
			{"Brand Identity", "Logos and systems that scale with you."},
			{"Art Direction", "Campaigns with a consistent visual voice."},
			{"Digital Design", "Interfaces people actually enjoy using."},
		},
	},

	IndustryFitness: {
		heroTitle:       "Stronger Every Session",
		heroSubtitle:    "Train with purpose",
		heroDescription: "Coaching, classes, and a community that shows up for each other.",

		contactPhone:   "02-456-7890",
		contactEmail:   "frontdesk@ironworksgym.com",
		contactAddress: "40 Summit Road",
		contactHours:   "Daily 6:00-22:00",

		menuButton:  "See Class Schedule",
		orderButton: "Join Today",

		featuredTitle: "Popular Classes",
		aboutTitle:    "Our Coaches",
		servicesTitle: "Training Programs",

		features: [3]featureDefaults{
			{"Certified Coaches", "Every program built by accredited trainers."},
			{"Small Classes", "Never more than twelve per session."},
			{"Open 7 Days", "Early mornings to late evenings, all week."},
		},
	},

	IndustrySalon: {
		heroTitle:       "Look and Feel Your Best",
		heroSubtitle:    "Beauty, tailored to you",
		heroDescription: "Stylists who listen first and a calm space to unwind while you're here.",

		contactPhone:   "02-567-8901",
		contactEmail:   "book@glowsalon.com",
		contactAddress: "27 Willow Street",
		contactHours:   "Tue-Sun 10:00-19:00",

		menuButton:  "View Services",
		orderButton: "Book Appointment",

		featuredTitle: "Signature Treatments",
		aboutTitle:    "Meet the Team",
		servicesTitle: "Our Services",

		features: [3]featureDefaults{
			{"Expert Stylists", "A decade of experience behind every chair."},
			{"Premium Products", "Salon-grade lines, gentle on hair and skin."},
			{"Easy Booking", "Reserve online in under a minute."},
		},
	},

	IndustryTech: {
		heroTitle:       "Build Faster, Ship Sooner",
		heroSubtitle:    "Tools for modern teams",
		heroDescription: "A platform that takes the busywork out of shipping software, so your team can focus on the product.",

		contactEmail: "sales@launchstack.io",

		menuButton:  "Explore Features",
		orderButton: "Start Free Trial",

		featuredTitle: "Core Features",
		aboutTitle:    "Why We Built This",
		servicesTitle: "What You Get",

		features: [3]featureDefaults{
			{"One-Click Deploys", "From commit to production in minutes."},
			{"Usage Insights", "Know what your users actually do."},
			{"Team Permissions", "Fine-grained access without the headache."},
		},
	},
}

// pick returns the industry's value for one field, falling back to the
// generic set when the industry leaves it empty. This is what keeps the
// table total across every (industry, category) pair.
func pick(ind Industry, get func(contentSet) string) string {
	set, ok := contentByIndustry[ind]
	if ok {
		if v := get(set); v != "" {
			return v
		}
	}
	return get(genericContent)
}

// DefaultFor returns the deterministic default for a text placeholder
// category. The second return is false for tokens outside the known category
// set; those stay as literal text in the output by design.
func DefaultFor(ind Industry, token string) (string, bool) {
	switch token {
	case "HERO_TITLE":
		return pick(ind, func(c contentSet) string { return c.heroTitle }), true
	case "HERO_SUBTITLE":
		return pick(ind, func(c contentSet) string { return c.heroSubtitle }), true
	case "HERO_DESCRIPTION":
		return pick(ind, func(c contentSet) string { return c.heroDescription }), true
	case "CONTACT_PHONE":
		return pick(ind, func(c contentSet) string { return c.contactPhone }), true
	case "CONTACT_EMAIL":
		return pick(ind, func(c contentSet) string { return c.contactEmail }), true
	case "CONTACT_ADDRESS":
		return pick(ind, func(c contentSet) string { return c.contactAddress }), true
	case "CONTACT_HOURS":
		return pick(ind, func(c contentSet) string { return c.contactHours }), true
	case "MENU_BUTTON_TEXT":
		return pick(ind, func(c contentSet) string { return c.menuButton }), true
	case "ORDER_BUTTON_TEXT":
		return pick(ind, func(c contentSet) string { return c.orderButton }), true
	case "CONTACT_BUTTON_TEXT":
		return pick(ind, func(c contentSet) string { return c.contactButton }), true
	case "LEARN_MORE_BUTTON_TEXT":
		return pick(ind, func(c contentSet) string { return c.learnMoreButton }), true
	case "FEATURED_TITLE":
		return pick(ind, func(c contentSet) string { return c.featuredTitle }), true
	case "ABOUT_TITLE":
		return pick(ind, func(c contentSet) string { return c.aboutTitle }), true
	case "SERVICES_TITLE":
		return pick(ind, func(c contentSet) string { return c.servicesTitle }), true
	}

	if v, ok := ordinalDefault(ind, token); ok {
		return v, true
	}
	return "", false
}

// ordinalDefault serves the MENU_ITEM_n_* and FEATURE_n_* families, n in 1..3.
func ordinalDefault(ind Industry, token string) (string, bool) {
	if field, idx, ok := splitOrdinal(token, "MENU_ITEM_"); ok {
		item := pickMenuItem(ind, idx)
		switch field {
		case "NAME":
			return item.name, true
		case "DESCRIPTION":
			return item.description, true
		case "PRICE":
			return item.price, true
		}
		return "", false
	}
	if field, idx, ok := splitOrdinal(token, "FEATURE_"); ok {
		feat := pickFeature(ind, idx)
		switch field {
		case "TITLE":
			return feat.title, true
		case "DESCRIPTION":
			return feat.description, true
		}
		return "", false
	}
	return "", false
}

// splitOrdinal parses tokens shaped like PREFIX<n>_FIELD, e.g.
// MENU_ITEM_2_NAME -> ("NAME", 1, true). Index is zero-based and clamped to
// the three slots the table carries.
func splitOrdinal(token, prefix string) (field string, idx int, ok bool) {
	rest, found := strings.CutPrefix(token, prefix)
	if !found || len(rest) < 3 {
		return "", 0, false
	}
	var n int
	if _, err := fmt.Sscanf(rest, "%d_", &n); err != nil || n < 1 || n > 3 {
		return "", 0, false
	}
	underscore := strings.Index(rest, "_")
	if underscore < 0 {
		return "", 0, false
	}
	return rest[underscore+1:], n - 1, true
}

func pickMenuItem(ind Industry, idx int) menuItemDefaults {
	if set, ok := contentByIndustry[ind]; ok {
		item := set.menuItems[idx]
		generic := genericContent.menuItems[idx]
		if item.name == "" {
			item.name = generic.name
		}
		if item.description == "" {
			item.description = generic.description
		}
		if item.price == "" {
			item.price = generic.price
		}
		return item
	}
	return genericContent.menuItems[idx]
}

func pickFeature(ind Industry, idx int) featureDefaults {
	if set, ok := contentByIndustry[ind]; ok {
		feat := set.features[idx]
		generic := genericContent.features[idx]
		if feat.title == "" {
			feat.title = generic.title
		}
		if feat.description == "" {
			feat.description = generic.description
		}
		return feat
	}
	return genericContent.features[idx]
}
