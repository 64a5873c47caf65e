// Package chatbot maps free-text visitor messages to canned replies for
// the website chat widget. Matching is an ordered rule table evaluated
// top to bottom; the first rule with a matching term wins.
package chatbot

import (
	"regexp"
	"strings"
)

// term matches a normalized message either by plain substring or, when
// pattern is set, by regular expression (used for word-boundary matches
// such as "ac", which must not match inside "back").
type term struct {
	substr  string
	pattern *regexp.Regexp
}

func sub(s string) term { return term{substr: s} }

func re(expr string) term { return term{pattern: regexp.MustCompile(expr)} }

func (t term) matches(m string) bool {
	if t.pattern != nil {
		return t.pattern.MatchString(m)
	}
	return strings.Contains(m, t.substr)
}

// rule binds a set of match terms to one canned response.
type rule struct {
	topic    string
	terms    []term
	response string
}

// DefaultResponse is returned when no rule matches the input.
const DefaultResponse = "Hi! I'm here to help you with questions about Hometown Heating services. You can ask me about our services, pricing, Comfort Club, contact info, or specific equipment like furnaces, heat pumps, and air conditioning."

// rules is evaluated in order. Specific equipment topics come before the
// broader program/pricing/contact topics so that a message like
// "heat pump maintenance plan" resolves to the heat pump reply rather
// than the maintenance one.
var rules = []rule{
	{
		topic:    "heatpumps",
		terms:    []term{sub("heat pump"), sub("heatpump"), sub("heat-pump"), sub("geothermal"), sub("ductless")},
		response: "Heat pumps are an energy-efficient solution for year-round heating and cooling! We offer split system heat pumps, packaged units, geothermal systems, and ductless heat pumps. They're perfect for homes with or without existing ductwork. Visit our Services page to learn more!",
	},
	{
		topic:    "furnaces",
		terms:    []term{sub("furnace"), sub("furnaces"), sub("gas furnace"), sub("propane furnace")},
		response: "We install and service high-efficiency gas, propane, and electric furnaces from trusted brands. Our furnaces offer up to 96% AFUE efficiency with professional installation, comprehensive warranties, and 24/7 support. Check out our Services page for details!",
	},
	{
		topic:    "airconditioning",
		terms:    []term{sub("air conditioning"), sub("air condition"), sub("cooling"), re(`\bac\b`)},
		response: "We provide air conditioning installation, repair, and maintenance services. Our AC systems are energy-efficient and come with professional installation and comprehensive warranties.",
	},
	{
		topic:    "waterheaters",
		terms:    []term{sub("water heater"), sub("hot water"), sub("tankless"), sub("water heating")},
		response: "We install and service both traditional tank water heaters and modern tankless systems. Whether you need a replacement or a new installation, we've got you covered!",
	},
	{
		topic:    "indoorair",
		terms:    []term{sub("indoor air"), sub("air quality"), sub("air purif"), sub("ventilation"), sub("hrv"), sub("erv")},
		response: "We offer air purification, humidity control, ventilation (HRV/ERV), and filtration to keep your indoor air clean and healthy.",
	},
	{
		topic:    "radiant",
		terms:    []term{sub("radiant"), sub("floor heating"), sub("radiant floor")},
		response: "Radiant floor heating provides even, quiet, energy-efficient warmth. Great for bathrooms, kitchens, or whole-home installs.",
	},
	{
		topic:    "comfort",
		terms:    []term{sub("comfort club"), sub("comfort-club"), sub("membership")},
		response: "Our Comfort Club membership includes priority service, annual maintenance, 25% off parts, no diagnostic fees, and 24/7 phone support starting at $199 for a single system. It's a great way to protect your investment! You can apply on our Comfort Club page.",
	},
	{
		topic:    "maintenance",
		terms:    []term{sub("maintenance"), sub("service plan"), sub("annual service"), sub("tune up"), sub("tune-up")},
		response: "Regular maintenance keeps your system efficient and reliable. We handle filter changes, safety checks, cleaning, and optimization. Join our Comfort Club for priority service and discounts!",
	},
	{
		topic:    "pricing",
		terms:    []term{sub("price"), sub("cost"), sub("quote"), sub("estimate"), sub("how much")},
		response: "Our pricing varies by service and equipment. We offer free quotes and flexible financing through our FinanceIt program. Would you like me to connect you with our team for a personalized quote?",
	},
	{
		topic:    "financing",
		terms:    []term{sub("financing"), sub("payment"), sub("financeit"), sub("finance"), sub("loan")},
		response: "We offer flexible financing through our FinanceIt program with competitive rates, quick approval, and terms up to 84 months. No down payment required! Visit our Financing page to learn more or call 613-925-1039.",
	},
	{
		topic:    "contact",
		terms:    []term{sub("contact"), sub("phone"), sub("email"), sub("call"), sub("reach")},
		response: "You can reach us at 613-925-1039 or tom@hometownheating.ca. We're located in Prescott, Ontario and offer 24/7 emergency service. Visit our Contact page for more details or to send us a message.",
	},
	{
		topic:    "location",
		terms:    []term{sub("location"), sub("address"), sub("service area"), sub("prescott"), sub("where are you")},
		response: "We're based in Prescott, Ontario and serve the surrounding areas. Call 613-925-1039 or see the Contact page to confirm your location.",
	},
	{
		topic:    "emergency",
		terms:    []term{sub("emergency"), sub("urgent"), sub("broke"), sub("not working"), sub("problem")},
		response: "For emergency service, please call us immediately at 613-925-1039. We provide 24/7 emergency service with no overtime charges for Comfort Club members!",
	},
	{
		topic:    "about",
		terms:    []term{sub("about"), sub("who are you"), sub("company"), sub("business")},
		response: "Hometown Heating is your local HVAC expert serving Prescott, Ontario and surrounding areas, with 24/7 emergency service.",
	},
	{
		topic:    "services",
		terms:    []term{re(`\bservice(s)?\b`), sub("what do you"), sub("offerings")},
		response: "We offer furnace installation/repair, air conditioning, heat pumps, water heaters, indoor air quality solutions, and radiant floor heating. What specific service are you interested in?",
	},
}

// Respond returns the canned reply for a visitor message. It never fails:
// unmatched or empty input gets DefaultResponse.
func Respond(input string) string {
	m := strings.ToLower(strings.TrimSpace(input))
	if m == "" {
		return DefaultResponse
	}
	for _, r := range rules {
		for _, t := range r.terms {
			if t.matches(m) {
				return r.response
			}
		}
	}
	return DefaultResponse
}
