package services

import (
	"fmt"
	"strings"

	"debatecoach/models"
)

// curatedSet pairs topic keywords with hand-written arguments. The first set
// with a keyword found in the lowercased topic wins.
type curatedSet struct {
	Keywords []string
	For      []models.Argument
	Against  []models.Argument
}

func (c curatedSet) matches(topic string) bool {
	lower := strings.ToLower(topic)
	for _, kw := range c.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var curatedSets = []curatedSet{
	{
		Keywords: []string{"social media"},
		For: []models.Argument{
			{
				Point: "Protecting vulnerable populations from harmful content",
				SupportingFacts: []string{
					"Studies show increased rates of cyberbullying and mental health issues among teens",
					"Misinformation can lead to real-world harm and violence",
					"Regulation exists for other media forms like television and radio",
				},
			},
			{
				Point: "Preventing spread of misinformation and fake news",
				SupportingFacts: []string{
					"False information spreads 6x faster than true information on social platforms",
					"Election interference through coordinated disinformation campaigns",
					"Health misinformation during COVID-19 pandemic led to preventable deaths",
				},
			},
			{
				Point: "Ensuring fair market competition",
				SupportingFacts: []string{
					"Major platforms have monopolistic control over information flow",
					"Small businesses depend on these platforms with no alternatives",
					"Data privacy violations affect billions of users globally",
				},
			},
		},
		Against: []models.Argument{
			{
				Point: "Protecting free speech and expression rights",
				SupportingFacts: []string{
					"First Amendment protects freedom of expression in democratic societies",
					"Government regulation could lead to censorship of legitimate viewpoints",
					"Private companies should determine their own content policies",
				},
			},
			{
				Point: "Innovation and technological progress concerns",
				SupportingFacts: []string{
					"Heavy regulation could stifle innovation in tech sector",
					"Compliance costs would favor large companies over startups",
					"Global competitiveness could be affected by restrictive policies",
				},
			},
			{
				Point: "Practical enforcement challenges",
				SupportingFacts: []string{
					"Difficult to define and consistently apply content standards",
					"Cross-border nature of internet makes regulation complex",
					"Risk of government overreach into private communications",
				},
			},
		},
	},
}

// templateArgument is an Argument whose point is a format string taking the topic
type templateArgument struct {
	PointFormat     string
	SupportingFacts []string
}

var genericFor = []templateArgument{
	{
		PointFormat: "Supporting %s brings positive societal benefits",
		SupportingFacts: []string{
			"Research indicates potential improvements in quality of life",
			"Expert consensus suggests this approach addresses key challenges",
			"Successful implementation examples exist in other contexts",
		},
	},
	{
		PointFormat: "Economic advantages of implementing %s",
		SupportingFacts: []string{
			"Cost-benefit analysis shows long-term financial gains",
			"Job creation and economic growth opportunities",
			"Reduced social costs and improved resource allocation",
		},
	},
	{
		PointFormat: "Moral and ethical imperative to support %s",
		SupportingFacts: []string{
			"Aligns with fundamental principles of justice and fairness",
			"Addresses inequality and promotes equal opportunities",
			"Future generations will benefit from this decision",
		},
	},
}

var genericAgainst = []templateArgument{
	{
		PointFormat: "Potential negative consequences of %s",
		SupportingFacts: []string{
			"Unintended side effects may outweigh intended benefits",
			"Historical examples show similar approaches have failed",
			"Risk of creating new problems while solving existing ones",
		},
	},
	{
		PointFormat: "Economic costs and resource allocation concerns with %s",
		SupportingFacts: []string{
			"Implementation requires significant financial investment",
			"Opportunity cost of not investing resources elsewhere",
			"Taxpayer burden and questions of fiscal responsibility",
		},
	},
	{
		PointFormat: "Individual rights and freedom concerns raised by %s",
		SupportingFacts: []string{
			"May infringe on personal choice and autonomy",
			"Government intervention in private matters raises concerns",
			"Slippery slope toward increased regulation and control",
		},
	},
}

// localDebate returns the curated set matching topic, or the generic template
// with topic substituted into every point.
func localDebate(topic string) *rawDebate {
	for _, set := range curatedSets {
		if set.matches(topic) {
			return &rawDebate{
				ArgumentsFor:     toRaw(set.For),
				ArgumentsAgainst: toRaw(set.Against),
			}
		}
	}
	return &rawDebate{
		ArgumentsFor:     fromTemplate(genericFor, topic),
		ArgumentsAgainst: fromTemplate(genericAgainst, topic),
	}
}

func toRaw(args []models.Argument) []rawArgument {
	out := make([]rawArgument, len(args))
	for i, a := range args {
		point := a.Point
		out[i] = rawArgument{Point: &point, SupportingFacts: a.SupportingFacts}
	}
	return out
}

func fromTemplate(tmpl []templateArgument, topic string) []rawArgument {
	out := make([]rawArgument, len(tmpl))
	for i, t := range tmpl {
		point := fmt.Sprintf(t.PointFormat, topic)
		out[i] = rawArgument{Point: &point, SupportingFacts: t.SupportingFacts}
	}
	return out
}
