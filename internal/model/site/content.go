package site

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Hero is the home page headline block with its demo conversation.
type Hero struct {
	Badge       string        `yaml:"badge"`
	Lead        string        `yaml:"lead"`
	Highlight   string        `yaml:"highlight"`
	Tail        string        `yaml:"tail"`
	Body        string        `yaml:"body"`
	SocialProof string        `yaml:"social_proof"`
	Demo        []DemoMessage `yaml:"demo"`
	// DemoInterval advances the demo one message at a time; DemoTyping is how long the
	// typing indicator precedes each assistant message.
	DemoInterval time.Duration `yaml:"demo_interval"`
	DemoTyping   time.Duration `yaml:"demo_typing"`
}

// DemoMessage is a scripted bubble in the hero conversation.
type DemoMessage struct {
	Content string `yaml:"content"`
	User    bool   `yaml:"user"`
}

// Feature describes one product capability.
type Feature struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Icon        string   `yaml:"icon" json:"icon"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Details     []string `yaml:"details" json:"details"`
}

type Comparison struct {
	Feature string `yaml:"feature"`
	Ours    string `yaml:"ours"`
	Others  string `yaml:"others"`
}

// Plan is a pricing tier. AnnualPrice applies when annual billing is selected.
type Plan struct {
	ID          string        `yaml:"id" json:"id"`
	Title       string        `yaml:"title" json:"title"`
	Price       string        `yaml:"price" json:"price"`
	AnnualPrice string        `yaml:"annual_price" json:"annualPrice"`
	Description string        `yaml:"description" json:"description"`
	Button      string        `yaml:"button" json:"button"`
	Popular     bool          `yaml:"popular" json:"popular"`
	Features    []PlanFeature `yaml:"features" json:"features"`
}

type PlanFeature struct {
	Text     string `yaml:"text" json:"text"`
	Included bool   `yaml:"included" json:"included"`
}

// PlanRow is one row of the plan comparison matrix; Values follow the order of Content.Plans.
// The literals "yes" and "no" render as check and cross marks.
type PlanRow struct {
	Feature string   `yaml:"feature"`
	Values  []string `yaml:"values"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Testimonial struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Text   string `yaml:"text"`
	Rating int    `yaml:"rating"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Value struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Member struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
	Bio  string `yaml:"bio"`
}

type Office struct {
	City    string   `yaml:"city"`
	Address []string `yaml:"address"`
	Phone   string   `yaml:"phone"`
}

// Content is everything the marketing pages render.
type Content struct {
	Hero         Hero          `yaml:"hero"`
	Features     []Feature     `yaml:"features"`
	Comparison   []Comparison  `yaml:"comparison"`
	Plans        []Plan        `yaml:"plans"`
	PlanMatrix   []PlanRow     `yaml:"plan_matrix"`
	PlanIncludes []string      `yaml:"plan_includes"`
	PricingFAQ   []FAQ         `yaml:"pricing_faq"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Stats        []Stat        `yaml:"stats"`
	Story        []string      `yaml:"story"`
	Timeline     []Milestone   `yaml:"timeline"`
	Values       []Value       `yaml:"values"`
	Team         []Member      `yaml:"team"`
	Offices      []Office      `yaml:"offices"`
	ContactFAQ   []FAQ         `yaml:"contact_faq"`
}

// Parse decodes YAML site content and checks the plan matrix shape.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if len(c.Hero.Demo) > 0 && (c.Hero.DemoInterval <= 0 || c.Hero.DemoTyping < 0 || c.Hero.DemoTyping >= c.Hero.DemoInterval) {
		return nil, fmt.Errorf("hero demo cadence %s/%s: typing must be shorter than a positive interval", c.Hero.DemoTyping, c.Hero.DemoInterval)
	}
	for _, row := range c.PlanMatrix {
		if len(row.Values) != len(c.Plans) {
			return nil, fmt.Errorf("plan matrix row %q has %d values, want %d", row.Feature, len(row.Values), len(c.Plans))
		}
	}
	return &c, nil
}

// Seed returns the embedded site content. It panics if the embedded file is malformed,
// which can only happen at build time.
func Seed() *Content {
	c, err := Parse(contentYAML)
	if err != nil {
		panic(err)
	}
	return c
}
