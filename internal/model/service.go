package model

import "time"

type ServiceCondition struct {
	Title       string   `dynamodbav:"title" json:"title"`
	Description string   `dynamodbav:"description" json:"description"`
	Symptoms    []string `dynamodbav:"symptoms" json:"symptoms"`
	Image       string   `dynamodbav:"image" json:"image"`
}

type ServiceTreatment struct {
	Title          string   `dynamodbav:"title" json:"title"`
	Description    string   `dynamodbav:"description" json:"description"`
	Instructions   []string `dynamodbav:"instructions" json:"instructions"`
	ProcedureSteps []string `dynamodbav:"procedureSteps" json:"procedureSteps"`
	ProcedureText  string   `dynamodbav:"procedureText" json:"procedureText"`

	IdealCandidate    StepSection `dynamodbav:"idealCandidate" json:"idealCandidate"`
	EvaluationProcess StepSection `dynamodbav:"evaluationProcess" json:"evaluationProcess"`
}

// StepSection is a titled description with an ordered list of steps,
// reused by the candidate and evaluation blocks of a treatment.
type StepSection struct {
	Title             string   `dynamodbav:"title" json:"title"`
	Description       string   `dynamodbav:"description" json:"description"`
	Steps             []string `dynamodbav:"steps" json:"steps"`
	BottomDescription string   `dynamodbav:"bottomDescription,omitempty" json:"bottomDescription,omitempty"`
}

type ServiceBenefit struct {
	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description" json:"description"`
}

type BenefitsSection struct {
	Title       string           `dynamodbav:"title" json:"title"`
	Description string           `dynamodbav:"description" json:"description"`
	List        []ServiceBenefit `dynamodbav:"list" json:"list"`
}

type WhyChooseSection struct {
	Title       string           `dynamodbav:"title" json:"title"`
	Description string           `dynamodbav:"description" json:"description"`
	Image       string           `dynamodbav:"image" json:"image"`
	Expertise   []ServiceBenefit `dynamodbav:"expertise" json:"expertise"`
}

type FAQ struct {
	Question string `dynamodbav:"question" json:"question"`
	Answer   string `dynamodbav:"answer" json:"answer"`
}

type BookingSection struct {
	Title       string `dynamodbav:"title" json:"title"`
	Description string `dynamodbav:"description" json:"description"`
}

// Service is a treatment/service detail page shown on the public site.
type Service struct {
	ServiceID   string `dynamodbav:"serviceId" json:"serviceId"`
	HeroImage   string `dynamodbav:"heroImage" json:"heroImage"`
	Title       string `dynamodbav:"title" json:"title"`
	Badge       string `dynamodbav:"badge" json:"badge"`
	Description string `dynamodbav:"description" json:"description"`

	Conditions []ServiceCondition `dynamodbav:"conditions" json:"conditions"`
	Treatments []ServiceTreatment `dynamodbav:"treatments" json:"treatments"`
	Benefits   BenefitsSection    `dynamodbav:"benefits" json:"benefits"`
	WhyChoose  WhyChooseSection   `dynamodbav:"whyChoose" json:"whyChoose"`

	FAQTitle string         `dynamodbav:"faqTitle" json:"faqTitle"`
	FAQs     []FAQ          `dynamodbav:"faqs" json:"faqs"`
	Booking  BookingSection `dynamodbav:"booking" json:"booking"`

	SEOTitle        string `dynamodbav:"seoTitle,omitempty" json:"seoTitle,omitempty"`
	MetaDescription string `dynamodbav:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	MetaKeywords    string `dynamodbav:"metaKeywords,omitempty" json:"metaKeywords,omitempty"`
	URL             string `dynamodbav:"url,omitempty" json:"url,omitempty"`

	Enabled   bool      `dynamodbav:"enabled" json:"enabled"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}
