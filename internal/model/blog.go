package model

import "time"

type Tag struct {
	Name string `dynamodbav:"name" json:"name"`
}

// ExtraField is a free-form content block (heading + rich-text body)
// authored in the admin editor.
type ExtraField struct {
	Heading     string `dynamodbav:"heading" json:"heading"`
	Description string `dynamodbav:"description" json:"description"`
}

type Blog struct {
	BlogID      string       `dynamodbav:"blogId" json:"blogId"`
	BlogImage   string       `dynamodbav:"blogImage" json:"blogImage"`
	BlogTitle   string       `dynamodbav:"blogTitle" json:"blogTitle"`
	Categories  []string     `dynamodbav:"categories" json:"categories"`
	Tags        []Tag        `dynamodbav:"tags" json:"tags"`
	Author      string       `dynamodbav:"author" json:"author"`
	Timeline    string       `dynamodbav:"timeline" json:"timeline"`
	ExtraFields []ExtraField `dynamodbav:"extraFields" json:"extraFields"`

	SEOTitle        string `dynamodbav:"seoTitle,omitempty" json:"seoTitle,omitempty"`
	MetaDescription string `dynamodbav:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	MetaKeywords    string `dynamodbav:"metaKeywords,omitempty" json:"metaKeywords,omitempty"`
	URL             string `dynamodbav:"url,omitempty" json:"url,omitempty"`

	Enabled   bool      `dynamodbav:"enabled" json:"enabled"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}
