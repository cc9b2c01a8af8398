package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft     = "Draft"
	StatusReview    = "Review"
	StatusPublished = "Published"
)

type Blog struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title             string             `bson:"title" json:"title"`
	Slug              string             `bson:"slug" json:"slug"`
	Category          string             `bson:"category" json:"category"`
	Status            string             `bson:"status" json:"status"`
	AuthorID          primitive.ObjectID `bson:"author_id" json:"authorId"`
	PublishDate       *time.Time         `bson:"publish_date,omitempty" json:"publishDate,omitempty"`
	EstimatedReadTime string             `bson:"estimated_read_time,omitempty" json:"estimatedReadTime,omitempty"`
	MetaDescription   string             `bson:"meta_description,omitempty" json:"metaDescription,omitempty"`
	SEOKeywords       []string           `bson:"seo_keywords,omitempty" json:"seoKeywords,omitempty"`
	Tags              []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	VideoURL          string             `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	Content           string             `bson:"content" json:"content"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}
