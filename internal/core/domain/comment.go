package domain

import "time"

// Comment belongs to an article.
type Comment struct {
	ID         string    `json:"id" bson:"_id"`
	ArticleID  string    `json:"article_id" bson:"article_id"`
	AuthorName string    `json:"author_name" bson:"author_name"`
	Content    string    `json:"content" bson:"content"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
