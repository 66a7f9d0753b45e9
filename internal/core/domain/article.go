package domain

import "time"

// Author is owned by the article it is embedded in.
type Author struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Article is a piece of content with an embedded author.
type Article struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Author    Author    `json:"author" bson:"author"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// DateRange is an open interval: Start < t < End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies strictly between Start and End.
func (r DateRange) Contains(t time.Time) bool {
	return t.After(r.Start) && t.Before(r.End)
}
