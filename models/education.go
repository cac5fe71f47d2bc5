package models

import "time"

// Course groups the materials, live sessions and chat of one class.
type Course struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	TeacherID   string    `bson:"teacherId" json:"teacherId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Material is one downloadable resource attached to a course.
type Material struct {
	ID         string    `bson:"id" json:"id"`
	CourseID   string    `bson:"courseId" json:"courseId"`
	Title      string    `bson:"title" json:"title"`
	URL        string    `bson:"url" json:"url"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// LiveSession is a scheduled virtual class meeting.
type LiveSession struct {
	ID       string    `bson:"id" json:"id"`
	CourseID string    `bson:"courseId" json:"courseId"`
	Title    string    `bson:"title" json:"title"`
	StartsAt time.Time `bson:"startsAt" json:"startsAt"`
	JoinURL  string    `bson:"joinUrl" json:"joinUrl"`
}

// ChatMessage is one message in a course chat. Clients fetch new messages
// by polling with a "since" cursor; there is no push channel.
type ChatMessage struct {
	ID         string    `bson:"id" json:"id"`
	CourseID   string    `bson:"courseId" json:"courseId"`
	AuthorID   string    `bson:"authorId" json:"authorId"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	Body       string    `bson:"body" json:"body"`
	SentAt     time.Time `bson:"sentAt" json:"sentAt"`
}

// CreateCourseRequest creates a course (admin only).
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// AddMaterialRequest attaches a resource to a course (admin only).
type AddMaterialRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

// ScheduleSessionRequest schedules a live session (admin only).
type ScheduleSessionRequest struct {
	Title    string    `json:"title" binding:"required"`
	StartsAt time.Time `json:"startsAt" binding:"required"`
	JoinURL  string    `json:"joinUrl" binding:"required"`
}

// PostChatMessageRequest publishes one chat message.
type PostChatMessageRequest struct {
	Body string `json:"body" binding:"required"`
}
