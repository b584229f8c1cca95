package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddPost  = "community post created successfully"
	MessageSuccessGetPosts = "community posts retrieved successfully"
	MessageSuccessLikePost = "post liked successfully"

	MessageFailedAddPost  = "failed to create community post"
	MessageFailedGetPosts = "failed to retrieve community posts"
	MessageFailedLikePost = "failed to like post"

	ErrPostNotFound = errors.New("community post not found")
)

type (
	AddCommunityPostRequest struct {
		Title   string                `json:"title" form:"title" validate:"required"`
		Content string                `json:"content" form:"content" validate:"required"`
		ClaimID string                `json:"claim_id" form:"claim_id" validate:"omitempty,uuid"`
		Image   *multipart.FileHeader `json:"image" form:"image"`
	}

	CommunityPost struct {
		ID         string    `json:"id"`
		AuthorID   string    `json:"author_id"`
		AuthorName string    `json:"author_name,omitempty"`
		Title      string    `json:"title"`
		Content    string    `json:"content"`
		ImageURL   string    `json:"image_url,omitempty"`
		Likes      int       `json:"likes"`
		ClaimID    string    `json:"claim_id,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
