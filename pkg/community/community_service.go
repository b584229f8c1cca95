package community

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"nourishnet/domain"
	"nourishnet/entities"
	"nourishnet/internal/utils/storage"
)

type (
	CommunityService interface {
		AddPost(ctx context.Context, req domain.AddCommunityPostRequest, authorID string) (*domain.CommunityPost, error)
		GetPosts(ctx context.Context, page, limit int) ([]*domain.CommunityPost, int64, error)
		LikePost(ctx context.Context, postID string) (*domain.CommunityPost, error)
	}

	communityService struct {
		communityRepository CommunityRepository
		s3                  storage.AwsS3
	}
)

func NewCommunityService(communityRepository CommunityRepository, s3 storage.AwsS3) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
		s3:                  s3,
	}
}

func (s *communityService) AddPost(ctx context.Context, req domain.AddCommunityPostRequest, authorID string) (*domain.CommunityPost, error) {
	author, err := uuid.Parse(authorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	post := &entities.CommunityPost{
		ID:       uuid.New(),
		AuthorID: author,
		Title:    req.Title,
		Content:  req.Content,
	}

	if req.ClaimID != "" {
		claimID, err := uuid.Parse(req.ClaimID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		post.ClaimID = &claimID
	}

	if req.Image != nil {
		key := fmt.Sprintf("post-%s", uuid.New().String())
		objectKey, err := s.s3.UploadFile(key, req.Image, "community", storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		post.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.communityRepository.AddPost(ctx, post); err != nil {
		return nil, err
	}

	return convertPost(post), nil
}

func (s *communityService) GetPosts(ctx context.Context, page, limit int) ([]*domain.CommunityPost, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	posts, count, err := s.communityRepository.GetPosts(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.CommunityPost, 0, len(posts))
	for _, post := range posts {
		result = append(result, convertPost(post))
	}
	return result, count, nil
}

func (s *communityService) LikePost(ctx context.Context, postID string) (*domain.CommunityPost, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := s.communityRepository.IncrementLikes(ctx, postID); err != nil {
		return nil, err
	}

	post, err := s.communityRepository.GetPostByID(ctx, postID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}
	return convertPost(post), nil
}

func convertPost(post *entities.CommunityPost) *domain.CommunityPost {
	result := &domain.CommunityPost{
		ID:        post.ID.String(),
		AuthorID:  post.AuthorID.String(),
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Likes:     post.Likes,
		CreatedAt: post.CreatedAt,
	}
	if post.Author != nil {
		result.AuthorName = post.Author.Name
	}
	if post.ClaimID != nil {
		result.ClaimID = post.ClaimID.String()
	}
	return result
}
