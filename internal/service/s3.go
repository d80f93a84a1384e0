package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"github.com/GurshaanDaula/Assignment2-Database/internal/config"
	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
	"github.com/GurshaanDaula/Assignment2-Database/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// AvatarService хранит картинки профиля в S3-совместимом хранилище.
type AvatarService struct {
	config   *config.Config
	userRepo repository.UserRepository
	uploader *manager.Uploader
	s3Client *s3.Client
}

func NewAvatarService(cfg *config.Config, userRepo repository.UserRepository) (*AvatarService, error) {
	s3Opts := []func(*s3.Options){}

	if cfg.S3Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true // Обязательно для MinIO
		})
	}

	credsProvider := credentials.NewStaticCredentialsProvider(
		cfg.S3AccessKeyID,
		cfg.S3SecretAccessKey,
		"",
	)

	awsCfg := aws.Config{
		Region:      cfg.S3Region,
		Credentials: credsProvider,
	}

	s3Client := s3.NewFromConfig(awsCfg, s3Opts...)

	service := &AvatarService{
		config:   cfg,
		userRepo: userRepo,
		uploader: manager.NewUploader(s3Client),
		s3Client: s3Client,
	}

	log.Printf("S3 avatar storage initialized with endpoint: %s", cfg.S3Endpoint)
	return service, nil
}

// UploadAvatar загружает файл и запоминает ключ на пользователе.
func (s *AvatarService) UploadAvatar(ctx context.Context, file io.Reader, filename, contentType string, userID uint) (*model.FileMetadata, error) {
	fileID := uuid.New().String()
	s3Key := path.Join("avatars", fmt.Sprint(userID), fileID, filename)

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3BucketName),
		Key:         aws.String(s3Key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	log.Printf("Avatar uploaded: %s", result.Location)

	if err := s.userRepo.SetProfilePictureKey(userID, s3Key); err != nil {
		return nil, fmt.Errorf("failed to save avatar key: %w", err)
	}

	return &model.FileMetadata{
		ID:          fileID,
		Filename:    filename,
		ContentType: contentType,
		S3Key:       s3Key,
		S3Bucket:    s.config.S3BucketName,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}, nil
}

// PresignAvatarURL возвращает временную ссылку на картинку профиля.
func (s *AvatarService) PresignAvatarURL(ctx context.Context, s3Key string, expires time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.s3Client)

	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3BucketName),
		Key:    aws.String(s3Key),
	}, s3.WithPresignExpires(expires))

	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return request.URL, nil
}
